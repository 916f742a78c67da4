package header

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// ProxyRequire represents the Proxy-Require header field.
// The Proxy-Require header field is used to indicate proxy-sensitive features that must be supported by the proxy.
type ProxyRequire []string

// Kind returns [KindProxyRequire].
func (ProxyRequire) Kind() Kind { return KindProxyRequire }

// CanonicName returns the canonical name of the header.
func (ProxyRequire) CanonicName() Name { return KindProxyRequire.CanonicName() }

// CompactName returns the compact name of the header.
func (ProxyRequire) CompactName() Name { return KindProxyRequire.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr ProxyRequire) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr ProxyRequire) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr ProxyRequire) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr ProxyRequire) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ProxyRequire) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr ProxyRequire) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr ProxyRequire) Equal(val any) bool {
	other, ok := eqHdr[ProxyRequire](val)
	return ok && equalStrings(hdr, other, true)
}

// IsValid checks whether the header is syntactically valid.
func (hdr ProxyRequire) IsValid() bool { return allTokens(hdr) }

func (hdr ProxyRequire) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ProxyRequire) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[ProxyRequire](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr ProxyRequire) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderStrings(w, hdr))
}

// Has reports whether the list contains the option, compared case-insensitively.
func (hdr ProxyRequire) Has(opt string) bool {
	return slices.ContainsFunc(hdr, func(s string) bool { return util.EqFold(s, opt) })
}

func parseProxyRequire(value string) (Header, error) {
	list, err := parseTokenList(value, grammar.IsToken[string])
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return ProxyRequire(list), nil
}
