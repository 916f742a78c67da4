package header

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// MIMEVersion represents the MIME-Version header field, i.e. "1.0".
type MIMEVersion string

// Kind returns [KindMIMEVersion].
func (MIMEVersion) Kind() Kind { return KindMIMEVersion }

// CanonicName returns the canonical name of the header.
func (MIMEVersion) CanonicName() Name { return KindMIMEVersion.CanonicName() }

// CompactName returns the compact name of the header.
func (MIMEVersion) CompactName() Name { return KindMIMEVersion.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr MIMEVersion) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr MIMEVersion) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr MIMEVersion) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr MIMEVersion) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr MIMEVersion) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr MIMEVersion) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr MIMEVersion) Equal(val any) bool {
	other, ok := eqHdr[MIMEVersion](val)
	return ok && hdr == other
}

// IsValid checks whether the header is syntactically valid.
func (hdr MIMEVersion) IsValid() bool { return isMIMEVersion(hdr) }

func (hdr MIMEVersion) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *MIMEVersion) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[MIMEVersion](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr MIMEVersion) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, string(hdr)))
}

func isMIMEVersion[T ~string](s T) bool {
	major, minor, ok := strings.Cut(string(s), ".")
	return ok && grammar.IsDigits(major) && grammar.IsDigits(minor)
}

func parseMIMEVersion(value string) (Header, error) {
	if value == "" {
		return nil, errtrace.Wrap(errEmptyValue())
	}
	if !(isMIMEVersion(value)) {
		return nil, errtrace.Wrap(newInvalidPartErr("value %q", value))
	}
	return MIMEVersion(value), nil
}
