package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Server represents the Server header field.
// The Server header field contains information about the software used by the UAS to handle the request.
type Server string

// Kind returns [KindServer].
func (Server) Kind() Kind { return KindServer }

// CanonicName returns the canonical name of the header.
func (Server) CanonicName() Name { return KindServer.CanonicName() }

// CompactName returns the compact name of the header.
func (Server) CompactName() Name { return KindServer.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Server) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Server) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Server) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Server) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Server) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Server) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr Server) Equal(val any) bool {
	other, ok := eqHdr[Server](val)
	return ok && hdr == other
}

// IsValid checks whether the header is syntactically valid.
func (hdr Server) IsValid() bool { return isText(string(hdr)) }

func (hdr Server) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Server) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Server](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Server) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, string(hdr)))
}

func parseServer(value string) (Header, error) {
	if value == "" {
		return nil, errtrace.Wrap(errEmptyValue())
	}
	if !(isText(string(value))) {
		return nil, errtrace.Wrap(newInvalidPartErr("value %q", value))
	}
	return Server(value), nil
}
