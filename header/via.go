package header

import (
	"fmt"
	"io"
	"net/netip"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Via represents the Via header field.
// The Via header field indicates the path taken by the request so far
// and indicates the path that should be followed in routing responses.
// Hops are kept in the wire order, the topmost hop first.
type Via []ViaHop

// Kind returns [KindVia].
func (Via) Kind() Kind { return KindVia }

// CanonicName returns the canonical name of the header.
func (Via) CanonicName() Name { return KindVia.CanonicName() }

// CompactName returns the compact name of the header.
func (Via) CompactName() Name { return KindVia.CompactName() }

// RenderTo writes the header to the provided writer.
func (hdr Via) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderHdr(w, hdr, opts, hdr.renderValueTo))
}

// Render returns the string representation of the header.
func (hdr Via) Render(opts *RenderOptions) string { return render(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Via) RenderValue() string { return renderStr(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Via) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Via) Format(f fmt.State, verb rune) { formatHdr(f, verb, hdr) }

// Clone returns a copy of the header.
func (hdr Via) Clone() Header { return cloneList(hdr) }

// Equal compares this header with another for equality.
func (hdr Via) Equal(val any) bool {
	other, ok := eqHdr[Via](val)
	return ok && equalList(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Via) IsValid() bool { return allValid(hdr) }

func (hdr Via) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Via) UnmarshalJSON(data []byte) error {
	h, err := unmarshalHdr[Via](data)
	*hdr = h
	return errtrace.Wrap(err)
}

func (hdr Via) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

// ViaHop is a single hop of the Via header.
type ViaHop struct {
	ProtoName    string
	ProtoVersion string
	Transport    string
	Host         string
	// Port is 0 when the sent-by has no port.
	Port   uint16
	Params Params
}

// RenderTo writes the hop, i.e. "SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds".
func (hop ViaHop) RenderTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(hop.ProtoName)
	cw.WriteString("/")
	cw.WriteString(hop.ProtoVersion)
	cw.WriteString("/")
	cw.WriteString(hop.Transport)
	cw.WriteString(" ")
	cw.WriteString(hop.Host)
	if hop.Port > 0 {
		cw.WriteString(":")
		cw.WriteString(strconv.FormatUint(uint64(hop.Port), 10))
	}
	cw.Call(hop.Params.RenderTo)
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the hop.
func (hop ViaHop) String() string { return renderStr(hop.RenderTo) }

// Equal compares protocol, transport and host case-insensitively, port and parameters exactly.
func (hop ViaHop) Equal(val any) bool {
	other, ok := eqHdr[ViaHop](val)
	if !ok {
		return false
	}
	return util.EqFold(hop.ProtoName, other.ProtoName) &&
		hop.ProtoVersion == other.ProtoVersion &&
		util.EqFold(hop.Transport, other.Transport) &&
		util.EqFold(hop.Host, other.Host) &&
		hop.Port == other.Port &&
		hop.Params.Equal(other.Params)
}

// IsValid checks whether the hop is syntactically valid.
func (hop ViaHop) IsValid() bool {
	return grammar.IsToken(hop.ProtoName) &&
		grammar.IsToken(hop.ProtoVersion) &&
		grammar.IsToken(hop.Transport) &&
		isViaHost(hop.Host) &&
		hop.Params.IsValid()
}

// IsZero checks whether the hop is empty.
func (hop ViaHop) IsZero() bool {
	return hop.ProtoName == "" && hop.ProtoVersion == "" && hop.Transport == "" &&
		hop.Host == "" && hop.Port == 0 && len(hop.Params) == 0
}

// Clone returns a copy of the hop.
func (hop ViaHop) Clone() ViaHop {
	hop.Params = hop.Params.Clone()
	return hop
}

// MarshalText implements [encoding.TextMarshaler].
func (hop ViaHop) MarshalText() ([]byte, error) {
	return []byte(hop.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (hop *ViaHop) UnmarshalText(data []byte) error {
	h, err := parseViaHop(string(data))
	*hop = h
	return errtrace.Wrap(err)
}

// Branch returns the branch parameter.
func (hop ViaHop) Branch() (string, bool) { return hop.Params.Get("branch") }

// Received returns the received parameter.
func (hop ViaHop) Received() (netip.Addr, bool) {
	v, ok := hop.Params.Get("received")
	if !ok {
		return netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(strings.Trim(v, "[]"))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr, true
}

// RPort returns the rport parameter.
// A flag rport without a value yields 0 and true.
func (hop ViaHop) RPort() (uint16, bool) {
	v, ok := hop.Params.Get("rport")
	if !ok {
		return 0, false
	}
	if v == "" {
		return 0, true
	}
	p, err := strconv.ParseUint(v, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(p), true
}

// MAddr returns the maddr parameter.
func (hop ViaHop) MAddr() (string, bool) { return hop.Params.Get("maddr") }

// TTL returns the ttl parameter.
func (hop ViaHop) TTL() (uint8, bool) {
	v, ok := hop.Params.Get("ttl")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

func isViaHost(host string) bool {
	if !grammar.IsHost(host) {
		return false
	}
	if host[0] == '[' {
		addr, err := netip.ParseAddr(host[1 : len(host)-1])
		return err == nil && addr.Is6()
	}
	return true
}

// parseViaHop parses "SIP / 2.0 / UDP host[:port] *(;param)", LWS around slashes is allowed.
func parseViaHop(s string) (ViaHop, error) {
	sent, rest, _ := grammar.Cut(grammar.TrimLWS(s), ';')
	parts := strings.SplitN(sent, "/", 3)
	if len(parts) != 3 {
		return ViaHop{}, errtrace.Wrap(newInvalidPartErr("sent-protocol in %q", s))
	}

	var hop ViaHop
	hop.ProtoName = grammar.TrimLWS(parts[0])
	hop.ProtoVersion = grammar.TrimLWS(parts[1])
	hop.Transport, sent = grammar.Token(grammar.TrimLWS(parts[2]))
	if !grammar.IsToken(hop.ProtoName) || !grammar.IsToken(hop.ProtoVersion) || hop.Transport == "" {
		return ViaHop{}, errtrace.Wrap(newInvalidPartErr("sent-protocol in %q", s))
	}

	sentBy := grammar.TrimLWS(sent)
	host, port := sentBy, ""
	if strings.HasPrefix(sentBy, "[") {
		if i := strings.IndexByte(sentBy, ']'); i >= 0 {
			host = sentBy[:i+1]
			if p, ok := strings.CutPrefix(sentBy[i+1:], ":"); ok {
				port = p
			} else if sentBy[i+1:] != "" {
				return ViaHop{}, errtrace.Wrap(newInvalidPartErr("sent-by %q", sentBy))
			}
		}
	} else if h, p, ok := strings.Cut(sentBy, ":"); ok {
		host, port = h, p
		if port == "" {
			return ViaHop{}, errtrace.Wrap(newInvalidPartErr("sent-by %q", sentBy))
		}
	}
	host, port = grammar.TrimLWS(host), grammar.TrimLWS(port)
	if !isViaHost(host) {
		return ViaHop{}, errtrace.Wrap(newInvalidPartErr("sent-by %q", sentBy))
	}
	hop.Host = host
	if port != "" {
		n, err := parseUint(port, 16)
		if err != nil {
			return ViaHop{}, errtrace.Wrap(newInvalidPartErr("sent-by %q", sentBy))
		}
		hop.Port = uint16(n)
	}

	ps, err := parseParams(rest)
	if err != nil {
		return ViaHop{}, errtrace.Wrap(err)
	}
	hop.Params = ps
	return hop, nil
}

func parseVia(value string) (Header, error) {
	list, err := parseList(value, parseViaHop)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Via(list), nil
}
