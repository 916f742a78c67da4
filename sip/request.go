package sip

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/types"
	"github.com/ghettovoice/sipmsg/internal/util"
	"github.com/ghettovoice/sipmsg/uri"
)

// Request is a SIP request message.
type Request struct {
	Method Method
	// URI is the Request-URI, it may be invalid for parsed messages, see [uri.URI.IsValid].
	URI     uri.URI
	Version Version
	Headers Headers
	Body    []byte
}

// NewRequest creates a SIP/2.0 request with the method and target.
func NewRequest(method Method, target uri.URI) *Request {
	return &Request{
		Method:  method,
		URI:     target,
		Version: Version20,
	}
}

func (*Request) message() {}

// MessageHeaders returns a pointer to the request headers.
func (req *Request) MessageHeaders() *Headers { return &req.Headers }

// MessageBody returns the request body.
func (req *Request) MessageBody() []byte { return req.Body }

// SetBody replaces the body and sets the Content-Length header to its length.
func (req *Request) SetBody(body []byte) {
	req.Body = body
	req.Headers.setContentLength(len(body))
}

// RenderTo writes the request in the wire format.
func (req *Request) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if req == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderMsg(w, req.renderStartLine, req.Headers, req.Body, opts))
}

func (req *Request) renderStartLine(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(string(req.Method))
	cw.WriteString(" ")
	if req.URI != nil {
		cw.WriteString(req.URI.PossiblyInvalidSpec())
	}
	cw.WriteString(" ")
	cw.WriteString(req.Version.String())
	return errtrace.Wrap2(cw.Result())
}

// Render returns the request in the wire format.
func (req *Request) Render(opts *RenderOptions) string {
	if req == nil {
		return ""
	}
	return renderMsgStr(req, opts)
}

// String returns the request line.
func (req *Request) String() string {
	if req == nil {
		return "<nil>"
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	req.renderStartLine(sb) //nolint:errcheck
	return sb.String()
}

// Format implements [fmt.Formatter].
func (req *Request) Format(f fmt.State, verb rune) {
	type hideMethods Request
	type Request hideMethods
	formatMsg(f, verb, req, (*Request)(req))
}

// LogValue implements [slog.LogValuer].
func (req *Request) LogValue() slog.Value {
	if req == nil {
		return slog.Value{}
	}
	attrs := make([]slog.Attr, 0, 7)
	attrs = append(attrs, slog.String("method", string(req.Method)), slog.Any("uri", req.URI))
	return slog.GroupValue(msgLogAttrs(req.Headers, attrs)...)
}

// Clone returns a deep copy of the request.
func (req *Request) Clone() Message {
	if req == nil {
		return nil
	}
	req2 := *req
	req2.URI = types.Clone[uri.URI](req.URI)
	req2.Headers = req.Headers.Clone()
	req2.Body = slices.Clone(req.Body)
	return &req2
}

// Equal compares the request with [Request] or *[Request].
func (req *Request) Equal(val any) bool {
	var other *Request
	switch v := val.(type) {
	case Request:
		other = &v
	case *Request:
		other = v
	default:
		return false
	}
	if req == other {
		return true
	} else if req == nil || other == nil {
		return false
	}
	return req.Method.Equal(other.Method) &&
		req.Version == other.Version &&
		types.IsEqual(req.URI, other.URI) &&
		req.Headers.Equal(other.Headers) &&
		slices.Equal(req.Body, other.Body)
}

// IsValid reports whether [Request.Validate] succeeds.
func (req *Request) IsValid() bool { return req.Validate() == nil }

var reqMandatoryKinds = []header.Kind{
	header.KindVia,
	header.KindFrom,
	header.KindTo,
	header.KindCallID,
	header.KindCSeq,
	header.KindMaxForwards,
}

// Validate checks the request line, the mandatory headers and the body length.
// The returned error wraps [ErrInvalidMessage].
func (req *Request) Validate() error {
	if req == nil {
		return errtrace.Wrap(NewInvalidArgumentError("nil request"))
	}

	var errs []error
	if !req.Method.IsValid() {
		errs = append(errs, errorutil.Errorf("invalid method %q", req.Method))
	}
	if !types.IsValid(req.URI) {
		errs = append(errs, errorutil.Errorf("invalid request URI %q", req.URI))
	}
	if !req.Version.IsValid() {
		errs = append(errs, errorutil.Errorf("unsupported version %q", req.Version))
	}
	errs = append(errs, validateMsg(req.Headers, req.Body, reqMandatoryKinds)...)
	if cseq, ok := req.Headers.CSeq(); ok && !cseq.Method.Equal(req.Method) {
		errs = append(errs, errorutil.Errorf("CSeq method %q does not match request method %q", cseq.Method, req.Method))
	}

	if len(errs) > 0 {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidMessage, errorutil.Join(errs...)))
	}
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (req *Request) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(marshalMsg(req)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (req *Request) UnmarshalJSON(data []byte) error {
	msg, err := unmarshalMsg(data)
	if err != nil {
		return errtrace.Wrap(err)
	}
	r, ok := AsRequest(msg)
	if !ok {
		return errtrace.Wrap(NewInvalidArgumentError("unexpected message %q", msg))
	}
	*req = *r
	return nil
}

var respCopyKinds = []header.Kind{
	header.KindVia,
	header.KindFrom,
	header.KindTo,
	header.KindCallID,
	header.KindCSeq,
	header.KindTimestamp,
}

// NewResponse creates a response to the request.
//
// Via, From, To, Call-ID, CSeq and Timestamp headers are copied in order,
// the body is empty with Content-Length 0.
// An empty reason is replaced with [StatusText] of the code.
func (req *Request) NewResponse(code StatusCode, reason string) (*Response, error) {
	if req == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("nil request"))
	}
	if !code.IsValid() {
		return nil, errtrace.Wrap(NewInvalidArgumentError("invalid status code %d", code))
	}
	if req.Method.Equal(MethodAck) {
		return nil, errtrace.Wrap(NewInvalidArgumentError("ACK request can not be answered"))
	}

	if reason == "" {
		reason = StatusText(code)
	}
	res := &Response{
		Version: req.Version,
		Status:  code,
		Reason:  reason,
		Headers: make(Headers, 0, len(respCopyKinds)+1),
	}
	for _, h := range req.Headers {
		if slices.Contains(respCopyKinds, h.Kind()) {
			res.Headers.Append(h.Clone())
		}
	}
	res.SetBody(nil)
	return res, nil
}
