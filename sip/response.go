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
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Response is a SIP response message.
type Response struct {
	Version Version
	Status  StatusCode
	// Reason is the reason phrase, it may be empty.
	Reason  string
	Headers Headers
	Body    []byte
}

// NewResponse creates a SIP/2.0 response.
// An empty reason is replaced with [StatusText] of the code.
func NewResponse(code StatusCode, reason string) *Response {
	if reason == "" {
		reason = StatusText(code)
	}
	return &Response{
		Version: Version20,
		Status:  code,
		Reason:  reason,
	}
}

func (*Response) message() {}

// MessageHeaders returns a pointer to the response headers.
func (res *Response) MessageHeaders() *Headers { return &res.Headers }

// MessageBody returns the response body.
func (res *Response) MessageBody() []byte { return res.Body }

// SetBody replaces the body and sets the Content-Length header to its length.
func (res *Response) SetBody(body []byte) {
	res.Body = body
	res.Headers.setContentLength(len(body))
}

// RenderTo writes the response in the wire format.
func (res *Response) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if res == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderMsg(w, res.renderStartLine, res.Headers, res.Body, opts))
}

func (res *Response) renderStartLine(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(res.Version.String())
	cw.WriteString(" ")
	cw.WriteString(fmt.Sprintf("%03d", res.Status))
	cw.WriteString(" ")
	cw.WriteString(res.Reason)
	return errtrace.Wrap2(cw.Result())
}

// Render returns the response in the wire format.
func (res *Response) Render(opts *RenderOptions) string {
	if res == nil {
		return ""
	}
	return renderMsgStr(res, opts)
}

// String returns the status line.
func (res *Response) String() string {
	if res == nil {
		return "<nil>"
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	res.renderStartLine(sb) //nolint:errcheck
	return sb.String()
}

// Format implements [fmt.Formatter].
func (res *Response) Format(f fmt.State, verb rune) {
	type hideMethods Response
	type Response hideMethods
	formatMsg(f, verb, res, (*Response)(res))
}

// LogValue implements [slog.LogValuer].
func (res *Response) LogValue() slog.Value {
	if res == nil {
		return slog.Value{}
	}
	attrs := make([]slog.Attr, 0, 7)
	attrs = append(attrs, slog.Int("status", int(res.Status)), slog.String("reason", res.Reason))
	return slog.GroupValue(msgLogAttrs(res.Headers, attrs)...)
}

// Clone returns a deep copy of the response.
func (res *Response) Clone() Message {
	if res == nil {
		return nil
	}
	res2 := *res
	res2.Headers = res.Headers.Clone()
	res2.Body = slices.Clone(res.Body)
	return &res2
}

// Equal compares the response with [Response] or *[Response].
// Reason phrases are not compared.
func (res *Response) Equal(val any) bool {
	var other *Response
	switch v := val.(type) {
	case Response:
		other = &v
	case *Response:
		other = v
	default:
		return false
	}
	if res == other {
		return true
	} else if res == nil || other == nil {
		return false
	}
	return res.Version == other.Version &&
		res.Status == other.Status &&
		res.Headers.Equal(other.Headers) &&
		slices.Equal(res.Body, other.Body)
}

// IsValid reports whether [Response.Validate] succeeds.
func (res *Response) IsValid() bool { return res.Validate() == nil }

var resMandatoryKinds = []header.Kind{
	header.KindVia,
	header.KindFrom,
	header.KindTo,
	header.KindCallID,
	header.KindCSeq,
}

// Validate checks the status line, the mandatory headers and the body length.
// The returned error wraps [ErrInvalidMessage].
func (res *Response) Validate() error {
	if res == nil {
		return errtrace.Wrap(NewInvalidArgumentError("nil response"))
	}

	var errs []error
	if !res.Status.IsValid() {
		errs = append(errs, errorutil.Errorf("invalid status code %d", res.Status))
	}
	if !res.Version.IsValid() {
		errs = append(errs, errorutil.Errorf("unsupported version %q", res.Version))
	}
	errs = append(errs, validateMsg(res.Headers, res.Body, resMandatoryKinds)...)

	if len(errs) > 0 {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidMessage, errorutil.Join(errs...)))
	}
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (res *Response) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(marshalMsg(res)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (res *Response) UnmarshalJSON(data []byte) error {
	msg, err := unmarshalMsg(data)
	if err != nil {
		return errtrace.Wrap(err)
	}
	r, ok := AsResponse(msg)
	if !ok {
		return errtrace.Wrap(NewInvalidArgumentError("unexpected message %q", msg))
	}
	*res = *r
	return nil
}
