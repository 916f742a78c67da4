package sip

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// renderMsg writes start line, headers, an empty line and the body.
func renderMsg(
	w io.Writer,
	startLine func(io.Writer) (int, error),
	hdrs Headers,
	body []byte,
	opts *RenderOptions,
) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(startLine)
	cw.WriteString("\r\n")
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(hdrs.RenderTo(w, opts)) })
	cw.WriteString("\r\n")
	cw.Write(body)
	return errtrace.Wrap2(cw.Result())
}

func renderMsgStr(msg Message, opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	msg.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// formatMsg implements [fmt.Formatter] for messages.
//   - %s prints the start line, %+s the whole message;
//   - %q and %+q print the same quoted.
func formatMsg(f fmt.State, verb rune, msg Message, goValue any) {
	switch verb {
	case 's':
		if f.Flag('+') {
			msg.RenderTo(f, nil) //nolint:errcheck
			return
		}
		io.WriteString(f, msg.String()) //nolint:errcheck
	case 'q':
		if f.Flag('+') {
			io.WriteString(f, strconv.Quote(msg.Render(nil))) //nolint:errcheck
			return
		}
		io.WriteString(f, strconv.Quote(msg.String())) //nolint:errcheck
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), goValue)
	}
}

// msgLogAttrs returns the dialog-identifying headers of the message as log attributes.
func msgLogAttrs(hdrs Headers, attrs []slog.Attr) []slog.Attr {
	if hop, ok := util.SeqFirst(hdrs.Via()); ok {
		attrs = append(attrs, slog.String("via", hop.String()))
	}
	if from, ok := hdrs.From(); ok {
		attrs = append(attrs, slog.Any("from", from))
	}
	if to, ok := hdrs.To(); ok {
		attrs = append(attrs, slog.Any("to", to))
	}
	if callID, ok := hdrs.CallID(); ok {
		attrs = append(attrs, slog.String("call_id", string(callID)))
	}
	if cseq, ok := hdrs.CSeq(); ok {
		attrs = append(attrs, slog.String("cseq", cseq.RenderValue()))
	}
	return attrs
}

// validateMsg checks headers and the body length of a message.
func validateMsg(hdrs Headers, body []byte, mandatory []header.Kind) []error {
	var errs []error
	for _, h := range hdrs {
		if !h.IsValid() {
			errs = append(errs, errorutil.Errorf("invalid header %q", h.Render(nil)))
		}
	}
	for _, k := range mandatory {
		if !hasKind(hdrs, k) {
			errs = append(errs, newMissHdrErr(k.CanonicName()))
		}
	}
	if cl, ok := hdrs.ContentLength(); ok && int(cl) != len(body) {
		errs = append(errs, errorutil.Errorf("content length mismatch: got %d, want %d", cl, len(body)))
	}
	return errs
}

func hasKind(hdrs Headers, k header.Kind) bool {
	for _, h := range hdrs {
		if h.Kind() == k {
			return true
		}
	}
	return false
}

// msgJSON is the JSON form of a message, the rendered wire text.
type msgJSON struct {
	Message string `json:"message"`
}

func marshalMsg(msg Message) ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(msgJSON{msg.Render(nil)}))
}

func unmarshalMsg(data []byte) (Message, error) {
	var mj msgJSON
	if err := json.Unmarshal(data, &mj); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(Parse([]byte(mj.Message), &ParseOptions{Policy: PolicyKeepInvalid}))
}
