package sip

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/textproto"
	"reflect"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/log"
	"github.com/ghettovoice/sipmsg/internal/util"
	"github.com/ghettovoice/sipmsg/uri"
)

// Policy defines how the parser treats header lines with malformed values.
// Unknown header names are never malformed, they are kept as [*header.Other].
type Policy uint8

const (
	// PolicyDropInvalid drops the line and continues, the default.
	PolicyDropInvalid Policy = iota
	// PolicyKeepInvalid keeps the line verbatim as [*header.Other].
	PolicyKeepInvalid
	// PolicyRejectInvalid rejects the whole message.
	PolicyRejectInvalid
)

func (p Policy) String() string {
	switch p {
	case PolicyDropInvalid:
		return "drop"
	case PolicyKeepInvalid:
		return "keep"
	case PolicyRejectInvalid:
		return "reject"
	default:
		return "Policy(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParseOptions configures message parsing.
// A nil *ParseOptions is valid and means defaults.
type ParseOptions struct {
	// Policy for header lines with malformed values, [PolicyDropInvalid] by default.
	Policy Policy
	// Logger receives debug records about dropped and kept header lines.
	Logger *slog.Logger
	// Metrics counts parsed messages and invalid header lines.
	Metrics *Metrics
	// HeaderParsers are custom parsers for headers the header package does not know,
	// keyed by the header name (case-insensitive).
	// They take precedence over parsers registered with [header.RegisterParser].
	HeaderParsers map[string]header.Parser
	// MaxMessageSize limits the size of a single message, zero means no limit.
	MaxMessageSize int
}

func (o *ParseOptions) policy() Policy {
	if o == nil {
		return PolicyDropInvalid
	}
	return o.Policy
}

func (o *ParseOptions) logger() *slog.Logger {
	if o == nil {
		return log.Noop
	}
	return log.Or(o.Logger)
}

func (o *ParseOptions) metrics() *Metrics {
	if o == nil {
		return nil
	}
	return o.Metrics
}

func (o *ParseOptions) maxSize() int {
	if o == nil || o.MaxMessageSize < 0 {
		return 0
	}
	return o.MaxMessageSize
}

func (o *ParseOptions) headerParser(name string) (header.Parser, bool) {
	if o == nil || len(o.HeaderParsers) == 0 {
		return nil, false
	}
	if p, ok := o.HeaderParsers[name]; ok {
		return p, p != nil
	}
	for n, p := range o.HeaderParsers {
		if util.EqFold(n, name) {
			return p, p != nil
		}
	}
	return nil, false
}

// ParseState is the stage of message parsing.
type ParseState int

const (
	ParseStateStart   ParseState = iota // parsing the start line
	ParseStateHeaders                   // parsing headers
	ParseStateBody                      // reading the body

	parseStateDone
)

func (s ParseState) String() string {
	switch s {
	case ParseStateStart:
		return "start"
	case ParseStateHeaders:
		return "headers"
	case ParseStateBody:
		return "body"
	case parseStateDone:
		return "done"
	default:
		return "ParseState(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseError is returned when a message can not be parsed.
//
// It contains the cause, the parsing state and the line that caused the error.
type ParseError struct {
	Err   error
	State ParseState
	Line  string
}

func (err *ParseError) Error() string {
	if err == nil {
		return "<nil>"
	}
	if err.Line == "" {
		return fmt.Sprintf("parse %s: %v", err.State, err.Err)
	}
	return fmt.Sprintf("parse %s %q: %v", err.State, util.Ellipsis(err.Line, 64), err.Err)
}

func (err *ParseError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Err
}

// Grammar reports whether the cause is a grammar error.
func (err *ParseError) Grammar() bool { return err != nil && errorutil.IsGrammarErr(err.Err) }

// Temporary reports whether the cause is a temporary I/O error.
func (err *ParseError) Temporary() bool { return err != nil && errorutil.IsTemporaryErr(err.Err) }

// Parse parses a single message from b, i.e. a datagram payload.
//
// Without a Content-Length header the body is the rest of b.
// Anything after Content-Length bytes of the body is ignored.
// A malformed start line returns a nil message and [*ParseError] wrapping [ErrInvalidStartLine].
// Malformed header values are handled according to [ParseOptions.Policy].
func Parse(b []byte, opts *ParseOptions) (Message, error) {
	if limit := opts.maxSize(); limit > 0 && len(b) > limit {
		opts.metrics().incOversized()
		return nil, errtrace.Wrap(&ParseError{
			Err:   errorutil.NewWrapperError(ErrMessageTooLarge, "got %d bytes, limit is %d", len(b), limit),
			State: ParseStateStart,
		})
	}

	r := util.GetBytesReader(b)
	br := util.GetBufReader(r)
	defer func() {
		util.FreeBufReader(br)
		util.FreeBytesReader(r)
	}()

	return errtrace.Wrap2(newMsgReader(br, opts, true).read(context.Background()))
}

const (
	evtStartLine  = "start_line"
	evtHeader     = "header"
	evtHeadersEnd = "headers_end"
	evtBody       = "body"
)

var strType = reflect.TypeOf("")

// msgReader reads one message.
// Its state machine runs start → headers → body → done,
// the read loop fires events with the lines it reads.
type msgReader struct {
	br     *bufio.Reader
	tr     *textproto.Reader
	opts   *ParseOptions
	log    *slog.Logger
	packet bool

	fsm  *stateless.StateMachine
	msg  Message
	size int
	// bodyLen is the Content-Length value, -1 for a datagram without it
	bodyLen int
	body    []byte
	// err is a failure that still lets the message be framed,
	// the message is read up to its end and then discarded.
	err  error
	done bool
}

func newMsgReader(br *bufio.Reader, opts *ParseOptions, packet bool) *msgReader {
	p := &msgReader{
		br:     br,
		tr:     textproto.NewReader(br),
		opts:   opts,
		log:    opts.logger(),
		packet: packet,
	}
	p.initFSM()
	return p
}

func (p *msgReader) initFSM() {
	p.fsm = stateless.NewStateMachine(ParseStateStart)
	p.fsm.SetTriggerParameters(evtStartLine, strType)
	p.fsm.SetTriggerParameters(evtHeader, strType)

	p.fsm.Configure(ParseStateStart).
		Permit(evtStartLine, ParseStateHeaders)

	p.fsm.Configure(ParseStateHeaders).
		OnEntryFrom(evtStartLine, p.actStartLine).
		InternalTransition(evtHeader, p.actHeader).
		Permit(evtHeadersEnd, ParseStateBody)

	p.fsm.Configure(ParseStateBody).
		OnEntry(p.actBodySize).
		Permit(evtBody, parseStateDone)

	p.fsm.Configure(parseStateDone).
		OnEntry(p.actDone)
}

// read reads the next message.
// It returns [io.EOF] when the input ends before a start line
// and a nil message with [*ParseError] on failure.
// After a recoverable failure, see [msgReader.recoverable], the input is positioned
// at the start of the next message.
func (p *msgReader) read(ctx context.Context) (Message, error) {
	line, err := p.readStartLine()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := p.fsm.FireCtx(ctx, evtStartLine, line); err != nil {
		return nil, errtrace.Wrap(err)
	}

	for {
		line, err := p.tr.ReadContinuedLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if p.packet && line == "" {
					// the datagram ends right after the headers
					break
				}
				err = io.ErrUnexpectedEOF
			}
			return nil, errtrace.Wrap(&ParseError{Err: err, State: ParseStateHeaders, Line: line})
		}
		if line == "" {
			break
		}
		if err := p.fsm.FireCtx(ctx, evtHeader, line); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}

	if err := p.fsm.FireCtx(ctx, evtHeadersEnd); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := p.readBody(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := p.fsm.FireCtx(ctx, evtBody); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if p.err != nil {
		return nil, errtrace.Wrap(p.err)
	}
	return p.msg, nil
}

// recoverable reports whether the last failure left the input at the start of the next message.
func (p *msgReader) recoverable() bool { return p.done && p.err != nil }

// readStartLine skips empty keep-alive lines and returns the first non-empty one.
func (p *msgReader) readStartLine() (string, error) {
	for {
		line, err := p.tr.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && line == "" {
				if p.packet {
					return "", errtrace.Wrap(&ParseError{
						Err:   errorutil.NewWrapperError(ErrInvalidStartLine, "empty input"),
						State: ParseStateStart,
					})
				}
				return "", errtrace.Wrap(io.EOF)
			}
			return "", errtrace.Wrap(&ParseError{Err: err, State: ParseStateStart, Line: line})
		}
		if line = strings.TrimSpace(line); line != "" {
			p.size += len(line) + 2
			return line, nil
		}
	}
}

func (p *msgReader) checkSize(state ParseState, n int) error {
	if limit := p.opts.maxSize(); limit > 0 && p.size+n > limit {
		p.opts.metrics().incOversized()
		return errtrace.Wrap(&ParseError{
			Err:   errorutil.NewWrapperError(ErrMessageTooLarge, "limit is %d bytes", limit),
			State: state,
		})
	}
	return nil
}

func (p *msgReader) actStartLine(_ context.Context, args ...any) error {
	line := args[0].(string) //nolint:forcetypeassert
	msg, err := parseStartLine(line)
	if err != nil {
		p.opts.metrics().incStartLine()
		p.log.Debug("reject message with invalid start line", slog.Any("line", log.StringValue(line)), slog.Any("error", err))
		p.err = &ParseError{Err: err, State: ParseStateStart, Line: line}
		// headers are still read to find the end of the message
		msg = new(Request)
	}
	p.msg = msg
	return errtrace.Wrap(p.checkSize(ParseStateStart, 0))
}

func (p *msgReader) actHeader(_ context.Context, args ...any) error {
	line := args[0].(string) //nolint:forcetypeassert
	if err := p.checkSize(ParseStateHeaders, len(line)+2); err != nil {
		return errtrace.Wrap(err)
	}
	p.size += len(line) + 2

	hdr, err := p.parseHeader(line)
	if err == nil {
		p.msg.MessageHeaders().Append(hdr)
		return nil
	}

	switch p.opts.policy() {
	case PolicyRejectInvalid:
		p.opts.metrics().incHeader(line, PolicyRejectInvalid)
		p.log.Debug("reject message with invalid header", slog.Any("line", log.StringValue(line)), slog.Any("error", err))
		if p.err == nil {
			p.err = &ParseError{
				Err:   errorutil.NewWrapperError(ErrInvalidMessage, err),
				State: ParseStateHeaders,
				Line:  line,
			}
		}
		return nil
	case PolicyKeepInvalid:
		if name, value, ok := strings.Cut(line, ":"); ok && grammar.IsToken(grammar.TrimLWS(name)) {
			p.opts.metrics().incHeader(line, PolicyKeepInvalid)
			p.log.Debug("keep invalid header", slog.Any("line", log.StringValue(line)), slog.Any("error", err))
			p.msg.MessageHeaders().Append(&header.Other{Name: grammar.TrimLWS(name), Value: grammar.TrimLWS(value)})
			return nil
		}
		fallthrough
	default:
		p.opts.metrics().incHeader(line, PolicyDropInvalid)
		p.log.Debug("drop invalid header", slog.Any("line", log.StringValue(line)), slog.Any("error", err))
		return nil
	}
}

func (p *msgReader) parseHeader(line string) (header.Header, error) {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(header.ErrInvalidHeader, "missing colon"))
	}
	name = grammar.TrimLWS(name)
	if header.KindOf(name) == header.KindOther {
		if prs, ok := p.opts.headerParser(name); ok {
			if hdr := prs(name, grammar.TrimLWS(value)); hdr != nil {
				return hdr, nil
			}
		}
	}
	return errtrace.Wrap2(header.Parse(line))
}

func (p *msgReader) actBodySize(_ context.Context, _ ...any) error {
	cl, ok := p.msg.MessageHeaders().ContentLength()
	switch {
	case ok:
		if uint64(cl) > math.MaxInt {
			return errtrace.Wrap(&ParseError{
				Err:   errorutil.NewWrapperError(ErrInvalidMessage, "Content-Length %d is out of range", uint64(cl)),
				State: ParseStateBody,
			})
		}
		if err := p.checkSize(ParseStateBody, int(cl)); err != nil {
			return errtrace.Wrap(err)
		}
		p.bodyLen = int(cl)
	case p.packet:
		p.bodyLen = -1
	default:
		return errtrace.Wrap(&ParseError{
			Err:   errorutil.NewWrapperError(ErrInvalidMessage, newMissHdrErr(header.KindContentLength.CanonicName())),
			State: ParseStateBody,
		})
	}
	return nil
}

func (p *msgReader) readBody() error {
	if p.packet {
		// the datagram is already in memory, the body is its rest
		b, err := io.ReadAll(p.br)
		if err != nil {
			return errtrace.Wrap(&ParseError{Err: err, State: ParseStateBody})
		}
		if p.bodyLen < 0 {
			if err := p.checkSize(ParseStateBody, len(b)); err != nil {
				return errtrace.Wrap(err)
			}
			p.body = b
			return nil
		}
		if len(b) < p.bodyLen {
			return errtrace.Wrap(&ParseError{Err: io.ErrUnexpectedEOF, State: ParseStateBody, Line: string(b)})
		}
		p.body = b[:p.bodyLen]
		return nil
	}

	if p.bodyLen == 0 {
		return nil
	}
	// the buffer grows with the data actually read, not with the declared length
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, p.br, int64(p.bodyLen)); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return errtrace.Wrap(&ParseError{Err: err, State: ParseStateBody, Line: buf.String()})
	}
	p.body = buf.Bytes()
	return nil
}

func (p *msgReader) actDone(_ context.Context, _ ...any) error {
	p.done = true
	if p.err != nil {
		return nil
	}
	if len(p.body) > 0 {
		switch m := p.msg.(type) {
		case *Request:
			m.Body = p.body
		case *Response:
			m.Body = p.body
		}
	}
	p.opts.metrics().incMessage(p.msg)
	return nil
}

// parseStartLine parses a request line or a status line.
func parseStartLine(line string) (Message, error) {
	if isStatusLine(line) {
		return errtrace.Wrap2(parseStatusLine(line))
	}
	return errtrace.Wrap2(parseRequestLine(line))
}

// isStatusLine reports whether the "SIP" literal starts at one of the offsets 0 through 4,
// tolerating junk before the version.
func isStatusLine(line string) bool {
	for i := 0; i <= 4 && i+3 <= len(line); i++ {
		if isSIPLiteral(line[i:]) {
			return true
		}
	}
	return false
}

func parseRequestLine(line string) (*Request, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return nil, errtrace.Wrap(newStartLineErr("request line %q", line))
	}
	if !grammar.IsToken(parts[0]) {
		return nil, errtrace.Wrap(newStartLineErr("method %q", parts[0]))
	}
	if ver, ok := parseVersion(parts[2]); !ok || ver != Version20 {
		return nil, errtrace.Wrap(newStartLineErr("version %q", parts[2]))
	}
	return &Request{
		Method:  ParseMethod(parts[0]),
		URI:     uri.New(parts[1]),
		Version: Version20,
	}, nil
}

func parseStatusLine(line string) (*Response, error) {
	ver, rest, _ := strings.Cut(line, " ")
	if _, ok := parseVersion(ver); !ok {
		return nil, errtrace.Wrap(newStartLineErr("version %q", ver))
	}
	rest = strings.TrimLeft(rest, " \t")
	code, reason, _ := strings.Cut(rest, " ")
	if len(code) != 3 || !isDigit(code[0]) || !isDigit(code[1]) || !isDigit(code[2]) || code[0] == '0' {
		return nil, errtrace.Wrap(newStartLineErr("status code %q", code))
	}
	n, _ := strconv.Atoi(code)
	return &Response{
		Version: Version20,
		Status:  StatusCode(n),
		Reason:  strings.TrimSpace(reason),
	}, nil
}
