package sip

//go:generate go tool mockgen -typed -destination=mock_handler_test.go -package=sip_test . Handler

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/log"
)

// Handler consumes parsed messages.
// Dialog, transaction and authentication layers implement it.
type Handler interface {
	HandleRequest(ctx context.Context, req *Request)
	HandleResponse(ctx context.Context, res *Response)
}

// HandlerFunc adapts a function handling both kinds of messages to [Handler].
type HandlerFunc func(ctx context.Context, msg Message)

func (fn HandlerFunc) HandleRequest(ctx context.Context, req *Request) { fn(ctx, req) }

func (fn HandlerFunc) HandleResponse(ctx context.Context, res *Response) { fn(ctx, res) }

// Dispatcher reads messages from a stream and routes them to the handler.
type Dispatcher struct {
	Handler Handler
	// ParseOptions are used to parse each message, nil means defaults.
	ParseOptions *ParseOptions
	// Logger receives records about skipped messages, [log.Noop] when nil.
	Logger *slog.Logger
	// OnError is called for each message skipped due to a parse error, optional.
	OnError func(ctx context.Context, err error)
	// Validate makes the dispatcher skip messages failing [Message.Validate].
	Validate bool
}

func (d *Dispatcher) logger() *slog.Logger { return log.Or(d.Logger) }

// Serve reads messages from r until the end of input and passes them to the handler
// in the order they were read.
//
// Messages that can not be parsed are skipped, reported to OnError and logged.
// Serve returns nil at the end of input, the context error when ctx is done
// or the failure that made the stream unreadable.
func (d *Dispatcher) Serve(ctx context.Context, r io.Reader) error {
	if d == nil || d.Handler == nil {
		return errtrace.Wrap(NewInvalidArgumentError("nil handler"))
	}
	err := readStream(ctx, r, d.ParseOptions, func(msg Message, err error) bool {
		if err != nil {
			d.skip(ctx, err)
			return true
		}
		d.Dispatch(ctx, msg)
		return true
	})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		d.logger().LogAttrs(ctx, slog.LevelWarn, "stop serving", slog.Any("error", log.FmtValue(err, false)))
	}
	return errtrace.Wrap(err)
}

// Dispatch passes a single message to the handler.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) {
	if d.Validate {
		if err := msg.Validate(); err != nil {
			d.skip(ctx, err)
			return
		}
	}

	switch m := msg.(type) {
	case *Request:
		d.logger().LogAttrs(ctx, slog.LevelDebug, "dispatch request", slog.Any("request", m))
		d.Handler.HandleRequest(ctx, m)
	case *Response:
		d.logger().LogAttrs(ctx, slog.LevelDebug, "dispatch response", slog.Any("response", m))
		d.Handler.HandleResponse(ctx, m)
	}
}

func (d *Dispatcher) skip(ctx context.Context, err error) {
	d.logger().LogAttrs(ctx, slog.LevelDebug, "skip message", slog.Any("error", err))
	if d.OnError != nil {
		d.OnError(ctx, err)
	}
}
