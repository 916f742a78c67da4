package sip

import (
	"context"
	"errors"
	"io"
	"iter"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/util"
)

// ParseStream returns an iterator over messages read from a byte stream, i.e. a TCP connection.
//
// Messages are framed by the Content-Length header, a message without it ends the stream with an error.
// Empty lines between messages are skipped.
//
// Each failure is yielded as a nil message and [*ParseError].
// Messages rejected for a malformed start line or by [PolicyRejectInvalid] are read up to their end,
// so the iteration goes on with the next message.
// Any other failure, i.e. an I/O error, a truncated or oversized message, ends the iteration.
// The iteration stops at the end of input and when ctx is done,
// ctx is checked between messages, the reads themselves are not interrupted.
//
// Example:
//
//	for msg, err := range sip.ParseStream(ctx, conn, nil) {
//		if err != nil {
//			log.Println(err)
//			continue
//		}
//		// handle msg
//	}
func ParseStream(ctx context.Context, r io.Reader, opts *ParseOptions) iter.Seq2[Message, error] {
	return func(yield func(Message, error) bool) {
		err := readStream(ctx, r, opts, func(msg Message, err error) bool {
			return yield(msg, err)
		})
		if err != nil {
			yield(nil, err)
		}
	}
}

// readStream passes each message or recoverable failure to fn until fn returns false.
// It returns nil at the end of input or when fn stops the reading,
// otherwise the failure that ended the stream.
func readStream(ctx context.Context, r io.Reader, opts *ParseOptions, fn func(Message, error) bool) error {
	br := util.GetBufReader(r)
	defer util.FreeBufReader(br)

	for {
		if err := ctx.Err(); err != nil {
			return errtrace.Wrap(err)
		}

		p := newMsgReader(br, opts, false)
		msg, err := p.read(ctx)
		switch {
		case err == nil:
			if !fn(msg, nil) {
				return nil
			}
		case errors.Is(err, io.EOF):
			return nil
		case p.recoverable():
			if !fn(nil, errtrace.Wrap(err)) {
				return nil
			}
		default:
			return errtrace.Wrap(err)
		}
	}
}
