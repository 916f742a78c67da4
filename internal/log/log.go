// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/sipmsg/internal/constraints"
	"github.com/ghettovoice/sipmsg/internal/types"
)

// headerValue is satisfied by every header.Header.
type headerValue interface {
	Render(opts *types.RenderOptions) string
	RenderValue() string
}

// uriValue is satisfied by every uri.URI.
type uriValue interface {
	PossiblyInvalidSpec() string
	IsValid() bool
}

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(h headerValue) slog.Value {
		return slog.StringValue(h.Render(nil))
	}),
	slogformatter.FormatByType(func(u uriValue) slog.Value {
		if !u.IsValid() {
			return slog.GroupValue(
				slog.String("spec", u.PossiblyInvalidSpec()),
				slog.Bool("valid", false),
			)
		}
		return slog.StringValue(u.PossiblyInvalidSpec())
	}),
)

// Def is a default logger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stderr, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stderr, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
// Used for raw wire chunks so that they are only copied when the record is enabled.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }

// Or returns l, or Noop when l is nil.
func Or(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Noop
	}
	return l
}
