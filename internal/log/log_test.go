package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/sipmsg/internal/types"
)

type fakeHdr string

func (h fakeHdr) Render(*types.RenderOptions) string { return "X-Fake: " + string(h) }

func (h fakeHdr) RenderValue() string { return string(h) }

type fakeURI struct {
	spec  string
	valid bool
}

func (u fakeURI) PossiblyInvalidSpec() string { return u.spec }

func (u fakeURI) IsValid() bool { return u.valid }

func TestFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(newHandler(slog.NewJSONHandler(&buf, nil)))
	l.Info("test",
		slog.Any("hdr", fakeHdr("abc")),
		slog.Any("uri", fakeURI{"sip:bob@biloxi.com", true}),
		slog.Any("bad_uri", fakeURI{"sip:bob@[", false}),
		slog.Any("error", errors.New("boom")),
		slog.Any("raw", StringValue([]byte("INVITE"))),
	)

	for _, want := range []string{
		`"hdr":"X-Fake: abc"`,
		`"uri":"sip:bob@biloxi.com"`,
		`"bad_uri":{"spec":"sip:bob@[","valid":false}`,
		`boom`,
		`"raw":"INVITE"`,
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output %q does not contain %q", buf.String(), want)
		}
	}
}

func TestLoggers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if Noop.Enabled(ctx, slog.LevelError) {
		t.Errorf("Noop.Enabled() = true, want false")
	}
	if Or(nil) != Noop {
		t.Errorf("Or(nil) != Noop")
	}
	if Or(Def) != Def {
		t.Errorf("Or(Def) != Def")
	}
	if !Def.Enabled(ctx, slog.LevelDebug) || !Dev.Enabled(ctx, slog.LevelDebug) {
		t.Errorf("Def and Dev must log debug records")
	}
	if got := FmtValue(struct{ A int }{1}, false).LogValue().String(); got != "{A:1}" {
		t.Errorf("FmtValue().LogValue() = %q, want %q", got, "{A:1}")
	}
}
