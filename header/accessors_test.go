package header_test

import (
	"testing"
	"time"

	"github.com/ghettovoice/sipmsg/header"
)

func TestDurations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		get   func(header.Header) time.Duration
		want  time.Duration
	}{
		{
			"expires",
			"Expires: 7200",
			func(h header.Header) time.Duration { return header.As[header.Expires](h).Duration() },
			2 * time.Hour,
		},
		{
			"min expires",
			"Min-Expires: 60",
			func(h header.Header) time.Duration { return header.As[header.MinExpires](h).Duration() },
			time.Minute,
		},
		{
			"session expires",
			"x: 4000;refresher=uac",
			func(h header.Header) time.Duration { return header.As[*header.SessionExpires](h).Duration() },
			4000 * time.Second,
		},
		{
			"min se",
			"Min-SE: 90",
			func(h header.Header) time.Duration { return header.As[*header.MinSE](h).Duration() },
			90 * time.Second,
		},
		{
			"retry after",
			"Retry-After: 18000;duration=3600",
			func(h header.Header) time.Duration {
				d, _ := header.As[*header.RetryAfter](h).Duration()
				return d
			},
			time.Hour,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr, err := header.Parse(c.input)
			if err != nil {
				t.Fatalf("header.Parse(%q) error = %v, want nil", c.input, err)
			}
			if got := c.get(hdr); got != c.want {
				t.Errorf("duration = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSessionExpires_Refresher(t *testing.T) {
	t.Parallel()

	hdr := header.As[*header.SessionExpires](mustParse(t, "Session-Expires: 4000;refresher=uac"))
	if v, ok := hdr.Refresher(); !ok || v != "uac" {
		t.Errorf("hdr.Refresher() = (%q, %v), want (%q, true)", v, ok, "uac")
	}
}

func TestRetryAfter_Comment(t *testing.T) {
	t.Parallel()

	hdr := header.As[*header.RetryAfter](mustParse(t, "Retry-After: 18000 (I'm in a meeting) ;duration=3600"))
	if hdr.Delay != 5*time.Hour {
		t.Errorf("hdr.Delay = %v, want %v", hdr.Delay, 5*time.Hour)
	}
	if want := "I'm in a meeting"; hdr.Comment != want {
		t.Errorf("hdr.Comment = %q, want %q", hdr.Comment, want)
	}
	if want := "18000 (I'm in a meeting);duration=3600"; hdr.RenderValue() != want {
		t.Errorf("hdr.RenderValue() = %q, want %q", hdr.RenderValue(), want)
	}
}

func TestDate(t *testing.T) {
	t.Parallel()

	hdr := header.As[*header.Date](mustParse(t, "Date: Sat, 13 Nov 2010 23:29:00 GMT"))
	want := time.Date(2010, time.November, 13, 23, 29, 0, 0, time.UTC)
	if !hdr.Time.Equal(want) {
		t.Errorf("hdr.Time = %v, want %v", hdr.Time, want)
	}

	built := &header.Date{Time: want.In(time.FixedZone("EST", -5*3600))}
	if got := built.RenderValue(); got != "Sat, 13 Nov 2010 23:29:00 GMT" {
		t.Errorf("built.RenderValue() = %q, want %q", got, "Sat, 13 Nov 2010 23:29:00 GMT")
	}
}

func TestCSeq(t *testing.T) {
	t.Parallel()

	hdr := header.As[*header.CSeq](mustParse(t, "CSeq:  4711   INVITE"))
	if hdr.SeqNum != 4711 || hdr.Method != "INVITE" {
		t.Errorf("hdr = %+v, want {4711 INVITE}", *hdr)
	}
	if got := hdr.Render(nil); got != "CSeq: 4711 INVITE" {
		t.Errorf("hdr.Render(nil) = %q, want %q", got, "CSeq: 4711 INVITE")
	}
}

func mustParse(t *testing.T, s string) header.Header {
	t.Helper()

	hdr, err := header.Parse(s)
	if err != nil {
		t.Fatalf("header.Parse(%q) error = %v, want nil", s, err)
	}
	return hdr
}
