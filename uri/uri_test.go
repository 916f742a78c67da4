package uri_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/uri"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input      string
		wantType   string
		wantValid  bool
		wantSpec   string
		wantScheme string
	}{
		{"sip:alice@atlanta.com", "sip", true, "sip:alice@atlanta.com", "sip"},
		{"SIPS:alice@atlanta.com", "sip", true, "sips:alice@atlanta.com", "sips"},
		{"tel:+1234", "tel", true, "tel:+1234", "tel"},
		{"http://www.example.com/alice/photo.jpg", "any", true, "http://www.example.com/alice/photo.jpg", "http"},
		{"urn:service:sos", "any", true, "urn:service:sos", "urn"},
		{"*", "any", false, "", ""},
		{"sip:", "sip", false, "", ""},
		{"", "any", false, "", ""},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			u := uri.New(c.input)
			var typ string
			switch u.(type) {
			case uri.SIP:
				typ = "sip"
			case uri.Tel:
				typ = "tel"
			case uri.Any:
				typ = "any"
			}
			if typ != c.wantType {
				t.Errorf("uri.New(%q) type = %s, want %s", c.input, typ, c.wantType)
			}
			if got := u.IsValid(); got != c.wantValid {
				t.Errorf("uri.New(%q).IsValid() = %v, want %v", c.input, got, c.wantValid)
			}
			if got := u.Spec(); got != c.wantSpec {
				t.Errorf("uri.New(%q).Spec() = %q, want %q", c.input, got, c.wantSpec)
			}
			if got := u.Scheme(); got != c.wantScheme {
				t.Errorf("uri.New(%q).Scheme() = %q, want %q", c.input, got, c.wantScheme)
			}
			if got, want := u.PossiblyInvalidSpec(), c.wantSpec; c.wantValid && got != want {
				t.Errorf("uri.New(%q).PossiblyInvalidSpec() = %q, want %q", c.input, got, want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		wantErr error
	}{
		{"sip:bob@biloxi.com", nil},
		{"tel:+1234", nil},
		{"http://example.com", nil},
		{"*", uri.ErrInvalidURI},
		{"sip:bob@", uri.ErrInvalidURI},
		{"tel:", uri.ErrInvalidURI},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			u, err := uri.Parse(c.input)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.input, err, c.wantErr, diff)
			}
			if err == nil && u == nil {
				t.Errorf("uri.Parse(%q) = nil, want URI", c.input)
			}
		})
	}
}

func TestFromURL(t *testing.T) {
	t.Parallel()

	pu, _ := url.Parse("sip:alice@atlanta.com;transport=tcp")
	if got, want := uri.FromURL(pu).Spec(), "sip:alice@atlanta.com;transport=tcp"; got != want {
		t.Errorf("uri.FromURL() = %q, want %q", got, want)
	}
	if uri.FromURL(nil).IsValid() {
		t.Error("uri.FromURL(nil) must be invalid")
	}
}

func TestAny(t *testing.T) {
	t.Parallel()

	u := uri.NewAny("HTTP://www.example.com/sounds/moo.wav")
	if !u.IsValid() {
		t.Fatal("u.IsValid() = false, want true")
	}
	if got, want := u.Spec(), "http://www.example.com/sounds/moo.wav"; got != want {
		t.Errorf("u.Spec() = %q, want %q", got, want)
	}
	cu := u.Clone()
	if !cu.Equal(u) {
		t.Errorf("u.Clone() = %v, want %v", cu, u)
	}
	if got := u.URL().Host; got != "www.example.com" {
		t.Errorf("u.URL().Host = %q, want %q", got, "www.example.com")
	}
	if uri.NewAny("not a uri").IsValid() {
		t.Error("uri.NewAny(\"not a uri\").IsValid() = true, want false")
	}
}
