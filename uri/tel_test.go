package uri_test

import (
	"testing"

	"github.com/ghettovoice/sipmsg/uri"
)

func TestNewTel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input      string
		valid      bool
		subscriber string
		params     string
	}{
		{"tel:+358-555-1234567;pOstd=pP2;isUb=1411", true, "+358-555-1234567", ";pOstd=pP2;isUb=1411"},
		{"tel:+358 (555) 1234567;pOstd=pP2;isUb=1411", true, "+358%20(555)%201234567", ";pOstd=pP2;isUb=1411"},
		{"TEL:7042;phone-context=example.com", true, "7042", ";phone-context=example.com"},
		{"tel:+1234", true, "+1234", ""},
		{"tel:;isub=1", false, "", ""},
		{"tel:", false, "", ""},
		{"sip:user@sip.domain.com", false, "", ""},
		{"*", false, "", ""},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			u := uri.NewTel(c.input)
			if got := u.IsValid(); got != c.valid {
				t.Fatalf("uri.NewTel(%q).IsValid() = %v, want %v", c.input, got, c.valid)
			}
			if !c.valid {
				if u.Spec() != "" {
					t.Errorf("u.Spec() = %q, want \"\"", u.Spec())
				}
				return
			}
			if got := u.Scheme(); got != "tel" {
				t.Errorf("u.Scheme() = %q, want \"tel\"", got)
			}
			if got := u.Subscriber(); got != c.subscriber {
				t.Errorf("u.Subscriber() = %q, want %q", got, c.subscriber)
			}
			if got := u.HasParameters(); got != (c.params != "") {
				t.Errorf("u.HasParameters() = %v, want %v", got, c.params != "")
			}
			if got := u.Parameters(); got != c.params {
				t.Errorf("u.Parameters() = %q, want %q", got, c.params)
			}
			if got := uri.NewTel(u.Spec()).Spec(); got != u.Spec() {
				t.Errorf("uri.NewTel(%q).Spec() = %q, want fixed point", u.Spec(), got)
			}
		})
	}
}

func TestTel_Param(t *testing.T) {
	t.Parallel()

	u := uri.NewTel("tel:+358-555-1234567;pOstd=pP2;isUb=1411")
	if v, ok := u.Param("postd"); !ok || v != "pP2" {
		t.Errorf("u.Param(\"postd\") = (%q, %v), want (\"pP2\", true)", v, ok)
	}
	if v, ok := u.Param("ext"); ok {
		t.Errorf("u.Param(\"ext\") = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestTel_NumberKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input  string
		global bool
		local  bool
	}{
		{"tel:+1-201-555-0123", true, false},
		{"tel:+358-555-1234567;postd=pp22", true, false},
		{"tel:7042;phone-context=example.com", false, true},
		{"tel:*69;phone-context=example.com", false, true},
		{"tel:+358 (555) 1234567", false, false},
		{"tel:+", false, false},
		{"sip:alice@atlanta.com", false, false},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			u := uri.NewTel(c.input)
			if got := u.IsGlobal(); got != c.global {
				t.Errorf("uri.NewTel(%q).IsGlobal() = %v, want %v", c.input, got, c.global)
			}
			if got := u.IsLocal(); got != c.local {
				t.Errorf("uri.NewTel(%q).IsLocal() = %v, want %v", c.input, got, c.local)
			}
		})
	}
}

func TestTel_ToSIP(t *testing.T) {
	t.Parallel()

	cases := []struct {
		origin, input, want string
	}{
		{"sip:foo.com", "tel:+358-555-1234567;postd=pp22", "sip:+358-555-1234567;postd=pp22@foo.com;user=phone"},
		{"sip:foo.com", "tel:+358-555-1234567;POSTD=PP22", "sip:+358-555-1234567;POSTD=PP22@foo.com;user=phone"},
		{"sip:foo.com:5555", "tel:+358-555-1234567;postd=pp22", "sip:+358-555-1234567;postd=pp22@foo.com:5555;user=phone"},
		{"sips:bar@foo.com;lr", "tel:+1234", "sips:+1234@foo.com;user=phone"},
		{"*", "tel:+1234", ""},
		{"sip:foo.com", "tel:", ""},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			got := uri.NewTel(c.input).ToSIP(uri.NewSIP(c.origin))
			if got.Spec() != c.want {
				t.Errorf("uri.NewTel(%q).ToSIP(%q) = %q, want %q", c.input, c.origin, got.Spec(), c.want)
			}
		})
	}
}

func TestTel_Equal(t *testing.T) {
	t.Parallel()

	u := uri.NewTel("tel:+1234;ext=1")
	if !u.Equal(uri.NewTel("TEL:+1234;ext=1")) {
		t.Error("tel URIs differing in scheme case must be equal")
	}
	if u.Equal(uri.NewTel("tel:+1234;EXT=1")) {
		t.Error("tel URIs differing in param case must not be equal")
	}
	if u.Equal(uri.NewSIP("sip:+1234@a.com")) {
		t.Error("tel URI must not equal SIP URI")
	}
}
