package header_test

import (
	"testing"

	"github.com/ghettovoice/sipmsg/header"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want header.Kind
	}{
		{"i", header.KindCallID},
		{"I", header.KindCallID},
		{"call-id", header.KindCallID},
		{"CALL-ID", header.KindCallID},
		{"Call-Id", header.KindCallID},
		{"v", header.KindVia},
		{"x", header.KindSessionExpires},
		{"u", header.KindAllowEvents},
		{"www-authenticate", header.KindWWWAuthenticate},
		{"Accept", header.KindAccept},
		{"mime-version", header.KindMIMEVersion},
		{"rack", header.KindRAck},
		{"RSEQ", header.KindRSeq},
		{"min-se", header.KindMinSE},
		{"a", header.KindOther},
		{"", header.KindOther},
		{"X-Custom", header.KindOther},
		{"Acceptx", header.KindOther},
		{" Via ", header.KindVia},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := header.KindOf(c.name); got != c.want {
				t.Errorf("header.KindOf(%q) = %v, want %v", c.name, got, c.want)
			}
		})
	}
}

func TestKind_Names(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind    header.Kind
		str     string
		canonic header.Name
		compact header.Name
	}{
		{header.KindOther, "Other", "", ""},
		{header.KindCallID, "Call-ID", "Call-ID", "i"},
		{header.KindCSeq, "CSeq", "CSeq", "CSeq"},
		{header.KindContentType, "Content-Type", "Content-Type", "c"},
		{header.KindWWWAuthenticate, "WWW-Authenticate", "WWW-Authenticate", "WWW-Authenticate"},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got := c.kind.String(); got != c.str {
				t.Errorf("kind.String() = %q, want %q", got, c.str)
			}
			if got := c.kind.CanonicName(); got != c.canonic {
				t.Errorf("kind.CanonicName() = %q, want %q", got, c.canonic)
			}
			if got := c.kind.CompactName(); got != c.compact {
				t.Errorf("kind.CompactName() = %q, want %q", got, c.compact)
			}
		})
	}
}

func TestName_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n1   header.Name
		n2   any
		want bool
	}{
		{"known", "Via", header.Name("v"), true},
		{"known ptr", "call-id", func() *header.Name { n := header.Name("Call-ID"); return &n }(), true},
		{"known vs unknown", "Via", header.Name("X-Via"), false},
		{"unknown same", "X-Foo", header.Name("X-Foo"), true},
		{"unknown case", "X-Foo", header.Name("x-foo"), false},
		{"unknown different", "X-Foo", header.Name("X-Bar"), false},
		{"not a name", "Via", "Via", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.n1.Equal(c.n2); got != c.want {
				t.Errorf("n1.Equal(n2) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCanonicName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want header.Name
	}{
		{"i", "Call-ID"},
		{"cseq", "CSeq"},
		{"www-authenticate", "WWW-Authenticate"},
		{"x-custom-header", "X-Custom-Header"},
		{" l ", "Content-Length"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := header.CanonicName(c.in); got != c.want {
				t.Errorf("header.CanonicName(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
