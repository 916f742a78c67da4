package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

func TestQuote(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", `""`},
		{"no quote", "abc", `"abc"`},
		{"with quote", `"ab"c"`, `"\"ab\"c\""`},
		{"with backslash quote", `ab\"c`, `"ab\\\"c"`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Quote(c.str), c.want; got != want {
				t.Errorf("grammar.Quote(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"empty quote", `""`, ""},
		{"no quote", "abc", "abc"},
		{"with quote", `"abc"`, "abc"},
		{"with backslash quote", `"\"ab\"c\\\""`, `"ab"c\"`},
		{"unterminated", `"abc`, `"abc`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Unquote(c.str), c.want; got != want {
				t.Errorf("grammar.Unquote(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestIsToken(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"INVITE", "z9hG4bK776asdhds", "application", "x-foo.bar!%*_+`'~"} {
		if !grammar.IsToken(s) {
			t.Errorf("grammar.IsToken(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "a b", "a/b", "a;b", `"a"`, "ä"} {
		if grammar.IsToken(s) {
			t.Errorf("grammar.IsToken(%q) = true, want false", s)
		}
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		sep  byte
		want []string
	}{
		{"empty", "", ',', nil},
		{"blank elements", " , ,", ',', nil},
		{"simple", "INVITE, ACK ,BYE", ',', []string{"INVITE", "ACK", "BYE"}},
		{
			"quoted comma",
			`"Doe, John" <sip:j@a.com>, <sip:b@c.com>`,
			',',
			[]string{`"Doe, John" <sip:j@a.com>`, "<sip:b@c.com>"},
		},
		{
			"escaped quote",
			`"a \", b" <sip:x>, c`,
			',',
			[]string{`"a \", b" <sip:x>`, "c"},
		},
		{
			"angle brackets",
			"<sip:a@b;x=1,2>;q=0.5, <sip:c>",
			',',
			[]string{"<sip:a@b;x=1,2>;q=0.5", "<sip:c>"},
		},
		{
			"params",
			`attachment;filename="a;b";handling=required`,
			';',
			[]string{"attachment", `filename="a;b"`, "handling=required"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := grammar.SplitList(c.str, c.sep)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("grammar.SplitList(%q, %q) = %q, want %q\ndiff (-got +want):\n%v", c.str, c.sep, got, c.want, diff)
			}
		})
	}
}

func TestCut(t *testing.T) {
	t.Parallel()

	before, after, ok := grammar.Cut(`"a;b" <sip:x;lr>;tag=1`, ';')
	if !ok || before != `"a;b" <sip:x;lr>` || after != "tag=1" {
		t.Errorf("grammar.Cut() = (%q, %q, %v), want (%q, %q, true)", before, after, ok, `"a;b" <sip:x;lr>`, "tag=1")
	}
}

func TestIndexUnquoted(t *testing.T) {
	t.Parallel()

	cases := []struct {
		s    string
		sep  byte
		want int
	}{
		{`"Doe, <John>" <sip:john@example.com>`, '<', 14},
		{`"Doe, <John>" <sip:john@example.com>`, ',', -1},
		{`<sip:a@b;lr>;tag=1`, ';', 12},
		{`"unterminated;`, ';', -1},
	}

	for _, c := range cases {
		t.Run(c.s, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IndexUnquoted(c.s, c.sep); got != c.want {
				t.Errorf("grammar.IndexUnquoted(%q, %q) = %d, want %d", c.s, c.sep, got, c.want)
			}
		})
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		fn    func(string) bool
		valid []string
		bad   []string
	}{
		{
			"word", grammar.IsWord[string],
			[]string{"f81d4fae-7dec-11d0-a765-00a0c91e6bf6", "a84b4c76e66710", "<x>:{y}?"},
			[]string{"", "a b", "a;b", "a@b"},
		},
		{
			"digits", grammar.IsDigits[string],
			[]string{"0", "5060", "0123456789"},
			[]string{"", "12a", " 1", "-1"},
		},
		{
			"display name", grammar.IsDisplayName[string],
			[]string{"Bob", "A. G. Bell", "Bob  Smith", `"Doe, <John>"`, `"The \"Operator\""`, `""`},
			[]string{"", "Bob,", "a@b", `"open`, "Bob "},
		},
		{
			"gen value", grammar.IsGenValue[string],
			[]string{"z9hG4bK776asdhds", "0.7", "192.0.2.1", "[2001:db8::9:1]", `"a;b c"`, "pc33.atlanta.com"},
			[]string{"", "a b", "a/b", "[::1", `"a`},
		},
		{
			"host", grammar.IsHost[string],
			[]string{"atlanta.com", "atlanta.com.", "_sip._udp.example.com", "192.0.2.1", "[::1]", "[::ffff:1.2.3.4]", "[2001:DB8::0:1]"},
			[]string{"", "ho st", ".com", "a..b", "::1", "[::1", "exa$mple.com"},
		},
		{
			"global number", grammar.IsGlobalNumber[string],
			[]string{"+1", "+1-201-555-0123", "+358.(555).1234567"},
			[]string{"", "+", "+-", "1234", "+12a"},
		},
		{
			"local number", grammar.IsLocalNumber[string],
			[]string{"7042", "*69", "#31#", "a-b"},
			[]string{"", "-", "+1", "12 3"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			for _, s := range c.valid {
				if !c.fn(s) {
					t.Errorf("%s(%q) = false, want true", c.name, s)
				}
			}
			for _, s := range c.bad {
				if c.fn(s) {
					t.Errorf("%s(%q) = true, want false", c.name, s)
				}
			}
		})
	}
}

func TestToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, tok, rest string
	}{
		{"", "", ""},
		{"UDP pc33.atlanta.com", "UDP", " pc33.atlanta.com"},
		{"Digest realm=x", "Digest", " realm=x"},
		{"/UDP", "", "/UDP"},
		{"tls", "tls", ""},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			tok, rest := grammar.Token(c.in)
			if tok != c.tok || rest != c.rest {
				t.Errorf("grammar.Token(%q) = (%q, %q), want (%q, %q)", c.in, tok, rest, c.tok, c.rest)
			}
		})
	}
}

func TestCutNameAddr(t *testing.T) {
	t.Parallel()

	type result struct {
		Display, AddrSpec, Rest string
		OK                      bool
	}
	cases := []struct {
		in   string
		want result
	}{
		{"<sip:alice@atlanta.com>;tag=1", result{"", "sip:alice@atlanta.com", ";tag=1", true}},
		{`"A. G. Bell" <sip:agb@bell-telephone.com> ;tag=a48s`, result{`"A. G. Bell"`, "sip:agb@bell-telephone.com", " ;tag=a48s", true}},
		{"Bob  Smith<sip:bob@biloxi.com>", result{"Bob  Smith", "sip:bob@biloxi.com", "", true}},
		{`"Doe, <John>" <sip:john@example.com>`, result{`"Doe, <John>"`, "sip:john@example.com", "", true}},
		{"<sip:a@b;lr>, <sip:c@d>", result{"", "sip:a@b;lr", ", <sip:c@d>", true}},
		{"Bob@home <sip:bob@biloxi.com>", result{Rest: "Bob@home <sip:bob@biloxi.com>"}},
		{"<sip:bob@biloxi.com", result{Rest: "<sip:bob@biloxi.com"}},
		{"<>", result{Rest: "<>"}},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			var got result
			got.Display, got.AddrSpec, got.Rest, got.OK = grammar.CutNameAddr(c.in)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("grammar.CutNameAddr(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestParseParam(t *testing.T) {
	t.Parallel()

	type result struct {
		Name, Value string
		OK          bool
	}
	cases := []struct {
		in   string
		want result
	}{
		{"lr", result{"lr", "", true}},
		{"tag=1928301774", result{"tag", "1928301774", true}},
		{"q = 0.7", result{"q", "0.7", true}},
		{`text="Call completed elsewhere"`, result{"text", `"Call completed elsewhere"`, true}},
		{"received=[2001:db8::9:1]", result{"received", "[2001:db8::9:1]", true}},
		{"tag=", result{}},
		{"=1", result{}},
		{"a b=1", result{}},
		{"x=a/b", result{}},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			var got result
			got.Name, got.Value, got.OK = grammar.ParseParam(c.in)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("grammar.ParseParam(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}
