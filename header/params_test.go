package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/sipmsg/header"
)

func TestParams_Get(t *testing.T) {
	t.Parallel()

	ps := header.Params{{"tag", "a"}, {"Tag", "b"}, {"lr", ""}, {"tag", "c"}}

	cases := []struct {
		name    string
		param   string
		wantVal string
		wantOK  bool
	}{
		{"first match", "tag", "a", true},
		{"case sensitive", "Tag", "b", true},
		{"flag", "lr", "", true},
		{"missing", "TAG", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			val, ok := ps.Get(c.param)
			if val != c.wantVal || ok != c.wantOK {
				t.Errorf("ps.Get(%q) = (%q, %v), want (%q, %v)", c.param, val, ok, c.wantVal, c.wantOK)
			}
		})
	}
}

func TestParams_Modify(t *testing.T) {
	t.Parallel()

	var ps header.Params
	ps = ps.Set("transport", "udp")
	ps = ps.Append("x", "1")
	ps = ps.Append("x", "2")
	ps = ps.Set("transport", "tcp")

	want := header.Params{{"transport", "tcp"}, {"x", "1"}, {"x", "2"}}
	if diff := cmp.Diff(ps, want); diff != "" {
		t.Errorf("ps = %v, want %v\ndiff (-got +want):\n%v", ps, want, diff)
	}
	if got, want := ps.String(), ";transport=tcp;x=1;x=2"; got != want {
		t.Errorf("ps.String() = %q, want %q", got, want)
	}

	cln := ps.Clone()
	ps = ps.Del("x")
	if diff := cmp.Diff(ps, header.Params{{"transport", "tcp"}}); diff != "" {
		t.Errorf("ps.Del(\"x\") = %v\ndiff (-got +want):\n%v", ps, diff)
	}
	if diff := cmp.Diff(cln, want); diff != "" {
		t.Errorf("clone changed after Del = %v\ndiff (-got +want):\n%v", cln, diff)
	}
	if ps.Equal(cln) {
		t.Errorf("ps.Equal(cln) = true, want false")
	}
	if !cln.Equal(want) {
		t.Errorf("cln.Equal(want) = false, want true")
	}
}

func TestParams_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ps   header.Params
		want bool
	}{
		{"nil", nil, true},
		{"flag", header.Params{{"lr", ""}}, true},
		{"token", header.Params{{"branch", "z9hG4bK776asdhds"}}, true},
		{"quoted", header.Params{{"text", `"Call completed elsewhere"`}}, true},
		{"host", header.Params{{"received", "[2001:db8::1]"}}, true},
		{"bad name", header.Params{{"a b", "1"}}, false},
		{"bad value", header.Params{{"a", "x y"}}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.ps.IsValid(); got != c.want {
				t.Errorf("ps.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestFormatQValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		q    float64
		want string
	}{
		{1, "1.0"},
		{0, "0.0"},
		{0.5, "0.5"},
		{0.7, "0.7"},
		{0.125, "0.125"},
		{0.1234, "0.123"},
		{0.25, "0.25"},
		{1.5, "1.0"},
		{-1, "0.0"},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			t.Parallel()

			if got := header.FormatQValue(c.q); got != c.want {
				t.Errorf("header.FormatQValue(%v) = %q, want %q", c.q, got, c.want)
			}
		})
	}
}

func TestParams_QValue(t *testing.T) {
	t.Parallel()

	var ps header.Params
	if _, ok := ps.QValue(); ok {
		t.Errorf("ps.QValue() ok = true, want false")
	}
	ps = ps.SetQValue(0.7)
	if got, want := ps.String(), ";q=0.7"; got != want {
		t.Errorf("ps.String() = %q, want %q", got, want)
	}
	if q, ok := ps.QValue(); !ok || q != 0.7 {
		t.Errorf("ps.QValue() = (%v, %v), want (0.7, true)", q, ok)
	}
}
