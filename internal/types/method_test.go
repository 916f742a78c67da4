package types_test

import (
	"testing"

	"github.com/ghettovoice/sipmsg/internal/types"
)

func TestParseMethod(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want types.Method
		kn   bool
	}{
		{"INVITE", types.MethodInvite, true},
		{"invite", types.MethodInvite, true},
		{"Register", types.MethodRegister, true},
		{"X-Custom", "X-Custom", false},
	}
	for _, c := range cases {
		if got := types.ParseMethod(c.in); got != c.want {
			t.Errorf("types.ParseMethod(%q) = %q, want %q", c.in, got, c.want)
		}
		if got := types.ParseMethod(c.in).IsKnown(); got != c.kn {
			t.Errorf("types.ParseMethod(%q).IsKnown() = %v, want %v", c.in, got, c.kn)
		}
	}
}

func TestMethod_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		m    types.Method
		val  any
		want bool
	}{
		{"known vs known", types.MethodInvite, types.Method("invite"), true},
		{"known vs other known", types.MethodInvite, types.MethodBye, false},
		{"known vs pointer", types.MethodAck, func() *types.Method { m := types.MethodAck; return &m }(), true},
		{"known vs unknown", types.MethodInvite, types.Method("INVITEX"), false},
		{"unknown same text", types.Method("FOO"), types.Method("FOO"), true},
		{"unknown different case", types.Method("FOO"), types.Method("foo"), false},
		{"unknown vs unknown", types.Method("FOO"), types.Method("BAR"), false},
		{"nil pointer", types.MethodAck, (*types.Method)(nil), false},
		{"not a method", types.MethodAck, "ACK", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.m.Equal(c.val); got != c.want {
				t.Errorf("m.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestMethod_IsValid(t *testing.T) {
	t.Parallel()

	if !types.Method("X-FOO.bar").IsValid() {
		t.Error("X-FOO.bar must be valid")
	}
	for _, m := range []types.Method{"", "A B", "A:B"} {
		if m.IsValid() {
			t.Errorf("types.Method(%q).IsValid() = true, want false", m)
		}
	}
}
