package sip_test

import (
	"testing"

	"github.com/ghettovoice/sipmsg/sip"
)

func TestStatusCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code                                        sip.StatusCode
		str                                         string
		valid, provisional, success, final, failure bool
	}{
		{sip.StatusTrying, "100 Trying", true, true, false, false, false},
		{sip.StatusRinging, "180 Ringing", true, true, false, false, false},
		{sip.StatusOK, "200 OK", true, false, true, true, false},
		{sip.StatusBusyHere, "486 Busy Here", true, false, false, true, true},
		{sip.StatusNotAcceptableAnywhere, "606 Not Acceptable", true, false, false, true, true},
		{99, "99", false, false, false, false, false},
		{700, "700", false, false, false, false, false},
	}
	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got := c.code.String(); got != c.str {
				t.Errorf("code.String() = %q, want %q", got, c.str)
			}
			if got := c.code.IsValid(); got != c.valid {
				t.Errorf("code.IsValid() = %v, want %v", got, c.valid)
			}
			if got := c.code.IsProvisional(); got != c.provisional {
				t.Errorf("code.IsProvisional() = %v, want %v", got, c.provisional)
			}
			if got := c.code.IsSuccessful(); got != c.success {
				t.Errorf("code.IsSuccessful() = %v, want %v", got, c.success)
			}
			if got := c.code.IsFinal(); got != c.final {
				t.Errorf("code.IsFinal() = %v, want %v", got, c.final)
			}
			isErr := c.code.IsRequestFailure() || c.code.IsServerFailure() || c.code.IsGlobalFailure()
			if isErr != c.failure {
				t.Errorf("code is failure = %v, want %v", isErr, c.failure)
			}
		})
	}

	if got := sip.StatusText(sip.StatusCode(299)); got != "" {
		t.Errorf("sip.StatusText(299) = %q, want empty", got)
	}
	if !sip.StatusMovedTemporarily.IsRedirection() {
		t.Errorf("302 IsRedirection() = false, want true")
	}
}
