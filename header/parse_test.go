package header_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/header"
)

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		line string
		kind header.Kind
	}{
		{"accept", "Accept: application/sdp;q=1.0, application/*", header.KindAccept},
		{"accept encoding", "Accept-Encoding: gzip;q=0.1, 7zip", header.KindAcceptEncoding},
		{"accept language", "Accept-Language: en;q=0.9, pt-br", header.KindAcceptLanguage},
		{"alert info", "Alert-Info: <http://www.example.com/sounds/moo.wav>", header.KindAlertInfo},
		{"allow", "Allow: INVITE, ACK, BYE", header.KindAllow},
		{"allow events", "Allow-Events: presence, dialog", header.KindAllowEvents},
		{
			"authentication info",
			`Authentication-Info: nextnonce="47364c23432d2e131a5fb210812c", qop=auth, rspauth="xxx", cnonce="0a4f113b", nc=00000001`,
			header.KindAuthenticationInfo,
		},
		{
			"authorization",
			`Authorization: Digest username="Alice", realm="atlanta.com", nonce="84a4cc6f3082121f32b42a2187831a9e", response="7587245234b3434cc3412213e5f113a5432"`,
			header.KindAuthorization,
		},
		{"call id", "Call-ID: f81d4fae-7dec-11d0-a765-00a0c91e6bf6@biloxi.com", header.KindCallID},
		{
			"call info",
			"Call-Info: <http://wwww.example.com/alice/photo.jpg>;purpose=icon, <http://www.example.com/alice/>;purpose=info",
			header.KindCallInfo,
		},
		{"contact", `Contact: "John Doe" <sip:foo@bar.com>;q=1.0, <sip:bar@foo.com>;expires=300`, header.KindContact},
		{"contact star", "Contact: *", header.KindContact},
		{"content disposition", "Content-Disposition: attachment;filename=smime.p7m;handling=required", header.KindContentDisposition},
		{"content encoding", "Content-Encoding: gzip", header.KindContentEncoding},
		{"content language", "Content-Language: en, pt-br", header.KindContentLanguage},
		{"content length", "Content-Length: 0", header.KindContentLength},
		{"content type", "Content-Type: application/sdp", header.KindContentType},
		{"cseq", "CSeq: 1 REGISTER", header.KindCSeq},
		{"date", "Date: Thu, 01 Jan 1970 00:01:02 GMT", header.KindDate},
		{"error info", "Error-Info: <sip:not-in-service-recording@atlanta.com>", header.KindErrorInfo},
		{"event", "Event: presence;id=1", header.KindEvent},
		{"expires", "Expires: 300", header.KindExpires},
		{"from", `From: "A. G. Bell" <sip:agb@bell-telephone.com>;tag=a48s`, header.KindFrom},
		{"in reply to", "In-Reply-To: 70710@saturn.bell-tel.com, 17320@saturn.bell-tel.com", header.KindInReplyTo},
		{"max forwards", "Max-Forwards: 70", header.KindMaxForwards},
		{"mime version", "MIME-Version: 1.0", header.KindMIMEVersion},
		{"min expires", "Min-Expires: 5", header.KindMinExpires},
		{"min se", "Min-SE: 90", header.KindMinSE},
		{"organization", "Organization: Boxes by Bob", header.KindOrganization},
		{"path", "Path: <sip:p1.example.com;lr>", header.KindPath},
		{"priority", "Priority: emergency", header.KindPriority},
		{
			"proxy authenticate",
			`Proxy-Authenticate: Digest realm="atlanta.com", domain="sip:ss1.carrier.com", qop="auth", nonce="f84f1cec41e6cbe5aea9c8e88d359", opaque="", stale=false, algorithm=MD5`,
			header.KindProxyAuthenticate,
		},
		{
			"proxy authorization",
			`Proxy-Authorization: Digest username="Alice", realm="atlanta.com", nonce="c60f3082ee1212b402a21831ae", response="245f23415f11432b3434341c022"`,
			header.KindProxyAuthorization,
		},
		{"proxy require", "Proxy-Require: foo", header.KindProxyRequire},
		{"rack", "RAck: 776656 1 INVITE", header.KindRAck},
		{"reason", `Reason: SIP;cause=200;text="Call completed elsewhere"`, header.KindReason},
		{"record route", "Record-Route: <sip:p2.example.com;lr>, <sip:p1.example.com;lr>", header.KindRecordRoute},
		{"refer to", "Refer-To: <sip:carol@chicago.com>", header.KindReferTo},
		{"referred by", `Referred-By: "Alice" <sip:alice@atlanta.com>`, header.KindReferredBy},
		{"reply to", `Reply-To: "Bob" <sip:bob@biloxi.com>`, header.KindReplyTo},
		{"require", "Require: 100rel", header.KindRequire},
		{"retry after", "Retry-After: 300", header.KindRetryAfter},
		{"retry after full", "Retry-After: 120 (I'm in a meeting);duration=60", header.KindRetryAfter},
		{"route", "Route: <sip:alice@atlanta.com>", header.KindRoute},
		{"rseq", "RSeq: 988789", header.KindRSeq},
		{"server", "Server: HomeServer v2", header.KindServer},
		{"session expires", "Session-Expires: 1800;refresher=uac", header.KindSessionExpires},
		{"subject", "Subject: Need more boxes", header.KindSubject},
		{"subscription state", "Subscription-State: active;expires=3600", header.KindSubscriptionState},
		{"supported", "Supported: 100rel", header.KindSupported},
		{"timestamp", "Timestamp: 100 2.2345", header.KindTimestamp},
		{"to", `To: "The Operator" <sip:operator@cs.columbia.edu>;tag=287447`, header.KindTo},
		{"unsupported", "Unsupported: foo", header.KindUnsupported},
		{"user agent", "User-Agent: Softphone Beta1.5", header.KindUserAgent},
		{"via", "Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds, SIP/2.0/TCP [2001:db8::1]:5070", header.KindVia},
		{"warning", `Warning: 307 isi.edu "Session parameter 'foo' not understood"`, header.KindWarning},
		{
			"www authenticate",
			`WWW-Authenticate: Digest realm="atlanta.com", domain="sip:boxesbybob.com", qop="auth", nonce="f84f1cec41e6cbe5aea9c8e88d359", opaque="", stale=false, algorithm=MD5`,
			header.KindWWWAuthenticate,
		},
		{"other", "X-Custom: some value", header.KindOther},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr, err := header.Parse(c.line)
			if err != nil {
				t.Fatalf("header.Parse(%q) error = %v, want nil", c.line, err)
			}
			if got := hdr.Kind(); got != c.kind {
				t.Errorf("hdr.Kind() = %v, want %v", got, c.kind)
			}
			if got := hdr.Render(nil); got != c.line {
				t.Errorf("hdr.Render(nil) = %q, want %q", got, c.line)
			}
			if !hdr.IsValid() {
				t.Errorf("hdr.IsValid() = false, want true")
			}
			if cln := hdr.Clone(); !cln.Equal(hdr) {
				t.Errorf("hdr.Clone().Equal(hdr) = false, want true")
			}
		})
	}
}

func TestParse_CompactForms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		compact string
		full    string
	}{
		{"u: presence", "Allow-Events: presence"},
		{"i: a84b4c76e66710", "Call-ID: a84b4c76e66710"},
		{"m: <sip:bob@192.0.2.4>", "Contact: <sip:bob@192.0.2.4>"},
		{"e: gzip", "Content-Encoding: gzip"},
		{"l: 142", "Content-Length: 142"},
		{"c: application/sdp", "Content-Type: application/sdp"},
		{"o: dialog", "Event: dialog"},
		{"f: <sip:alice@atlanta.com>;tag=1928301774", "From: <sip:alice@atlanta.com>;tag=1928301774"},
		{"r: <sip:carol@chicago.com>", "Refer-To: <sip:carol@chicago.com>"},
		{"b: <sip:alice@atlanta.com>", "Referred-By: <sip:alice@atlanta.com>"},
		{"x: 1800", "Session-Expires: 1800"},
		{"s: Lunch", "Subject: Lunch"},
		{"k: timer", "Supported: timer"},
		{"t: <sip:bob@biloxi.com>", "To: <sip:bob@biloxi.com>"},
		{"V: SIP/2.0/UDP host.example.com", "Via: SIP/2.0/UDP host.example.com"},
	}

	for _, c := range cases {
		t.Run(c.compact, func(t *testing.T) {
			t.Parallel()

			h1, err := header.Parse(c.compact)
			if err != nil {
				t.Fatalf("header.Parse(%q) error = %v, want nil", c.compact, err)
			}
			h2, err := header.Parse(c.full)
			if err != nil {
				t.Fatalf("header.Parse(%q) error = %v, want nil", c.full, err)
			}
			if !h1.Equal(h2) {
				t.Errorf("compact %+v is not equal to full %+v", h1, h2)
			}
			if got := h1.Render(nil); got != c.full {
				t.Errorf("h1.Render(nil) = %q, want %q", got, c.full)
			}
			if got, want := h2.Render(&header.RenderOptions{Compact: true}), strings.ToLower(c.compact[:1])+c.compact[1:]; got != want {
				t.Errorf("h2.Render(compact) = %q, want %q", got, want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		line string
	}{
		{"no colon", "From <sip:alice@atlanta.com>"},
		{"bad name", "Fr om: <sip:alice@atlanta.com>"},
		{"cseq without method", "CSeq: 1"},
		{"cseq bad number", "CSeq: one INVITE"},
		{"content length not a number", "Content-Length: abc"},
		{"content length empty", "Content-Length: "},
		{"content type without subtype", "Content-Type: application"},
		{"max forwards empty", "Max-Forwards:"},
		{"call id empty", "Call-ID: "},
		{"call id with spaces", "Call-ID: abc def"},
		{"from missing bracket", "From: <sip:alice@atlanta.com;tag=1"},
		{"from invalid uri", "From: <sip:>"},
		{"to bad param", "To: <sip:bob@biloxi.com>;=x"},
		{"via no transport", "Via: SIP/2.0 host.example.com"},
		{"via no host", "Via: SIP/2.0/UDP"},
		{"via bad port", "Via: SIP/2.0/UDP host.example.com:abc"},
		{"date garbage", "Date: yesterday"},
		{"warning bad code", `Warning: 30 isi.edu "text"`},
		{"warning unquoted", "Warning: 307 isi.edu text"},
		{"authorization no params", "Authorization: Digest username"},
		{"authentication info empty", "Authentication-Info: "},
		{"rack short", "RAck: 1 INVITE"},
		{"timestamp garbage", "Timestamp: now"},
		{"mime version", "MIME-Version: one"},
		{"supported bad token", "Supported: 100rel, a b"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr, err := header.Parse(c.line)
			if err == nil {
				t.Fatalf("header.Parse(%q) = %+v, want error", c.line, hdr)
			}
			if hdr != nil {
				t.Errorf("header.Parse(%q) header = %+v, want nil", c.line, hdr)
			}
			if diff := cmp.Diff(err, header.ErrInvalidHeader, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("header.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.line, err, header.ErrInvalidHeader, diff)
			}
			var perr *header.ParseError
			if !errors.As(err, &perr) {
				t.Errorf("header.Parse(%q) error = %T, want *header.ParseError", c.line, err)
			}
		})
	}
}

func TestParse_EmptyLists(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line string
		want header.Header
	}{
		{"Supported: ", header.Supported{}},
		{"Allow:", header.Allow{}},
		{"Accept: ", header.Accept{}},
		{"Require:", header.Require{}},
		{"Via: ", header.Via{}},
	}

	for _, c := range cases {
		t.Run(c.line, func(t *testing.T) {
			t.Parallel()

			hdr, err := header.Parse(c.line)
			if err != nil {
				t.Fatalf("header.Parse(%q) error = %v, want nil", c.line, err)
			}
			if diff := cmp.Diff(hdr, c.want, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("header.Parse(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.line, hdr, c.want, diff)
			}
		})
	}
}

func TestParse_Other(t *testing.T) {
	t.Parallel()

	hdr, err := header.Parse("x-Custom-HEADER:   some ; value  ")
	if err != nil {
		t.Fatalf("header.Parse() error = %v, want nil", err)
	}
	want := &header.Other{Name: "x-Custom-HEADER", Value: "some ; value"}
	if diff := cmp.Diff(hdr, header.Header(want)); diff != "" {
		t.Errorf("header.Parse() = %+v, want %+v\ndiff (-got +want):\n%v", hdr, want, diff)
	}
	if got, want := hdr.Render(nil), "x-Custom-HEADER: some ; value"; got != want {
		t.Errorf("hdr.Render(nil) = %q, want %q", got, want)
	}
	if got, want := hdr.CanonicName(), header.Name("X-Custom-Header"); got != want {
		t.Errorf("hdr.CanonicName() = %q, want %q", got, want)
	}

	if hdr.Equal(&header.Other{Name: "X-Custom-Header", Value: "some ; value"}) {
		t.Errorf("headers with different unknown names are equal")
	}
}

type testHeader struct {
	header.Other
}

func TestRegisterParser(t *testing.T) {
	t.Parallel()

	const name = "X-Registered-Parser"
	header.RegisterParser(name, func(name, value string) header.Header {
		if value == "skip" {
			return nil
		}
		return &testHeader{header.Other{Name: name, Value: value}}
	})
	defer header.UnregisterParser(name)

	hdr, err := header.ParseValue("x-registered-parser", "abc")
	if err != nil {
		t.Fatalf("header.ParseValue() error = %v, want nil", err)
	}
	if _, ok := hdr.(*testHeader); !ok {
		t.Errorf("header.ParseValue() = %T, want *testHeader", hdr)
	}

	hdr, err = header.ParseValue(name, "skip")
	if err != nil {
		t.Fatalf("header.ParseValue() error = %v, want nil", err)
	}
	if _, ok := hdr.(*header.Other); !ok {
		t.Errorf("header.ParseValue() = %T, want *header.Other", hdr)
	}
}
