package sip_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/sip"
	"github.com/ghettovoice/sipmsg/uri"
)

const inviteMsg = "INVITE sip:bob@biloxi.com SIP/2.0\r\n" +
	"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
	"Max-Forwards: 70\r\n" +
	"To: Bob <sip:bob@biloxi.com>\r\n" +
	"From: Alice <sip:alice@atlanta.com>;tag=1928301774\r\n" +
	"Call-ID: a84b4c76e66710@pc33.atlanta.com\r\n" +
	"CSeq: 314159 INVITE\r\n" +
	"X-Trace: 1\r\n" +
	"Content-Length: 5\r\n" +
	"\r\n" +
	"v=0\r\n"

func newInvite(t *testing.T) *sip.Request {
	t.Helper()
	req := sip.NewRequest(sip.MethodInvite, mustURI(t, "sip:bob@biloxi.com"))
	req.Headers.Append(
		header.Via{{
			ProtoName:    "SIP",
			ProtoVersion: "2.0",
			Transport:    "UDP",
			Host:         "pc33.atlanta.com",
			Params:       header.Params{{Name: "branch", Value: "z9hG4bK776asdhds"}},
		}},
		header.MaxForwards(70),
		&header.To{DisplayName: "Bob", URI: mustURI(t, "sip:bob@biloxi.com")},
		&header.From{
			DisplayName: "Alice",
			URI:         mustURI(t, "sip:alice@atlanta.com"),
			Params:      header.Params{{Name: "tag", Value: "1928301774"}},
		},
		header.CallID("a84b4c76e66710@pc33.atlanta.com"),
		&header.CSeq{SeqNum: 314159, Method: sip.MethodInvite},
		&header.Other{Name: "X-Trace", Value: "1"},
	)
	req.SetBody([]byte("v=0\r\n"))
	return req
}

func TestRequest_Build(t *testing.T) {
	t.Parallel()

	req := newInvite(t)
	if got := req.Render(nil); got != inviteMsg {
		t.Errorf("req.Render(nil) = %q, want %q", got, inviteMsg)
	}
	if err := req.Validate(); err != nil {
		t.Errorf("req.Validate() error = %v, want nil", err)
	}
	if !req.IsValid() {
		t.Errorf("req.IsValid() = false, want true")
	}
	if parsed := mustParse(t, inviteMsg, nil); !parsed.Equal(req) {
		t.Errorf("sip.Parse() = %+q, want %+q", parsed, req)
	}

	req.SetBody(nil)
	if cl, _ := req.Headers.ContentLength(); cl != 0 {
		t.Errorf("Content-Length = %d, want 0", cl)
	}
	if n := len(slices.Collect(req.Headers.All("Content-Length"))); n != 1 {
		t.Errorf("Content-Length headers = %d, want 1", n)
	}
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		modify  func(req *sip.Request)
		wantErr error
	}{
		{"valid", func(*sip.Request) {}, nil},
		{"missing max forwards", func(req *sip.Request) { req.Headers.RemoveKind(header.KindMaxForwards) }, sip.ErrInvalidMessage},
		{"missing via", func(req *sip.Request) { req.Headers.Remove("v") }, sip.ErrInvalidMessage},
		{
			"cseq method mismatch",
			func(req *sip.Request) {
				req.Headers.RemoveKind(header.KindCSeq)
				req.Headers.Append(&header.CSeq{SeqNum: 1, Method: sip.MethodBye})
			},
			sip.ErrInvalidMessage,
		},
		{"content length mismatch", func(req *sip.Request) { req.Body = []byte("v=0\r\ns=-\r\n") }, sip.ErrInvalidMessage},
		{"invalid method", func(req *sip.Request) { req.Method = "IN VITE" }, sip.ErrInvalidMessage},
		{"invalid uri", func(req *sip.Request) { req.URI = uri.New("sip:") }, sip.ErrInvalidMessage},
		{"unsupported version", func(req *sip.Request) { req.Version = sip.Version{Major: 1} }, sip.ErrInvalidMessage},
		{
			"invalid header",
			func(req *sip.Request) { req.Headers.Append(&header.Other{Name: "Bad Name", Value: "x"}) },
			sip.ErrInvalidMessage,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			req := newInvite(t)
			c.modify(req)
			if diff := cmp.Diff(c.wantErr, req.Validate(), cmpopts.EquateErrors()); diff != "" {
				t.Errorf("req.Validate() error mismatch (-want +got):\n%s", diff)
			}
		})
	}

	var req *sip.Request
	if diff := cmp.Diff(sip.ErrInvalidArgument, req.Validate(), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("nil request Validate() error mismatch (-want +got):\n%s", diff)
	}
}

func TestRequest_NewResponse(t *testing.T) {
	t.Parallel()

	req := newInvite(t)
	res, err := req.NewResponse(sip.StatusRinging, "")
	if err != nil {
		t.Fatalf("req.NewResponse() error = %v, want nil", err)
	}

	want := "SIP/2.0 180 Ringing\r\n" +
		"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
		"To: Bob <sip:bob@biloxi.com>\r\n" +
		"From: Alice <sip:alice@atlanta.com>;tag=1928301774\r\n" +
		"Call-ID: a84b4c76e66710@pc33.atlanta.com\r\n" +
		"CSeq: 314159 INVITE\r\n" +
		"Content-Length: 0\r\n" +
		"\r\n"
	if got := res.Render(nil); got != want {
		t.Errorf("res.Render(nil) = %q, want %q", got, want)
	}
	if err := res.Validate(); err != nil {
		t.Errorf("res.Validate() error = %v, want nil", err)
	}

	// copied headers are independent of the request
	via, _ := sip.FirstOf[header.Via](res.Headers)
	via[0].Host = "changed.example.com"
	if hop, _ := firstHop(req.Headers); hop.Host != "pc33.atlanta.com" {
		t.Errorf("request Via host = %q, want %q", hop.Host, "pc33.atlanta.com")
	}

	res, err = req.NewResponse(sip.StatusOK, "Fine")
	if err != nil {
		t.Fatalf("req.NewResponse() error = %v, want nil", err)
	}
	if got, want := res.String(), "SIP/2.0 200 Fine"; got != want {
		t.Errorf("res.String() = %q, want %q", got, want)
	}

	cases := []struct {
		name string
		req  *sip.Request
		code sip.StatusCode
	}{
		{"nil request", nil, sip.StatusOK},
		{"invalid code", req, 99},
		{"ack", sip.NewRequest(sip.MethodAck, mustURI(t, "sip:bob@biloxi.com")), sip.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			res, err := c.req.NewResponse(c.code, "")
			if res != nil {
				t.Errorf("NewResponse() = %+q, want nil", res)
			}
			if diff := cmp.Diff(sip.ErrInvalidArgument, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("NewResponse() error mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func firstHop(hs sip.Headers) (header.ViaHop, bool) {
	for hop := range hs.Via() {
		return hop, true
	}
	return header.ViaHop{}, false
}

func TestResponse(t *testing.T) {
	t.Parallel()

	res := sip.NewResponse(sip.StatusNotFound, "")
	if got, want := res.String(), "SIP/2.0 404 Not Found"; got != want {
		t.Errorf("res.String() = %q, want %q", got, want)
	}
	if !res.Equal(sip.NewResponse(sip.StatusNotFound, "Nobody Home")) {
		t.Errorf("responses with different reasons are not equal")
	}
	if res.Equal(sip.NewResponse(sip.StatusGone, "")) {
		t.Errorf("responses with different codes are equal")
	}
	if res.Equal(newInvite(t)) {
		t.Errorf("response equals request")
	}
	if diff := cmp.Diff(sip.ErrInvalidMessage, res.Validate(), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("res.Validate() error mismatch (-want +got):\n%s", diff)
	}

	res.SetBody([]byte("oops"))
	if got, want := res.Render(nil), "SIP/2.0 404 Not Found\r\nContent-Length: 4\r\n\r\noops"; got != want {
		t.Errorf("res.Render(nil) = %q, want %q", got, want)
	}
	if parsed := mustParse(t, res.Render(nil), nil); !parsed.Equal(res) {
		t.Errorf("sip.Parse() = %+q, want %+q", parsed, res)
	}
}

func TestMessage_Clone(t *testing.T) {
	t.Parallel()

	req := newInvite(t)
	clone, ok := sip.AsRequest(req.Clone())
	if !ok {
		t.Fatalf("req.Clone() is not a request")
	}
	if !clone.Equal(req) {
		t.Errorf("req.Clone() = %+q, want %+q", clone, req)
	}
	clone.Body[0] = 'V'
	clone.Headers.Remove("X-Trace")
	if !strings.HasSuffix(req.Render(nil), "X-Trace: 1\r\nContent-Length: 5\r\n\r\nv=0\r\n") {
		t.Errorf("clone modification changed the original: %q", req.Render(nil))
	}

	var nilReq *sip.Request
	if nilReq.Clone() != nil {
		t.Errorf("nil request Clone() != nil")
	}
	var nilRes *sip.Response
	if nilRes.Clone() != nil {
		t.Errorf("nil response Clone() != nil")
	}
}

func TestMessage_Format(t *testing.T) {
	t.Parallel()

	req := newInvite(t)
	cases := []struct {
		format string
		want   string
	}{
		{"%s", "INVITE sip:bob@biloxi.com SIP/2.0"},
		{"%+s", inviteMsg},
		{"%q", `"INVITE sip:bob@biloxi.com SIP/2.0"`},
		{"%+q", fmt.Sprintf("%q", inviteMsg)},
	}
	for _, c := range cases {
		if got := fmt.Sprintf(c.format, req); got != c.want {
			t.Errorf("fmt.Sprintf(%q, req) = %q, want %q", c.format, got, c.want)
		}
	}
	if got := fmt.Sprintf("%v", req); !strings.Contains(got, "INVITE") {
		t.Errorf("fmt.Sprintf(%%v, req) = %q, want it to contain the method", got)
	}
}

func TestMessage_LogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("got", slog.Any("request", newInvite(t)))

	for _, want := range []string{
		`"method":"INVITE"`,
		`"via":"SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds"`,
		`"call_id":"a84b4c76e66710@pc33.atlanta.com"`,
		`"cseq":"314159 INVITE"`,
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output %q does not contain %q", buf.String(), want)
		}
	}
}

func TestMessage_JSON(t *testing.T) {
	t.Parallel()

	req := newInvite(t)
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal(req) error = %v, want nil", err)
	}
	var req2 sip.Request
	if err := json.Unmarshal(data, &req2); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, want nil", err)
	}
	if !req2.Equal(req) {
		t.Errorf("json.Unmarshal() = %+q, want %+q", &req2, req)
	}

	res, _ := req.NewResponse(sip.StatusOK, "")
	data, err = json.Marshal(res)
	if err != nil {
		t.Fatalf("json.Marshal(res) error = %v, want nil", err)
	}
	var res2 sip.Response
	if err := json.Unmarshal(data, &res2); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, want nil", err)
	}
	if !res2.Equal(res) {
		t.Errorf("json.Unmarshal() = %+q, want %+q", &res2, res)
	}

	if err := json.Unmarshal(data, new(sip.Request)); !cmp.Equal(err, sip.ErrInvalidArgument, cmpopts.EquateErrors()) {
		t.Errorf("json.Unmarshal(response into request) error = %v, want %v", err, sip.ErrInvalidArgument)
	}
	if err := json.Unmarshal([]byte(`{"message":"*"}`), new(sip.Request)); !cmp.Equal(err, sip.ErrInvalidStartLine, cmpopts.EquateErrors()) {
		t.Errorf("json.Unmarshal(invalid message) error = %v, want %v", err, sip.ErrInvalidStartLine)
	}
}

func TestMessage_ConcurrentRender(t *testing.T) {
	t.Parallel()

	msg := mustParse(t, inviteMsg, nil)
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := msg.Render(nil); got != inviteMsg {
					t.Errorf("msg.Render(nil) = %q, want %q", got, inviteMsg)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestVersion(t *testing.T) {
	t.Parallel()

	var v sip.Version
	if !v.IsZero() || v.IsValid() {
		t.Errorf("zero Version IsZero() = %v, IsValid() = %v, want true, false", v.IsZero(), v.IsValid())
	}
	if err := v.UnmarshalText([]byte("sip/2.0")); err != nil {
		t.Fatalf("v.UnmarshalText() error = %v, want nil", err)
	}
	if !v.Equal(sip.Version20) || v.String() != "SIP/2.0" {
		t.Errorf("v = %v, want %v", v, sip.Version20)
	}
	if diff := cmp.Diff(sip.ErrInvalidStartLine, v.UnmarshalText([]byte("SIP/2")), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("v.UnmarshalText(\"SIP/2\") error mismatch (-want +got):\n%s", diff)
	}
	if got, want := fmt.Sprintf("%q", sip.Version20), `"SIP/2.0"`; got != want {
		t.Errorf("fmt.Sprintf(%%q) = %s, want %s", got, want)
	}
}
