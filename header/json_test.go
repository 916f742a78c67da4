package header_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/uri"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.Header
		want string
		into func() any
	}{
		{
			"from",
			&header.From{
				DisplayName: "Alice",
				URI:         uri.NewSIP("sip:alice@atlanta.com"),
				Params:      header.Params{{"tag", "1928301774"}},
			},
			`{"name":"From","value":"Alice <sip:alice@atlanta.com>;tag=1928301774"}`,
			func() any { return new(header.From) },
		},
		{
			"via",
			header.Via{{ProtoName: "SIP", ProtoVersion: "2.0", Transport: "UDP", Host: "pc33.atlanta.com",
				Params: header.Params{{"branch", "z9hG4bK776asdhds"}}}},
			`{"name":"Via","value":"SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds"}`,
			func() any { return new(header.Via) },
		},
		{
			"content length",
			header.ContentLength(142),
			`{"name":"Content-Length","value":"142"}`,
			func() any { return new(header.ContentLength) },
		},
		{
			"other",
			&header.Other{Name: "x-custom", Value: "abc"},
			`{"name":"x-custom","value":"abc"}`,
			func() any { return new(header.Other) },
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			data, err := header.ToJSON(c.hdr)
			if err != nil {
				t.Fatalf("header.ToJSON() error = %v, want nil", err)
			}
			if diff := cmp.Diff(string(data), c.want); diff != "" {
				t.Errorf("header.ToJSON() = %s, want %s\ndiff (-got +want):\n%v", data, c.want, diff)
			}

			// json.Marshal compacts the marshaler output with HTML escaping
			std, err := json.Marshal(c.hdr)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v, want nil", err)
			}
			var buf bytes.Buffer
			json.HTMLEscape(&buf, data)
			if diff := cmp.Diff(string(std), buf.String()); diff != "" {
				t.Errorf("json.Marshal() = %s, want %s\ndiff (-got +want):\n%v", std, buf.String(), diff)
			}

			got, err := header.FromJSON(data)
			if err != nil {
				t.Fatalf("header.FromJSON() error = %v, want nil", err)
			}
			if !got.Equal(c.hdr) {
				t.Errorf("header.FromJSON() = %+v, want %+v", got, c.hdr)
			}

			dst := c.into()
			if err := json.Unmarshal(data, dst); err != nil {
				t.Fatalf("json.Unmarshal() error = %v, want nil", err)
			}
			if !c.hdr.Equal(dst) {
				t.Errorf("json.Unmarshal() = %+v, want %+v", dst, c.hdr)
			}
		})
	}
}

func TestJSON_Errors(t *testing.T) {
	t.Parallel()

	if _, err := header.FromJSON(`null`); err == nil {
		t.Errorf("header.FromJSON(null) error = nil, want error")
	}
	if _, err := header.FromJSON(`{"name":"CSeq","value":"abc INVITE"}`); err == nil {
		t.Errorf("header.FromJSON() error = nil, want error")
	}

	var to header.To
	if err := json.Unmarshal([]byte(`{"name":"From","value":"<sip:a@b>"}`), &to); err == nil {
		t.Errorf("json.Unmarshal(From into To) error = nil, want error")
	}
}
