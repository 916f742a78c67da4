package header_test

import (
	"testing"
	"time"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/uri"
)

func TestFrom_Accessors(t *testing.T) {
	t.Parallel()

	hdr, err := header.Parse(`From: "A. G. Bell" <sip:agb@bell-telephone.com>;tag=a48s`)
	if err != nil {
		t.Fatalf("header.Parse() error = %v, want nil", err)
	}
	from := header.As[*header.From](hdr)

	if got, want := from.DisplayName, `"A. G. Bell"`; got != want {
		t.Errorf("from.DisplayName = %q, want %q", got, want)
	}
	if got, want := from.Display(), "A. G. Bell"; got != want {
		t.Errorf("from.Display() = %q, want %q", got, want)
	}
	if tag, ok := from.Tag(); !ok || tag != "a48s" {
		t.Errorf("from.Tag() = (%q, %v), want (%q, true)", tag, ok, "a48s")
	}
	sip, ok := from.URI.(uri.SIP)
	if !ok {
		t.Fatalf("from.URI = %T, want uri.SIP", from.URI)
	}
	if got, want := sip.Username(), "agb"; got != want {
		t.Errorf("sip.Username() = %q, want %q", got, want)
	}

	from.SetTag("xyz")
	if got, want := from.Render(nil), `From: "A. G. Bell" <sip:agb@bell-telephone.com>;tag=xyz`; got != want {
		t.Errorf("from.Render(nil) = %q, want %q", got, want)
	}
	from.SetTag("")
	if _, ok := from.Tag(); ok {
		t.Errorf("from.Tag() ok = true after removal, want false")
	}
}

func TestTo_Build(t *testing.T) {
	t.Parallel()

	var addr header.NameAddr
	addr.SetDisplay(`The "Operator"`)
	addr.URI = uri.NewSIP("sip:operator@cs.columbia.edu")
	to := header.To(addr)
	to.SetTag("287447")

	want := `To: "The \"Operator\"" <sip:operator@cs.columbia.edu>;tag=287447`
	if got := to.Render(nil); got != want {
		t.Errorf("to.Render(nil) = %q, want %q", got, want)
	}
	if got := to.Render(&header.RenderOptions{Compact: true}); got != "t"+want[2:] {
		t.Errorf("to.Render(compact) = %q, want %q", got, "t"+want[2:])
	}

	hdr, err := header.Parse(want)
	if err != nil {
		t.Fatalf("header.Parse(%q) error = %v, want nil", want, err)
	}
	if !hdr.Equal(&to) {
		t.Errorf("parsed %+v is not equal to built %+v", hdr, &to)
	}
}

func TestNameAddr_Forms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		value   string
		display string
		uri     string
		params  header.Params
		render  string
	}{
		{
			"addr spec",
			"sip:alice@atlanta.com;tag=1928301774",
			"", "sip:alice@atlanta.com", header.Params{{"tag", "1928301774"}},
			"<sip:alice@atlanta.com>;tag=1928301774",
		},
		{
			"unquoted display",
			"Bob  Smith <sip:bob@biloxi.com>",
			"Bob  Smith", "sip:bob@biloxi.com", nil,
			"Bob  Smith <sip:bob@biloxi.com>",
		},
		{
			"uri params stay inside brackets",
			`"Alice" <sip:alice@atlanta.com;transport=tcp>;expires=60`,
			"Alice", "sip:alice@atlanta.com;transport=tcp", header.Params{{"expires", "60"}},
			`"Alice" <sip:alice@atlanta.com;transport=tcp>;expires=60`,
		},
		{
			"comma and bracket in quotes",
			`"Doe, <John>" <sip:john@example.com>`,
			"Doe, <John>", "sip:john@example.com", nil,
			`"Doe, <John>" <sip:john@example.com>`,
		},
		{
			"tel",
			"<tel:+1-201-555-0123>",
			"", "tel:+1-201-555-0123", nil,
			"<tel:+1-201-555-0123>",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr, err := header.ParseValue("To", c.value)
			if err != nil {
				t.Fatalf("header.ParseValue(To, %q) error = %v, want nil", c.value, err)
			}
			addr := header.NameAddr(*header.As[*header.To](hdr))
			if got := addr.Display(); got != c.display {
				t.Errorf("addr.Display() = %q, want %q", got, c.display)
			}
			if got := addr.URI.String(); got != c.uri {
				t.Errorf("addr.URI = %q, want %q", got, c.uri)
			}
			if !addr.Params.Equal(c.params) {
				t.Errorf("addr.Params = %v, want %v", addr.Params, c.params)
			}
			if got := hdr.RenderValue(); got != c.render {
				t.Errorf("hdr.RenderValue() = %q, want %q", got, c.render)
			}
		})
	}
}

func TestContact(t *testing.T) {
	t.Parallel()

	hdr, err := header.Parse(`m: "Mr. Watson" <sip:watson@worcester.bell-telephone.com>;q=0.7;expires=3600, <mailto:watson@bell-telephone.com>;q=0.1`)
	if err != nil {
		t.Fatalf("header.Parse() error = %v, want nil", err)
	}
	contact := header.As[header.Contact](hdr)
	if got := len(contact); got != 2 {
		t.Fatalf("len(contact) = %d, want 2", got)
	}
	if contact.IsStar() {
		t.Errorf("contact.IsStar() = true, want false")
	}
	if q, ok := contact[0].Q(); !ok || q != 0.7 {
		t.Errorf("contact[0].Q() = (%v, %v), want (0.7, true)", q, ok)
	}
	if exp, ok := contact[0].Expires(); !ok || exp != time.Hour {
		t.Errorf("contact[0].Expires() = (%v, %v), want (1h, true)", exp, ok)
	}
	if _, ok := contact[1].URI.(uri.Any); !ok {
		t.Errorf("contact[1].URI = %T, want uri.Any", contact[1].URI)
	}

	contact[1].SetQ(1)
	if got, want := contact[1].String(), "<mailto:watson@bell-telephone.com>;q=1.0"; got != want {
		t.Errorf("contact[1].String() = %q, want %q", got, want)
	}

	star := header.Contact{}
	if !star.IsStar() {
		t.Errorf("star.IsStar() = false, want true")
	}
	if got, want := star.Render(nil), "Contact: *"; got != want {
		t.Errorf("star.Render(nil) = %q, want %q", got, want)
	}
	if star.Equal(header.Contact(nil)) {
		t.Errorf("star.Equal(nil contact) = true, want false")
	}
}

func TestRoute_Order(t *testing.T) {
	t.Parallel()

	hdr, err := header.Parse("Record-Route: <sip:p2.example.com;lr>, <sip:p1.example.com;lr>")
	if err != nil {
		t.Fatalf("header.Parse() error = %v, want nil", err)
	}
	rr := header.As[header.RecordRoute](hdr)
	hosts := make([]string, 0, len(rr))
	for _, hop := range rr {
		sip := hop.URI.(uri.SIP) //nolint:forcetypeassert
		if !sip.LR() {
			t.Errorf("hop %q has no lr parameter", hop)
		}
		hosts = append(hosts, sip.Host())
	}
	if got, want := hosts, []string{"p2.example.com", "p1.example.com"}; got[0] != want[0] || got[1] != want[1] {
		t.Errorf("hosts = %v, want %v", got, want)
	}
}
