package grammar

import (
	"github.com/ghettovoice/abnf"
	"github.com/ghettovoice/abnf/pkg/abnf_core"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

// Rule keys used to pick sub-matches out of a matched node.
const (
	KeyDisplayName = "display-name"
	KeyAddrSpec    = "addr-spec"
	KeyParamName   = "param-name"
	KeyGenValue    = "gen-value"
)

var core = abnf_core.Operators()

// oneOf matches a single byte out of set.
func oneOf(key, set string) abnf.Operator {
	ops := make([]abnf.Operator, len(set))
	for i := range len(set) {
		ops[i] = abnf.LiteralCS(key+"/"+set[i:i+1], []byte{set[i]})
	}
	return abnf.AltFirst(key, ops[0], ops[1:]...)
}

func char(key string, c byte) abnf.Operator { return abnf.LiteralCS(key, []byte{c}) }

func octets(key string, low, high byte) abnf.Operator {
	return abnf.Range(key, []byte{low}, []byte{high})
}

// RFC 3261 basic rules.
var (
	alphanum = abnf.AltFirst("alphanum", core.ALPHA, core.DIGIT)

	// LWS = [*WSP CRLF] 1*WSP
	lws = abnf.ConcatAll(
		"LWS",
		abnf.Optional("LWS/fold", abnf.ConcatAll("LWS/fold-seq", abnf.Repeat0Inf("LWS/lead", core.WSP), core.CRLF)),
		abnf.Repeat1Inf("LWS/wsp", core.WSP),
	)
	sws = abnf.Optional("SWS", lws)

	token = abnf.Repeat1Inf("token", abnf.AltFirst(
		"token-char",
		alphanum,
		oneOf("token-mark", "-.!%*_+`'~"),
	))

	word = abnf.Repeat1Inf("word", abnf.AltFirst(
		"word-char",
		alphanum,
		oneOf("word-mark", "-.!%*_+`'~()<>:\\\"/[]?{}"),
	))

	// qdtext = LWS / %x21 / %x23-5B / %x5D-7E / UTF8-NONASCII,
	// LWS is split into single WSP and CRLF WSP so that runs of spaces match one way.
	qdtext = abnf.AltFirst(
		"qdtext",
		core.WSP,
		abnf.ConcatAll("qdtext/fold", core.CRLF, core.WSP),
		char("qdtext/x21", 0x21),
		octets("qdtext/x23-5B", 0x23, 0x5B),
		octets("qdtext/x5D-7E", 0x5D, 0x7E),
		octets("qdtext/x80-FF", 0x80, 0xFF),
	)
	// quoted-pair = "\" (%x00-09 / %x0B-0C / %x0E-7F)
	quotedPair = abnf.ConcatAll(
		"quoted-pair",
		char("quoted-pair/bslash", '\\'),
		abnf.AltFirst(
			"quoted-pair/char",
			octets("quoted-pair/x00-09", 0x00, 0x09),
			octets("quoted-pair/x0B-0C", 0x0B, 0x0C),
			octets("quoted-pair/x0E-7F", 0x0E, 0x7F),
		),
	)
	quotedString = abnf.ConcatAll(
		"quoted-string",
		core.DQUOTE,
		abnf.Repeat0Inf("quoted-string/text", abnf.AltFirst("quoted-string/part", qdtext, quotedPair)),
		core.DQUOTE,
	)

	// display-name = quoted-string / token *(LWS token), the surrounding LWS is trimmed by callers
	displayName = abnf.AltFirst(
		KeyDisplayName,
		quotedString,
		abnf.ConcatAll(
			"display-name/tokens",
			token,
			abnf.Repeat0Inf("display-name/more", abnf.ConcatAll("display-name/next", lws, token)),
		),
	)

	// name-addr = [display-name SWS] "<" addr-spec ">",
	// addr-spec is left to the URI parser and runs up to the closing bracket.
	nameAddr = abnf.ConcatAll(
		"name-addr",
		abnf.Optional("name-addr/display", abnf.ConcatAll("name-addr/display-seq", displayName, sws)),
		char("LAQUOT", '<'),
		abnf.Repeat1Inf(KeyAddrSpec, abnf.AltFirst(
			"addr-spec/char",
			octets("addr-spec/x00-3D", 0x00, 0x3D),
			octets("addr-spec/x3F-FF", 0x3F, 0xFF),
		)),
		char("RAQUOT", '>'),
	)
)

// Host rules of RFC 3261 with labels relaxed to alphanumerics, '-' and '_'.
var (
	// hostname = label *("." label) ["."]
	hostLabel = abnf.Repeat1Inf("domainlabel", abnf.AltFirst("domainlabel/char", alphanum, oneOf("domainlabel/mark", "-_")))
	hostname  = abnf.ConcatAll(
		"hostname",
		hostLabel,
		abnf.Repeat0Inf("hostname/labels", abnf.ConcatAll("hostname/label", char("hostname/dot", '.'), hostLabel)),
		abnf.Optional("hostname/root", char("hostname/root-dot", '.')),
	)

	dec         = abnf.Repeat("IPv4address/dec", 1, 3, core.DIGIT)
	ipv4Address = abnf.ConcatAll(
		"IPv4address",
		dec, char("IPv4address/dot1", '.'),
		dec, char("IPv4address/dot2", '.'),
		dec, char("IPv4address/dot3", '.'),
		dec,
	)

	// hexpart = hexseq / hexseq "::" [hexseq] / "::" [hexseq]
	hex4        = abnf.Repeat("hex4", 1, 4, core.HEXDIG)
	hexseq      = abnf.ConcatAll("hexseq", hex4, abnf.Repeat0Inf("hexseq/more", abnf.ConcatAll("hexseq/next", char("hexseq/colon", ':'), hex4)))
	dcolon      = abnf.LiteralCS("hexpart/dcolon", []byte("::"))
	ipv6Address = abnf.ConcatAll(
		"IPv6address",
		abnf.Alt(
			"hexpart",
			hexseq,
			abnf.ConcatAll("hexpart/compressed", hexseq, dcolon, abnf.Optional("hexpart/tail", hexseq)),
			abnf.ConcatAll("hexpart/leading", dcolon, abnf.Optional("hexpart/leading-tail", hexseq)),
		),
		abnf.Optional("IPv6address/v4", abnf.ConcatAll("IPv6address/v4-seq", char("IPv6address/colon", ':'), ipv4Address)),
	)
	ipv6Reference = abnf.ConcatAll("IPv6reference", char("IPv6reference/open", '['), ipv6Address, char("IPv6reference/close", ']'))

	host = abnf.Alt("host", hostname, ipv4Address, ipv6Reference)

	// gen-value = token / host / quoted-string
	genValue = abnf.Alt(KeyGenValue, token, host, quotedString)

	// generic-param = token [ SWS "=" SWS gen-value ]
	genericParam = abnf.ConcatAll(
		"generic-param",
		abnf.ConcatAll(KeyParamName, token),
		abnf.Optional("generic-param/value", abnf.ConcatAll(
			"generic-param/value-seq",
			sws, char("EQUAL", '='), sws,
			genValue,
		)),
	)
)

// Telephone number rules of RFC 3966.
var (
	visualSep     = oneOf("visual-separator", "-.()")
	phonedigit    = abnf.AltFirst("phonedigit", core.DIGIT, visualSep)
	phonedigitHex = abnf.AltFirst("phonedigit-hex", core.HEXDIG, oneOf("phonedigit-hex/mark", "*#"), visualSep)

	// global-number-digits = "+" *phonedigit DIGIT *phonedigit
	globalNumber = abnf.ConcatAll(
		"global-number-digits",
		char("global-number-digits/plus", '+'),
		abnf.Repeat0Inf("global-number-digits/lead", phonedigit),
		core.DIGIT,
		abnf.Repeat0Inf("global-number-digits/tail", phonedigit),
	)

	// local-number-digits = *phonedigit-hex (HEXDIG / "*" / "#") *phonedigit-hex
	localNumber = abnf.ConcatAll(
		"local-number-digits",
		abnf.Repeat0Inf("local-number-digits/lead", phonedigitHex),
		abnf.AltFirst("local-number-digits/digit", core.HEXDIG, oneOf("local-number-digits/mark", "*#")),
		abnf.Repeat0Inf("local-number-digits/tail", phonedigitHex),
	)
)

// match runs op over the whole s and returns the longest match if it spans all of s.
func match[T ~string | ~[]byte](op abnf.Operator, s T) (*abnf.Node, bool) {
	if len(s) == 0 {
		return nil, false
	}
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return nil, false
	}
	n := ns.Best()
	return n, n.Len() == len(s)
}

// prefix returns the length of the longest match of op at the start of s, or -1.
func prefix[T ~string | ~[]byte](op abnf.Operator, s T) (*abnf.Node, int) {
	if len(s) == 0 {
		return nil, -1
	}
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return nil, -1
	}
	n := ns.Best()
	return n, n.Len()
}

func matches[T ~string | ~[]byte](op abnf.Operator, s T) bool {
	_, ok := match(op, s)
	return ok
}
