package header

import (
	"slices"

	"github.com/ghettovoice/sipmsg/internal/util"
)

// Kind identifies a known header type.
type Kind uint8

const (
	KindOther Kind = iota
	KindAccept
	KindAcceptEncoding
	KindAcceptLanguage
	KindAlertInfo
	KindAllow
	KindAllowEvents
	KindAuthenticationInfo
	KindAuthorization
	KindCallID
	KindCallInfo
	KindContact
	KindContentDisposition
	KindContentEncoding
	KindContentLanguage
	KindContentLength
	KindContentType
	KindCSeq
	KindDate
	KindErrorInfo
	KindEvent
	KindExpires
	KindFrom
	KindInReplyTo
	KindMaxForwards
	KindMIMEVersion
	KindMinExpires
	KindMinSE
	KindOrganization
	KindPath
	KindPriority
	KindProxyAuthenticate
	KindProxyAuthorization
	KindProxyRequire
	KindRAck
	KindReason
	KindRecordRoute
	KindReferTo
	KindReferredBy
	KindReplyTo
	KindRequire
	KindRetryAfter
	KindRoute
	KindRSeq
	KindServer
	KindSessionExpires
	KindSubject
	KindSubscriptionState
	KindSupported
	KindTimestamp
	KindTo
	KindUnsupported
	KindUserAgent
	KindVia
	KindWarning
	KindWWWAuthenticate

	numKinds
)

type kindInfo struct {
	name    Name
	compact Name
}

var kinds = [numKinds]kindInfo{
	KindOther:              {},
	KindAccept:             {"Accept", ""},
	KindAcceptEncoding:     {"Accept-Encoding", ""},
	KindAcceptLanguage:     {"Accept-Language", ""},
	KindAlertInfo:          {"Alert-Info", ""},
	KindAllow:              {"Allow", ""},
	KindAllowEvents:        {"Allow-Events", "u"},
	KindAuthenticationInfo: {"Authentication-Info", ""},
	KindAuthorization:      {"Authorization", ""},
	KindCallID:             {"Call-ID", "i"},
	KindCallInfo:           {"Call-Info", ""},
	KindContact:            {"Contact", "m"},
	KindContentDisposition: {"Content-Disposition", ""},
	KindContentEncoding:    {"Content-Encoding", "e"},
	KindContentLanguage:    {"Content-Language", ""},
	KindContentLength:      {"Content-Length", "l"},
	KindContentType:        {"Content-Type", "c"},
	KindCSeq:               {"CSeq", ""},
	KindDate:               {"Date", ""},
	KindErrorInfo:          {"Error-Info", ""},
	KindEvent:              {"Event", "o"},
	KindExpires:            {"Expires", ""},
	KindFrom:               {"From", "f"},
	KindInReplyTo:          {"In-Reply-To", ""},
	KindMaxForwards:        {"Max-Forwards", ""},
	KindMIMEVersion:        {"MIME-Version", ""},
	KindMinExpires:         {"Min-Expires", ""},
	KindMinSE:              {"Min-SE", ""},
	KindOrganization:       {"Organization", ""},
	KindPath:               {"Path", ""},
	KindPriority:           {"Priority", ""},
	KindProxyAuthenticate:  {"Proxy-Authenticate", ""},
	KindProxyAuthorization: {"Proxy-Authorization", ""},
	KindProxyRequire:       {"Proxy-Require", ""},
	KindRAck:               {"RAck", ""},
	KindReason:             {"Reason", ""},
	KindRecordRoute:        {"Record-Route", ""},
	KindReferTo:            {"Refer-To", "r"},
	KindReferredBy:         {"Referred-By", "b"},
	KindReplyTo:            {"Reply-To", ""},
	KindRequire:            {"Require", ""},
	KindRetryAfter:         {"Retry-After", ""},
	KindRoute:              {"Route", ""},
	KindRSeq:               {"RSeq", ""},
	KindServer:             {"Server", ""},
	KindSessionExpires:     {"Session-Expires", "x"},
	KindSubject:            {"Subject", "s"},
	KindSubscriptionState:  {"Subscription-State", ""},
	KindSupported:          {"Supported", "k"},
	KindTimestamp:          {"Timestamp", ""},
	KindTo:                 {"To", "t"},
	KindUnsupported:        {"Unsupported", ""},
	KindUserAgent:          {"User-Agent", ""},
	KindVia:                {"Via", "v"},
	KindWarning:            {"Warning", ""},
	KindWWWAuthenticate:    {"WWW-Authenticate", ""},
}

var (
	// full names sorted case-insensitively for binary search
	sortedKinds []Kind
	// compact letter to kind
	compactKinds [26]Kind
)

func init() {
	sortedKinds = make([]Kind, 0, numKinds-1)
	for k := KindOther + 1; k < numKinds; k++ {
		sortedKinds = append(sortedKinds, k)
		if c := kinds[k].compact; c != "" {
			compactKinds[util.LowerASCII(c[0])-'a'] = k
		}
	}
	slices.SortFunc(sortedKinds, func(a, b Kind) int {
		return util.CmpFold(string(kinds[a].name), string(kinds[b].name))
	})
}

// KindOf resolves a header name, full or compact, in any letter case.
// Unknown names resolve to [KindOther].
func KindOf[T ~string](name T) Kind {
	n := string(util.TrimSP(name))
	if len(n) == 1 {
		c := util.LowerASCII(n[0])
		if c >= 'a' && c <= 'z' {
			return compactKinds[c-'a']
		}
		return KindOther
	}
	i, ok := slices.BinarySearchFunc(sortedKinds, n, func(k Kind, n string) int {
		return util.CmpFold(string(kinds[k].name), n)
	})
	if !ok {
		return KindOther
	}
	return sortedKinds[i]
}

// String returns the canonical header name of the kind or "Other".
func (k Kind) String() string {
	if k == KindOther || k >= numKinds {
		return "Other"
	}
	return string(kinds[k].name)
}

// CanonicName returns the canonical header name of the kind.
func (k Kind) CanonicName() Name {
	if k >= numKinds {
		return ""
	}
	return kinds[k].name
}

// CompactName returns the compact header name or the canonical one if the kind has no compact form.
func (k Kind) CompactName() Name {
	if k >= numKinds {
		return ""
	}
	if c := kinds[k].compact; c != "" {
		return c
	}
	return kinds[k].name
}

// HasCompactName reports whether the kind has a compact form.
func (k Kind) HasCompactName() bool {
	return k < numKinds && kinds[k].compact != ""
}

// parse invokes the value parser of the kind.
func (k Kind) parse(value string) (Header, error) {
	switch k {
	case KindAccept:
		return parseAccept(value)
	case KindAcceptEncoding:
		return parseAcceptEncoding(value)
	case KindAcceptLanguage:
		return parseAcceptLanguage(value)
	case KindAlertInfo:
		return parseAlertInfo(value)
	case KindAllow:
		return parseAllow(value)
	case KindAllowEvents:
		return parseAllowEvents(value)
	case KindAuthenticationInfo:
		return parseAuthenticationInfo(value)
	case KindAuthorization:
		return parseAuthorization(value)
	case KindCallID:
		return parseCallID(value)
	case KindCallInfo:
		return parseCallInfo(value)
	case KindContact:
		return parseContact(value)
	case KindContentDisposition:
		return parseContentDisposition(value)
	case KindContentEncoding:
		return parseContentEncoding(value)
	case KindContentLanguage:
		return parseContentLanguage(value)
	case KindContentLength:
		return parseContentLength(value)
	case KindContentType:
		return parseContentType(value)
	case KindCSeq:
		return parseCSeq(value)
	case KindDate:
		return parseDate(value)
	case KindErrorInfo:
		return parseErrorInfo(value)
	case KindEvent:
		return parseEvent(value)
	case KindExpires:
		return parseExpires(value)
	case KindFrom:
		return parseFrom(value)
	case KindInReplyTo:
		return parseInReplyTo(value)
	case KindMaxForwards:
		return parseMaxForwards(value)
	case KindMIMEVersion:
		return parseMIMEVersion(value)
	case KindMinExpires:
		return parseMinExpires(value)
	case KindMinSE:
		return parseMinSE(value)
	case KindOrganization:
		return parseOrganization(value)
	case KindPath:
		return parsePath(value)
	case KindPriority:
		return parsePriority(value)
	case KindProxyAuthenticate:
		return parseProxyAuthenticate(value)
	case KindProxyAuthorization:
		return parseProxyAuthorization(value)
	case KindProxyRequire:
		return parseProxyRequire(value)
	case KindRAck:
		return parseRAck(value)
	case KindReason:
		return parseReason(value)
	case KindRecordRoute:
		return parseRecordRoute(value)
	case KindReferTo:
		return parseReferTo(value)
	case KindReferredBy:
		return parseReferredBy(value)
	case KindReplyTo:
		return parseReplyTo(value)
	case KindRequire:
		return parseRequire(value)
	case KindRetryAfter:
		return parseRetryAfter(value)
	case KindRoute:
		return parseRoute(value)
	case KindRSeq:
		return parseRSeq(value)
	case KindServer:
		return parseServer(value)
	case KindSessionExpires:
		return parseSessionExpires(value)
	case KindSubject:
		return parseSubject(value)
	case KindSubscriptionState:
		return parseSubscriptionState(value)
	case KindSupported:
		return parseSupported(value)
	case KindTimestamp:
		return parseTimestamp(value)
	case KindTo:
		return parseTo(value)
	case KindUnsupported:
		return parseUnsupported(value)
	case KindUserAgent:
		return parseUserAgent(value)
	case KindVia:
		return parseVia(value)
	case KindWarning:
		return parseWarning(value)
	case KindWWWAuthenticate:
		return parseWWWAuthenticate(value)
	default:
		return nil, nil
	}
}
