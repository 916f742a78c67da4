// Package uri implements parsing and canonicalization of the URIs found in SIP messages
// (RFC 3261 sip: and sips:, RFC 3966 tel:) plus a fallback for any other absolute URI.
//
// # Overview
//
// The package implements three URI types:
//
//   - [SIP]: sip and sips URIs with userinfo, host, port, parameters and headers.
//   - [Tel]: telephone URIs, convertible to SIP URIs with [Tel.ToSIP].
//   - [Any]: any other absolute URI (http:, urn:, ...etc.) on top of [net/url].
//
// All of them implement the [URI] interface.
//
// # Canonical form
//
// A URI is built once from text and never changes. Building produces a canonical spec string
// together with the location of every component inside it:
//
//	u := uri.NewSIP("SIP:Alice@Atlanta.COM;param=@route66?subject=Project X")
//	u.Spec()       // "sip:Alice@atlanta.com;param=%40route66?subject=Project%20X"
//	u.Username()   // "Alice"
//	u.Parameters() // ";param=%40route66"
//	u.Headers()    // "subject=Project%20X"
//
// The scheme and host are lower-cased, IPv4 and IPv6 hosts are normalized,
// and every component is percent-escaped with its own character class. Existing escapes are kept,
// so canonicalization is a fixed point: NewSIP(u.Spec()).Spec() == u.Spec().
//
// Invalid text never fails construction. It yields an invalid value whose [URI.Spec] is empty,
// while [URI.PossiblyInvalidSpec] keeps the trimmed input. [Parse], [ParseSIP], [ParseTel] and
// [ParseAny] report such input with [ErrInvalidURI].
//
// # Equality
//
// URIs are equal when their canonical specs are equal, [SIP.Compare] and [Tel.Compare]
// order them by spec. Parameter and header lookups ([SIP.Param], [SIP.Header]) compare names
// case-insensitively and return unescaped values.
//
// # Thread Safety
//
// URI values are immutable and safe to share between goroutines.
package uri
