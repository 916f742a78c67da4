// Package header provides typed SIP message headers defined by RFC 3261 and related extensions.
//
// # Overview
//
// Every header implements the [Header] interface: it reports its [Kind], canonical
// and compact names, renders itself with or without the name prefix, and supports
// cloning, equality and validity checks. The package knows 55 header kinds, from
// Accept to WWW-Authenticate. Names that resolve to no known kind are kept verbatim
// as [*Other].
//
// Headers are built from a few value shapes:
//
//   - single scalars, i.e. [CallID], [ContentLength], [Date];
//   - comma-separated lists, i.e. [Allow], [Supported], [Via];
//   - name-addr entries with parameters, see [NameAddr];
//   - media types and token with parameters, see [MIMEType] and [TokenParams];
//   - authentication scheme with auth-params, see [Credentials] and [Challenge].
//
// # Parsing
//
// [Parse] parses a whole "Name: value" line, [ParseValue] parses a value of the named header:
//
//	hdr, err := header.Parse("f: Alice <sip:alice@atlanta.com>;tag=1928301774")
//	from := header.As[*header.From](hdr)
//
// Names are case-insensitive and compact forms resolve to the same kind, see [KindOf].
// A malformed value of a known header fails with [*ParseError] wrapping [ErrInvalidHeader].
// An empty value of a list header yields an empty list, an empty value of a scalar header is an error.
//
// # Downcasting
//
// [Is], [As] and [AsOK] convert a [Header] to its concrete type.
// [As] panics with [*DowncastError] when the header holds another type.
//
// # Custom parsers
//
// Extension headers may be handled by parsers registered with [RegisterParser].
// A parser returning nil makes the header fall back to [*Other].
//
//	func init() {
//		header.RegisterParser("X-Custom", func(name, value string) header.Header {
//			return &MyHeader{Value: value}
//		})
//	}
//
// # Parameters
//
// [Params] is an ordered list. Names are compared case-sensitively, the first match wins
// and duplicates are kept. Quality values are rendered by [FormatQValue].
//
// # Rendering
//
// [RenderOptions] can be nil for default formatting with canonical names.
// The Compact flag switches headers that have a compact form to their single letter names.
//
//	hdr.Render(nil)                            // "Content-Type: application/sdp"
//	hdr.Render(&header.RenderOptions{Compact: true}) // "c: application/sdp"
//	hdr.RenderValue()                          // "application/sdp"
//
// # JSON
//
// Headers marshal to {"name":"<CanonicName>","value":"<RenderValue>"} objects,
// see [ToJSON] and [FromJSON]. Unmarshaling re-parses the value.
package header
