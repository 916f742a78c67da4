// Package sip models, parses and renders SIP messages as described in RFC 3261.
//
// # Messages
//
// A message is either [*Request] or [*Response], both implement [Message].
// Headers are kept in [Headers], an ordered list of [header.Header] values
// that preserves the wire order and duplicates:
//
//	req := sip.NewRequest(sip.MethodOptions, uri.NewSIP("sip:bob@biloxi.com"))
//	req.Headers.Append(
//		header.Via{{ProtoName: "SIP", ProtoVersion: "2.0", Transport: "UDP", Host: "pc33.atlanta.com"}},
//		header.MaxForwards(70),
//	)
//	req.SetBody(nil) // Content-Length: 0
//
// Typed getters, [FirstOf] and [AllOf] look up headers by their concrete type.
//
// # Parsing
//
// [Parse] parses a single message from a datagram, [ParseStream] iterates over messages
// of a byte stream framed by Content-Length. Malformed start lines reject the message,
// malformed header values are handled according to [ParseOptions.Policy],
// unknown headers are kept as [*header.Other].
//
//	msg, err := sip.Parse(pkt, &sip.ParseOptions{Policy: sip.PolicyKeepInvalid})
//	if req, ok := sip.AsRequest(msg); ok {
//		// ...
//	}
//
// # Dispatching
//
// [Dispatcher] reads a stream and passes messages to a [Handler].
// [Metrics] exports parser counters to Prometheus.
package sip
