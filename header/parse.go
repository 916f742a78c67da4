package header

import (
	"strconv"
	"strings"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Parser is a function type for parsing a custom SIP header.
// Returning nil makes the header fall back to [Other].
type Parser func(name, value string) Header

var customParsers sync.Map // map[string]Parser

// RegisterParser registers a custom parser for headers the package does not know.
// Parsers for known header names are never consulted.
func RegisterParser(name string, parser Parser) {
	customParsers.Store(util.LCase(name), parser)
}

// UnregisterParser unregisters a custom SIP header parser.
func UnregisterParser(name string) {
	customParsers.Delete(util.LCase(name))
}

// Parse parses a "Name: value" header line.
//
// Example usage:
//
//	hdr, err := header.Parse("From: <sip:alice@example.com>;tag=qwerty")
func Parse[T ~string | ~[]byte](s T) (Header, error) {
	name, value, ok := strings.Cut(string(s), ":")
	name = grammar.TrimLWS(name)
	if !ok || !grammar.IsToken(name) {
		return nil, errtrace.Wrap(&ParseError{
			Name:  name,
			Value: value,
			Err:   errorutil.NewWrapperError(ErrInvalidHeader, "malformed header line"),
		})
	}
	return errtrace.Wrap2(ParseValue(name, value))
}

// ParseValue parses the value of the header with the name.
//
// Unknown names never fail: they are handled by a parser registered with [RegisterParser]
// or kept verbatim as [*Other]. A malformed value of a known header
// returns a [*ParseError] wrapping [ErrInvalidHeader].
func ParseValue(name, value string) (Header, error) {
	value = grammar.TrimLWS(value)
	k := KindOf(name)
	if k == KindOther {
		if prs, ok := customParsers.Load(util.LCase(grammar.TrimLWS(name))); ok && prs != nil {
			if hdr := prs.(Parser)(name, value); hdr != nil { //nolint:forcetypeassert
				return hdr, nil
			}
		}
		return &Other{Name: grammar.TrimLWS(name), Value: value}, nil
	}

	hdr, err := k.parse(value)
	if err != nil {
		return nil, errtrace.Wrap(&ParseError{Name: name, Value: value, Err: err})
	}
	return hdr, nil
}

func errEmptyValue() error {
	return errorutil.NewWrapperError(ErrInvalidHeader, "empty value") //errtrace:skip
}

// parseTokenList parses a comma-separated list where every element is checked with valid.
// An empty value yields an empty list.
func parseTokenList(value string, valid func(string) bool) ([]string, error) {
	parts := grammar.SplitList(value, ',')
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if !valid(p) {
			return nil, errtrace.Wrap(newInvalidPartErr("list element %q", p))
		}
		list = append(list, p)
	}
	return list, nil
}

func parseUint(value string, bitSize int) (uint64, error) {
	if value == "" {
		return 0, errtrace.Wrap(errEmptyValue())
	}
	if !grammar.IsDigits(value) {
		return 0, errtrace.Wrap(newInvalidPartErr("number %q", value))
	}
	n, err := strconv.ParseUint(value, 10, bitSize)
	if err != nil {
		return 0, errtrace.Wrap(newInvalidPartErr("number %q", value))
	}
	return n, nil
}

// parseTokenParams parses the "token *(;param)" form.
func parseTokenParams(value string) (TokenParams, error) {
	tok, rest, _ := grammar.Cut(value, ';')
	tok = grammar.TrimLWS(tok)
	if !grammar.IsToken(tok) {
		return TokenParams{}, errtrace.Wrap(newInvalidPartErr("token %q", tok))
	}
	ps, err := parseParams(rest)
	if err != nil {
		return TokenParams{}, errtrace.Wrap(err)
	}
	return TokenParams{Value: tok, Params: ps}, nil
}

// parseList parses a comma-separated list with fn applied to every element.
// An empty value yields an empty list.
func parseList[E any](value string, fn func(string) (E, error)) ([]E, error) {
	parts := grammar.SplitList(value, ',')
	list := make([]E, 0, len(parts))
	for _, p := range parts {
		e, err := fn(p)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		list = append(list, e)
	}
	return list, nil
}

// isText reports whether s is non-empty UTF-8 text without control characters.
func isText(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if c := s[i]; c < 0x20 && c != '\t' || c == 0x7f {
			return false
		}
	}
	return true
}
