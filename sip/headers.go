package sip

import (
	"io"
	"iter"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Headers is an ordered list of message headers.
// Duplicates are allowed, the order is the wire order of parsed messages
// or the insertion order of built ones.
//
// Lookups by name resolve compact and full names to the same canonical name
// and are case-insensitive.
type Headers []header.Header

// Len returns the number of headers.
func (hs Headers) Len() int { return len(hs) }

// Append adds headers to the end of the list.
func (hs *Headers) Append(hdrs ...header.Header) {
	*hs = append(*hs, nonNil(hdrs)...)
}

// Prepend adds headers to the beginning of the list keeping their order.
func (hs *Headers) Prepend(hdrs ...header.Header) {
	*hs = slices.Insert(*hs, 0, nonNil(hdrs)...)
}

// Insert inserts headers at position i, which is clamped to the list bounds.
func (hs *Headers) Insert(i int, hdrs ...header.Header) {
	i = max(0, min(i, len(*hs)))
	*hs = slices.Insert(*hs, i, nonNil(hdrs)...)
}

// Remove deletes all headers with the name and returns the number of removed headers.
func (hs *Headers) Remove(name string) int {
	cname := header.CanonicName(name)
	return hs.removeFunc(func(h header.Header) bool { return h.CanonicName() == cname })
}

// RemoveKind deletes all headers of the kind and returns the number of removed headers.
// [header.KindOther] removes all unknown headers.
func (hs *Headers) RemoveKind(k header.Kind) int {
	return hs.removeFunc(func(h header.Header) bool { return h.Kind() == k })
}

func (hs *Headers) removeFunc(del func(header.Header) bool) int {
	n := len(*hs)
	*hs = slices.DeleteFunc(*hs, del)
	return n - len(*hs)
}

// Has reports whether a header with the name is present.
func (hs Headers) Has(name string) bool {
	_, ok := hs.First(name)
	return ok
}

// First returns the first header with the name.
func (hs Headers) First(name string) (header.Header, bool) {
	for h := range hs.All(name) {
		return h, true
	}
	return nil, false
}

// All returns an iterator over headers with the name in order.
func (hs Headers) All(name string) iter.Seq[header.Header] {
	cname := header.CanonicName(name)
	return func(yield func(header.Header) bool) {
		for _, h := range hs {
			if h.CanonicName() == cname && !yield(h) {
				return
			}
		}
	}
}

// Kinds returns the distinct header kinds in order of the first appearance.
func (hs Headers) Kinds() []header.Kind {
	var ks []header.Kind
	for _, h := range hs {
		if !slices.Contains(ks, h.Kind()) {
			ks = append(ks, h.Kind())
		}
	}
	return ks
}

// Clone returns a deep copy of the headers.
func (hs Headers) Clone() Headers {
	if hs == nil {
		return nil
	}
	out := make(Headers, len(hs))
	for i, h := range hs {
		out[i] = h.Clone()
	}
	return out
}

// Equal compares the headers one by one in order.
func (hs Headers) Equal(val any) bool {
	var other Headers
	switch v := val.(type) {
	case Headers:
		other = v
	case *Headers:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hs, other, func(h1, h2 header.Header) bool { return h1.Equal(h2) })
}

// IsValid reports whether every header is valid.
func (hs Headers) IsValid() bool {
	return !slices.ContainsFunc(hs, func(h header.Header) bool { return !h.IsValid() })
}

// RenderTo writes each header followed by CRLF.
func (hs Headers) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, h := range hs {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(h.RenderTo(w, opts)) })
		cw.WriteString("\r\n")
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the headers block, each header terminated with CRLF.
func (hs Headers) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hs.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// CallID returns the first Call-ID header.
func (hs Headers) CallID() (header.CallID, bool) { return FirstOf[header.CallID](hs) }

// CSeq returns the first CSeq header.
func (hs Headers) CSeq() (*header.CSeq, bool) { return FirstOf[*header.CSeq](hs) }

// From returns the first From header.
func (hs Headers) From() (*header.From, bool) { return FirstOf[*header.From](hs) }

// To returns the first To header.
func (hs Headers) To() (*header.To, bool) { return FirstOf[*header.To](hs) }

// ContentLength returns the first Content-Length header.
func (hs Headers) ContentLength() (header.ContentLength, bool) {
	return FirstOf[header.ContentLength](hs)
}

// MaxForwards returns the first Max-Forwards header.
func (hs Headers) MaxForwards() (header.MaxForwards, bool) {
	return FirstOf[header.MaxForwards](hs)
}

// Via returns an iterator over all Via hops of all Via headers, topmost first.
func (hs Headers) Via() iter.Seq[header.ViaHop] {
	return func(yield func(header.ViaHop) bool) {
		for via := range AllOf[header.Via](hs) {
			for _, hop := range via {
				if !yield(hop) {
					return
				}
			}
		}
	}
}

// FirstOf returns the first header of type T.
func FirstOf[T header.Header](hs Headers) (T, bool) {
	for h := range AllOf[T](hs) {
		return h, true
	}
	var zero T
	return zero, false
}

// AllOf returns an iterator over headers of type T in order.
func AllOf[T header.Header](hs Headers) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, h := range hs {
			if v, ok := header.AsOK[T](h); ok && !yield(v) {
				return
			}
		}
	}
}

func nonNil(hdrs []header.Header) []header.Header {
	if !slices.Contains(hdrs, nil) {
		return hdrs
	}
	return slices.DeleteFunc(slices.Clone(hdrs), func(h header.Header) bool { return h == nil })
}

// setContentLength updates the first Content-Length header or appends a new one.
func (hs *Headers) setContentLength(n int) {
	for i, h := range *hs {
		if h.Kind() == header.KindContentLength {
			(*hs)[i] = header.ContentLength(n)
			return
		}
	}
	hs.Append(header.ContentLength(n))
}
