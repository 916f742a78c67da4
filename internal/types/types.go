// Package types contains common types shared by the header, uri and sip packages.
package types

import (
	"io"

	"github.com/google/go-cmp/cmp"
)

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
type RenderOptions struct {
	// Compact switches header names to their compact forms where one exists.
	Compact bool `json:"compact,omitempty"`
}

// IsCompact is a nil-safe accessor of the Compact flag.
func (o *RenderOptions) IsCompact() bool {
	return o != nil && o.Compact
}

type ValidFlag interface {
	IsValid() bool
}

// IsValid returns true if the value has method `IsValid() bool` and it returns true.
func IsValid(v any) bool {
	vv, ok := v.(ValidFlag)
	return ok && vv.IsValid()
}

type Equalable interface {
	Equal(val any) bool
}

// IsEqual returns true if the values are equal.
// Values implementing [Equalable] are compared with their own Equal method.
func IsEqual(v1, v2 any) bool {
	if e, ok := v1.(Equalable); ok {
		return e.Equal(v2)
	}
	return cmp.Equal(v1, v2)
}

type Cloneable[T any] interface {
	Clone() T
}

// Clone clones the value if it has method `Clone() T`, otherwise returns a zero value.
func Clone[T any](v any) T {
	if v1, ok := v.(Cloneable[T]); ok {
		return v1.Clone()
	}
	if v == nil {
		var zero T
		return zero
	}
	v1, _ := v.(T)
	return v1
}
