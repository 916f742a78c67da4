package header

import "fmt"

// DowncastError is the panic value of [As] when the header holds another type.
type DowncastError struct {
	Kind Kind
	Want string
	Got  string
}

func (e *DowncastError) Error() string {
	return fmt.Sprintf("header %s: can not downcast %s to %s", e.Kind, e.Got, e.Want)
}

// Is reports whether hdr holds a header of type T.
// For T being the [Header] interface itself it is true for any non-nil hdr.
func Is[T Header](hdr Header) bool {
	_, ok := hdr.(T)
	return ok
}

// As returns hdr as the concrete header type T.
// It panics with [*DowncastError] if hdr holds another type.
func As[T Header](hdr Header) T {
	h, ok := hdr.(T)
	if !ok {
		var zero T
		e := &DowncastError{Want: fmt.Sprintf("%T", zero), Got: fmt.Sprintf("%T", hdr)}
		if hdr != nil {
			e.Kind = hdr.Kind()
		}
		panic(e)
	}
	return h
}

// AsOK returns hdr as the concrete header type T and reports whether the conversion succeeded.
func AsOK[T Header](hdr Header) (T, bool) {
	h, ok := hdr.(T)
	return h, ok
}
