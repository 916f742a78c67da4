// Package constraints provides type constraints shared by the parsers.
package constraints

// Byteseq represents a generic UTF-8 byte string.
type Byteseq interface {
	~string | ~[]byte
}

// Unsigned represents the unsigned integer kinds used by numeric header values.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
