package util

import (
	"bufio"
	"bytes"
	"io"
	"sync"
)

var bytesRdrPool = sync.Pool{
	New: func() any { return bytes.NewReader(nil) },
}

func GetBytesReader(b []byte) *bytes.Reader {
	r := bytesRdrPool.Get().(*bytes.Reader) //nolint:forcetypeassert
	r.Reset(b)
	return r
}

func FreeBytesReader(r *bytes.Reader) {
	r.Reset(nil)
	bytesRdrPool.Put(r)
}

var bufRdrPool = sync.Pool{
	New: func() any { return bufio.NewReaderSize(nil, 4096) },
}

func GetBufReader(r io.Reader) *bufio.Reader {
	br := bufRdrPool.Get().(*bufio.Reader) //nolint:forcetypeassert
	br.Reset(r)
	return br
}

func FreeBufReader(br *bufio.Reader) {
	br.Reset(nil)
	bufRdrPool.Put(br)
}
