package sharecode

import (
	"io"

	"github.com/tutils/lcgviz/lcg"
)

// Lehmer's minimal standard generator drives the mask.
var maskParams = lcg.Params{M: 1<<31 - 1, A: 16807}

func newKeystream(key uint64) *lcg.Source {
	p := maskParams
	// Zero is a fixed point of a multiplicative generator.
	p.Seed = key%(p.M-1) + 1
	src, err := lcg.NewSource(p)
	if err != nil {
		panic(err)
	}
	src.Next()
	return src
}

func xorKeystream(ks *lcg.Source, buf []byte) {
	for i := range buf {
		buf[i] ^= byte(ks.Next())
	}
}

type maskWriter struct {
	w   io.Writer
	ks  *lcg.Source
	buf []byte
}

func newMaskWriter(w io.Writer, key uint64) *maskWriter {
	return &maskWriter{w: w, ks: newKeystream(key)}
}

func (e *maskWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	if cap(e.buf) < n {
		e.buf = make([]byte, n)
	} else {
		e.buf = e.buf[:n]
	}
	copy(e.buf, p)
	xorKeystream(e.ks, e.buf)
	return e.w.Write(e.buf)
}

type maskReader struct {
	r  io.Reader
	ks *lcg.Source
}

func newMaskReader(r io.Reader, key uint64) *maskReader {
	return &maskReader{r: r, ks: newKeystream(key)}
}

func (d *maskReader) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	xorKeystream(d.ks, p[:n])
	return n, err
}
