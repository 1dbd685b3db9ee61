package template

import (
	"github.com/gwforge/builds-api/internal/errors"
)

// Template codes are streams of 6-bit values rendered with the standard
// base64 alphabet. Fields are written most-significant-bit first and the
// final character is zero-padded.
const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const maxFieldWidth = 16

var charValues = func() [256]int8 {
	var v [256]int8
	for i := range v {
		v[i] = -1
	}
	for i := 0; i < len(codeCharset); i++ {
		v[codeCharset[i]] = int8(i)
	}
	return v
}()

type bitWriter struct {
	out   []byte
	acc   uint32
	nbits uint
}

// write appends value using exactly width bits.
func (w *bitWriter) write(value, width int) error {
	if width < 1 || width > maxFieldWidth {
		return errors.Internalf("invalid field width %d", width)
	}
	if value < 0 || value >= 1<<width {
		return errors.Internalf("value %d does not fit in %d bits", value, width)
	}
	w.acc = w.acc<<uint(width) | uint32(value)
	w.nbits += uint(width)
	for w.nbits >= 6 {
		w.nbits -= 6
		w.out = append(w.out, codeCharset[(w.acc>>w.nbits)&0x3f])
	}
	w.acc &= (1 << w.nbits) - 1
	return nil
}

// String flushes any pending bits, padding the last character with zeros.
func (w *bitWriter) String() string {
	out := w.out
	if w.nbits > 0 {
		out = append(out, codeCharset[(w.acc<<(6-w.nbits))&0x3f])
	}
	return string(out)
}

type bitReader struct {
	code  string
	pos   int
	acc   uint32
	nbits uint
}

func newBitReader(code string) *bitReader {
	return &bitReader{code: code}
}

// read consumes the next width bits. It fails on characters outside the
// code alphabet and on running past the end of the stream.
func (r *bitReader) read(width int) (int, error) {
	if width < 1 || width > maxFieldWidth {
		return 0, errors.Internalf("invalid field width %d", width)
	}
	for r.nbits < uint(width) {
		if r.pos >= len(r.code) {
			return 0, errors.InvalidArgument("unexpected end of template code")
		}
		v := charValues[r.code[r.pos]]
		if v < 0 {
			return 0, errors.InvalidArgumentf("invalid template character %q", r.code[r.pos])
		}
		r.acc = r.acc<<6 | uint32(v)
		r.nbits += 6
		r.pos++
	}
	r.nbits -= uint(width)
	value := int(r.acc >> r.nbits)
	r.acc &= (1 << r.nbits) - 1
	return value, nil
}

// bitsFor returns the minimum field width that can hold value.
func bitsFor(value int) int {
	width := 1
	for value >= 1<<width {
		width++
	}
	return width
}
