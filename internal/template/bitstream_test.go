package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitWriterReaderSymmetry(t *testing.T) {
	fields := []struct {
		value, width int
	}{
		{15, 4},
		{0, 4},
		{8, 4},
		{501, 9},
		{2, 3},
		{65535, 16},
		{1, 1},
	}

	w := &bitWriter{}
	for _, f := range fields {
		require.NoError(t, w.write(f.value, f.width))
	}

	r := newBitReader(w.String())
	for _, f := range fields {
		got, err := r.read(f.width)
		require.NoError(t, err)
		assert.Equal(t, f.value, got)
	}
}

func TestBitWriterRejectsOverflow(t *testing.T) {
	w := &bitWriter{}
	assert.Error(t, w.write(16, 4))
	assert.Error(t, w.write(-1, 4))
	assert.Error(t, w.write(1, 0))
	assert.Error(t, w.write(1, maxFieldWidth+1))
}

func TestBitReaderRejectsBadInput(t *testing.T) {
	r := newBitReader("!!")
	_, err := r.read(6)
	assert.Error(t, err)

	r = newBitReader("A")
	_, err = r.read(6)
	require.NoError(t, err)
	_, err = r.read(6)
	assert.Error(t, err, "reading past the end must fail")
}

func TestBitsFor(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 2, 255: 8, 256: 9, 501: 9, 65535: 16}
	for value, want := range cases {
		assert.Equal(t, want, bitsFor(value), "bitsFor(%d)", value)
	}
}

func TestBitWriterPadsFinalCharacter(t *testing.T) {
	w := &bitWriter{}
	require.NoError(t, w.write(1, 4))
	// 4 pending bits flush as one character with two zero bits appended.
	assert.Equal(t, "E", w.String())
}
