package fpod

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFPOD(t *testing.T) {
	block := func(first byte) []byte {
		b := make([]byte, 16)
		b[0] = first
		return b
	}

	tests := []struct {
		first byte
		want  blockKind
	}{
		{0, blockClick},
		{100, blockClick},
		{183, blockClick},
		{184, blockUnknown},
		{249, blockTrain},
		{250, blockWave},
		{254, blockMinute},
		{255, blockUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyFPOD(block(tt.first)), "first byte %d", tt.first)
	}
}

func TestClassifyCPOD(t *testing.T) {
	b := make([]byte, 10)
	assert.Equal(t, blockClick, classifyCPOD(b))

	b[9] = 254
	assert.Equal(t, blockMinute, classifyCPOD(b))

	b[9] = 255
	assert.Equal(t, blockClick, classifyCPOD(b))
}

func TestIsTerminator(t *testing.T) {
	full := bytes.Repeat([]byte{0xFF}, 16)
	assert.True(t, isTerminator(full))

	// tolerance: up to 5 non-0xFF bytes still count
	tolerated := bytes.Repeat([]byte{0xFF}, 16)
	for i := 0; i < 5; i++ {
		tolerated[i] = 0
	}
	assert.True(t, isTerminator(tolerated))

	tooMany := bytes.Repeat([]byte{0xFF}, 16)
	for i := 0; i < 6; i++ {
		tooMany[i] = 0
	}
	assert.False(t, isTerminator(tooMany))

	assert.False(t, isTerminator(make([]byte, 16)))
}
