package hexutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint16MatchesSprintf(t *testing.T) {
	cases := []uint16{0, 1, 0xf, 0x10, 0x201, 0x403, 0x1301, 0xc02f, 0xcca8, 0xffff}
	for _, v := range cases {
		assert.Equal(t, fmt.Sprintf("%x", v), Uint16(v), "value 0x%04x", v)
	}
}

func TestAppendUint16(t *testing.T) {
	buf := []byte("id=")
	buf = AppendUint16(buf, 0x0201)
	assert.Equal(t, "id=201", string(buf))
}

func TestPadded(t *testing.T) {
	assert.Equal(t, "0x0000", Padded(0))
	assert.Equal(t, "0x0403", Padded(0x0403))
	assert.Equal(t, "0x1301", Padded(0x1301))
	assert.Equal(t, "0xffff", Padded(0xffff))
}
