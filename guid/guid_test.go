package guid_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcore/guid"
)

var canonical = regexp.MustCompile(`^[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}$`)

func TestGenerate_Format(t *testing.T) {
	g, err := guid.Generate()
	require.NoError(t, err)
	assert.False(t, g.IsNil())
	assert.Regexp(t, canonical, g.String())
	assert.Len(t, g.String(), guid.Length)

	buf := make([]byte, guid.FormatSize)
	require.NoError(t, g.Format(buf))
	assert.Equal(t, g.String(), string(buf[:guid.Length]))
	assert.Equal(t, byte(0), buf[guid.Length])
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[guid.GUID]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		g := guid.MustGenerate()
		_, dup := seen[g]
		require.False(t, dup, "duplicate GUID %s", g)
		seen[g] = struct{}{}
	}
}

func TestFormat_BufferSize(t *testing.T) {
	g := guid.MustGenerate()
	for _, n := range []int{0, guid.Length, guid.FormatSize + 1, 64} {
		buf := make([]byte, n)
		err := g.Format(buf)
		assert.ErrorIs(t, err, guid.ErrBufferSize, "len %d", n)
		assert.Equal(t, make([]byte, n), buf, "buffer must be untouched")
	}
}

func TestString_ByteLayout(t *testing.T) {
	g := guid.GUID{
		0x01, 0x23, 0x45, 0x67,
		0x89, 0xab,
		0xcd, 0xef,
		0x0f, 0x1e,
		0x2d, 0x3c, 0x4b, 0x5a, 0x69, 0x78,
	}
	assert.Equal(t, "01234567-89AB-CDEF-0F1E-2D3C4B5A6978", g.String())
}

func TestParse_RoundTrip(t *testing.T) {
	g := guid.MustGenerate()
	back, err := guid.Parse(g.String())
	require.NoError(t, err)
	assert.Equal(t, g, back)

	_, err = guid.Parse("not-a-guid")
	assert.ErrorIs(t, err, guid.ErrParse)
}

func TestNil(t *testing.T) {
	assert.True(t, guid.Nil.IsNil())
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", guid.Nil.String())
}
