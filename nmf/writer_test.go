package nmf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteRoundTrip(t *testing.T) {
	m, err := Parse(strings.NewReader(twoCubesNMF), "test")
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, Write(m, &buf))

	m2, err := Parse(&buf, "roundtrip")
	assert.NoError(t, err)

	assert.Equal(t, len(m.Blocks), len(m2.Blocks))
	assert.ElementsMatch(t, m.Blocks, m2.Blocks)
	assert.Equal(t, len(m.Entries), len(m2.Entries))
	assert.ElementsMatch(t, m.Entries, m2.Entries)
}

func TestWriteUppercasesKeyword(t *testing.T) {
	m, err := Parse(strings.NewReader("1\n1 2 2 2\nsym-x 1 1 1 2 1 2\n"), "test")
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, Write(m, &buf))
	assert.True(t, strings.Contains(buf.String(), "SYM_X"))
}
