package action

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderYieldsOneActionPerLine(t *testing.T) {
	r := NewReader(strings.NewReader("p\n\nbogus\nclick 1 2\n"))

	assert.Equal(t, TogglePause, r.Next(ModeView).Kind)
	assert.Equal(t, None, r.Next(ModeView).Kind)
	assert.Equal(t, None, r.Next(ModeView).Kind)
	assert.Equal(t, Build, r.Next(ModeBuild).Kind)
	assert.Equal(t, Quit, r.Next(ModeView).Kind, "end of input quits")
	require.NoError(t, r.Err())
}

func TestReaderSkipsOverlongLine(t *testing.T) {
	long := strings.Repeat("b 1 2 ", 20000)
	r := NewReader(strings.NewReader(long + "\nq"))

	assert.Equal(t, None, r.Next(ModeView).Kind, "an overlong line is a no-op, not the end of input")
	assert.Equal(t, Quit, r.Next(ModeView).Kind)
	assert.Equal(t, Quit, r.Next(ModeView).Kind)
	require.NoError(t, r.Err())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestReaderReportsReadError(t *testing.T) {
	r := NewReader(failingReader{})
	assert.Equal(t, Quit, r.Next(ModeView).Kind)
	assert.ErrorIs(t, r.Err(), io.ErrClosedPipe)
}
