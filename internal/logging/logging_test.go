package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_TerminalOnly(t *testing.T) {
	var buf bytes.Buffer
	w, c := Writer(&buf, "", DefaultRotation)
	fmt.Fprint(w, "[INFO] hello")
	assert.Equal(t, "[INFO] hello", buf.String())
	assert.NoError(t, c.Close())
}

func TestWriter_File(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "bot.log")

	w, c := Writer(&buf, path, DefaultRotation)
	fmt.Fprintln(w, "[ERR] boom")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[ERR] boom\n", string(data))
	assert.Equal(t, "[ERR] boom\n", buf.String())
}
