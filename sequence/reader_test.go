package sequence_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chaosgame/sequence"
)

func TestReadString_StripsWhitespace(t *testing.T) {
	got, err := sequence.ReadString("GATT\nACA\r\n  GC T\tA\n")
	require.NoError(t, err)
	assert.Equal(t, "GATTACAGCTA", string(got))
}

func TestReadString_Options(t *testing.T) {
	const fasta = `>chrY sample
; comment line
acgt
NNac
`
	got, err := sequence.ReadString(fasta, sequence.WithSkipHeaders(), sequence.WithUpper())
	require.NoError(t, err)
	assert.Equal(t, "ACGTNNAC", string(got))

	// without header skipping the header symbols are part of the stream
	raw, err := sequence.ReadString(fasta)
	require.NoError(t, err)
	assert.Equal(t, '>', raw[0])

	limited, err := sequence.ReadString(fasta, sequence.WithSkipHeaders(), sequence.WithLimit(3))
	require.NoError(t, err)
	assert.Equal(t, "acg", string(limited))
}

func TestReadString_Empty(t *testing.T) {
	_, err := sequence.ReadString(" \n\t\n")
	assert.ErrorIs(t, err, sequence.ErrEmpty)

	_, err = sequence.ReadString(">only a header\n", sequence.WithSkipHeaders())
	assert.ErrorIs(t, err, sequence.ErrEmpty)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bases.txt")
	require.NoError(t, os.WriteFile(path, []byte("ACGT\nTGCA\n"), 0o644))

	got, err := sequence.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ACGTTGCA", string(got))

	_, err = sequence.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
