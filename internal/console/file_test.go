package console_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/rref/internal/console"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestReadMatrixFile(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, "# augmented system\n\n1 1 1 6\n 0 2 5 -4\n\n2 5 -1 27\n")
	rows, err := console.ReadMatrixFile(path)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 1, 1, 6}, {0, 2, 5, -4}, {2, 5, -1, 27}}, rows)
}

func TestReadMatrixFile_OnlyComments(t *testing.T) {
	t.Parallel()
	rows, err := console.ReadMatrixFile(writeTemp(t, "# nothing\n\n"))
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestReadMatrixFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := console.ReadMatrixFile(writeTemp(t, "1 2\n3 4 5\n"))
	require.ErrorIs(t, err, console.ErrRowLength)
	require.Contains(t, err.Error(), "line 2")

	_, err = console.ReadMatrixFile(writeTemp(t, "1 2\n\n3 y\n"))
	require.ErrorIs(t, err, console.ErrNotNumeric)
	require.Contains(t, err.Error(), "line 3")
	require.Contains(t, err.Error(), "field 2")

	_, err = console.ReadMatrixFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadMatrixFrom(t *testing.T) {
	t.Parallel()
	rows, err := console.ReadMatrixFrom(strings.NewReader("1\n2\n"))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1}, {2}}, rows)
}
