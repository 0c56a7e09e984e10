package testfile

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTempFileWithContent writes content to filePath and registers a
// cleanup that removes the file when the test finishes.
func CreateTempFileWithContent(t testing.TB, filePath string, content string) {
	err := os.WriteFile(filePath, []byte(content), 0600)
	require.NoError(t, err, "failed to create test file '%s'", filePath)
	t.Cleanup(func() {
		if err := os.Remove(filePath); err != nil {
			t.Errorf("removing test file '%s': %v", filePath, err)
		}
	})
}
