package artifacts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Put(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080/receipts/")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "pdf/rcpt-1.pdf", "application/pdf", []byte("%PDF-1.4 test"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/receipts/pdf/rcpt-1.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "pdf", "rcpt-1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 test"), data)
}
