package gateways

import "context"

// ReceiptArtifactStore persists rendered receipt documents and returns a
// stable URL for each stored object.
type ReceiptArtifactStore interface {
	// Put stores the artifact bytes under the given key and returns the public
	// URL of the stored object.
	Put(ctx context.Context, key string, contentType string, data []byte) (string, error)
}
