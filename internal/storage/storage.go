// Package storage stages transient upload artifacts between intake and
// cleanup. Keys are namespaced by process identifier upstream, so concurrent
// uploads never collide. The local driver keeps artifacts on disk; the minio
// driver keeps them in an S3-compatible bucket.
package storage

import (
	"context"
	"io"
	"time"
)

// PutObjectOptions define optional parameters for staging artifacts.
// Size should be the exact number of bytes if known; if unknown, set to -1
// and the implementation will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a staged artifact.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the artifact staging client. Methods use context and streaming
// readers; implementations must be safe for concurrent use.
type Storage interface {
	// Put stages an artifact under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves a staged artifact's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes a staged artifact by key. Deleting a missing artifact is not an error.
	Delete(ctx context.Context, key string) error
}
