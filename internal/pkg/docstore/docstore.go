package docstore

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("docstore: key not found")

// Store is a durable key-to-document abstraction. The ranking snapshot is
// kept behind this interface so the reconciliation logic stays independent
// of where the document actually lives.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
