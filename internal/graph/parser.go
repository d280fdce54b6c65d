package graph

import (
	"context"
	"errors"
)

// Typed extraction failures. Both are per-file and non-fatal to a batch:
// callers skip the file, count the failure, and continue.
var (
	// ErrUnreadable marks content that could not be decoded as text.
	ErrUnreadable = errors.New("file content is not decodable text")

	// ErrUnparseable marks content that is not syntactically valid source.
	ErrUnparseable = errors.New("file content could not be parsed")
)

// Parser extracts an Inventory from a single source file.
// Implementations: TreeSitterParser (production), stubs in tests.
type Parser interface {
	// Parse extracts declarations and import references from source.
	// path is the repo-relative file path recorded on the Inventory.
	// Failures wrap ErrUnreadable or ErrUnparseable.
	Parse(ctx context.Context, path string, source []byte) (*Inventory, error)

	// Close releases parser resources (Tree-sitter C memory).
	Close() error
}
