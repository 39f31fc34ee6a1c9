// Package sources enumerates candidate file paths under a root directory.
// Candidates are unverified: they may name directories, special files or
// paths that no longer exist.
package sources

import "context"

// Source lists candidate paths under root.
type Source interface {
	Name() string
	ListCandidates(ctx context.Context, root string) ([]string, error)
}
