package sources

import (
	"context"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

const treeSourceName = "tree"

// TreeSource yields every entry below a root, directories included.
// Directory symlinks are reported but not descended into.
type TreeSource struct {
	logger *zap.Logger
}

// NewTreeSource returns a TreeSource that logs unreadable entries at debug level.
func NewTreeSource(logger *zap.Logger) *TreeSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreeSource{logger: logger}
}

// Name identifies the source in log output.
func (source *TreeSource) Name() string {
	return treeSourceName
}

// ListCandidates walks root recursively. A root that is itself a symlink is
// resolved first; candidates are still reported under root. Entries that
// cannot be read are skipped.
func (source *TreeSource) ListCandidates(ctx context.Context, root string) ([]string, error) {
	walkRoot := root
	if resolvedRoot, resolveErr := filepath.EvalSymlinks(root); resolveErr == nil {
		walkRoot = resolvedRoot
	}
	var candidates []string
	walkError := filepath.WalkDir(walkRoot, func(path string, entry fs.DirEntry, entryError error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		candidatePath := underRoot(root, walkRoot, path)
		if entryError != nil {
			source.logger.Debug("skipping unreadable entry", zap.String("path", candidatePath), zap.Error(entryError))
			return nil
		}
		candidates = append(candidates, candidatePath)
		return nil
	})
	if walkError != nil {
		return nil, walkError
	}
	return candidates, nil
}

func underRoot(root string, walkRoot string, path string) string {
	if walkRoot == root {
		return path
	}
	relativePath, relErr := filepath.Rel(walkRoot, path)
	if relErr != nil {
		return path
	}
	if relativePath == "." {
		return root
	}
	return filepath.Join(root, relativePath)
}
