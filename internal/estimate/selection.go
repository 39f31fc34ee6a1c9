// Package estimate turns candidate paths into a total token count: candidates
// are filtered to readable non-binary regular files, then each file's content
// is tokenized and summed.
package estimate

import (
	"os"

	"go.uber.org/zap"
)

// SelectedFile is a candidate confirmed to be a non-binary regular file at selection time.
type SelectedFile struct {
	Path string
}

// BinaryDetector reports whether the file at path should be treated as binary.
type BinaryDetector func(path string) bool

// Select keeps the candidates that are regular files (following symlinks) and
// not binary according to isBinary.
func Select(candidates []string, isBinary BinaryDetector, logger *zap.Logger) []SelectedFile {
	if logger == nil {
		logger = zap.NewNop()
	}
	selected := make([]SelectedFile, 0, len(candidates))
	for _, candidate := range candidates {
		info, statErr := os.Stat(candidate)
		if statErr != nil {
			logger.Debug("skipping missing candidate", zap.String("path", candidate), zap.Error(statErr))
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if isBinary(candidate) {
			logger.Debug("skipping binary file", zap.String("path", candidate))
			continue
		}
		selected = append(selected, SelectedFile{Path: candidate})
	}
	return selected
}
