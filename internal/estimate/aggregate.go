package estimate

import (
	"go.uber.org/zap"

	"github.com/temirov/tokcount/internal/tokenizer"
)

// Result summarizes one run.
type Result struct {
	Total    int
	Selected int
	Counted  int
}

// TotalTokens reads each selected file and sums the token counts reported by
// counter. Files that cannot be read, are not valid UTF-8, or fail to encode
// contribute nothing.
func TotalTokens(counter tokenizer.Counter, files []SelectedFile, logger *zap.Logger) Result {
	if logger == nil {
		logger = zap.NewNop()
	}
	result := Result{Selected: len(files)}
	for _, file := range files {
		countResult, countErr := tokenizer.CountFile(counter, file.Path)
		if countErr != nil {
			logger.Debug("skipping unreadable file", zap.String("path", file.Path), zap.Error(countErr))
			continue
		}
		if !countResult.Counted {
			logger.Debug("skipping undecodable file", zap.String("path", file.Path))
			continue
		}
		result.Total += countResult.Tokens
		result.Counted++
	}
	return result
}
