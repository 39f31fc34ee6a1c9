package estimate

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/temirov/tokcount/internal/sources"
	"github.com/temirov/tokcount/internal/tokenizer"
	"github.com/temirov/tokcount/internal/utils"
)

// Options wires the collaborators of an Estimator.
type Options struct {
	Source   sources.Source
	Counter  tokenizer.Counter
	IsBinary BinaryDetector
	Logger   *zap.Logger
}

// Estimator runs Source, Select and TotalTokens in sequence for a root path.
type Estimator struct {
	source   sources.Source
	counter  tokenizer.Counter
	isBinary BinaryDetector
	logger   *zap.Logger
}

// NewEstimator validates options. IsBinary defaults to utils.IsFileBinary.
func NewEstimator(options Options) (*Estimator, error) {
	if options.Source == nil {
		return nil, errors.New("estimate: nil file source")
	}
	if options.Counter == nil {
		return nil, errors.New("estimate: nil tokenizer counter")
	}
	isBinary := options.IsBinary
	if isBinary == nil {
		isBinary = utils.IsFileBinary
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Estimator{
		source:   options.Source,
		counter:  options.Counter,
		isBinary: isBinary,
		logger:   logger,
	}, nil
}

// Estimate lists candidates under root and returns the aggregate token count.
// Only a failure of the file source is returned as an error.
func (estimator *Estimator) Estimate(ctx context.Context, root string) (Result, error) {
	candidates, listErr := estimator.source.ListCandidates(ctx, root)
	if listErr != nil {
		return Result{}, listErr
	}
	selected := Select(candidates, estimator.isBinary, estimator.logger)
	result := TotalTokens(estimator.counter, selected, estimator.logger)
	estimator.logger.Debug("estimate complete",
		zap.String("source", estimator.source.Name()),
		zap.String("encoding", estimator.counter.Name()),
		zap.Int("candidates", len(candidates)),
		zap.Int("selected", result.Selected),
		zap.Int("counted", result.Counted),
		zap.Int("tokens", result.Total),
	)
	return result, nil
}
