// Package tokenizer wraps the byte-pair encoder used to estimate token counts.
package tokenizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

// Config captures tokenizer selection parameters.
type Config struct {
	Encoding string
}

// DefaultEncodingName is the vocabulary used when Config.Encoding is empty.
const DefaultEncodingName = "cl100k_base"

// TokenizerLoadError reports an encoding that could not be loaded.
type TokenizerLoadError struct {
	Encoding string
	Err      error
}

func (loadError *TokenizerLoadError) Error() string {
	return fmt.Sprintf("load tokenizer %s: %v", loadError.Encoding, loadError.Err)
}

func (loadError *TokenizerLoadError) Unwrap() error {
	return loadError.Err
}

// NewCounter loads the configured encoding once and returns a Counter backed by it.
func NewCounter(cfg Config) (Counter, error) {
	encodingName := strings.TrimSpace(cfg.Encoding)
	if encodingName == "" {
		encodingName = DefaultEncodingName
	}
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, &TokenizerLoadError{Encoding: encodingName, Err: err}
	}
	if encoding == nil {
		return nil, &TokenizerLoadError{Encoding: encodingName, Err: errors.New("nil tiktoken encoder")}
	}
	return encodingCounter{encoding: encoding, name: encodingName}, nil
}

type encodingCounter struct {
	encoding *tiktoken.Tiktoken
	name     string
}

func (counter encodingCounter) Name() string {
	return counter.name
}

// CountString encodes input as ordinary text; special-token markers are not interpreted.
func (counter encodingCounter) CountString(input string) (int, error) {
	if counter.encoding == nil {
		return 0, errors.New("nil tiktoken encoder")
	}
	return len(counter.encoding.EncodeOrdinary(input)), nil
}
