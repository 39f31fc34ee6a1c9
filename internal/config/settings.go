// Package config assembles the fixed settings of a counting run.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/temirov/tokcount/internal/tokenizer"
)

const (
	encodingKey          = "encoding"
	vcsExecutableKey     = "vcs.executable"
	vcsListArgumentsKey  = "vcs.list_arguments"
	defaultVCSExecutable = "git"
	defaultListArguments = "ls-files"
)

// Settings holds the fixed parameters of one counting run.
type Settings struct {
	Encoding string           `mapstructure:"encoding"`
	VCS      VCSConfiguration `mapstructure:"vcs"`
}

// VCSConfiguration describes the command that lists tracked files.
type VCSConfiguration struct {
	Executable    string   `mapstructure:"executable"`
	ListArguments []string `mapstructure:"list_arguments"`
}

// LoadSettings returns the run settings. No file, flag or environment source is consulted.
func LoadSettings() (Settings, error) {
	reader := newSettingsReader()
	var settings Settings
	if decodeErr := reader.Unmarshal(&settings); decodeErr != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", decodeErr)
	}
	return settings, nil
}

func newSettingsReader() *viper.Viper {
	reader := viper.New()
	reader.SetDefault(encodingKey, tokenizer.DefaultEncodingName)
	reader.SetDefault(vcsExecutableKey, defaultVCSExecutable)
	reader.SetDefault(vcsListArgumentsKey, []string{defaultListArguments})
	return reader
}

// TokenizerConfig converts the settings into tokenizer selection parameters.
func (settings Settings) TokenizerConfig() tokenizer.Config {
	return tokenizer.Config{Encoding: settings.Encoding}
}
