// Package cli provides the command line interfaces of both executables.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/tokcount/internal/config"
	"github.com/temirov/tokcount/internal/estimate"
	"github.com/temirov/tokcount/internal/sources"
	"github.com/temirov/tokcount/internal/tokenizer"
	"github.com/temirov/tokcount/internal/utils"
)

const (
	directoryUse              = utils.DirectoryApplicationName + " <path>"
	repositoryUse             = utils.RepositoryApplicationName + " <repo_path>"
	directoryShortDescription = "estimate the token count of every text file under a directory"
	directoryLongDescription  = `tokcount-dir walks a directory recursively and prints the total number of
cl100k_base tokens found in its text files. Files whose first 8000 bytes contain
a NUL byte, and files that are not valid UTF-8, are skipped.`
	repositoryShortDescription = "estimate the token count of the files tracked in a git repository"
	repositoryLongDescription  = `tokcount-repo lists the files tracked by git in a repository and prints the
total number of cl100k_base tokens found in the tracked text files.`
	directoryUsageExample  = `  tokcount-dir ./project`
	repositoryUsageExample = `  tokcount-repo ~/src/service`
	versionTemplate        = "{{.Name}} version: {{.Version}}\n"
)

// CounterFactory builds the tokenizer used for a run.
type CounterFactory func(tokenizer.Config) (tokenizer.Counter, error)

// Dependencies carries the collaborators a command needs.
type Dependencies struct {
	Logger         *zap.Logger
	NewCounter     CounterFactory
	CommandRunner  sources.CommandRunner
	LoadSettings   func() (config.Settings, error)
	BinaryDetector estimate.BinaryDetector
}

// DefaultDependencies wires the real tokenizer and the os/exec command runner.
func DefaultDependencies(logger *zap.Logger) Dependencies {
	return Dependencies{
		Logger:        logger,
		NewCounter:    tokenizer.NewCounter,
		CommandRunner: sources.ExecRunner{},
		LoadSettings:  config.LoadSettings,
	}
}

func (dependencies Dependencies) withDefaults() Dependencies {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	if dependencies.NewCounter == nil {
		dependencies.NewCounter = tokenizer.NewCounter
	}
	if dependencies.CommandRunner == nil {
		dependencies.CommandRunner = sources.ExecRunner{}
	}
	if dependencies.LoadSettings == nil {
		dependencies.LoadSettings = config.LoadSettings
	}
	return dependencies
}

// ExecuteDirectory runs the directory-mode command with os.Args.
func ExecuteDirectory(logger *zap.Logger) error {
	return NewDirectoryCommand(DefaultDependencies(logger)).Execute()
}

// ExecuteRepository runs the repository-mode command with os.Args.
func ExecuteRepository(logger *zap.Logger) error {
	return NewRepositoryCommand(DefaultDependencies(logger)).Execute()
}

// NewDirectoryCommand builds the command that counts tokens under a directory tree.
func NewDirectoryCommand(dependencies Dependencies) *cobra.Command {
	dependencies = dependencies.withDefaults()
	command := newRootCommand(directoryUse, directoryShortDescription, directoryLongDescription, directoryUsageExample)
	command.RunE = func(command *cobra.Command, arguments []string) error {
		root := arguments[0]
		if err := validateDirectory(root); err != nil {
			return err
		}
		return runEstimate(command, dependencies, root, func(config.Settings) sources.Source {
			return sources.NewTreeSource(dependencies.Logger)
		})
	}
	return command
}

// NewRepositoryCommand builds the command that counts tokens in VCS-tracked files.
// The repository path is not checked here; the listing command reports bad roots.
func NewRepositoryCommand(dependencies Dependencies) *cobra.Command {
	dependencies = dependencies.withDefaults()
	command := newRootCommand(repositoryUse, repositoryShortDescription, repositoryLongDescription, repositoryUsageExample)
	command.RunE = func(command *cobra.Command, arguments []string) error {
		return runEstimate(command, dependencies, arguments[0], func(settings config.Settings) sources.Source {
			return sources.NewTrackedSource(dependencies.CommandRunner, settings.VCS.Executable, settings.VCS.ListArguments, dependencies.Logger)
		})
	}
	return command
}

func newRootCommand(use string, short string, long string, example string) *cobra.Command {
	command := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Example:       example,
		Version:       utils.GetApplicationVersion(),
		Args:          exactlyOnePath(use),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	command.SetVersionTemplate(versionTemplate)
	return command
}

func exactlyOnePath(use string) cobra.PositionalArgs {
	return func(command *cobra.Command, arguments []string) error {
		if len(arguments) != 1 {
			return &UsageError{Usage: use, Count: len(arguments)}
		}
		return nil
	}
}

func validateDirectory(root string) error {
	info, statErr := os.Stat(root)
	if statErr != nil {
		return &InvalidPathError{Path: root, Err: statErr}
	}
	if !info.IsDir() {
		return &InvalidPathError{Path: root}
	}
	return nil
}

func runEstimate(command *cobra.Command, dependencies Dependencies, root string, newSource func(config.Settings) sources.Source) error {
	settings, settingsErr := dependencies.LoadSettings()
	if settingsErr != nil {
		return settingsErr
	}
	counter, counterErr := dependencies.NewCounter(settings.TokenizerConfig())
	if counterErr != nil {
		return counterErr
	}
	estimator, estimatorErr := estimate.NewEstimator(estimate.Options{
		Source:   newSource(settings),
		Counter:  counter,
		IsBinary: dependencies.BinaryDetector,
		Logger:   dependencies.Logger,
	})
	if estimatorErr != nil {
		return estimatorErr
	}
	result, estimateErr := estimator.Estimate(command.Context(), root)
	if estimateErr != nil {
		return estimateErr
	}
	_, printErr := fmt.Fprintln(command.OutOrStdout(), result.Total)
	return printErr
}
