package sources

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	trackedSourceName     = "tracked"
	gitDirectoryFlag      = "-C"
	vcsErrorMessagePrefix = "Git error"
)

// CommandRunner runs an external command and returns its captured output streams.
type CommandRunner interface {
	Run(ctx context.Context, executable string, arguments ...string) (stdout []byte, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes executable with arguments and captures stdout and stderr separately.
func (ExecRunner) Run(ctx context.Context, executable string, arguments ...string) ([]byte, []byte, error) {
	// #nosec G204
	command := exec.CommandContext(ctx, executable, arguments...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr
	runError := command.Run()
	return stdout.Bytes(), stderr.Bytes(), runError
}

// VcsError reports a tracked-file listing that could not be produced.
type VcsError struct {
	Root       string
	Diagnostic string
	Err        error
}

func (vcsError *VcsError) Error() string {
	if vcsError.Diagnostic != "" {
		return fmt.Sprintf("%s: %s", vcsErrorMessagePrefix, vcsError.Diagnostic)
	}
	return fmt.Sprintf("%s: %v", vcsErrorMessagePrefix, vcsError.Err)
}

func (vcsError *VcsError) Unwrap() error {
	return vcsError.Err
}

// TrackedSource lists the files a version-control system tracks under a root.
type TrackedSource struct {
	runner        CommandRunner
	executable    string
	listArguments []string
	logger        *zap.Logger
}

// NewTrackedSource returns a TrackedSource invoking executable with listArguments
// in the repository root. A nil runner defaults to ExecRunner.
func NewTrackedSource(runner CommandRunner, executable string, listArguments []string, logger *zap.Logger) *TrackedSource {
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrackedSource{
		runner:        runner,
		executable:    executable,
		listArguments: append([]string(nil), listArguments...),
		logger:        logger,
	}
}

// Name identifies the source in log output.
func (source *TrackedSource) Name() string {
	return trackedSourceName
}

// ListCandidates joins each tracked relative path onto root. Any failure to run
// the listing command, including a non-zero exit, is returned as a *VcsError.
func (source *TrackedSource) ListCandidates(ctx context.Context, root string) ([]string, error) {
	arguments := append([]string{gitDirectoryFlag, root}, source.listArguments...)
	stdout, stderr, runError := source.runner.Run(ctx, source.executable, arguments...)
	if runError != nil {
		diagnostic := strings.TrimSpace(string(stderr))
		var exitError *exec.ExitError
		if diagnostic == "" && !errors.As(runError, &exitError) {
			diagnostic = runError.Error()
		}
		return nil, &VcsError{Root: root, Diagnostic: diagnostic, Err: runError}
	}
	candidates := parseTrackedPaths(root, string(stdout))
	source.logger.Debug("listed tracked files", zap.String("root", root), zap.Int("count", len(candidates)))
	return candidates, nil
}

func parseTrackedPaths(root string, output string) []string {
	var candidates []string
	for _, line := range strings.Split(output, "\n") {
		relativePath := strings.TrimSpace(line)
		if relativePath == "" {
			continue
		}
		candidates = append(candidates, filepath.Join(root, relativePath))
	}
	return candidates
}
