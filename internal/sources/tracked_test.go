package sources_test

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temirov/tokcount/internal/sources"
)

type recordedCall struct {
	executable string
	arguments  []string
}

type fakeRunner struct {
	stdout string
	stderr string
	err    error
	calls  []recordedCall
}

func (runner *fakeRunner) Run(_ context.Context, executable string, arguments ...string) ([]byte, []byte, error) {
	runner.calls = append(runner.calls, recordedCall{executable: executable, arguments: arguments})
	return []byte(runner.stdout), []byte(runner.stderr), runner.err
}

func TestTrackedSourceJoinsTrimmedLinesOntoRoot(t *testing.T) {
	runner := &fakeRunner{stdout: "a.txt\n  docs/readme.md  \n\nsrc/main.go\r\n"}
	source := sources.NewTrackedSource(runner, "git", []string{"ls-files"}, nil)

	candidates, err := source.ListCandidates(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("/repo", "a.txt"),
		filepath.Join("/repo", "docs", "readme.md"),
		filepath.Join("/repo", "src", "main.go"),
	}, candidates)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "git", runner.calls[0].executable)
	assert.Equal(t, []string{"-C", "/repo", "ls-files"}, runner.calls[0].arguments)
}

func TestTrackedSourceEmptyOutput(t *testing.T) {
	source := sources.NewTrackedSource(&fakeRunner{}, "git", []string{"ls-files"}, nil)
	candidates, err := source.ListCandidates(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestTrackedSourceReportsDiagnostic(t *testing.T) {
	runner := &fakeRunner{
		stderr: "fatal: not a git repository (or any of the parent directories): .git\n",
		err:    errors.New("exit status 128"),
	}
	source := sources.NewTrackedSource(runner, "git", []string{"ls-files"}, nil)

	candidates, err := source.ListCandidates(context.Background(), "/not-a-repo")
	require.Error(t, err)
	assert.Nil(t, candidates)

	var vcsError *sources.VcsError
	require.ErrorAs(t, err, &vcsError)
	assert.Equal(t, "/not-a-repo", vcsError.Root)
	assert.Equal(t, "fatal: not a git repository (or any of the parent directories): .git", vcsError.Diagnostic)
	assert.Equal(t, "Git error: fatal: not a git repository (or any of the parent directories): .git", err.Error())
}

func TestTrackedSourceReportsMissingExecutable(t *testing.T) {
	source := sources.NewTrackedSource(nil, "tokcount-no-such-vcs", []string{"ls-files"}, nil)
	_, err := source.ListCandidates(context.Background(), t.TempDir())

	var vcsError *sources.VcsError
	require.ErrorAs(t, err, &vcsError)
	assert.NotEmpty(t, vcsError.Diagnostic)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not available")
	}
}

func TestTrackedSourceListsStagedFiles(t *testing.T) {
	requireGit(t)
	root := t.TempDir()
	repository, err := git.PlainInit(root, false)
	require.NoError(t, err)
	writeFile(t, filepath.Join(root, "tracked.txt"), "tracked")
	writeFile(t, filepath.Join(root, "pkg", "lib.go"), "package pkg\n")
	writeFile(t, filepath.Join(root, "untracked.txt"), "untracked")

	worktree, err := repository.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("tracked.txt")
	require.NoError(t, err)
	_, err = worktree.Add("pkg/lib.go")
	require.NoError(t, err)

	source := sources.NewTrackedSource(sources.ExecRunner{}, "git", []string{"ls-files"}, nil)
	candidates, err := source.ListCandidates(context.Background(), root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "tracked.txt"),
		filepath.Join(root, "pkg", "lib.go"),
	}, candidates)
}

func TestTrackedSourceFailsOutsideRepository(t *testing.T) {
	requireGit(t)
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(t.TempDir()))
	root := t.TempDir()

	source := sources.NewTrackedSource(sources.ExecRunner{}, "git", []string{"ls-files"}, nil)
	_, err := source.ListCandidates(context.Background(), root)

	var vcsError *sources.VcsError
	require.ErrorAs(t, err, &vcsError)
	assert.Contains(t, vcsError.Diagnostic, "not a git repository")
}
