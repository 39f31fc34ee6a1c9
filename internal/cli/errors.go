package cli

import "fmt"

// UsageError reports a wrong number of positional arguments.
type UsageError struct {
	Usage string
	Count int
}

func (usageError *UsageError) Error() string {
	return fmt.Sprintf("expected exactly one path argument, got %d\nUsage: %s", usageError.Count, usageError.Usage)
}

// InvalidPathError reports a root that is missing or not a directory.
type InvalidPathError struct {
	Path string
	Err  error
}

func (pathError *InvalidPathError) Error() string {
	return fmt.Sprintf("path %q does not exist or is not a directory", pathError.Path)
}

func (pathError *InvalidPathError) Unwrap() error {
	return pathError.Err
}
