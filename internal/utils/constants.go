package utils

const (
	// StandardErrorSink is the zap sink name for the process standard error.
	StandardErrorSink = "stderr"

	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %v"

	// ApplicationExecutionFailedMessage prefixes fatal run errors.
	ApplicationExecutionFailedMessage = "Error"

	// DirectoryApplicationName names the directory-mode executable.
	DirectoryApplicationName = "tokcount-dir"
	// RepositoryApplicationName names the repository-mode executable.
	RepositoryApplicationName = "tokcount-repo"
)
