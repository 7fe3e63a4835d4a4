package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskAlreadyExists is returned when attempting to add a task with a name that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrPipelineAlreadyExists is returned when a pipeline name collides with a task or another pipeline.
	ErrPipelineAlreadyExists = zerr.New("pipeline already exists")

	// ErrCycleDetected is returned when pipelines reference each other in a loop.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a requested task or pipeline is not registered.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrEmptyPipeline is returned when a pipeline is registered without steps.
	ErrEmptyPipeline = zerr.New("pipeline has no steps")

	// ErrRegistryMissing is returned when a configuration is run before tasks were registered.
	ErrRegistryMissing = zerr.New("configuration has no task registry")

	// ErrPluginNotFound is returned when no handler is registered for a task's plugin kind.
	ErrPluginNotFound = zerr.New("no handler registered for plugin")

	// ErrInvalidTaskOptions is returned when a handler receives options of the wrong type.
	ErrInvalidTaskOptions = zerr.New("invalid task options")

	// ErrTaskExecutionFailed is returned when a task execution fails.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrInvalidSettings is returned when the settings fail validation.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMetadataReadFailed is returned when the project metadata file cannot be read.
	ErrMetadataReadFailed = zerr.New("failed to read project metadata")

	// ErrMetadataParseFailed is returned when the project metadata file is not valid JSON.
	ErrMetadataParseFailed = zerr.New("failed to parse project metadata")

	// ErrMetadataFieldMissing is returned when a required project metadata field is empty.
	ErrMetadataFieldMissing = zerr.New("project metadata field missing")

	// ErrInvalidVersion is returned when the project version is not a semantic version.
	ErrInvalidVersion = zerr.New("project version is not a semantic version")

	// ErrLintFailed is returned when static analysis reports errors.
	ErrLintFailed = zerr.New("lint reported errors")

	// ErrServerStartFailed is returned when the static server cannot bind its port.
	ErrServerStartFailed = zerr.New("failed to start server")

	// ErrTestsFailed is returned when the browser test run reports failed assertions.
	ErrTestsFailed = zerr.New("tests failed")

	// ErrTestTimeout is returned when the test page never reports completion.
	ErrTestTimeout = zerr.New("test run timed out")

	// ErrBrowserFailed is returned when the headless browser cannot be driven.
	ErrBrowserFailed = zerr.New("browser run failed")

	// ErrMinifyFailed is returned when the minifier rejects its input.
	ErrMinifyFailed = zerr.New("minification failed")

	// ErrGlobFailed is returned when a file pattern is malformed.
	ErrGlobFailed = zerr.New("failed to expand pattern")

	// ErrFileReadFailed is returned when a source file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileWriteFailed is returned when a destination file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrStoreReadFailed is returned when the size cache cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read size cache")

	// ErrStoreUnmarshalFailed is returned when the size cache cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal size cache")

	// ErrStoreMarshalFailed is returned when the size cache cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal size cache")

	// ErrStoreWriteFailed is returned when the size cache cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write size cache")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")
)
