package domain

import "go.trai.ch/zerr"

var (
	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("external command failed")

	// ErrStageFailed is returned when a pipeline stage aborts the build.
	ErrStageFailed = zerr.New("build stage failed")

	// ErrNoTags is returned when no version was requested and the repository has no tags.
	ErrNoTags = zerr.New("no tag reachable from the default branch")

	// ErrInvalidCommitDate is returned when the commit date reported by git cannot be parsed.
	ErrInvalidCommitDate = zerr.New("invalid commit date")

	// ErrManifestRead is returned when the dependency manifest cannot be read.
	ErrManifestRead = zerr.New("failed to read manifest")

	// ErrManifestParse is returned when the dependency manifest is not a valid JSON object.
	ErrManifestParse = zerr.New("failed to parse manifest")

	// ErrManifestShape is returned when a manifest key has a type the editor cannot extend.
	ErrManifestShape = zerr.New("unsupported manifest shape")

	// ErrManifestWrite is returned when the dependency manifest cannot be written back.
	ErrManifestWrite = zerr.New("failed to write manifest")

	// ErrLockfileRead is returned when the lock file cannot be read.
	ErrLockfileRead = zerr.New("failed to read lock file")

	// ErrLockfileParse is returned when the lock file cannot be decoded.
	ErrLockfileParse = zerr.New("failed to parse lock file")

	// ErrUnknownAutoloadType is returned when a locked package declares an autoload type
	// outside classmap, psr-0, psr-4, files and exclude-from-classmap.
	ErrUnknownAutoloadType = zerr.New("unknown autoload type")

	// ErrInvalidAutoloadPath is returned when an autoload entry is not a string or a list of strings.
	ErrInvalidAutoloadPath = zerr.New("invalid autoload path declaration")

	// ErrConfigRead is returned when the config file cannot be read.
	ErrConfigRead = zerr.New("failed to read config file")

	// ErrConfigParse is returned when the config file cannot be parsed.
	ErrConfigParse = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the merged configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrPatchNotFound is returned when a configured patch file does not exist.
	ErrPatchNotFound = zerr.New("patch file not found")

	// ErrPatchExtract is returned when the bundled patches cannot be written to disk.
	ErrPatchExtract = zerr.New("failed to extract bundled patches")

	// ErrToolNotConfigured is returned when an external collaborator has no command configured.
	ErrToolNotConfigured = zerr.New("external tool command not configured")

	// ErrWorkspaceReset is returned when the build directory cannot be removed.
	ErrWorkspaceReset = zerr.New("failed to reset build directory")

	// ErrPathRemove is returned when a path inside the build directory cannot be removed.
	ErrPathRemove = zerr.New("failed to remove path")

	// ErrPlaceholderCreate is returned when a placeholder directory or stub cannot be created.
	ErrPlaceholderCreate = zerr.New("failed to create placeholder")

	// ErrVendorList is returned when the vendor directory cannot be enumerated.
	ErrVendorList = zerr.New("failed to list vendor directory")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrStoreReadFailed is returned when the build record store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build records")

	// ErrStoreUnmarshalFailed is returned when the build record store cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build records")

	// ErrStoreMarshalFailed is returned when the build records cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build records")

	// ErrStoreWriteFailed is returned when the build records cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build records")

	// ErrRecordNotFound is returned when no build record exists for a version.
	ErrRecordNotFound = zerr.New("no build recorded for version")
)
