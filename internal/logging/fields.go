package logging

// Field name constants for structured logging.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration.
	FieldConfig = "config"
	FieldSource = "source"
	FieldJobs   = "jobs"
	FieldMode   = "mode"

	// Per-file results.
	FieldChanged  = "changed"
	FieldWarnings = "warnings"
	FieldState    = "state"

	// Run statistics.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesChanged    = "files_changed"
	FieldFilesWritten    = "files_written"

	// Version.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
