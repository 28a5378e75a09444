package logging

// Field name constants for structured logging.
const (
	FieldError  = "error"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldConfig = "config"
	FieldPreset = "preset"

	// Conversion fields.
	FieldBlocks   = "blocks"
	FieldWarnings = "warnings"
	FieldType     = "type"
	FieldNode     = "node"
	FieldMessage  = "message"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
