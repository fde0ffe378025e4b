package item

// ==================== Schema ====================

// ItemsSchemaPath is the embedded schema every catalog file is checked against
const ItemsSchemaPath = "schemas/items.schema.json"

// Catalog file extensions decoded as YAML; anything else is read as JSON
const (
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemInvalid   = "%w: item at index %d (%q): %s"
	ErrFmtItemRejected  = "%w: item at index %d: %w"
	ErrFmtFieldRequired = "%s is required"
	ErrFmtFieldRange    = "%s is out of range"
	ErrFmtFieldInvalid  = "%s is invalid"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Items catalog loaded"
	LogMsgUsingFixture  = "No items catalog configured, using built-in fixture"
)
