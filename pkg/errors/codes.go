// Package errors provides error code constants for spectraplot.
// Error codes are organized by category for consistent handling and lookup.
package errors

// -----------------------------------------------------------------------------
// Dataset Error Codes
// -----------------------------------------------------------------------------
// Use these codes for failed lookups against the named colorimetric tables.
// A dataset error always carries the full list of valid names.

const (
	// ErrCMFSNotFound indicates the requested colour matching functions are
	// not registered.
	ErrCMFSNotFound = "CMFS_NOT_FOUND"

	// ErrIlluminantNotFound indicates the requested illuminant is not
	// registered for the observer.
	ErrIlluminantNotFound = "ILLUMINANT_NOT_FOUND"

	// ErrColourspaceNotFound indicates the requested RGB colourspace is not
	// registered.
	ErrColourspaceNotFound = "COLOURSPACE_NOT_FOUND"

	// ErrColourCheckerNotFound indicates the requested colour checker is not
	// registered.
	ErrColourCheckerNotFound = "COLOUR_CHECKER_NOT_FOUND"

	// ErrLightnessFunctionNotFound indicates the requested Lightness function
	// is not registered.
	ErrLightnessFunctionNotFound = "LIGHTNESS_FUNCTION_NOT_FOUND"

	// ErrMunsellFunctionNotFound indicates the requested Munsell value
	// function is not registered.
	ErrMunsellFunctionNotFound = "MUNSELL_FUNCTION_NOT_FOUND"
)

// -----------------------------------------------------------------------------
// Resource Error Codes
// -----------------------------------------------------------------------------
// Use these codes for errors related to on-disk chart resources.

const (
	// ErrResourceNotFound indicates a background bitmap is missing from the
	// resources directory.
	ErrResourceNotFound = "RESOURCE_NOT_FOUND"

	// ErrResourceDecodeFailed indicates a background bitmap exists but could
	// not be decoded.
	ErrResourceDecodeFailed = "RESOURCE_DECODE_FAILED"
)

// -----------------------------------------------------------------------------
// Render Error Codes
// -----------------------------------------------------------------------------
// Use these codes for errors raised while assembling or writing a chart.

const (
	// ErrRenderFailed indicates chart geometry could not be assembled.
	ErrRenderFailed = "RENDER_FAILED"

	// ErrRenderWriteFailed indicates the rendered chart could not be written
	// to its output file.
	ErrRenderWriteFailed = "RENDER_WRITE_FAILED"

	// ErrRenderUnsupportedFormat indicates the output filename extension is
	// not a supported image format.
	ErrRenderUnsupportedFormat = "RENDER_UNSUPPORTED_FORMAT"

	// ErrDisplayFailed indicates the interactive viewer could not be opened.
	ErrDisplayFailed = "DISPLAY_FAILED"
)

// -----------------------------------------------------------------------------
// Configuration Error Codes
// -----------------------------------------------------------------------------
// Use these codes for errors related to config file loading, parsing,
// and validation.

const (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = "CONFIG_NOT_FOUND"

	// ErrConfigParseFailed indicates the configuration file could not be
	// parsed. Usually a YAML syntax error or invalid structure.
	ErrConfigParseFailed = "CONFIG_PARSE_FAILED"

	// ErrConfigInvalid indicates configuration values are invalid.
	ErrConfigInvalid = "CONFIG_INVALID"

	// ErrConfigInitFailed indicates config initialization failed.
	// Unable to create config file or directory.
	ErrConfigInitFailed = "CONFIG_INIT_FAILED"

	// ErrConfigWriteFailed indicates the config file could not be written.
	ErrConfigWriteFailed = "CONFIG_WRITE_FAILED"
)

// -----------------------------------------------------------------------------
// Command Error Codes
// -----------------------------------------------------------------------------
// Use these codes for errors related to shell command parsing and execution.

const (
	// ErrCommandInvalidSyntax indicates the command has invalid syntax.
	ErrCommandInvalidSyntax = "COMMAND_INVALID_SYNTAX"

	// ErrCommandMissingArgs indicates required arguments are missing.
	ErrCommandMissingArgs = "COMMAND_MISSING_ARGS"

	// ErrCommandNotFound indicates the command does not exist.
	ErrCommandNotFound = "COMMAND_NOT_FOUND"
)
