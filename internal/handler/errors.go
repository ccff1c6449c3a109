package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"

	// Query parameter error messages
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Farm operation error messages
	ErrMsgMissingPlantID = "Plant id is required"
	ErrMsgMissingTileID  = "Tile id is required"
	ErrMsgEmptyPatch     = "Patch must set at least one field"

	// Validation messages
	ErrMsgFieldRequired   = "This field is required"
	ErrMsgFieldInvalid    = "Invalid value"
	ErrMsgUnknownToolHint = "Unknown tool, did you mean %q?"
	ErrMsgUnknownTool     = "Unknown tool"
	ErrMsgUnknownCrop     = "Not on the crop menu"
	ErrMsgMustBePositive  = "Must be greater than %s"
	ErrMsgMustBeAtMost    = "Must be at most %s"
	ErrMsgInvalidFormat   = "Invalid request format"
)

// Query parameter names and limits
const (
	QueryParamTypes = "types"
	QueryParamLimit = "limit"

	DefaultEventsLimit = 50
	MaxEventsLimit     = 500
)
