package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgUnknownTool        = "unknown tool"
	ErrMsgUnknownCrop        = "unknown crop"
	ErrMsgUnknownKey         = "unknown movement key"
	ErrMsgUnknownPlantStatus = "unknown plant status"
	ErrMsgInvalidViewport    = "invalid viewport"
	ErrMsgInvalidScene       = "invalid scene configuration"
)

// Farm operations themselves never fail: unknown tile or plant ids are no-ops.
// These errors are raised while turning client input into farm commands.
var (
	ErrUnknownTool        = errors.New(ErrMsgUnknownTool)
	ErrUnknownCrop        = errors.New(ErrMsgUnknownCrop)
	ErrUnknownKey         = errors.New(ErrMsgUnknownKey)
	ErrUnknownPlantStatus = errors.New(ErrMsgUnknownPlantStatus)
	ErrInvalidViewport    = errors.New(ErrMsgInvalidViewport)
	ErrInvalidScene       = errors.New(ErrMsgInvalidScene)
)
