package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/MeoFarm_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var (
	validate   *Validator
	validateMu sync.RWMutex
)

// InitValidator initializes the global validator with the built-in crop palette
func InitValidator() {
	InitValidatorWithPalette(domain.CropPalette)
}

// InitValidatorWithPalette initializes the global validator, accepting crops from palette
func InitValidatorWithPalette(palette []string) {
	crops := make([]string, len(palette))
	copy(crops, palette)

	v := validator.New()
	_ = v.RegisterValidation("tool", validateTool)
	_ = v.RegisterValidation("crop", func(fl validator.FieldLevel) bool {
		crop := fl.Field().String()
		if crop == "" {
			return true
		}
		_, err := domain.ParseCrop(crop, crops)
		return err == nil
	})

	validateMu.Lock()
	validate = &Validator{validate: v}
	validateMu.Unlock()
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateMu.RLock()
	v := validate
	validateMu.RUnlock()
	if v == nil {
		InitValidator()
		return GetValidator()
	}
	return v
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ErrMsgInvalidFormat
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = ErrMsgFieldRequired
		case "tool":
			errs[field] = toolMessage(fmt.Sprint(e.Value()))
		case "crop":
			errs[field] = ErrMsgUnknownCrop
		case "gt":
			errs[field] = fmt.Sprintf(ErrMsgMustBePositive, e.Param())
		case "max", "lte":
			errs[field] = fmt.Sprintf(ErrMsgMustBeAtMost, e.Param())
		default:
			errs[field] = ErrMsgFieldInvalid
		}
	}

	return errs
}

func toolMessage(value string) string {
	if suggestion, ok := domain.SuggestTool(strings.ToLower(strings.TrimSpace(value))); ok {
		return fmt.Sprintf(ErrMsgUnknownToolHint, suggestion)
	}
	return ErrMsgUnknownTool
}

// validateTool accepts any tool id case-insensitively; empty is left to "required"
func validateTool(fl validator.FieldLevel) bool {
	tool := fl.Field().String()
	if tool == "" {
		return true
	}
	return domain.Tool(strings.ToLower(strings.TrimSpace(tool))).IsKnown()
}
