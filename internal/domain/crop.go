package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeCrop trims and NFC-normalizes a crop emoji so equivalent encodings compare equal
func NormalizeCrop(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// ParseCrop checks s against the given palette and returns the normalized crop
func ParseCrop(s string, palette []string) (string, error) {
	crop := NormalizeCrop(s)
	for _, c := range palette {
		if NormalizeCrop(c) == crop {
			return crop, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCrop, s)
}
