package errors

import (
	"math"
	"unicode"
	"unicode/utf8"
)

const (
	maxCardIDLength = 128
	maxTitleLength  = 256
)

// ValidateCardID checks an id supplied by a collaborator.
//
// The rules:
//   - No empty ids
//   - No control characters or whitespace
//   - Valid UTF-8
//   - Maximum length of 128 bytes
func ValidateCardID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidCardID, "card id cannot be empty")
	}
	if len(id) > maxCardIDLength {
		return New(ErrCodeInvalidCardID, "card id too long (max %d bytes)", maxCardIDLength)
	}
	if !utf8.ValidString(id) {
		return New(ErrCodeInvalidCardID, "card id is not valid UTF-8")
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidCardID, "card id contains whitespace or control characters: %q", id)
		}
	}
	return nil
}

// ValidateTitle checks a card title. Titles may be empty.
func ValidateTitle(title string) error {
	if utf8.RuneCountInString(title) > maxTitleLength {
		return New(ErrCodeInvalidInput, "title too long (max %d characters)", maxTitleLength)
	}
	for _, r := range title {
		if r == '\n' || r == '\r' || r == '\x00' {
			return New(ErrCodeInvalidInput, "title must be a single line")
		}
	}
	return nil
}

// ValidateViewport checks workspace dimensions. Zero is allowed (the host has
// not measured yet); negative, NaN and infinite values are not.
func ValidateViewport(w, h float64) error {
	for _, v := range []float64{w, h} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidViewport, "viewport dimension must be finite")
		}
		if v < 0 {
			return New(ErrCodeInvalidViewport, "viewport dimension cannot be negative: %v", v)
		}
	}
	return nil
}
