package jsondoc

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Cosmetic formatting. The document is never parsed into a tree here; the
// text is validity-gated and re-written byte for byte.

// Pretty re-indents JSON text for reading. Invalid input reports
// ErrInvalidJSON and the input is returned untouched by the caller.
func Pretty(data []byte) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return pretty.Pretty(data), nil
}

// Ugly strips all insignificant whitespace for minimal footprint.
func Ugly(data []byte) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return pretty.Ugly(data), nil
}
