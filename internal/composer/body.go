package composer

import (
	"bytes"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	apperrors "github.com/shhac/burrow/internal/errors"
)

// ParseBody turns the body editor text into the payload to send.
// Blank text means no body. Anything else must be valid JSON or
// ErrMalformedBody is returned. A body of JSON null also sends nothing.
func ParseBody(text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if !gjson.Valid(text) {
		return nil, apperrors.ErrMalformedBody
	}

	compact := pretty.Ugly([]byte(text))
	if bytes.Equal(compact, []byte("null")) {
		return nil, nil
	}
	return compact, nil
}

// FormatBody pretty-prints the body editor text. Text that is blank or not
// valid JSON is returned unchanged with ok set to false.
func FormatBody(text string) (string, bool) {
	if strings.TrimSpace(text) == "" || !gjson.Valid(text) {
		return text, false
	}
	return string(pretty.PrettyOptions([]byte(text), &pretty.Options{
		Width:  80,
		Prefix: "",
		Indent: "  ",
	})), true
}
