package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shhac/burrow/internal/errors"
)

func TestParseBody(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []byte
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"whitespace", " \n\t", nil, false},
		{"null", "null", nil, false},
		{"object", "{\n  \"a\": 1\n}", []byte(`{"a":1}`), false},
		{"array", "[ 1, 2 ]", []byte(`[1,2]`), false},
		{"string", `"x"`, []byte(`"x"`), false},
		{"number", "42", []byte("42"), false},
		{"truncated", `{"a":`, nil, true},
		{"single quotes", `{'a':1}`, nil, true},
		{"trailing garbage", `{} {}`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBody(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, apperrors.ErrMalformedBody)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatBody(t *testing.T) {
	out, ok := FormatBody(`{"a":1,"b":[true]}`)
	assert.True(t, ok)
	assert.Contains(t, out, "\n  \"a\": 1")

	out, ok = FormatBody(`{"a":`)
	assert.False(t, ok)
	assert.Equal(t, `{"a":`, out)

	_, ok = FormatBody("  ")
	assert.False(t, ok)
}
