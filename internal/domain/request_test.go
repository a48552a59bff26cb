package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairs_Map(t *testing.T) {
	tests := []struct {
		name  string
		pairs Pairs
		want  map[string]string
	}{
		{
			name:  "empty",
			pairs: nil,
			want:  map[string]string{},
		},
		{
			name:  "skips empty keys",
			pairs: Pairs{{Key: "", Value: "ignored"}, {Key: "page", Value: "2"}},
			want:  map[string]string{"page": "2"},
		},
		{
			name:  "keeps empty values",
			pairs: Pairs{{Key: "q", Value: ""}},
			want:  map[string]string{"q": ""},
		},
		{
			name:  "later duplicate wins",
			pairs: Pairs{{Key: "a", Value: "1"}, {Key: "a", Value: "2"}},
			want:  map[string]string{"a": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pairs.Map())
		})
	}
}

func TestPairs_Get(t *testing.T) {
	pairs := Pairs{
		{Key: "Content-Type", Value: "text/plain"},
		{Key: "", Value: "application/json"},
	}

	v, ok := pairs.Get("content-type")
	assert.True(t, ok)
	assert.Equal(t, "text/plain", v)

	_, ok = pairs.Get("Accept")
	assert.False(t, ok)
}

func TestDraft_Normalize(t *testing.T) {
	d := Draft{Method: " post ", URL: "  example.com/users "}.Normalize()
	assert.Equal(t, "POST", d.Method)
	assert.Equal(t, "http://example.com/users", d.URL)

	d = Draft{Method: "GET", URL: "https://example.com"}.Normalize()
	assert.Equal(t, "https://example.com", d.URL)

	d = Draft{Method: "GET", URL: ""}.Normalize()
	assert.Equal(t, "", d.URL)
}

func TestHistoryEntry_Outcome(t *testing.T) {
	assert.Equal(t, "success", HistoryEntry{Status: 204}.Outcome())
	assert.Equal(t, "error", HistoryEntry{Status: 404}.Outcome())
	assert.Equal(t, "error", HistoryEntry{Error: "dial tcp: refused"}.Outcome())
}
