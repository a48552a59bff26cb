package response

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []token) []tokenKind {
	out := make([]tokenKind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.kind)
	}
	return out
}

func TestScanJSON(t *testing.T) {
	tokens := scanJSON(`{"a": -1.5e3, "b": [true, false, null], "c": "x\"y"}`)

	var text strings.Builder
	for _, tok := range tokens {
		text.WriteString(tok.text)
	}
	assert.Equal(t, `{"a": -1.5e3, "b": [true, false, null], "c": "x\"y"}`, text.String(), "tokens cover the input")

	assert.Equal(t, []tokenKind{
		tokenPunct, tokenKey, tokenPunct, tokenSpace, tokenNumber, tokenPunct, tokenSpace,
		tokenKey, tokenPunct, tokenSpace, tokenPunct, tokenLiteral, tokenPunct, tokenSpace,
		tokenLiteral, tokenPunct, tokenSpace, tokenNull, tokenPunct, tokenPunct, tokenSpace,
		tokenKey, tokenPunct, tokenSpace, tokenString, tokenPunct,
	}, kinds(tokens))
}

func TestScanJSON_Unterminated(t *testing.T) {
	tokens := scanJSON(`"open`)
	require.Len(t, tokens, 1)
	assert.Equal(t, tokenString, tokens[0].kind)
	assert.Equal(t, `"open`, tokens[0].text)
}

func TestHighlightJSON(t *testing.T) {
	assert.Nil(t, highlightJSON(""))

	segs := highlightJSON(`{"k": 1}`)
	require.Len(t, segs, 6)
	key := segs[1].(*widget.TextSegment)
	assert.Equal(t, `"k"`, key.Text)
	assert.Equal(t, theme.ColorNamePrimary, key.Style.ColorName)
	assert.True(t, key.Style.TextStyle.Monospace)

	big := strings.Repeat("1", maxHighlightBytes+1)
	assert.Len(t, highlightJSON(big), 1)
}
