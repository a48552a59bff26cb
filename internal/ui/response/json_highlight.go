package response

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// maxHighlightBytes bounds the text that gets colored; larger bodies are
// shown as a single plain segment.
const maxHighlightBytes = 256 * 1024

type tokenKind int

const (
	tokenKey tokenKind = iota
	tokenString
	tokenNumber
	tokenLiteral // true, false
	tokenNull
	tokenPunct
	tokenSpace
)

type token struct {
	kind tokenKind
	text string
}

var tokenColor = map[tokenKind]fyne.ThemeColorName{
	tokenKey:     theme.ColorNamePrimary,
	tokenString:  theme.ColorNameSuccess,
	tokenNumber:  theme.ColorNameWarning,
	tokenLiteral: theme.ColorNameError,
	tokenNull:    theme.ColorNameDisabled,
	tokenPunct:   theme.ColorNameForeground,
	tokenSpace:   theme.ColorNameForeground,
}

// highlightJSON colors pretty-printed JSON for a RichText widget. Text that
// is not JSON still renders; it just comes out mostly as punctuation.
func highlightJSON(input string) []widget.RichTextSegment {
	if input == "" {
		return nil
	}
	if len(input) > maxHighlightBytes {
		return []widget.RichTextSegment{segment(tokenPunct, input)}
	}

	tokens := scanJSON(input)
	segments := make([]widget.RichTextSegment, 0, len(tokens))
	for _, tok := range tokens {
		segments = append(segments, segment(tok.kind, tok.text))
	}
	return segments
}

func segment(kind tokenKind, text string) *widget.TextSegment {
	return &widget.TextSegment{
		Style: widget.RichTextStyle{
			ColorName: tokenColor[kind],
			Inline:    true,
			SizeName:  theme.SizeNameText,
			TextStyle: fyne.TextStyle{Monospace: true},
		},
		Text: text,
	}
}

// plainSegments renders non-JSON text in the same monospace style.
func plainSegments(input string) []widget.RichTextSegment {
	if input == "" {
		return nil
	}
	return []widget.RichTextSegment{segment(tokenPunct, input)}
}

type scanner struct {
	src    string
	pos    int
	tokens []token
}

// scanJSON splits input into tokens. A string followed by a colon is a key.
func scanJSON(input string) []token {
	s := &scanner{src: input, tokens: make([]token, 0, 128)}
	for s.pos < len(s.src) {
		s.next()
	}
	s.markKeys()
	return s.tokens
}

func (s *scanner) emit(kind tokenKind, end int) {
	s.tokens = append(s.tokens, token{kind: kind, text: s.src[s.pos:end]})
	s.pos = end
}

func (s *scanner) next() {
	ch := s.src[s.pos]
	switch {
	case ch == '"':
		s.emit(tokenString, s.stringEnd())
	case ch == '-' || isDigit(ch):
		s.emit(tokenNumber, s.spanWhile(s.pos+1, isNumberByte))
	case isSpace(ch):
		s.emit(tokenSpace, s.spanWhile(s.pos+1, isSpace))
	case s.hasWord("true"):
		s.emit(tokenLiteral, s.pos+4)
	case s.hasWord("false"):
		s.emit(tokenLiteral, s.pos+5)
	case s.hasWord("null"):
		s.emit(tokenNull, s.pos+4)
	default:
		s.emit(tokenPunct, s.pos+1)
	}
}

// stringEnd returns the index just past the closing quote, or the end of
// input for an unterminated string.
func (s *scanner) stringEnd() int {
	j := s.pos + 1
	for j < len(s.src) {
		switch s.src[j] {
		case '\\':
			j += 2
			continue
		case '"':
			return j + 1
		}
		j++
	}
	return len(s.src)
}

func (s *scanner) spanWhile(from int, ok func(byte) bool) int {
	j := from
	for j < len(s.src) && ok(s.src[j]) {
		j++
	}
	return j
}

func (s *scanner) hasWord(w string) bool {
	return len(s.src)-s.pos >= len(w) && s.src[s.pos:s.pos+len(w)] == w
}

func (s *scanner) markKeys() {
	for i := range s.tokens {
		if s.tokens[i].kind != tokenString {
			continue
		}
		for j := i + 1; j < len(s.tokens); j++ {
			if s.tokens[j].kind == tokenSpace {
				continue
			}
			if s.tokens[j].kind == tokenPunct && s.tokens[j].text == ":" {
				s.tokens[i].kind = tokenKey
			}
			break
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNumberByte(c byte) bool {
	return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
