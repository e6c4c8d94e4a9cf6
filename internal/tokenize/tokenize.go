// Package tokenize splits input text into ordered word tokens with exact
// UTF-8 byte offsets into the source string.
package tokenize

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Token is a maximal run of non-whitespace characters in the input. Index is
// its position in encounter order; ByteStart/ByteEnd are UTF-8 byte offsets
// into the original string passed to Split. Tokens are immutable once
// created and borrow no memory beyond the offsets themselves.
type Token struct {
	Index     int
	Text      string
	ByteStart int
	ByteEnd   int
}

// Normalize applies NFC normalization. Callers that need byte offsets to
// stay consistent across the Protector, the Tokenizer and the Reconstructor
// must normalize the input once up front and thread the normalized string
// through every stage — Split does not normalize implicitly.
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// Split runs Unicode-whitespace tokenization over text and returns the
// ordered token sequence. text must already be normalized (see Normalize)
// if offsets are to line up with spans computed over the same string.
func Split(text string) []Token {
	return split(text)
}

func split(text string) []Token {
	var tokens []Token
	start := -1
	idx := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, Token{
					Index:     idx,
					Text:      text[start:i],
					ByteStart: start,
					ByteEnd:   i,
				})
				idx++
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		tokens = append(tokens, Token{
			Index:     idx,
			Text:      text[start:],
			ByteStart: start,
			ByteEnd:   len(text),
		})
	}
	return tokens
}
