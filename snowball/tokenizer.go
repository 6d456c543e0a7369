// Package snowball provides word tokenization with Snowball English stemming.
package snowball

import (
	"regexp"

	"github.com/fwojciec/tldr"
	"github.com/kljensen/snowball/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ensure Tokenizer implements tldr.Tokenizer at compile time.
var _ tldr.Tokenizer = (*Tokenizer)(nil)

// wordRe matches runs of letters, digits and underscores in any script.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenizer splits text into lower-cased, stemmed words.
// It is safe for concurrent use.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize returns the stemmed tokens of text in order of appearance.
// Text without any word characters yields an empty slice.
func (t *Tokenizer) Tokenize(text string) []string {
	words := wordRe.FindAllString(text, -1)
	tokens := make([]string, 0, len(words))
	if len(words) == 0 {
		return tokens
	}

	// A Caser holds state and must not be shared between goroutines.
	lower := cases.Lower(language.Und)
	for _, w := range words {
		tokens = append(tokens, english.Stem(lower.String(w), false))
	}
	return tokens
}
