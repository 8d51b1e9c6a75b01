package qa

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tokenPattern matches maximal runs of word characters: Unicode letters,
// digits, and underscore.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// ProcessedQuestion holds everything derived from a raw question.
type ProcessedQuestion struct {
	Original string
	Lowered  string
	Tokens   []string
	Text     string // Tokens joined by single spaces
}

// Normalize trims, lowercases, and tokenizes a question. Any input is valid;
// input without word characters yields no tokens and empty Text.
func Normalize(question string) ProcessedQuestion {
	cleaned := strings.TrimSpace(question)
	// Casers carry state, so one is made per call.
	lowered := cases.Lower(language.Und).String(cleaned)
	tokens := tokenPattern.FindAllString(lowered, -1)
	if tokens == nil {
		tokens = []string{}
	}
	return ProcessedQuestion{
		Original: cleaned,
		Lowered:  lowered,
		Tokens:   tokens,
		Text:     strings.Join(tokens, " "),
	}
}
