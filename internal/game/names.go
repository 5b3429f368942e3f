package game

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeTeamName returns the canonical form of a team name: whitespace runs
// collapse to a single space and every token is capitalized ("tEAm   one" ->
// "Team One"). Names without any token fail with ErrInvalidName.
func NormalizeTeamName(raw string) (string, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, raw)
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		capitalize(&b, tok)
	}
	return b.String(), nil
}

// capitalize uses simple per-rune mappings, so the output has the same rune
// count as the input and normalizing twice is a no-op.
func capitalize(b *strings.Builder, tok string) {
	first, size := utf8.DecodeRuneInString(tok)
	b.WriteRune(unicode.ToTitle(first))
	for _, r := range tok[size:] {
		b.WriteRune(unicode.ToLower(r))
	}
}

func normalizePair(team1, team2 string) (string, string, error) {
	n1, err := NormalizeTeamName(team1)
	if err != nil {
		return "", "", err
	}
	n2, err := NormalizeTeamName(team2)
	if err != nil {
		return "", "", err
	}
	return n1, n2, nil
}
