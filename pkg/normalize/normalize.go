package normalize

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Letters used to address possible answers by position.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// QuestionKey canonicalizes a question for grouping: trimmed, lower-cased,
// trailing run of '?' and ':' removed. Inner punctuation is kept.
func QuestionKey(question string) string {
	key := cases.Lower(language.Und).String(strings.TrimSpace(question))
	return strings.TrimRight(key, "?:")
}

// ResponseCell turns one response cell into a list that can be concatenated
// across merged rows: empty for a blank cell, one trimmed value otherwise.
func ResponseCell(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return []string{}
	}
	return []string{value}
}

// CorrectLetters normalizes a correct-answer cell such as " c, A,a" to "A,C".
func CorrectLetters(value string) string {
	return strings.Join(letterSet(strings.Split(value, ",")), ",")
}

// MergeLetters unions already normalized letter strings into one sorted string.
func MergeLetters(values []string) string {
	var tokens []string
	for _, v := range values {
		tokens = append(tokens, strings.Split(v, ",")...)
	}
	return strings.Join(letterSet(tokens), ",")
}

func letterSet(tokens []string) []string {
	upper := cases.Upper(language.Und)
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		tok = upper.String(tok)
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// LetterIndex maps "A".."Z" to 0..25. Anything else reports false.
func LetterIndex(letter string) (int, bool) {
	if len(letter) != 1 {
		return 0, false
	}
	idx := strings.IndexByte(Letters, letter[0])
	return idx, idx >= 0
}

// PossibleAnswers flattens per-column response lists in column order,
// trims entries, drops blanks and keeps the first occurrence of each value.
func PossibleAnswers(columns [][]string) []string {
	seen := make(map[string]struct{})
	answers := []string{}
	for _, col := range columns {
		for _, item := range col {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			answers = append(answers, item)
		}
	}
	return answers
}

// CorrectAnswers resolves comma-joined letters against possible answers by
// position (A is the first answer). Letters without an answer are skipped.
func CorrectAnswers(letters string, possible []string) []string {
	correct := []string{}
	for _, letter := range strings.Split(letters, ",") {
		idx, ok := LetterIndex(letter)
		if !ok || idx >= len(possible) {
			continue
		}
		correct = append(correct, possible[idx])
	}
	return correct
}
