// Package scan provides the token and line classification primitives
// for prose analysis: extracting candidate words from a line, deciding
// whether a candidate is a genuine word, and categorizing lines while
// tracking paragraph boundaries.
package scan

import (
	"regexp"
	"strings"
)

// wordPattern matches candidate words: a letter followed by letters,
// apostrophes or hyphens, anchored at word boundaries.
var wordPattern = regexp.MustCompile(`(?i)\b[a-z][a-z'-]*\b`)

// vowelPattern matches the characters that carry a vowel sound.
var vowelPattern = regexp.MustCompile(`(?i)[aeiouy]`)

// compoundPattern accepts hyphenated compounds like "be-bop": two or
// more letters on each side of a single hyphen.
var compoundPattern = regexp.MustCompile(`(?i)^[a-z]{2,}-[a-z]{2,}$`)

// Words returns all non-overlapping candidate word tokens in line, in
// order of appearance. Candidates still need to pass IsWord before
// they count.
func Words(line string) []string {
	return wordPattern.FindAllString(line, -1)
}

// IsWord reports whether a candidate token is a genuine word. Tokens
// without a vowel-sound character are rejected, which filters acronyms
// and codes such as "NSW". Hyphenated tokens are rejected unless both
// segments have at least two letters, which filters ranges such as
// "a-z" while keeping compounds such as "be-bop".
func IsWord(token string) bool {
	if !vowelPattern.MatchString(token) {
		return false
	}
	if strings.Contains(token, "-") && !compoundPattern.MatchString(token) {
		return false
	}
	return true
}
