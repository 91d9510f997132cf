package textutil

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrEmptyWord is returned by Acronym when one of the words is empty.
var ErrEmptyWord = errors.New("words must not be empty strings")

// wordPattern is the Unicode reading of \w+: letters, digits and underscore.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

var lineBreakReplacer = strings.NewReplacer("\n", "", "\r", "")

// CountWords returns the frequency of every word token in text.
func CountWords(text string) map[string]int {
	counts := make(map[string]int)
	for _, word := range wordPattern.FindAllString(text, -1) {
		counts[word]++
	}
	return counts
}

// CountCharacters returns the frequency of every code point in text,
// whitespace and punctuation included.
func CountCharacters(text string) map[string]int {
	counts := make(map[string]int)
	for _, r := range text {
		counts[string(r)]++
	}
	return counts
}

// RemoveLineBreaks deletes every \n and \r without inserting anything.
func RemoveLineBreaks(text string) string {
	return lineBreakReplacer.Replace(text)
}

// Acronym concatenates the uppercased first character of each word.
func Acronym(words []string) (string, error) {
	var b strings.Builder
	for _, word := range words {
		if word == "" {
			return "", ErrEmptyWord
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteString(strings.ToUpper(string(r)))
	}
	return b.String(), nil
}
