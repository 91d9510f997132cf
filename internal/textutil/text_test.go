package textutil

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmailsAndURLs(t *testing.T) {
	got, err := ExtractEmailsAndURLs("contact a@b.com or http://x.com")
	require.NoError(t, err)

	assert.Equal(t, []string{"a@b.com"}, got.Emails)
	assert.Equal(t, []string{"http://x.com"}, got.URLs)
}

func TestExtractEmailsAndURLsStripsTagsFirst(t *testing.T) {
	got, err := ExtractEmailsAndURLs(`<p>Mail <b>sales@example.org</b></p><a href="https://hidden.example">see https://shown.example/page</a>`)
	require.NoError(t, err)

	assert.Equal(t, []string{"sales@example.org"}, got.Emails)
	// Attribute values are not text nodes.
	assert.Equal(t, []string{"https://shown.example/page"}, got.URLs)
}

func TestExtractEmails(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "single", text: "write to john.doe+tag@mail.example.com today", want: []string{"john.doe+tag@mail.example.com"}},
		{name: "order and duplicates kept", text: "b@x.io, a@y.io, b@x.io", want: []string{"b@x.io", "a@y.io", "b@x.io"}},
		{name: "tld needs two letters", text: "a@b.c", want: []string{}},
		{name: "no at sign", text: "nobody here", want: []string{}},
		{name: "hyphenated domain", text: "ops@my-host.co.uk", want: []string{"ops@my-host.co.uk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmails(tt.text))
		})
	}
}

func TestExtractURLs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "http", text: "go to http://x.com now", want: []string{"http://x.com"}},
		{name: "https with path and query", text: "https://example.com/a/b?c=1&d=2", want: []string{"https://example.com/a/b?c=1&d=2"}},
		{name: "percent encoding", text: "https://example.com/a%20b", want: []string{"https://example.com/a%20b"}},
		{name: "two urls", text: "http://a.io and https://b.io", want: []string{"http://a.io", "https://b.io"}},
		{name: "ftp ignored", text: "ftp://files.example.com", want: []string{}},
		{name: "stops at whitespace", text: "http://x.com\nnext", want: []string{"http://x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractURLs(tt.text))
		})
	}
}

func TestCountWords(t *testing.T) {
	got := CountWords("the cat and the hat, the end")
	assert.Equal(t, map[string]int{"the": 3, "cat": 1, "and": 1, "hat": 1, "end": 1}, got)
}

func TestCountWordsUnicodeAndUnderscore(t *testing.T) {
	got := CountWords("café déjà_vu 42 café")
	assert.Equal(t, map[string]int{"café": 2, "déjà_vu": 1, "42": 1}, got)
}

func TestCountWordsSumMatchesTokenCount(t *testing.T) {
	inputs := []string{
		"",
		"one",
		"Hello, world! Hello again... 123 abc_def",
		"  spaced   out\ttabs\nnewlines ",
	}

	for _, input := range inputs {
		counts := CountWords(input)
		total := 0
		for word, n := range counts {
			assert.Regexp(t, `^[\p{L}\p{N}_]+$`, word)
			total += n
		}
		assert.Equal(t, len(wordPattern.FindAllString(input, -1)), total, "input %q", input)
	}
}

func TestCountCharacters(t *testing.T) {
	got := CountCharacters("aa b!")
	assert.Equal(t, map[string]int{"a": 2, " ": 1, "b": 1, "!": 1}, got)
}

func TestCountCharactersSumsToLength(t *testing.T) {
	inputs := []string{"", "hello world", "naïve café ☕", "line\nbreak\r\n", "日本語テキスト"}

	for _, input := range inputs {
		total := 0
		for _, n := range CountCharacters(input) {
			total += n
		}
		assert.Equal(t, utf8.RuneCountInString(input), total, "input %q", input)
	}
}

func TestRemoveLineBreaks(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a\nb\rc", "abc"},
		{"line1\r\nline2", "line1line2"},
		{"no breaks", "no breaks"},
		{"\n\n\r", ""},
		{"end of line\n", "end of line"},
		{"keep\ttabs\nonly", "keep\ttabsonly"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RemoveLineBreaks(tt.input), "input %q", tt.input)
	}
}

func TestAcronym(t *testing.T) {
	tests := []struct {
		words []string
		want  string
	}{
		{words: []string{"hello", "world"}, want: "HW"},
		{words: []string{"portable", "network", "graphics"}, want: "PNG"},
		{words: []string{"Already", "Upper"}, want: "AU"},
		{words: []string{"über", "élan"}, want: "ÜÉ"},
		{words: []string{"1st", "place"}, want: "1P"},
		{words: []string{}, want: ""},
	}

	for _, tt := range tests {
		got, err := Acronym(tt.words)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestAcronymRejectsEmptyWord(t *testing.T) {
	_, err := Acronym([]string{"hello", "", "world"})
	assert.ErrorIs(t, err, ErrEmptyWord)
}

func FuzzCountCharacters(f *testing.F) {
	for _, seed := range []string{"", "abc", "a\nb\rc", "héllo wörld"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		total := 0
		for _, n := range CountCharacters(input) {
			total += n
		}
		if total != utf8.RuneCountInString(input) {
			t.Fatalf("counts sum to %d, want %d", total, utf8.RuneCountInString(input))
		}
	})
}
