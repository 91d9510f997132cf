package textutil

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// StripTags returns the text nodes of an HTML document joined by a single
// space. Comments and doctypes are dropped; raw text inside script and style
// elements is kept because the tokenizer reports it as text.
func StripTags(input string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(input))

	var parts []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return strings.Join(parts, " "), nil
		case html.TextToken:
			parts = append(parts, string(z.Text()))
		}
	}
}

// ExtractLinks returns the href of every anchor element in document order.
// When an anchor repeats href the last value wins. Anchors whose resulting
// href is missing or empty are skipped.
func ExtractLinks(input string) ([]string, error) {
	z := html.NewTokenizer(strings.NewReader(input))

	links := make([]string, 0)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			return links, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" || !hasAttr {
				continue
			}
			if href, ok := attr(z, "href"); ok && href != "" {
				links = append(links, href)
			}
		}
	}
}

// attr returns the last value of the named attribute on the current tag.
// Keys are lowercased by the tokenizer.
func attr(z *html.Tokenizer, key string) (value string, found bool) {
	for more := true; more; {
		var k, v []byte
		k, v, more = z.TagAttr()
		if string(k) == key {
			value, found = string(v), true
		}
	}
	return value, found
}
