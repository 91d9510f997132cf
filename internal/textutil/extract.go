package textutil

import "regexp"

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	urlPattern   = regexp.MustCompile(`https?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\\(\\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)
)

// EmailsAndURLs holds both match lists of [ExtractEmailsAndURLs]
type EmailsAndURLs struct {
	Emails []string `json:"emails"`
	URLs   []string `json:"urls"`
}

// ExtractEmails returns every email address in text, in order, duplicates included.
func ExtractEmails(text string) []string {
	return findAll(emailPattern, text)
}

// ExtractURLs returns every http or https URL in text, in order, duplicates included.
func ExtractURLs(text string) []string {
	return findAll(urlPattern, text)
}

// ExtractEmailsAndURLs strips tags from input and runs both extractors over
// the remaining text.
func ExtractEmailsAndURLs(input string) (EmailsAndURLs, error) {
	text, err := StripTags(input)
	if err != nil {
		return EmailsAndURLs{}, err
	}
	return EmailsAndURLs{
		Emails: ExtractEmails(text),
		URLs:   ExtractURLs(text),
	}, nil
}

// findAll never returns nil so empty results encode as [].
func findAll(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
