package handlers

// Text fields are pointers so that a missing field can be told apart from
// an empty string; only language detection rejects blank text.

type RemoveTagsRequest struct {
	HTML *string `json:"html" validate:"required"`
}

type RemoveTagsResponse struct {
	CleanedText string `json:"cleaned_text"`
}

type TextRequest struct {
	Text *string `json:"text" validate:"required"`
}

type ExtractEmailsURLsResponse struct {
	Emails []string `json:"emails"`
	URLs   []string `json:"urls"`
}

type WordCountResponse struct {
	WordFrequencies map[string]int `json:"word_frequencies"`
}

type RemoveLineBreaksResponse struct {
	TextWithoutLineBreaks string `json:"text_without_line_breaks"`
}

type CharacterCounterResponse struct {
	CharacterCount map[string]int `json:"character_count"`
}

type HTMLLinkExtractorRequest struct {
	HTML *string `json:"html" validate:"required"`
}

type HTMLLinkExtractorResponse struct {
	Links []string `json:"links"`
}

// PasswordGeneratorRequest leaves Length nil when the client omits it.
type PasswordGeneratorRequest struct {
	Length *int `json:"length" validate:"omitempty,min=8,max=128"`
}

type PasswordGeneratorResponse struct {
	GeneratedPassword string `json:"generated_password"`
}

type RandomQuoteResponse struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

type LanguageDetectionRequest struct {
	Text *string `json:"text" validate:"required,notblank"`
}

type LanguageDetectionResponse struct {
	Language string `json:"language"`
}

type AcronymRequest struct {
	Words []string `json:"words" validate:"required,min=1,dive,required"`
}

type AcronymResponse struct {
	Acronym string `json:"acronym"`
}
