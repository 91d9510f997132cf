// Package textutil implements the stateless text and HTML operations served
// by the toolkit API: tag stripping, link extraction, email and URL
// extraction, word and character frequency counts, line-break removal and
// acronym building.
//
// HTML handling is delegated to golang.org/x/net/html. Everything else is a
// single regular expression or a single pass over the input.
package textutil
