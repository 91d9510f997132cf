// Command textkit runs the text toolkit operations from the command line,
// without starting the HTTP server.
//
// Usage:
//
//	textkit <command> [args]
//
// Commands:
//
//	password [length]   Generate a password of 8 to 128 characters.
//	acronym <words...>  Concatenate the upper-cased first letter of each word.
//	strip [file]        Print the text content of an HTML document.
//	links [file]        List the href of every anchor element.
//	extract [file]      Find email addresses and URLs.
//	words [file]        Count word frequencies.
//	chars [file]        Count character frequencies.
//	detect [file]       Detect the language of the text.
//	quote               Fetch a random quote from QUOTE_API_URL.
//
// Results are printed as indented JSON using the same shapes as the API.
// When a command takes [file] and none is given, standard input is read.
package main
