package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"text-toolkit/internal/handlers"
	"text-toolkit/internal/langdetect"
	"text-toolkit/internal/password"
	"text-toolkit/internal/quote"
	"text-toolkit/internal/startup"
	"text-toolkit/internal/textutil"

	"github.com/spf13/viper"
	"golang.org/x/term"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	// Create a context that cancels on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return exitUsage
	}

	command, rest := args[0], args[1:]

	var result interface{}
	var err error

	switch command {
	case "password":
		result, err = generatePassword(rest)
	case "acronym":
		result, err = acronym(rest)
	case "strip":
		result, err = withInput(rest, stdin, stderr, func(s string) (interface{}, error) {
			cleaned, err := textutil.StripTags(s)
			return handlers.RemoveTagsResponse{CleanedText: cleaned}, err
		})
	case "links":
		result, err = withInput(rest, stdin, stderr, func(s string) (interface{}, error) {
			links, err := textutil.ExtractLinks(s)
			return handlers.HTMLLinkExtractorResponse{Links: links}, err
		})
	case "extract":
		result, err = withInput(rest, stdin, stderr, func(s string) (interface{}, error) {
			found, err := textutil.ExtractEmailsAndURLs(s)
			return handlers.ExtractEmailsURLsResponse{Emails: found.Emails, URLs: found.URLs}, err
		})
	case "words":
		result, err = withInput(rest, stdin, stderr, func(s string) (interface{}, error) {
			return handlers.WordCountResponse{WordFrequencies: textutil.CountWords(s)}, nil
		})
	case "chars":
		result, err = withInput(rest, stdin, stderr, func(s string) (interface{}, error) {
			return handlers.CharacterCounterResponse{CharacterCount: textutil.CountCharacters(s)}, nil
		})
	case "detect":
		result, err = withInput(rest, stdin, stderr, func(s string) (interface{}, error) {
			lang, err := langdetect.New(false).Detect(s)
			return handlers.LanguageDetectionResponse{Language: lang}, err
		})
	case "quote":
		result, err = randomQuote(ctx)
	case "help", "-h", "--help":
		printUsage(stdout)
		return exitOK
	default:
		// Sanitize command input using allowlist before echoing it
		fmt.Fprintf(stderr, "Unknown command: %s\n", sanitizeCommand(command))
		printUsage(stderr)
		return exitUsage
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

// sanitizeCommand returns a safe representation of a command string for display.
// Any character that is not alphanumeric, a hyphen, or an underscore becomes '_'.
func sanitizeCommand(cmd string) string {
	var b strings.Builder
	b.Grow(len(cmd))
	for _, r := range cmd {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Text Toolkit CLI")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage: textkit <command> [args]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintf(w, "  password [length]  - Generate a password (%d-%d, default %d)\n", password.MinLength, password.MaxLength, password.DefaultLength)
	fmt.Fprintln(w, "  acronym <words...> - Build an acronym from the given words")
	fmt.Fprintln(w, "  strip [file]       - Remove HTML tags")
	fmt.Fprintln(w, "  links [file]       - List anchor hrefs")
	fmt.Fprintln(w, "  extract [file]     - Find email addresses and URLs")
	fmt.Fprintln(w, "  words [file]       - Count word frequencies")
	fmt.Fprintln(w, "  chars [file]       - Count character frequencies")
	fmt.Fprintln(w, "  detect [file]      - Detect the language of the text")
	fmt.Fprintln(w, "  quote              - Fetch a random quote")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands taking [file] read standard input when no file is given.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  QUOTE_API_URL - Quote service URL (default: %s)\n", startup.DefaultQuoteAPIURL)
}

func generatePassword(args []string) (interface{}, error) {
	length := password.DefaultLength
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid length %q", sanitizeCommand(args[0]))
		}
		length = n
	}
	if length < password.MinLength || length > password.MaxLength {
		return nil, fmt.Errorf("password length should be between %d and %d characters", password.MinLength, password.MaxLength)
	}

	generated, err := password.New().Generate(length)
	if err != nil {
		return nil, err
	}
	return handlers.PasswordGeneratorResponse{GeneratedPassword: generated}, nil
}

func acronym(words []string) (interface{}, error) {
	if len(words) == 0 {
		return nil, errors.New("at least one word is required for acronym generation")
	}
	result, err := textutil.Acronym(words)
	if err != nil {
		return nil, err
	}
	return handlers.AcronymResponse{Acronym: result}, nil
}

func randomQuote(ctx context.Context) (interface{}, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("QUOTE_API_URL", startup.DefaultQuoteAPIURL)
	v.SetDefault("QUOTE_TIMEOUT", startup.DefaultQuoteTimeout)

	q, err := quote.NewClient(v.GetString("QUOTE_API_URL"), v.GetDuration("QUOTE_TIMEOUT")).Random(ctx)
	if err != nil {
		return nil, err
	}
	return handlers.RandomQuoteResponse{Quote: q.Content, Author: q.Author}, nil
}

// withInput reads the named file, or stdin when no file is given, and applies fn
func withInput(args []string, stdin io.Reader, stderr io.Writer, fn func(string) (interface{}, error)) (interface{}, error) {
	var data []byte
	var err error

	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
	} else {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			fmt.Fprintln(stderr, "Reading from terminal, press Ctrl+D to finish.")
		}
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return fn(string(data))
}
