package service

import "golang.org/x/text/language"

// Options holds the display settings shared by the services.
type Options struct {
	// Currency is the ISO 4217 code amounts are formatted in.
	Currency string

	// Locale drives name collation and number formatting.
	Locale language.Tag
}

// DefaultOptions formats in US dollars with US English conventions.
func DefaultOptions() Options {
	return Options{Currency: "USD", Locale: language.AmericanEnglish}
}
