package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type LocalizationCode string

const (
	LocalizationCodeEnglish LocalizationCode = "en"
)

type Language struct {
	ISO639 LocalizationCode

	tag language.Tag
}

func (lang *Language) Tag() language.Tag {
	return lang.tag
}

// Title turns a stored slug such as "fire-punch" into "Fire Punch".
func (lang *Language) Title(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})

	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(lang.tag).String(strings.Join(words, " "))
}
