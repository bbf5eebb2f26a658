package domain

import "strings"

const DefaultLocale = "pt"

// Text holds one string per locale.
type Text map[string]string

// In returns the text for locale, then the default locale, then "".
func (t Text) In(locale string) string {
	if v, ok := t[locale]; ok && v != "" {
		return v
	}
	return t[DefaultLocale]
}

type Exercise struct {
	ID               string
	Icon             string
	Category         string
	Name             Text
	ShortDescription Text
	Objective        Text
	QuickFix         Text
	CompareTip       Text
	Steps            map[string][]string
	VideoURL         string
}

// StepsIn returns the steps for locale, falling back to the default locale.
func (e Exercise) StepsIn(locale string) []string {
	if steps := e.Steps[locale]; len(steps) > 0 {
		return steps
	}
	return e.Steps[DefaultLocale]
}

type Workout struct {
	ID        string
	Title     Text
	Frequency string
	Sets      int
	Exercises []string
}

type Translations map[string]Text

// T returns the localized string for key, or key itself when it is unknown
// or empty for locale.
func (t Translations) T(key, locale string) string {
	if v := t[key][locale]; strings.TrimSpace(v) != "" {
		return v
	}
	return key
}
