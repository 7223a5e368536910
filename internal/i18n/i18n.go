package i18n

import "fmt"

// Lang is a supported portal language tag.
type Lang string

const (
	LangES Lang = "es"
	LangEN Lang = "en"
	LangFR Lang = "fr"
)

// DefaultLang is the portal's default language.
const DefaultLang = LangES

var supported = map[Lang]bool{LangES: true, LangEN: true, LangFR: true}

// Supported reports whether tag is exactly one of the portal languages.
func Supported(tag string) bool {
	return supported[Lang(tag)]
}

// Normalize maps an arbitrary language tag to a supported Lang, falling back
// to the default. Region subtags ("es-ES") are reduced to the base language.
func Normalize(tag string) Lang {
	if len(tag) > 2 {
		tag = tag[:2]
	}
	l := Lang(tag)
	if supported[l] {
		return l
	}
	return DefaultLang
}

// T returns the translation for key in the requested language. Lookup falls
// back to Spanish and finally to the raw key, so a missing translation is
// visible rather than fatal. The language is always passed explicitly; the
// package keeps no current-language state.
func T(lang Lang, key string) string {
	if msg, ok := catalog[lang][key]; ok {
		return msg
	}
	if msg, ok := catalog[DefaultLang][key]; ok {
		return msg
	}
	return key
}

// Tf returns the translation formatted with args.
func Tf(lang Lang, key string, args ...interface{}) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// FormatDate renders a YYYY-MM-DD date as DD/MM/YYYY for display.
func FormatDate(date string) string {
	if len(date) != 10 {
		return date
	}
	return date[8:10] + "/" + date[5:7] + "/" + date[0:4]
}
