// Package locale holds the list of UI locales the web layer can negotiate
// and render. The English language names come from the rewrite package so
// the picker and the language directive never disagree.
package locale

import (
	"strings"

	"promptforge/internal/rewrite"
)

// DefaultCode is the locale assumed when negotiation finds no match.
const DefaultCode = "en-US"

// Locale describes one selectable UI locale.
type Locale struct {
	Code   string // BCP 47 tag, e.g. "fr-FR"
	Name   string // English language name, filled from the rewrite table
	Native string // self-name shown in the picker
}

var supported = []Locale{
	{Code: "en-US", Native: "English (US)"},
	{Code: "en-GB", Native: "English (UK)"},
	{Code: "es-ES", Native: "Español (España)"},
	{Code: "es-MX", Native: "Español (México)"},
	{Code: "fr-FR", Native: "Français"},
	{Code: "fr-CA", Native: "Français (Canada)"},
	{Code: "de-DE", Native: "Deutsch"},
	{Code: "it-IT", Native: "Italiano"},
	{Code: "pt-PT", Native: "Português"},
	{Code: "pt-BR", Native: "Português (Brasil)"},
	{Code: "nl-NL", Native: "Nederlands"},
	{Code: "sv-SE", Native: "Svenska"},
	{Code: "no-NO", Native: "Norsk"},
	{Code: "da-DK", Native: "Dansk"},
	{Code: "fi-FI", Native: "Suomi"},
	{Code: "pl-PL", Native: "Polski"},
	{Code: "cs-CZ", Native: "Čeština"},
	{Code: "sk-SK", Native: "Slovenčina"},
	{Code: "hu-HU", Native: "Magyar"},
	{Code: "ro-RO", Native: "Română"},
	{Code: "bg-BG", Native: "Български"},
	{Code: "el-GR", Native: "Ελληνικά"},
	{Code: "ru-RU", Native: "Русский"},
	{Code: "uk-UA", Native: "Українська"},
	{Code: "tr-TR", Native: "Türkçe"},
	{Code: "ar-SA", Native: "العربية"},
	{Code: "he-IL", Native: "עברית"},
	{Code: "fa-IR", Native: "فارسی"},
	{Code: "hi-IN", Native: "हिन्दी"},
	{Code: "bn-BD", Native: "বাংলা"},
	{Code: "ur-PK", Native: "اردو"},
	{Code: "th-TH", Native: "ไทย"},
	{Code: "vi-VN", Native: "Tiếng Việt"},
	{Code: "id-ID", Native: "Bahasa Indonesia"},
	{Code: "ms-MY", Native: "Bahasa Melayu"},
	{Code: "zh-CN", Native: "中文（简体）"},
	{Code: "zh-TW", Native: "中文（繁體）"},
	{Code: "ja-JP", Native: "日本語"},
	{Code: "ko-KR", Native: "한국어"},
	{Code: "sw-KE", Native: "Kiswahili"},
	{Code: "fil-PH", Native: "Filipino"},
}

func init() {
	for i := range supported {
		name, ok := rewrite.LanguageName(supported[i].Code)
		if !ok {
			name = supported[i].Native
		}
		supported[i].Name = name
	}
}

// Supported returns the full ordered locale list for pickers.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Codes returns the tags in display order, e.g. for Accept-Language
// negotiation.
func Codes() []string {
	out := make([]string, len(supported))
	for i, l := range supported {
		out[i] = l.Code
	}
	return out
}

// ByCode finds a supported locale by tag, ignoring case.
func ByCode(code string) (Locale, bool) {
	for _, l := range supported {
		if strings.EqualFold(l.Code, code) {
			return l, true
		}
	}
	return Locale{}, false
}
