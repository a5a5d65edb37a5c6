// Package i18n holds the static localization tables consumed by the LLM
// gateway (language directives) and the HTTP boundary (UI strings).
package i18n

import "fmt"

// DefaultLanguage is used for every unsupported language code.
const DefaultLanguage = "en"

// Language describes one supported UI language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Flag       string `json:"flag"`
	RTL        bool   `json:"rtl"`
}

// SupportedLanguages lists every language the assistant can answer in,
// in display order.
var SupportedLanguages = []Language{
	{Code: "en", Name: "English", NativeName: "English", Flag: "🇬🇧", RTL: false},
	{Code: "es", Name: "Spanish", NativeName: "Español", Flag: "🇪🇸", RTL: false},
	{Code: "fr", Name: "French", NativeName: "Français", Flag: "🇫🇷", RTL: false},
	{Code: "ar", Name: "Arabic", NativeName: "العربية", Flag: "🇸🇦", RTL: true},
	{Code: "zh", Name: "Chinese", NativeName: "中文", Flag: "🇨🇳", RTL: false},
}

var languageMap = func() map[string]Language {
	m := make(map[string]Language, len(SupportedLanguages))
	for _, l := range SupportedLanguages {
		m[l.Code] = l
	}
	return m
}()

// Normalize maps any code to a supported one, falling back to English.
func Normalize(code string) string {
	if _, ok := languageMap[code]; ok {
		return code
	}
	return DefaultLanguage
}

// LanguageInstruction returns the prompt directive telling the model which
// language to answer in. English needs no directive.
func LanguageInstruction(code string) string {
	code = Normalize(code)
	if code == DefaultLanguage {
		return ""
	}

	lang := languageMap[code]
	return fmt.Sprintf(`
IMPORTANT: Respond entirely in %s (%s).
All text, headers, and explanations must be in %s.
Only keep technical terms, names, and data values in English if necessary.
`, lang.Name, lang.NativeName, lang.Name)
}

var greetings = map[string]string{
	"en": "Hello, %s!",
	"es": "¡Hola, %s!",
	"fr": "Bonjour, %s!",
	"ar": "!مرحبا، %s",
	"zh": "你好，%s！",
}

// Greeting returns a localized greeting for the given name.
func Greeting(code, name string) string {
	g, ok := greetings[code]
	if !ok {
		g = greetings[DefaultLanguage]
	}
	return fmt.Sprintf(g, name)
}
