package language

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type entry struct {
	code2   string // ISO 639-1 (2-letter)
	code3   string // ISO 639-2 primary (3-letter)
	display string // Human-readable name
}

var languages = []entry{
	{"en", "eng", "English"},
	{"es", "spa", "Spanish"},
	{"fr", "fra", "French"},
	{"de", "deu", "German"},
	{"it", "ita", "Italian"},
	{"pt", "por", "Portuguese"},
	{"ja", "jpn", "Japanese"},
	{"ko", "kor", "Korean"},
	{"zh", "zho", "Chinese"},
	{"ru", "rus", "Russian"},
	{"ar", "ara", "Arabic"},
	{"hi", "hin", "Hindi"},
	{"nl", "nld", "Dutch"},
	{"pl", "pol", "Polish"},
	{"sv", "swe", "Swedish"},
	{"da", "dan", "Danish"},
	{"no", "nor", "Norwegian"},
	{"fi", "fin", "Finnish"},
}

var (
	byCode map[string]*entry
	byName map[string]*entry
)

func init() {
	byCode = make(map[string]*entry, len(languages)*2)
	byName = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode[e.code2] = e
		byCode[e.code3] = e
		byName[strings.ToLower(e.display)] = e
	}
}

var titleCaser = cases.Title(language.English)

// DisplayName resolves a language code or name to its human-readable form.
// Recognized ISO 639 codes and full names map to the canonical display name
// ("en" and "english" both yield "English"); anything else is passed through
// title-cased so the model still receives a usable directive. Empty input
// yields an empty string.
func DisplayName(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	lowered := strings.ToLower(trimmed)
	if e, ok := byCode[lowered]; ok {
		return e.display
	}
	if e, ok := byName[lowered]; ok {
		return e.display
	}
	return titleCaser.String(trimmed)
}
