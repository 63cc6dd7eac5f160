// Package labels turns the API's status and gender values into display text.
//
// Lookups are case-insensitive. Values without an entry are returned as-is.
package labels

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Messages are the fixed strings shown around the character list.
type Messages struct {
	Title             string
	SearchPlaceholder string
	Loading           string
	LoadError         string
	NoResults         string
	countFormat       string
}

// Count renders the "shown of total" footer.
func (m Messages) Count(shown, total int) string {
	return fmt.Sprintf(m.countFormat, shown, total)
}

type table struct {
	status   map[string]string
	gender   map[string]string
	messages Messages
}

var tables = map[language.Tag]table{
	language.Spanish: {
		status: map[string]string{
			"alive":   "Vivo",
			"dead":    "Muerto",
			"unknown": "Desconocido",
		},
		gender: map[string]string{
			"male":       "Masculino",
			"female":     "Femenino",
			"genderless": "Sin género",
			"unknown":    "Desconocido",
		},
		messages: Messages{
			Title:             "Personajes de Rick y Morty",
			SearchPlaceholder: "Buscar personaje por nombre...",
			Loading:           "Cargando personajes...",
			LoadError:         "No se pudieron cargar los personajes. Verifica tu conexión a internet.",
			NoResults:         "No se encontraron personajes.",
			countFormat:       "Mostrando %d de %d personajes",
		},
	},
	language.English: {
		status: map[string]string{
			"alive":   "Alive",
			"dead":    "Dead",
			"unknown": "Unknown",
		},
		gender: map[string]string{
			"male":       "Male",
			"female":     "Female",
			"genderless": "Genderless",
			"unknown":    "Unknown",
		},
		messages: Messages{
			Title:             "Rick and Morty Characters",
			SearchPlaceholder: "Search characters by name...",
			Loading:           "Loading characters...",
			LoadError:         "Characters could not be loaded. Check your internet connection.",
			NoResults:         "No characters found.",
			countFormat:       "Showing %d of %d characters",
		},
	},
}

// Spanish first: it is the fallback for unmatched languages.
var supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(supported)

type Translator struct {
	tag   language.Tag
	table table
}

// New picks the closest supported language for lang (a BCP 47 tag such as "es" or "en-GB").
func New(lang string) *Translator {
	_, index := language.MatchStrings(matcher, lang)
	tag := supported[index]

	return &Translator{tag: tag, table: tables[tag]}
}

func (t *Translator) Language() language.Tag {
	return t.tag
}

func (t *Translator) Status(status string) string {
	return lookup(t.table.status, status)
}

func (t *Translator) Gender(gender string) string {
	return lookup(t.table.gender, gender)
}

func (t *Translator) Messages() Messages {
	return t.table.messages
}

func lookup(entries map[string]string, value string) string {
	if label, ok := entries[cases.Fold().String(value)]; ok {
		return label
	}
	return value
}

var spanish = New("es")

// TranslateStatus maps a status to its Spanish label.
func TranslateStatus(status string) string {
	return spanish.Status(status)
}

// TranslateGender maps a gender to its Spanish label.
func TranslateGender(gender string) string {
	return spanish.Gender(gender)
}
