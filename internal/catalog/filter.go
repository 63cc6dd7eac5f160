package catalog

import (
	"slices"
	"strings"

	"rickmorty/catalog/internal/domain"

	"golang.org/x/text/cases"
)

// Filter returns the characters whose name contains term, ignoring case and
// surrounding whitespace in term. A blank term returns characters itself.
func Filter(characters []domain.Character, term string) []domain.Character {
	fold := cases.Fold()

	needle := fold.String(strings.TrimSpace(term))
	if needle == "" {
		return slices.Clip(characters)
	}

	matches := make([]domain.Character, 0)
	for _, character := range characters {
		if strings.Contains(fold.String(character.Name), needle) {
			matches = append(matches, character)
		}
	}

	return matches
}
