package catalog

import (
	"context"
	"errors"
	"fmt"

	"rickmorty/catalog/internal/domain"

	log "github.com/sirupsen/logrus"
)

// PageFetcher returns one page of the remote character collection. Pages start at 1.
type PageFetcher interface {
	GetCharacterPage(ctx context.Context, pageNumber int) (*domain.CharacterPage, error)
}

// PageError records which page stopped a load.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

var errEmptyPage = errors.New("fetcher returned no page")

// FetchAll requests pages one at a time, starting at page 1, and appends their
// results in arrival order until the source reports no next page.
//
// On the first failed page it stops and returns everything gathered so far
// together with a *PageError. onPage, if set, sees every successful page.
func FetchAll(ctx context.Context, fetcher PageFetcher, onPage func(pageNumber int, page *domain.CharacterPage)) ([]domain.Character, error) {
	characters := make([]domain.Character, 0)

	for pageNumber := 1; ; pageNumber++ {
		page, err := fetcher.GetCharacterPage(ctx, pageNumber)
		if err == nil && page == nil {
			err = errEmptyPage
		}
		if err != nil {
			return characters, &PageError{Page: pageNumber, Err: err}
		}

		characters = append(characters, page.Results...)
		if onPage != nil {
			onPage(pageNumber, page)
		}

		if !page.HasNext() {
			return characters, nil
		}

		if page.Info.Pages > 0 && pageNumber >= page.Info.Pages {
			log.Warnf("⚠️ Page %d of %d still points to a next page, stopping", pageNumber, page.Info.Pages)
			return characters, nil
		}
	}
}
