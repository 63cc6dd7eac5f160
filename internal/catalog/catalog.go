package catalog

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"rickmorty/catalog/internal/domain"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ErrLoadInProgress is returned by Load while an earlier load has not finished.
var ErrLoadInProgress = errors.New("catalog load already in progress")

// State is a point-in-time copy of the catalog for the presentation layer.
type State struct {
	Characters  []domain.Character
	Filtered    []domain.Character
	Loading     bool
	Error       string
	SearchTerm  string
	PagesLoaded int
	TotalPages  int
}

// Catalog holds the aggregated character list and the current search term.
//
// Load is the only writer of the list, loading flag, error and progress;
// SetSearchTerm is the only writer of the search term.
type Catalog struct {
	fetcher      PageFetcher
	errorMessage string
	now          func() time.Time

	mu          sync.RWMutex
	characters  []domain.Character
	loading     bool
	err         string
	searchTerm  string
	pagesLoaded int
	totalPages  int
}

// New creates an empty catalog. errorMessage is the text exposed when a load stops early.
func New(fetcher PageFetcher, errorMessage string) *Catalog {
	return &Catalog{
		fetcher:      fetcher,
		errorMessage: errorMessage,
		now:          time.Now,
		characters:   make([]domain.Character, 0),
	}
}

// Load fetches every page and publishes the result. A failed page ends the
// load with whatever was gathered before it; the failure is reported through
// the error message and the returned report, never as an error. The only
// error is ErrLoadInProgress.
func (c *Catalog) Load(ctx context.Context) (*domain.LoadReport, error) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return nil, ErrLoadInProgress
	}
	c.loading = true
	c.err = ""
	c.pagesLoaded = 0
	c.totalPages = 0
	c.mu.Unlock()

	report := &domain.LoadReport{
		ID:        uuid.NewString(),
		StartedAt: c.now(),
	}

	log.Infof("🔄 Loading characters (load %s)", report.ID)

	characters, err := FetchAll(ctx, c.fetcher, func(pageNumber int, page *domain.CharacterPage) {
		c.mu.Lock()
		c.pagesLoaded = pageNumber
		c.totalPages = page.Info.Pages
		c.mu.Unlock()
	})

	c.mu.Lock()
	c.characters = characters
	c.loading = false
	if err != nil {
		c.err = c.errorMessage
	}
	report.PagesLoaded = c.pagesLoaded
	report.TotalPages = c.totalPages
	c.mu.Unlock()

	report.FinishedAt = c.now()
	report.Characters = len(characters)

	if err != nil {
		report.Partial = true
		report.Error = err.Error()

		var pageErr *PageError
		if errors.As(err, &pageErr) {
			report.FailedPage = pageErr.Page
		}

		log.Errorf("❌ Load %s stopped early, kept %d characters: %v", report.ID, len(characters), err)
		return report, nil
	}

	log.Infof("✅ Loaded %d characters from %d pages in %v", report.Characters, report.PagesLoaded, report.Duration().Round(time.Millisecond))
	return report, nil
}

func (c *Catalog) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searchTerm = term
}

func (c *Catalog) SearchTerm() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.searchTerm
}

func (c *Catalog) Characters() []domain.Character {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cloneCharacters(c.characters)
}

func (c *Catalog) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.loading
}

// ErrorMessage returns the message of the last load and whether it stopped early.
func (c *Catalog) ErrorMessage() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.err, c.err != ""
}

// FilteredView derives the visible characters from the list and the search term.
func (c *Catalog) FilteredView() []domain.Character {
	c.mu.RLock()
	characters, term := cloneCharacters(c.characters), c.searchTerm
	c.mu.RUnlock()

	return Filter(characters, term)
}

func (c *Catalog) Snapshot() State {
	c.mu.RLock()
	state := State{
		Characters:  cloneCharacters(c.characters),
		Loading:     c.loading,
		Error:       c.err,
		SearchTerm:  c.searchTerm,
		PagesLoaded: c.pagesLoaded,
		TotalPages:  c.totalPages,
	}
	c.mu.RUnlock()

	state.Filtered = Filter(state.Characters, state.SearchTerm)
	return state
}

// cloneCharacters copies the list and each character's episode URLs so callers
// cannot write through to the stored characters.
func cloneCharacters(characters []domain.Character) []domain.Character {
	out := slices.Clone(characters)
	for i := range out {
		out[i].Episode = slices.Clone(out[i].Episode)
	}
	return out
}
