package service

import (
	"context"

	"rickmorty/catalog/internal/catalog"
	"rickmorty/catalog/internal/domain"
	"rickmorty/catalog/internal/notify"

	log "github.com/sirupsen/logrus"
)

type Service struct {
	catalog   *catalog.Catalog
	publisher notify.Publisher
}

func NewService(catalog *catalog.Catalog, publisher notify.Publisher) *Service {
	return &Service{
		catalog:   catalog,
		publisher: publisher,
	}
}

// Load runs one catalog load and announces its report.
// It fails only with catalog.ErrLoadInProgress.
func (s *Service) Load(ctx context.Context) (*domain.LoadReport, error) {
	report, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, report); err != nil {
		log.Warnf("⚠️ Failed to publish load report %s: %v", report.ID, err)
	}

	return report, nil
}

// Search loads the catalog and returns the characters matching term.
func (s *Service) Search(ctx context.Context, term string) ([]domain.Character, *domain.LoadReport, error) {
	report, err := s.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	s.catalog.SetSearchTerm(term)
	return s.catalog.FilteredView(), report, nil
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}
