package service

import (
	"context"
	"fmt"
	"io"

	"scaperune/inspector/internal/report"
	"scaperune/inspector/internal/source"

	log "github.com/sirupsen/logrus"
)

type Service struct {
	source      source.Source
	categories  []string
	sampleLimit int
	out         io.Writer
}

func NewService(src source.Source, categories []string, sampleLimit int, out io.Writer) *Service {
	return &Service{
		source:      src,
		categories:  categories,
		sampleLimit: sampleLimit,
		out:         out,
	}
}

// Run performs the whole inspection: load the catalog, sample the
// configured categories, tally everything, and write the report.
// Nothing is written before the load succeeds.
func (s *Service) Run(ctx context.Context) error {
	catalog, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	log.Infof("✅ Loaded catalog with %d items", catalog.Len())

	sections := make([]report.Section, 0, len(s.categories))
	for _, category := range s.categories {
		entries := report.SampleByCategory(catalog, category, s.sampleLimit)
		if len(entries) == 0 {
			log.Warnf("No items found for category %q", category)
		}
		sections = append(sections, report.Section{Category: category, Entries: entries})
	}

	counts := report.CountByCategory(catalog)

	if err := report.Render(s.out, sections, counts); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	log.Infof("✅ Reported %d categories across %d items", len(counts), catalog.Len())
	return nil
}
