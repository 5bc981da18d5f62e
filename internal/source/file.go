package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"scaperune/inspector/internal/domain"

	log "github.com/sirupsen/logrus"
)

type fileSource struct {
	path   string
	format Format
}

func NewFileSource(path string, format Format) Source {
	return &fileSource{
		path:   path,
		format: format,
	}
}

func (s *fileSource) Load(ctx context.Context) (*domain.Catalog, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer f.Close()

	catalog, err := decode(s.format, f)
	if err != nil {
		return nil, fmt.Errorf("file %s: %w", s.path, err)
	}

	log.Debugf("Loaded %d items from %s", catalog.Len(), s.path)
	return catalog, nil
}
