package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"scaperune/inspector/internal/config"
	"scaperune/inspector/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

type remoteSource struct {
	url        string
	format     Format
	httpClient *resty.Client
}

func NewRemoteSource(cfg config.CatalogConfig) Source {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("User-Agent", "sprite-catalog-inspector/1.0").
		SetHeader("Accept", "application/json, text/html;q=0.9")

	return &remoteSource{
		url:        cfg.URL,
		format:     Format(cfg.Format),
		httpClient: client,
	}
}

func (s *remoteSource) Load(ctx context.Context) (*domain.Catalog, error) {
	resp, err := s.httpClient.R().
		SetContext(ctx).
		Get(s.url)

	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("fetch cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", s.url, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s returned 404", ErrNotFound, s.url)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error fetching %s: %d %s", s.url, resp.StatusCode(), resp.Status())
	}

	catalog, err := decode(s.format, strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("remote catalog %s: %w", s.url, err)
	}

	log.Debugf("Loaded %d items from %s", catalog.Len(), s.url)
	return catalog, nil
}
