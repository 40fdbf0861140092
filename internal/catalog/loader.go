package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/teambuilder/internal/config"
	"github.com/heartmarshall/teambuilder/internal/domain"
)

const maxCatalogBytes = 32 << 20

// Loader fetches the two catalog sources. Sources are local paths or
// http(s) URLs; remote fetches are retried with exponential backoff.
type Loader struct {
	cfg    config.CatalogConfig
	client *http.Client
	log    *slog.Logger
}

// NewLoader creates a Loader. A nil client gets a default client with the
// configured fetch timeout.
func NewLoader(logger *slog.Logger, cfg config.CatalogConfig, client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: cfg.FetchTimeout}
	}
	return &Loader{
		cfg:    cfg,
		client: client,
		log:    logger.With("component", "catalog_loader"),
	}
}

// Load fetches both lists concurrently and builds a Store. A failure of
// either source fails the whole load: there is no partial catalog.
func (l *Loader) Load(ctx context.Context) (*Store, error) {
	store := &Store{}
	if err := l.Reload(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// Reload fetches both lists and swaps them into store. On error the store
// keeps its previous contents.
func (l *Loader) Reload(ctx context.Context, store *Store) error {
	var (
		chars []domain.Character
		subs  []domain.Psychube
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := l.fetch(gctx, l.cfg.CharactersSource)
		if err != nil {
			return fmt.Errorf("characters: %w", err)
		}
		chars, err = DecodeCharacters(data, FormatOf(l.cfg.CharactersSource))
		return err
	})
	g.Go(func() error {
		data, err := l.fetch(gctx, l.cfg.PsychubesSource)
		if err != nil {
			return fmt.Errorf("psychubes: %w", err)
		}
		subs, err = DecodePsychubes(data, FormatOf(l.cfg.PsychubesSource))
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	store.Replace(chars, subs)

	nc, np := store.Counts()
	l.log.InfoContext(ctx, "catalog loaded",
		slog.Int("characters", nc),
		slog.Int("psychubes", np),
	)
	return nil
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, errors.New("source not configured")
	}
	if isRemote(source) {
		return l.fetchRemote(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return data, nil
}

func (l *Loader) fetchRemote(ctx context.Context, url string) ([]byte, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 5 * time.Second

	attempt := 0
	op := func() ([]byte, error) {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		resp, err := l.client.Do(req)
		if err != nil {
			l.log.WarnContext(ctx, "catalog fetch failed",
				slog.String("url", url),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return nil, backoff.Permanent(fmt.Errorf("GET %s: status %d", url, resp.StatusCode))
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		return data, nil
	}

	return backoff.Retry(ctx, op,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(max(l.cfg.FetchRetries, 1))),
	)
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
