package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"hlsgrab/internal/logging"
	"hlsgrab/internal/services"
)

// ErrMissingSource indicates no manifest URL or path was supplied.
var ErrMissingSource = errors.New("a manifest URL must be provided")

// LoaderOptions configures manifest retrieval.
type LoaderOptions struct {
	UserAgent string
	Timeout   time.Duration
}

// Loader fetches master playlists over HTTP or from the local filesystem.
type Loader struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

// NewLoader constructs a manifest loader.
func NewLoader(opts LoaderOptions, logger *slog.Logger) *Loader {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Loader{
		client:    &http.Client{Timeout: timeout},
		userAgent: opts.UserAgent,
		logger:    logging.NewComponentLogger(logger, "manifest"),
	}
}

// Load fetches and parses the master playlist at source. Source may be an
// http(s) URL or a local file path.
func (l *Loader) Load(ctx context.Context, source string) (*Playlist, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, ErrMissingSource
	}

	l.logger.Info("loading manifest", logging.Args(logging.String("source", source))...)

	if isHTTP(source) {
		return l.loadHTTP(ctx, source)
	}
	return l.loadFile(source)
}

func (l *Loader) loadHTTP(ctx context.Context, source string) (*Playlist, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("build manifest request: %w", err)
	}
	if l.userAgent != "" {
		req.Header.Set("User-Agent", l.userAgent)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, services.Wrap(services.ErrNotFound, "manifest", "fetch", source, nil)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch manifest: unexpected status %s", resp.Status)
	}

	playlist, err := Parse(resp.Body)
	if err != nil {
		return nil, err
	}
	l.logResult(playlist)
	return playlist, nil
}

func (l *Loader) loadFile(path string) (*Playlist, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, "manifest", "open", path, err)
		}
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer file.Close()

	playlist, err := Parse(file)
	if err != nil {
		return nil, err
	}
	l.logResult(playlist)
	return playlist, nil
}

func (l *Loader) logResult(playlist *Playlist) {
	l.logger.Debug("manifest loaded", logging.Args(
		logging.Int("media_entries", len(playlist.Media)),
		logging.Int("variant_streams", len(playlist.Variants)),
	)...)
}

func isHTTP(source string) bool {
	parsed, err := url.Parse(source)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}
