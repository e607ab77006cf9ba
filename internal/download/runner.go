package download

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"hlsgrab/internal/logging"
	"hlsgrab/internal/services"
)

const lockFileName = ".hlsgrab.lock"

type commandRunner func(ctx context.Context, name string, args ...string) error

// Runner fetches playlist components with ffmpeg stream copies.
type Runner struct {
	ffmpeg string
	dir    string
	logger *slog.Logger
	run    commandRunner
}

// NewRunner constructs a download runner writing into dir.
func NewRunner(ffmpegBinary, dir string, logger *slog.Logger) *Runner {
	binary := strings.TrimSpace(ffmpegBinary)
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Runner{
		ffmpeg: binary,
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "downloader"),
		run:    defaultCommandRunner,
	}
}

// WithCommandRunner injects a custom command runner for tests.
func (r *Runner) WithCommandRunner(run commandRunner) {
	if r != nil && run != nil {
		r.run = run
	}
}

// Fetch downloads every plan item sequentially. The downloads directory is
// created if needed and held under a file lock for the duration of the run
// so concurrent invocations cannot clobber each other's component files.
func (r *Runner) Fetch(ctx context.Context, items []Item) error {
	if len(items) == 0 {
		return nil
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create downloads directory %q: %w", r.dir, err)
	}

	lock := flock.New(filepath.Join(r.dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire downloads lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("downloads directory %q is in use by another run", r.dir)
	}
	defer func() { _ = lock.Unlock() }()

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		dest := filepath.Join(r.dir, item.FileName)
		r.logger.Info("downloading component", logging.Args(
			logging.String("uri", item.URI),
			logging.String("file", dest),
		)...)
		if err := r.run(ctx, r.ffmpeg, "-i", item.URI, "-c", "copy", dest); err != nil {
			return services.Wrap(services.ErrExternalTool, "downloader", "fetch", item.URI, err)
		}
	}

	r.logger.Info("all components downloaded", logging.Args(logging.Int("count", len(items)))...)
	return nil
}

func defaultCommandRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
