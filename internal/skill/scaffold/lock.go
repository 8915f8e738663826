package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/harunnryd/skillref/internal/config"

	"github.com/gofrs/flock"
)

// LockFile is created inside the skill directory while it is being written.
const LockFile = ".skills-ref.lock"

type LockConfig struct {
	Timeout  time.Duration
	Retry    time.Duration
	MaxRetry int
}

func DefaultLockConfig() *LockConfig {
	timeout, _ := config.DurationOrDefault(config.DefaultLockTimeout, 2*time.Second)
	retry, _ := config.DurationOrDefault(config.DefaultLockRetry, 100*time.Millisecond)

	return &LockConfig{
		Timeout:  timeout,
		Retry:    retry,
		MaxRetry: config.DefaultLockMaxRetry,
	}
}

type dirLock struct {
	flock      *flock.Flock
	path       string
	acquiredAt time.Time
}

func acquire(ctx context.Context, dir string, cfg *LockConfig) (*dirLock, error) {
	if cfg == nil {
		cfg = DefaultLockConfig()
	}

	path := filepath.Join(dir, LockFile)
	fl := flock.New(path)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	for i := 0; i < cfg.MaxRetry; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("lock acquisition cancelled: %w", err)
		}

		locked, err := fl.TryLock()
		if err != nil {
			return nil, fmt.Errorf("failed to attempt lock: %w", err)
		}
		if locked {
			l := &dirLock{flock: fl, path: path, acquiredAt: time.Now()}
			slog.Debug("Skill directory locked", "path", path)
			return l, nil
		}

		if i < cfg.MaxRetry-1 {
			select {
			case <-ctx.Done():
			case <-time.After(cfg.Retry):
			}
		}
	}

	return nil, fmt.Errorf("skill directory %s is locked by another process (timeout after %v)", dir, cfg.Timeout)
}

func (l *dirLock) release() {
	if l == nil || l.flock == nil {
		return
	}

	held := time.Since(l.acquiredAt)
	if err := l.flock.Unlock(); err != nil {
		slog.Error("Failed to release skill directory lock", "path", l.path, "error", err)
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Debug("Failed to remove lock file", "path", l.path, "error", err)
	}
	slog.Debug("Skill directory unlocked", "path", l.path, "held_duration_ms", held.Milliseconds())
	l.flock = nil
}
