package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/harunnryd/skillref/internal/pathutil"
	"github.com/harunnryd/skillref/internal/skill/parser"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const watchDebounce = 200 * time.Millisecond

// watchSkill runs check once and again after every burst of changes under
// the skill, its test cases or the skills root, until ctx is done.
func watchSkill(ctx context.Context, cmd *cobra.Command, skillDir, root string, check func(context.Context) (bool, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range watchDirs(skillDir, root) {
		if err := watcher.Add(dir); err != nil {
			slog.Warn("Failed to watch directory", "path", dir, "error", err)
			continue
		}
		slog.Debug("Watching directory", "path", dir)
	}

	if _, err := check(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Watching for changes... Press Ctrl+C to stop")

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("Change detected", "file", event.Name, "op", event.Op.String())
			if event.Has(fsnotify.Create) && isSkillDirUnder(root, event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					slog.Warn("Failed to watch directory", "path", event.Name, "error", err)
				} else {
					slog.Debug("Watching new skill directory", "path", event.Name)
				}
			}
			timer.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Error watching files", "error", err)
		case <-timer.C:
			fmt.Fprintln(cmd.OutOrStdout())
			if _, err := check(ctx); err != nil {
				return err
			}
		}
	}
}

// watchDirs lists the skill directory, the directory of its test cases file
// and every skill directory directly under root, skipping duplicates and
// missing paths.
func watchDirs(skillDir, root string) []string {
	candidates := []string{skillDir, root}
	if meta, err := parser.LoadDescriptor(skillDir); err == nil {
		if rel, ok := meta.TestCasesPath().Get(); ok {
			candidates = append(candidates, filepath.Dir(filepath.Join(skillDir, rel)))
		}
	}

	if entries, err := os.ReadDir(root); err == nil {
		for _, e := range entries {
			if e.IsDir() {
				candidates = append(candidates, filepath.Join(root, e.Name()))
			}
		}
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, dir := range candidates {
		abs, err := filepath.Abs(dir)
		if err != nil || seen[abs] {
			continue
		}
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			continue
		}
		seen[abs] = true
		dirs = append(dirs, abs)
	}
	return dirs
}

// isSkillDirUnder reports whether path is an existing directory directly
// under root.
func isSkillDirUnder(root, path string) bool {
	if !pathutil.Same(filepath.Dir(path), root) {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
