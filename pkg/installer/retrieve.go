package installer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OlaoluwaM/scaffy/pkg/fileutil"
	"github.com/OlaoluwaM/scaffy/pkg/logger"
)

var retrieveLog = logger.New("installer:retrieve")

// ErrNoDownloader is returned when neither curl nor wget is on PATH.
var ErrNoDownloader = errors.New("neither curl nor wget is installed")

// copyLocal copies each local configuration file into dir. Relative paths are
// resolved against dir. A file that already lives in dir is left alone.
func copyLocal(tool, dir string, paths []string, collector *ErrorCollector) error {
	for _, p := range paths {
		src := p
		if !filepath.IsAbs(src) {
			src = filepath.Join(dir, src)
		}
		src = filepath.Clean(src)

		dst := filepath.Join(dir, filepath.Base(src))
		if src == dst {
			retrieveLog.Printf("Skipping %s: already in the project root", src)
			continue
		}

		if _, err := fileutil.CopyInto(src, dir); err != nil {
			if stop := collector.Add(fmt.Errorf("%s: failed to copy %s: %w", tool, p, err)); stop != nil {
				return stop
			}
		}
	}
	return nil
}

// download fetches urls into dir with curl, or wget when curl is missing.
func download(ctx context.Context, runner CommandRunner, dir string, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	if _, err := runner.LookPath("curl"); err == nil {
		args := append([]string{"-LJ", "--output-dir", dir, "--remote-name-all"}, urls...)
		return runner.Run(ctx, dir, "curl", args...)
	}

	if _, err := runner.LookPath("wget"); err == nil {
		return downloadWithWget(ctx, runner, dir, urls)
	}

	return ErrNoDownloader
}

// downloadWithWget passes the urls through a temporary file because wget
// reads multiple urls from a list.
func downloadWithWget(ctx context.Context, runner CommandRunner, dir string, urls []string) error {
	list, err := os.CreateTemp("", "scaffy-urls-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create url list for wget: %w", err)
	}
	defer func() {
		if err := os.Remove(list.Name()); err != nil {
			retrieveLog.Printf("Failed to remove %s: %v", list.Name(), err)
		}
	}()

	_, writeErr := list.WriteString(strings.Join(urls, "\n") + "\n")
	closeErr := list.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		return fmt.Errorf("failed to write url list for wget: %w", err)
	}

	return runner.Run(ctx, dir, "wget", "-i", list.Name(), "-P", dir)
}
