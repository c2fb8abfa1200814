// Package fileutil provides utility functions for working with file paths and file operations.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/OlaoluwaM/scaffy/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CopyFile copies a file from src to dst using buffered IO.
func CopyFile(src, dst string) error {
	log.Printf("Copying file: src=%s, dst=%s", src, dst)
	in, err := os.Open(src)
	if err != nil {
		log.Printf("Failed to open source file: %s", err)
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		log.Printf("Failed to create destination file: %s", err)
		return err
	}
	defer func() { _ = out.Close() }()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	log.Printf("File copied successfully: src=%s, dst=%s", src, dst)
	return out.Sync()
}

// CopyInto copies src into dir, keeping its base name, and returns the
// destination path.
func CopyInto(src, dir string) (string, error) {
	if !FileExists(src) {
		return "", fmt.Errorf("%s does not exist or is a directory", src)
	}
	dst := filepath.Join(dir, filepath.Base(src))
	if err := CopyFile(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// RemoveFile deletes path. It reports whether a file was actually removed;
// a missing file is not an error.
func RemoveFile(path string) (bool, error) {
	err := os.Remove(path)
	switch {
	case err == nil:
		log.Printf("Removed file: %s", path)
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Nothing to remove at %s", path)
		return false, nil
	default:
		return false, err
	}
}
