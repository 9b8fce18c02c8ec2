package fileop

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var ErrWrite = errors.New("could not write output")

// WriteFile streams write into a temporary file next to dest and renames
// it over dest once everything was flushed. dest is left untouched on
// failure.
func WriteFile(dest string, write func(io.Writer) error) (err error) {
	dir, name := filepath.Split(dest)
	if dir == "" {
		dir = "."
	}

	outFile, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("%w: could not create temporary destination for %q: %w", ErrWrite, dest, err)
	}
	canRename := false
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: could not close temporary destination for %q: %w", ErrWrite, dest, closeErr)
		}

		if canRename && err == nil {
			if renameErr := os.Rename(outFile.Name(), dest); renameErr != nil {
				err = fmt.Errorf("%w: could not rename destination file %q: %w", ErrWrite, dest, renameErr)
			}
		}
		if err != nil {
			if rmErr := os.Remove(outFile.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				slog.Error("could not remove temporary file", "name", outFile.Name(), "error", rmErr)
			}
		}
	}()

	w := bufio.NewWriter(outFile)
	if err = write(w); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrWrite, dest, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("%w: could not flush %q: %w", ErrWrite, dest, err)
	}
	if err = outFile.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: could not set mode of %q: %w", ErrWrite, dest, err)
	}
	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("%w: could not sync %q: %w", ErrWrite, dest, err)
	}

	canRename = true
	return nil
}
