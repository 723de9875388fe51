package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileMode is used when Store creates a file that did not exist before.
const DefaultFileMode fs.FileMode = 0o644

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for a config file. The file is read once at
// construction time; Store replaces both the file and the cached contents.
type Fetcher struct {
	filepath string
	data     []byte
	mode     fs.FileMode
	exists   bool
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*fetcherOptions)

type fetcherOptions struct {
	allowMissing bool
}

// AllowMissing makes a missing file behave like an empty one instead of failing
// construction. Store will then create it.
func AllowMissing() FetcherOption {
	return func(opts *fetcherOptions) {
		opts.allowMissing = true
	}
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read or if the path points to a directory.
func NewFetcher(fpath string, opts ...FetcherOption) func() (*Fetcher, error) {
	var options fetcherOptions

	for _, apply := range opts {
		apply(&options)
	}

	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			if options.allowMissing && errors.Is(err, fs.ErrNotExist) {
				return &Fetcher{filepath: cleanPath, data: nil, mode: DefaultFileMode, exists: false}, nil
			}

			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
			mode:     stat.Mode().Perm(),
			exists:   true,
		}, nil
	}
}

// Path returns the cleaned path of the underlying file.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Exists reports whether the file existed when it was last read or written.
func (f *Fetcher) Exists() bool {
	return f.exists
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
// A copy is returned to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Store replaces the file contents. It writes a temporary file next to the target and
// renames it into place, keeping the original permissions, so readers never observe a
// partially written file.
func (f *Fetcher) Store(data []byte) error {
	dir, base := filepath.Split(f.filepath)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %q: %w", f.filepath, err)
	}

	tmpName := tmp.Name()

	defer func() { _ = os.Remove(tmpName) }()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(f.mode)
	}

	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("writing file %q: %w", f.filepath, err)
	}

	err = os.Rename(tmpName, f.filepath)
	if err != nil {
		return fmt.Errorf("replacing file %q: %w", f.filepath, err)
	}

	f.data = append([]byte(nil), data...)
	f.exists = true

	return nil
}
