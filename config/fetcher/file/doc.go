// Package file provides a file-backed DataFetcher for the config package.
//
// The file is read at construction time and cached, so every Fetch returns the same
// bytes for the lifetime of the Fetcher. Store writes new contents back atomically
// (temporary file + rename) and refreshes the cache, which is what read-modify-write
// callers such as document.Modify need.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/app/config.ini")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Pass AllowMissing() to treat a missing file as empty; Store then creates it.
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
