package document

import (
	"fmt"

	filefetcher "github.com/0xalexb/hjarta-ini/config/fetcher/file"
	"github.com/0xalexb/hjarta-ini/tree"
)

// Load reads and decodes the INI file at path.
func Load(path string, opts ...Option) (*tree.Tree, error) {
	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, err
	}

	return decodeFetched(fetcher, opts)
}

// Dump encodes root and writes it to path, replacing any existing file.
func Dump(path string, root *tree.Tree, opts ...Option) error {
	fetcher, err := filefetcher.NewFetcher(path, filefetcher.AllowMissing())()
	if err != nil {
		return err
	}

	return encodeStored(fetcher, root, opts)
}

// Modify loads the file at path, hands the tree to fn and writes the result back.
// A missing file starts out as an empty tree. Nothing is written when fn fails.
//
// The INI engine does not keep comments, so a modified file loses them.
func Modify(path string, fn func(*tree.Tree) error, opts ...Option) error {
	fetcher, err := filefetcher.NewFetcher(path, filefetcher.AllowMissing())()
	if err != nil {
		return err
	}

	root, err := decodeFetched(fetcher, opts)
	if err != nil {
		return err
	}

	err = fn(root)
	if err != nil {
		return fmt.Errorf("modifying %q: %w", fetcher.Path(), err)
	}

	return encodeStored(fetcher, root, opts)
}

func decodeFetched(fetcher *filefetcher.Fetcher, opts []Option) (*tree.Tree, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", fetcher.Path(), err)
	}

	root, err := Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", fetcher.Path(), err)
	}

	return root, nil
}

func encodeStored(fetcher *filefetcher.Fetcher, root *tree.Tree, opts []Option) error {
	data, err := Encode(root, opts...)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", fetcher.Path(), err)
	}

	err = fetcher.Store(data)
	if err != nil {
		return err
	}

	return nil
}
