package sectionpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-ini/tree"
)

// Separator joins path keys inside a section name.
const Separator = '.'

const (
	singleQuote = '\''
	doubleQuote = '"'
)

// ErrMalformedPath is matched by every MalformedPathError.
var ErrMalformedPath = errors.New("malformed section path")

// MalformedPathError reports a section name that does not follow the path grammar.
type MalformedPathError struct {
	Name   string
	Offset int
	Reason string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("%s %q at offset %d: %s", ErrMalformedPath, e.Name, e.Offset, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedPath) hold.
func (e *MalformedPathError) Is(target error) bool {
	return target == ErrMalformedPath
}

// Encode joins path into a section name. Keys containing the separator, or starting with
// a quote character, are wrapped in single quotes, or in double quotes when the key
// itself holds a single quote. The root path encodes to "".
func Encode(path tree.Path) string {
	parts := make([]string, len(path))

	for i, key := range path {
		parts[i] = encodeKey(key)
	}

	return strings.Join(parts, string(Separator))
}

func encodeKey(key string) string {
	if !needsQuoting(key) {
		return key
	}

	if strings.ContainsRune(key, singleQuote) {
		return string(doubleQuote) + key + string(doubleQuote)
	}

	return string(singleQuote) + key + string(singleQuote)
}

func needsQuoting(key string) bool {
	if strings.ContainsRune(key, Separator) {
		return true
	}

	return key != "" && (key[0] == singleQuote || key[0] == doubleQuote)
}

// Decode splits a section name back into path keys.
//
// A segment starting with a quote is read as a quoted run ('...' or "...") when its closing
// quote is followed by the separator or the end of the name. Otherwise the segment, like
// any other, is the unquoted run up to the next separator, quote characters included.
// Quoted contents are taken literally; there is no escape syntax inside quotes.
// A trailing separator ends the path. The empty name decodes to the root path.
//
// Every name matches the unquoted rule, so a MalformedPathError only reports a broken
// scanner invariant.
func Decode(name string) (tree.Path, error) {
	if name == "" {
		return tree.Path{}, nil
	}

	var path tree.Path

	offset := 0

	for {
		key, next := scanSegment(name, offset)
		path = append(path, key)

		if next >= len(name) {
			return path, nil
		}

		if name[next] != Separator {
			return nil, &MalformedPathError{
				Name:   name,
				Offset: next,
				Reason: "key must be followed by a separator",
			}
		}

		offset = next + 1
		if offset == len(name) {
			return path, nil
		}
	}
}

// scanSegment reads one key starting at offset and returns it with the index just past it.
func scanSegment(name string, offset int) (string, int) {
	if quote := name[offset]; quote == singleQuote || quote == doubleQuote {
		if closing := strings.IndexByte(name[offset+1:], quote); closing >= 0 {
			end := offset + 1 + closing
			if next := end + 1; next == len(name) || name[next] == Separator {
				return name[offset+1 : end], next
			}
		}
	}

	end := strings.IndexRune(name[offset:], Separator)
	if end < 0 {
		return name[offset:], len(name)
	}

	return name[offset : offset+end], offset + end
}
