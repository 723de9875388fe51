package ini

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-ini/convert"
	"github.com/0xalexb/hjarta-ini/document"
	"github.com/0xalexb/hjarta-ini/sectionpath"
	"github.com/0xalexb/hjarta-ini/tree"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the INI document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser interface for INI data.
// Section names carry nesting, so [server.tls] is the tree server -> tls.
type Parser struct {
	options []document.Option
}

// NewParser creates a new INI parser instance. The options are passed to document.Decode.
func NewParser(opts ...document.Option) *Parser {
	return &Parser{options: opts}
}

// Parse decodes INI data and unmarshals the node at path into the target.
// The path uses section-path syntax ("server.tls", "remote.'my.host'"); its last segment
// may also name a single value. Empty path parses the entire document.
//
// The selected node is handed to the target through YAML, so targets use yaml struct tags.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	root, err := document.Decode(data, p.options...)
	if err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}

	node, err := selectNode(root, path)
	if err != nil {
		return err
	}

	encoded, err := convert.MarshalYAML(node)
	if err != nil {
		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.Unmarshal(encoded, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

func selectNode(root *tree.Tree, path string) (any, error) {
	segments, err := sectionpath.Decode(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	if len(segments) == 0 {
		return root, nil
	}

	parent, ok := root.Lookup(segments[:len(segments)-1])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	value, ok := parent.Get(segments[len(segments)-1])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	return value, nil
}
