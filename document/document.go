package document

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-ini/literal"
	"github.com/0xalexb/hjarta-ini/sections"
	"github.com/0xalexb/hjarta-ini/tree"

	"gopkg.in/ini.v1"
)

// ErrCorruptedDocument is matched by every CorruptedDocumentError.
var ErrCorruptedDocument = errors.New("config document structure is corrupted")

// ErrReservedSection is returned when a tree node would need a section name the INI
// engine reserves: the empty name or its default section.
var ErrReservedSection = errors.New("reserved section name")

// CorruptedDocumentError wraps a syntax error reported by the INI engine.
type CorruptedDocumentError struct {
	Err error
}

func (e *CorruptedDocumentError) Error() string {
	return fmt.Sprintf("%s: %v", ErrCorruptedDocument, e.Err)
}

// Unwrap returns the engine diagnostic.
func (e *CorruptedDocumentError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrCorruptedDocument) hold.
func (e *CorruptedDocumentError) Is(target error) bool {
	return target == ErrCorruptedDocument
}

// Decode parses an INI document into a tree.
//
// It fails with a CorruptedDocumentError when the engine cannot read the text (including
// entries that precede every section header), and with sections.ErrStructuralConflict
// when a key is both a scalar and a nested section.
func Decode(data []byte, opts ...Option) (*tree.Tree, error) {
	options := newOptions(opts)

	file, err := ini.LoadSources(options.engineOptions(), data)
	if err != nil {
		return nil, &CorruptedDocumentError{Err: err}
	}

	flat, err := readSections(file)
	if err != nil {
		return nil, err
	}

	root, err := sections.Build(flat)
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}

	slog.Debug("document decoded", slog.Int("sections", len(flat)))

	return root, nil
}

func readSections(file *ini.File) ([]sections.Section, error) {
	engineSections := file.Sections()
	flat := make([]sections.Section, 0, len(engineSections))

	for _, section := range engineSections {
		keys := section.Keys()

		if section.Name() == ini.DefaultSection {
			if len(keys) > 0 {
				return nil, &CorruptedDocumentError{
					Err: fmt.Errorf("%d entries outside of any section, first %q", len(keys), keys[0].Name()),
				}
			}

			continue
		}

		entries := make([]sections.Entry, 0, len(keys))
		for _, key := range keys {
			entries = append(entries, sections.Entry{Key: key.Name(), Value: key.Value()})
		}

		flat = append(flat, sections.Section{Name: section.Name(), Entries: entries})
	}

	return flat, nil
}

// Encode renders a tree as an INI document. Sections follow tree order, parents first;
// the root's own section is never written, so scalars set directly on the root are dropped.
// An empty tree encodes to an empty document.
func Encode(root *tree.Tree, opts ...Option) ([]byte, error) {
	options := newOptions(opts)

	flat, err := sections.Flatten(root)
	if err != nil {
		return nil, fmt.Errorf("flattening tree: %w", err)
	}

	file := ini.Empty(options.engineOptions())

	for _, section := range flat {
		err = addSection(file, section)
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer

	_, err = file.WriteTo(&buf)
	if err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}

	slog.Debug("document encoded", slog.Int("sections", len(flat)))

	return buf.Bytes(), nil
}

func addSection(file *ini.File, section sections.Section) error {
	if section.Name == "" || section.Name == ini.DefaultSection {
		return fmt.Errorf("%w: %q", ErrReservedSection, section.Name)
	}

	engineSection, err := file.NewSection(section.Name)
	if err != nil {
		return fmt.Errorf("adding section %q: %w", section.Name, err)
	}

	for _, entry := range section.Entries {
		value, quoteErr := engineValue(entry.Value)
		if quoteErr != nil {
			return fmt.Errorf("section %q key %q: %w", section.Name, entry.Key, quoteErr)
		}

		_, err = engineSection.NewKey(entry.Key, value)
		if err != nil {
			return fmt.Errorf("section %q: adding key %q: %w", section.Name, entry.Key, err)
		}
	}

	return nil
}

// engineValue quotes raw text the engine would read back differently: a value opening
// with a triple quote, or a multi-line value (written inside triple quotes) that holds one.
func engineValue(text string) (string, error) {
	const tripleQuote = `"""`

	if !strings.HasPrefix(text, tripleQuote) &&
		!(strings.Contains(text, "\n") && strings.Contains(text, tripleQuote)) {
		return text, nil
	}

	quoted, err := literal.MarshalJSON(text)
	if err != nil {
		return "", err
	}

	return string(quoted), nil
}
