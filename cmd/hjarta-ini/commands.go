package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/0xalexb/hjarta-ini/convert"
	"github.com/0xalexb/hjarta-ini/document"
	"github.com/0xalexb/hjarta-ini/literal"
	"github.com/0xalexb/hjarta-ini/sectionpath"
	"github.com/0xalexb/hjarta-ini/tree"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/urfave/cli/v2"
)

// stdinName makes a command read its input from standard input.
const stdinName = "-"

var (
	errUsage       = errors.New("wrong number of arguments")
	errNotFound    = errors.New("not found")
	errNotAValue   = errors.New("names a section, not a value")
	errStdinTarget = errors.New("cannot write back to standard input")
	errNoSection   = errors.New("a value needs a section")
)

func expectArgs(c *cli.Context, count int) error {
	if c.NArg() != count {
		return fmt.Errorf("%w: %s %s", errUsage, c.Command.Name, c.Command.ArgsUsage)
	}

	return nil
}

func readInput(c *cli.Context, name string) ([]byte, error) {
	if name == stdinName {
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(name) //nolint:gosec // reading user-named files is the point
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	return data, nil
}

func decodeAction(c *cli.Context) error {
	err := expectArgs(c, 1)
	if err != nil {
		return err
	}

	format, err := convert.ParseFormat(c.String(flagFormat))
	if err != nil {
		return err
	}

	data, err := readInput(c, c.Args().First())
	if err != nil {
		return err
	}

	root, err := document.Decode(data, documentOptions(c)...)
	if err != nil {
		return err
	}

	output, err := convert.Marshal(format, root)
	if err != nil {
		return err
	}

	_, err = c.App.Writer.Write(output)

	return err
}

func encodeAction(c *cli.Context) error {
	err := expectArgs(c, 1)
	if err != nil {
		return err
	}

	format, err := convert.ParseFormat(c.String(flagFormat))
	if err != nil {
		return err
	}

	data, err := readInput(c, c.Args().First())
	if err != nil {
		return err
	}

	root, err := convert.Unmarshal(format, data)
	if err != nil {
		return err
	}

	output, err := document.Encode(root, documentOptions(c)...)
	if err != nil {
		return err
	}

	_, err = c.App.Writer.Write(output)

	return err
}

func fmtAction(c *cli.Context) error {
	err := expectArgs(c, 1)
	if err != nil {
		return err
	}

	name := c.Args().First()
	if name == stdinName && c.Bool(flagWrite) {
		return errStdinTarget
	}

	before, err := readInput(c, name)
	if err != nil {
		return err
	}

	root, err := document.Decode(before, documentOptions(c)...)
	if err != nil {
		return err
	}

	after, err := document.Encode(root, documentOptions(c)...)
	if err != nil {
		return err
	}

	if c.Bool(flagDiff) {
		writeDiff(c.App.Writer, name, string(before), string(after))
	}

	if c.Bool(flagWrite) {
		if string(before) == string(after) {
			commandLogger(c).Debug("already formatted", slog.String("file", name))

			return nil
		}

		err = document.Dump(name, root, documentOptions(c)...)
		if err != nil {
			return err
		}

		commandLogger(c).Info("formatted", slog.String("file", name))

		return nil
	}

	if c.Bool(flagDiff) {
		return nil
	}

	_, err = c.App.Writer.Write(after)

	return err
}

func writeDiff(w io.Writer, name, before, after string) {
	if before == after {
		return
	}

	differ := diffmatchpatch.New()
	beforeChars, afterChars, lines := differ.DiffLinesToChars(before, after)
	diffs := differ.DiffCharsToLines(differ.DiffMain(beforeChars, afterChars, false), lines)

	added := color.New(color.FgGreen).SprintFunc()
	removed := color.New(color.FgRed).SprintFunc()

	_, _ = fmt.Fprintf(w, "--- %s\n+++ %s (formatted)\n", name, name)

	for _, diff := range diffs {
		prefix, paint := " ", fmt.Sprint

		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			prefix, paint = "+", added
		case diffmatchpatch.DiffDelete:
			prefix, paint = "-", removed
		case diffmatchpatch.DiffEqual:
		}

		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}

			_, _ = fmt.Fprintln(w, paint(prefix+strings.TrimSuffix(line, "\n")))
		}
	}
}

func getAction(c *cli.Context) error {
	err := expectArgs(c, 3) //nolint:mnd // FILE SECTION KEY
	if err != nil {
		return err
	}

	file, section, key := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	path, err := sectionpath.Decode(section)
	if err != nil {
		return err
	}

	root, err := document.Load(file, documentOptions(c)...)
	if err != nil {
		return err
	}

	node, ok := root.Lookup(path)
	if !ok {
		return fmt.Errorf("section [%s]: %w", section, errNotFound)
	}

	value, ok := node.Get(key)
	if !ok {
		return fmt.Errorf("key %q in [%s]: %w", key, section, errNotFound)
	}

	if _, isTree := value.(*tree.Tree); isTree {
		return fmt.Errorf("key %q in [%s] %w", key, section, errNotAValue)
	}

	text, err := literal.Encode(value)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, text)

	return err
}

func setAction(c *cli.Context) error {
	err := expectArgs(c, 4) //nolint:mnd // FILE SECTION KEY VALUE
	if err != nil {
		return err
	}

	file, section, key, raw := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2), c.Args().Get(3)

	path, err := sectionpath.Decode(section)
	if err != nil {
		return err
	}

	if len(path) == 0 {
		return fmt.Errorf("key %q: %w", key, errNoSection)
	}

	var value any = raw
	if !c.Bool(flagString) {
		value = literal.Decode(raw)
	}

	err = document.Modify(file, func(root *tree.Tree) error {
		node, walkErr := root.Walk(path)
		if walkErr != nil {
			return walkErr
		}

		if _, isTree := node.Subtree(key); isTree {
			return fmt.Errorf("key %q in [%s] %w", key, section, errNotAValue)
		}

		node.Set(key, value)

		return nil
	}, documentOptions(c)...)
	if err != nil {
		return err
	}

	commandLogger(c).Debug("value stored",
		slog.String("file", file),
		slog.String("section", section),
		slog.String("key", key))

	return nil
}
