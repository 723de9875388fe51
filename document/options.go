package document

import "gopkg.in/ini.v1"

// Options holds the settings passed to the INI engine on every decode and encode.
type Options struct {
	// CaseInsensitiveKeys lowercases entry keys on read and write. Section names are
	// always case-sensitive because they carry path keys.
	CaseInsensitiveKeys bool
}

// Option defines a function type for applying document options.
type Option func(*Options)

// WithCaseInsensitiveKeys lowercases every entry key.
func WithCaseInsensitiveKeys() Option {
	return func(opts *Options) {
		opts.CaseInsensitiveKeys = true
	}
}

func newOptions(opts []Option) Options {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return options
}

// engineOptions disables every engine feature that would rewrite value text: inline
// comments, line continuations and quote stripping all belong to the value codec.
func (o Options) engineOptions() ini.LoadOptions {
	return ini.LoadOptions{ //nolint:exhaustruct // zero values are the engine defaults
		InsensitiveKeys:         o.CaseInsensitiveKeys,
		IgnoreContinuation:      true,
		IgnoreInlineComment:     true,
		PreserveSurroundedQuote: true,
		KeyValueDelimiters:      "=",
	}
}
