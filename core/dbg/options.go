package dbg

import (
	"io"
	"log/slog"
)

type options struct {
	logger        *slog.Logger
	validate      bool
	checkComplete bool
	maxRecordID   int
}

// Option configures a build.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		checkComplete: true,
		maxRecordID:   DefaultMaxRecordID,
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithValidation runs Validate over all records before building. The source
// is drained into memory first.
func WithValidation(on bool) Option {
	return func(o *options) { o.validate = on }
}

// WithCompletenessCheck fails the build with ErrIncompleteAdjacency when an
// endpoint is still unmapped after the pass. On by default.
func WithCompletenessCheck(on bool) Option {
	return func(o *options) { o.checkComplete = on }
}

func WithMaxRecordID(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxRecordID = n
		}
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
