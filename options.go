package visitology

import (
	"github.com/rs/zerolog"
	"github.com/viant/tagly/format/text"
)

type options struct {
	logger     zerolog.Logger
	caseFormat text.CaseFormat
	qualified  bool
	tagName    string
}

//Option registry option
type Option func(o *options)

//Options represents registry options
type Options []Option

//Apply applies options
func (o Options) Apply(opts *options) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(opts)
	}
}

func newOptions(opts []Option) *options {
	ret := &options{logger: zerolog.Nop(), tagName: TagName}
	Options(opts).Apply(ret)
	return ret
}

//WithLogger sets registry logger
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger.With().Str("component", "visitology").Logger()
	}
}

//WithCaseFormat formats element type name derived keys with supplied case format
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *options) {
		o.caseFormat = caseFormat
	}
}

//WithQualifiedNames uses package qualified type names for derived keys
func WithQualifiedNames() Option {
	return func(o *options) {
		o.qualified = true
	}
}

//WithTagName sets struct tag name used to declare element keys
func WithTagName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.tagName = name
		}
	}
}
