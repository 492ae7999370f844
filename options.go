package formulate

import (
	"errors"

	"dario.cat/mergo"

	"github.com/dmitrymomot/formulate/pkg/config"
	"github.com/dmitrymomot/formulate/pkg/rules"
)

// Tags are the component tag names fields are declared with.
type Tags struct {
	Formulate        string
	FormulateElement string
}

// Options is the install-time configuration. It is built once by New and
// read by every component afterwards; changing it later is unsupported.
type Options struct {
	RegisterComponents bool
	Tags               Tags
	// Errors are merged over the built-in message registry.
	Errors map[string]rules.MessageFactory
	// Rules are merged over the built-in rule registry.
	Rules map[string]rules.Rule
	// StoreModule namespaces store commands and getters; empty means none.
	StoreModule string
}

// DefaultOptions returns the options New starts from.
func DefaultOptions() Options {
	return Options{
		RegisterComponents: true,
		Tags: Tags{
			Formulate:        "formulate",
			FormulateElement: "formulate-element",
		},
	}
}

// Namespace implements binding.Namespacer.
func (o *Options) Namespace() string {
	return o.StoreModule
}

// Option configures Formulate at construction time.
type Option func(*Options) error

// WithoutComponents disables component registration on Install.
func WithoutComponents() Option {
	return func(o *Options) error {
		o.RegisterComponents = false
		return nil
	}
}

// WithTags overrides the non-empty tag names.
func WithTags(tags Tags) Option {
	return func(o *Options) error {
		return mergo.Merge(&o.Tags, tags, mergo.WithOverride)
	}
}

// WithErrors adds message factories, overriding built-ins with the same name.
func WithErrors(factories map[string]rules.MessageFactory) Option {
	return func(o *Options) error {
		if o.Errors == nil {
			o.Errors = make(map[string]rules.MessageFactory, len(factories))
		}
		for name, f := range factories {
			o.Errors[name] = f
		}
		return nil
	}
}

// WithRules adds rules, overriding built-ins with the same name.
func WithRules(rs map[string]rules.Rule) Option {
	return func(o *Options) error {
		if o.Rules == nil {
			o.Rules = make(map[string]rules.Rule, len(rs))
		}
		for name, r := range rs {
			o.Rules[name] = r
		}
		return nil
	}
}

// WithStoreModule sets the store namespace.
func WithStoreModule(module string) Option {
	return func(o *Options) error {
		o.StoreModule = module
		return nil
	}
}

// envOptions holds the FORMULATE_* variables. Pointer fields stay nil when
// the variable is unset, so only present keys reach Options.
type envOptions struct {
	RegisterComponents *bool   `env:"FORMULATE_REGISTER_COMPONENTS"`
	TagForm            string  `env:"FORMULATE_TAG_FORM"`
	TagElement         string  `env:"FORMULATE_TAG_ELEMENT"`
	StoreModule        *string `env:"FORMULATE_STORE_MODULE"`
}

// FromEnv merges the FORMULATE_* environment variables that are set over the
// options. Unset variables leave earlier options untouched.
func FromEnv() Option {
	return func(o *Options) error {
		var env envOptions
		if err := config.Load(&env); err != nil {
			return errors.Join(ErrInvalidOptions, err)
		}
		tags := Tags{Formulate: env.TagForm, FormulateElement: env.TagElement}
		if err := mergo.Merge(&o.Tags, tags, mergo.WithOverride); err != nil {
			return errors.Join(ErrInvalidOptions, err)
		}
		if env.RegisterComponents != nil {
			o.RegisterComponents = *env.RegisterComponents
		}
		if env.StoreModule != nil {
			o.StoreModule = *env.StoreModule
		}
		return nil
	}
}
