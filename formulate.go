package formulate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formulate/pkg/binding"
	"github.com/dmitrymomot/formulate/pkg/discovery"
	"github.com/dmitrymomot/formulate/pkg/logger"
	"github.com/dmitrymomot/formulate/pkg/messages"
	"github.com/dmitrymomot/formulate/pkg/rules"
	"github.com/dmitrymomot/formulate/pkg/validator"
)

// ComponentKind identifies which component a tag is registered for.
type ComponentKind string

const (
	// FormComponent groups fields into a form.
	FormComponent ComponentKind = "form"
	// ElementComponent is a single validatable field.
	ElementComponent ComponentKind = "element"
)

// Host is the UI framework formulate installs into.
type Host interface {
	RegisterComponent(tag string, kind ComponentKind) error
}

// Formulate wires configuration, registries, the validation engine, field
// discovery and store binding together.
type Formulate struct {
	options  *Options
	rules    *rules.Registry
	messages *messages.Registry
	engine   *validator.Engine
	fields   *discovery.Collector
	logger   *slog.Logger
}

// New applies opts over DefaultOptions, merges custom rules and messages over
// the built-in registries and builds the engine. Later options win.
func New(log *slog.Logger, opts ...Option) (*Formulate, error) {
	if log == nil {
		log = logger.Discard()
	}

	options := DefaultOptions()
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return nil, err
		}
	}
	if options.Tags.FormulateElement == "" {
		return nil, fmt.Errorf("%w: element", ErrMissingTag)
	}

	ruleRegistry := rules.Defaults()
	ruleRegistry.Merge(options.Rules)

	messageRegistry := messages.Defaults()
	messageRegistry.Merge(options.Errors)

	f := &Formulate{
		options:  &options,
		rules:    ruleRegistry,
		messages: messageRegistry,
		engine:   validator.New(ruleRegistry, messageRegistry, validator.WithLogger(log)),
		fields:   discovery.NewCollector(options.Tags.FormulateElement),
		logger:   log,
	}

	log.Debug("formulate configured",
		logger.Component("formulate"),
		slog.Int("rules", len(ruleRegistry.Names())),
		slog.String("store_module", options.StoreModule),
	)
	return f, nil
}

// Install registers the form and element components with the host when
// component registration is enabled.
func (f *Formulate) Install(host Host) error {
	if !f.options.RegisterComponents || host == nil {
		return nil
	}
	if f.options.Tags.Formulate == "" {
		return fmt.Errorf("%w: form", ErrMissingTag)
	}

	components := []struct {
		tag  string
		kind ComponentKind
	}{
		{f.options.Tags.Formulate, FormComponent},
		{f.options.Tags.FormulateElement, ElementComponent},
	}
	for _, c := range components {
		if err := host.RegisterComponent(c.tag, c.kind); err != nil {
			return errors.Join(ErrComponentRegistration, err)
		}
	}
	return nil
}

// Options returns a copy of the effective options.
func (f *Formulate) Options() Options {
	return *f.options
}

// Namespace implements binding.Namespacer from the live options.
func (f *Formulate) Namespace() string {
	return f.options.Namespace()
}

func (f *Formulate) Rules() *rules.Registry       { return f.rules }
func (f *Formulate) Messages() *messages.Registry { return f.messages }
func (f *Formulate) Engine() *validator.Engine    { return f.engine }

// ParseRules splits a rule string into invocations.
func (f *Formulate) ParseRules(rulesString string) []rules.Invocation {
	return rules.Parse(rulesString)
}

// ErrorFactory returns the message factory for a rule, or the default one.
func (f *Formulate) ErrorFactory(rule string) rules.MessageFactory {
	return f.messages.Factory(rule)
}

// Validate validates a single field. See validator.Engine.Validate.
func (f *Formulate) Validate(ctx context.Context, field validator.Field, rulesString string, values map[string]any) (validator.Result, error) {
	return f.engine.Validate(ctx, field, rulesString, values)
}

// Fields returns the props of every field element in the tree, in document order.
func (f *Formulate) Fields(root discovery.Node) []discovery.Props {
	return f.fields.Collect(root)
}

// Prepare discovers the fields of a tree and checks their rule strings
// against the registry, so unknown rules surface before the first validation.
func (f *Formulate) Prepare(root discovery.Node) ([]validator.FieldSpec, error) {
	props := f.Fields(root)
	specs := make([]validator.FieldSpec, 0, len(props))
	for _, p := range props {
		if p.Name() == "" {
			continue
		}
		if err := f.engine.Compile(p.Validation()); err != nil {
			return nil, fmt.Errorf("field %q: %w", p.Name(), err)
		}
		specs = append(specs, validator.FieldSpec{
			Field: validator.Field{Name: p.Name(), Label: p.Label()},
			Rules: p.Validation(),
		})
	}
	return specs, nil
}

// ValidateTree discovers every field of a tree and validates it against values.
func (f *Formulate) ValidateTree(ctx context.Context, root discovery.Node, values map[string]any) (validator.FormResult, error) {
	specs, err := f.Prepare(root)
	if err != nil {
		return nil, err
	}
	return f.engine.ValidateForm(ctx, specs, values)
}

// MapModels binds models to store fields under the configured namespace.
func (f *Formulate) MapModels(store binding.Store, definitions map[string]string) (map[string]*binding.Model, error) {
	return binding.MapModels(f, store, definitions)
}
