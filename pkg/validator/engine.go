package validator

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/dmitrymomot/formulate/pkg/async"
	"github.com/dmitrymomot/formulate/pkg/logger"
	"github.com/dmitrymomot/formulate/pkg/rules"
)

// RuleResolver resolves rule implementations by name.
type RuleResolver interface {
	Lookup(name string) (rules.Rule, error)
}

// MessageResolver resolves the message factory for a rule name.
type MessageResolver interface {
	Factory(rule string) rules.MessageFactory
}

// Field describes the field under validation.
type Field struct {
	Name  string
	Label string
	Value any
}

// FieldSpec pairs a field with its rule string for form-level validation.
type FieldSpec struct {
	Field
	Rules string
}

// Engine resolves rule strings against a registry and runs them.
type Engine struct {
	rules    RuleResolver
	messages MessageResolver
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine over the given rule and message registries.
func New(rules RuleResolver, messages MessageResolver, opts ...Option) *Engine {
	e := &Engine{
		rules:    rules,
		messages: messages,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type call struct {
	invocation rules.Invocation
	rule       rules.Rule
}

// resolve parses the rule string and looks up every rule before anything runs.
func (e *Engine) resolve(rulesString string) ([]call, error) {
	invocations := rules.Parse(rulesString)
	calls := make([]call, len(invocations))
	for i, inv := range invocations {
		rule, err := e.rules.Lookup(inv.Rule)
		if err != nil {
			return nil, err
		}
		calls[i] = call{invocation: inv, rule: rule}
	}
	return calls, nil
}

// Compile checks that every rule named in rulesString is registered.
// Use it at startup to surface configuration errors before the first validation.
func (e *Engine) Compile(rulesString string) error {
	if strings.TrimSpace(rulesString) == "" {
		return nil
	}
	_, err := e.resolve(rulesString)
	return err
}

// Validate runs every rule of rulesString against the field concurrently and
// returns the failure messages in declaration order, or nil when all pass.
//
// An empty rule string is always valid. An unknown rule returns a
// *rules.UnknownRuleError before any rule runs. A rule that errors or
// panics makes the whole call fail with ErrRuleFailed.
//
// values is copied before the rules start; later changes are not observed.
func (e *Engine) Validate(ctx context.Context, field Field, rulesString string, values map[string]any) (Result, error) {
	if strings.TrimSpace(rulesString) == "" {
		return nil, nil
	}

	calls, err := e.resolve(rulesString)
	if err != nil {
		e.logger.WarnContext(ctx, "unknown validation rule",
			logger.Field(field.Name),
			logger.Rules(rulesString),
			logger.Error(err),
		)
		return nil, err
	}

	start := time.Now()
	snapshot := maps.Clone(values)
	if snapshot == nil {
		snapshot = map[string]any{}
	}

	futures := make([]*async.Future[string], len(calls))
	for i, c := range calls {
		rc := rules.Context{
			Field:  field.Name,
			Label:  field.Label,
			Value:  field.Value,
			Args:   c.invocation.Args,
			Values: snapshot,
			Error:  e.messages.Factory(c.invocation.Rule),
		}
		futures[i] = c.rule.Run(ctx, rc, c.invocation.Args...)
	}

	outcomes, err := async.WaitAll(futures...)
	if err != nil {
		e.logger.ErrorContext(ctx, "validation rule failed",
			logger.Field(field.Name),
			logger.Rules(rulesString),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: field %q: %w", ErrRuleFailed, field.Name, err)
	}

	var result Result
	for _, msg := range outcomes {
		if msg != "" {
			result = append(result, msg)
		}
	}

	e.logger.DebugContext(ctx, "field validated",
		logger.Field(field.Name),
		logger.Rules(rulesString),
		logger.Failed(len(result)),
		logger.Duration(time.Since(start)),
	)

	return result, nil
}

// ValidateForm validates every field concurrently and collects the results by
// field name. Fields without an explicit value take theirs from values. When a
// name appears twice, the first occurrence wins. The first field error (by
// position) aborts the form result.
func (e *Engine) ValidateForm(ctx context.Context, fields []FieldSpec, values map[string]any) (FormResult, error) {
	values = maps.Clone(values)
	seen := make(map[string]bool, len(fields))
	specs := make([]FieldSpec, 0, len(fields))
	for _, spec := range fields {
		if seen[spec.Name] {
			continue
		}
		seen[spec.Name] = true
		if spec.Value == nil {
			spec.Value = values[spec.Name]
		}
		specs = append(specs, spec)
	}

	futures := make([]*async.Future[Result], len(specs))
	for i, spec := range specs {
		futures[i] = async.Async(ctx, spec, func(ctx context.Context, spec FieldSpec) (Result, error) {
			return e.Validate(ctx, spec.Field, spec.Rules, values)
		})
	}

	results, err := async.WaitAll(futures...)
	if err != nil {
		return nil, err
	}

	form := make(FormResult, len(specs))
	for i, spec := range specs {
		form[spec.Name] = results[i]
	}
	return form, nil
}
