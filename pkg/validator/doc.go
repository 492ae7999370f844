// Package validator is the validation engine. It turns a rule string such as
// "required|min(8)|confirmed" into rule invocations, resolves each against a
// rule registry, runs them concurrently against the field value and the
// values of the sibling fields, and aggregates the outcome.
//
// # Results
//
// Validate returns a Result: nil when every rule passed, otherwise the failure
// messages in the order the rules were declared. Rules run concurrently and
// may settle in any order; aggregation is by position, never by completion.
//
//	engine := validator.New(rules.Defaults(), messages.Defaults())
//	res, err := engine.Validate(ctx,
//	    validator.Field{Name: "email", Value: ""},
//	    "required|email",
//	    formValues,
//	)
//	// res == Result{"Email is required"}, err == nil
//
// # Errors
//
// Three outcomes are kept apart:
//
//   - invalid input: a non-nil Result and a nil error
//   - unknown rule: a *rules.UnknownRuleError, returned before any rule runs;
//     Compile surfaces the same error at startup
//   - undeterminable: an asynchronous rule failed or a rule panicked; the
//     error wraps ErrRuleFailed and no Result is returned
//
// There is no cancellation of in-flight checks beyond what async rules do
// with the context they receive; callers discard stale results themselves.
//
// # Forms
//
// ValidateForm validates many fields at once and returns a FormResult, whose
// Err method converts failures into ValidationErrors, an error type that
// lists every field message.
package validator
