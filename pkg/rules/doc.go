// Package rules holds the building blocks of declarative field validation:
// the rule-string parser, the rule Context handed to every check, the tagged
// Rule capability (synchronous or deferred) and the Registry that maps rule
// names to implementations.
//
// # Rule strings
//
// A rule string is a pipe-separated list of clauses. Each clause is either a
// bare rule name or a name followed by a comma-separated argument list:
//
//	required|min(8)|confirmed(password_repeat)
//
// Whitespace around clauses and arguments is insignificant. A clause that
// does not have the name(args) shape is treated as a bare rule name, so
// parsing never fails. Arguments stay strings; each rule interprets them.
//
// # Rules
//
// A Rule wraps either a Func, which answers immediately, or an AsyncFunc,
// which may block (for example on a database lookup) and may fail with an
// error. Both report a failed check by returning a non-empty message and a
// passed check by returning an empty string:
//
//	reg := rules.Defaults()
//	reg.Register("username", rules.Async(func(ctx context.Context, c rules.Context, _ ...string) (string, error) {
//	    taken, err := users.Exists(ctx, rules.String(c.Value))
//	    if err != nil || !taken {
//	        return "", err
//	    }
//	    return c.Message(), nil
//	}))
//
// Rules normally produce their message through c.Message, which renders the
// MessageFactory the engine resolved for the rule name.
//
// # Built-in rules
//
// Defaults returns a registry with required, email, confirmed, number, in,
// notIn, min, max, between, alpha, alphanumeric, url and matches. Every rule
// except required passes on empty values.
package rules
