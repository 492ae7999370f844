// Package formulate validates form fields against declarative rule strings.
//
// A rule string is a pipe separated list of rule invocations such as
// "required|min(3)|in(a, b)". Every invocation is resolved against a rule
// registry and all rules of a field run concurrently; the failure messages
// come back in declaration order, or nil when the field is valid.
//
// Formulate ties the pieces together:
//
//	f, err := formulate.New(log,
//		formulate.FromEnv(),
//		formulate.WithRules(map[string]rules.Rule{"even": rules.Sync(even)}),
//		formulate.WithStoreModule("forms"),
//	)
//	if err != nil {
//		return err
//	}
//
//	res, err := f.Validate(ctx, validator.Field{Name: "age", Value: 17}, "required|min(18)", nil)
//	// res == validator.Result{"Age must be at least 18"}
//
// Fields can also be discovered from a tree of declared nodes (see package
// discovery) and validated in one pass with ValidateTree, and bound to an
// external store with MapModels (see package binding).
package formulate
