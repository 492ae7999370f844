package cli

import (
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formulate/pkg/validator"
)

type validateResult struct {
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors"`
}

func newValidateCommand(opts *RootOptions) *cobra.Command {
	var valuesPath string

	cmd := &cobra.Command{
		Use:   "validate <template.html>",
		Short: "Validate values against the fields of a template",
		Long: `Validate discovers every field of the template and validates it against
the values file (YAML, field name to value). Values declared on the fields
themselves are used when the file does not set them.

Exits with 1 when the form is invalid and 2 on any other error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, f, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			out := newOutput(cmd, opts)

			root, err := parseTemplate(args[0])
			if err != nil {
				return err
			}
			specs, err := f.Prepare(root)
			if err != nil {
				return commandError("invalid field rules", err)
			}
			out.debugf("discovered %d field(s) in %s", len(specs), args[0])

			values := initialValues(f, root)
			if valuesPath != "" {
				fileValues, err := readValues(valuesPath)
				if err != nil {
					return err
				}
				maps.Copy(values, fileValues)
			}

			res, err := f.Engine().ValidateForm(cmd.Context(), specs, values)
			if err != nil {
				return commandError("validation failed to run", err)
			}

			verrs := validator.ExtractValidationErrors(res.Err())
			body := validateResult{Valid: verrs.IsEmpty(), Errors: make(map[string][]string)}
			for _, ve := range verrs {
				body.Errors[ve.Field] = append(body.Errors[ve.Field], ve.Message)
			}

			status := "ok"
			if !body.Valid {
				status = "invalid"
			}
			err = out.result(status, body, func(w io.Writer) {
				if body.Valid {
					fmt.Fprintln(w, "✓ form is valid")
					return
				}
				for _, ve := range verrs {
					fmt.Fprintf(w, "✗ %s: %s\n", ve.Field, ve.Message)
				}
			})
			if err != nil {
				return err
			}
			if !body.Valid {
				return &ExitError{Code: ExitFailure, Message: "form is invalid", Err: verrs}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&valuesPath, "values", "", "YAML file with the submitted values")
	return cmd
}

func readValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, commandError("read values", err)
	}
	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, commandError("parse values", err)
	}
	return values, nil
}

