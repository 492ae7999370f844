package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formulate"
	"github.com/dmitrymomot/formulate/pkg/discovery"
)

type fieldInfo struct {
	Name       string `json:"name"`
	Label      string `json:"label,omitempty"`
	Validation string `json:"validation,omitempty"`
	Value      any    `json:"value,omitempty"`
}

func newFieldsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <template.html>",
		Short: "List the fields declared in a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, f, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			root, err := parseTemplate(args[0])
			if err != nil {
				return err
			}

			fields := make([]fieldInfo, 0)
			for _, p := range f.Fields(root) {
				fields = append(fields, fieldInfo{
					Name:       p.Name(),
					Label:      p.Label(),
					Validation: p.Validation(),
					Value:      p.Value(),
				})
			}

			return newOutput(cmd, opts).result("ok", fields, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tVALIDATION\tLABEL")
				for _, fi := range fields {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", fi.Name, fi.Validation, fi.Label)
				}
				_ = tw.Flush()
			})
		},
	}
}

func parseTemplate(path string) (discovery.Node, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, commandError("open template", err)
	}
	defer file.Close()

	root, err := discovery.ParseHTML(file)
	if err != nil {
		return nil, commandError("parse template", err)
	}
	return root, nil
}

// initialValues collects the values declared on the fields themselves.
// The first field with a given name wins, matching whose rules are validated.
func initialValues(f *formulate.Formulate, root discovery.Node) map[string]any {
	values := make(map[string]any)
	seen := make(map[string]bool)
	for _, p := range f.Fields(root) {
		name := p.Name()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		if v := p.Value(); v != nil {
			values[name] = v
		}
	}
	return values
}
