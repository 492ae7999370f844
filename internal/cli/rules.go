package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type ruleInfo struct {
	Name  string `json:"name"`
	Async bool   `json:"async"`
}

func newRulesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the registered validation rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, f, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			registry := f.Rules()
			list := make([]ruleInfo, 0)
			for _, name := range registry.Names() {
				rule, err := registry.Lookup(name)
				if err != nil {
					return commandError("lookup rule", err)
				}
				list = append(list, ruleInfo{Name: name, Async: rule.IsAsync()})
			}

			return newOutput(cmd, opts).result("ok", list, func(w io.Writer) {
				for _, r := range list {
					if r.Async {
						fmt.Fprintf(w, "%s (async)\n", r.Name)
						continue
					}
					fmt.Fprintln(w, r.Name)
				}
			})
		},
	}
}
