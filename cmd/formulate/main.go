package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/formulate/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "formulate:", err)
		os.Exit(cli.ExitCode(err))
	}
}
