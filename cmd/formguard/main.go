// Command formguard lists, renders, fills and checks declarative form
// definitions.
package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and maps the outcome onto an exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		logger: log.New(stderr, "formguard: ", 0),
	}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Print(err)
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "formguard",
		Short: "Validate, render and fill declarative forms",
		Long: `formguard works with form definitions: every field carries rules that
are checked on each keystroke and again when the form is submitted.

Embedded forms (contact, signup) are always available; --forms-dir adds or
overrides definitions from a directory of YAML/JSON files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "settings file (YAML, JSON or TOML)")
	flags.StringVar(&a.formsDir, "forms-dir", "", "directory of additional form definitions")
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files loaded before settings (default .env)")
	flags.StringVar(&a.presetPath, "preset", "", "JSON preset applied to forms before use")

	root.AddCommand(
		newFormsCmd(a),
		newFillCmd(a),
		newRenderCmd(a),
		newCheckCmd(a),
		newSchemaCmd(a),
		newLintCmd(a),
	)
	return root
}
