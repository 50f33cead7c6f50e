package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formguard/pkg/orchestrator"
	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/renderers/tui"
)

func newFillCmd(a *app) *cobra.Command {
	var (
		format      string
		valuesPath  string
		hiddenPairs []string
		attempts    int
		output      string
	)

	cmd := &cobra.Command{
		Use:   "fill [form]",
		Short: "Fill a form interactively and print the submitted values",
		Long: `fill prompts for every field of the form. Each answer is checked
against the field rules as it is typed; when the submission is rejected only
the invalid fields are asked again. Prompts go to stderr so the submitted
values can be piped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.settings.OutputFormat
			}
			outputFormat, ok := tui.ParseOutputFormat(format)
			if !ok {
				return withCode(ExitError, fmt.Errorf("unknown output format %q (json, form, pretty)", format))
			}

			values, err := readValues(valuesPath, a.stdin)
			if err != nil {
				return withCode(ExitDataError, err)
			}
			hidden, err := render.ParseHidden(hiddenPairs)
			if err != nil {
				return withCode(ExitError, err)
			}

			orch := a.orchestrator()
			session, err := tui.New(
				tui.WithOutputFormat(outputFormat),
				tui.WithCatalog(orch.Catalog()),
				tui.WithMaxAttempts(attempts),
			)
			if err != nil {
				return withCode(ExitError, err)
			}
			registry := render.NewRegistry()
			if err := registry.Register(session); err != nil {
				return withCode(ExitError, err)
			}
			orch = a.orchestrator(orchestrator.WithRegistry(registry), orchestrator.WithDefaultRenderer(session.Name()))

			out, err := orch.Generate(cmd.Context(), orchestrator.Request{
				FormID: a.formID(args),
				Values: values,
				RenderOptions: render.RenderOptions{
					Hidden: render.MergeHiddenFields(nil, hidden...),
				},
			})
			switch {
			case errors.Is(err, tui.ErrAborted):
				return withCode(ExitError, errors.New("aborted"))
			case errors.Is(err, tui.ErrDeclined):
				return withCode(ExitError, errors.New("submission cancelled"))
			case err != nil:
				return classify(err)
			}
			return writeOutput(a.stdout, output, out)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&format, "format", "f", "", "output format: json, form or pretty (default from settings)")
	flags.StringVar(&valuesPath, "values", "", "YAML/JSON file with answers used as prompt defaults")
	flags.StringArrayVar(&hiddenPairs, "hidden", nil, "hidden field as name=value (repeatable)")
	flags.IntVar(&attempts, "attempts", tui.DefaultMaxAttempts, "submissions allowed before giving up")
	flags.StringVarP(&output, "output", "o", "", "write values to a file instead of stdout")
	return cmd
}
