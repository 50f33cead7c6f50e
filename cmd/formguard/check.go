package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var valuesPath string

	cmd := &cobra.Command{
		Use:   "check [form]",
		Short: "Validate a values file against a form",
		Long: `check types the values into the form, submits it and prints the result
of every field as JSON. The exit code is 3 when any field is invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if valuesPath == "" {
				return withCode(ExitError, errors.New("--values is required"))
			}
			values, err := readValues(valuesPath, a.stdin)
			if err != nil {
				return withCode(ExitDataError, err)
			}

			formID := a.formID(args)
			report, err := a.orchestrator().Check(cmd.Context(), formID, values)
			if err != nil {
				return classify(err)
			}
			if err := outputJSON(a.stdout, report); err != nil {
				return withCode(ExitError, err)
			}
			if !report.Valid {
				return withCode(ExitDataError, fmt.Errorf("%s: values failed validation", formID))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&valuesPath, "values", "", "YAML/JSON file with field values (- for stdin)")
	return cmd
}
