package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formguard/pkg/formspec"
	"github.com/goliatone/go-formguard/pkg/rules"
)

func newLintCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lint [dir...]",
		Short: "Check form definition directories for problems",
		Long: `lint reports every problem in the definition files under each directory:
parse errors, missing names or rules, unknown rule names, defaults that fail
their own rules and duplicate form ids. Without arguments the configured
forms directory is checked. The exit code is 2 when anything is reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs := args
			if len(dirs) == 0 && a.settings.FormsDir != "" {
				dirs = []string{a.settings.FormsDir}
			}
			if len(dirs) == 0 {
				return withCode(ExitError, fmt.Errorf("no directory given and forms_dir is not configured"))
			}

			var all []formspec.Violation
			catalog := rules.DefaultCatalog()
			for _, dir := range dirs {
				info, err := os.Stat(dir)
				if err != nil {
					return withCode(ExitError, err)
				}
				if !info.IsDir() {
					return withCode(ExitError, fmt.Errorf("%s is not a directory", dir))
				}
				violations, err := formspec.Lint(os.DirFS(dir), catalog)
				if err != nil {
					return withCode(ExitError, fmt.Errorf("lint %s: %w", dir, err))
				}
				for _, v := range violations {
					v.File = dir + string(os.PathSeparator) + v.File
					all = append(all, v)
				}
			}

			if asJSON {
				if err := outputJSON(a.stdout, all); err != nil {
					return withCode(ExitError, err)
				}
			} else {
				for _, v := range all {
					fmt.Fprintln(a.stdout, v)
				}
			}
			if len(all) > 0 {
				return withCode(ExitConfigError, fmt.Errorf("%d problem(s) found", len(all)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print violations as JSON")
	return cmd
}
