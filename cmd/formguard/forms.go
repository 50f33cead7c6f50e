package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type formSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Fields int    `json:"fields"`
}

func newFormsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "forms",
		Short: "List available form definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch := a.orchestrator()
			summaries := make([]formSummary, 0)
			for _, id := range orch.Forms() {
				form, err := orch.Form(cmd.Context(), id)
				if err != nil {
					return classify(err)
				}
				summaries = append(summaries, formSummary{ID: form.ID, Title: form.Title, Fields: len(form.Fields)})
			}

			if asJSON {
				return outputJSON(a.stdout, summaries)
			}
			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tFIELDS")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%s\t%d\n", s.ID, s.Title, s.Fields)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the list as JSON")
	return cmd
}
