package main

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formguard/pkg/export"
	"github.com/goliatone/go-formguard/pkg/model"
)

func newSchemaCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "schema [form]",
		Short: "Print the OpenAPI schema describing a form submission",
		Long: `schema converts field rules into an OpenAPI 3 schema so a backend can
re-check submitted values. With --all every form is emitted as a components
map keyed by form id.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch := a.orchestrator()

			if all {
				forms := make([]model.FormModel, 0)
				for _, id := range orch.Forms() {
					form, err := orch.Form(cmd.Context(), id)
					if err != nil {
						return classify(err)
					}
					forms = append(forms, form)
				}
				schemas, err := export.Components(forms, orch.Catalog())
				if err != nil {
					return withCode(ExitConfigError, err)
				}
				return outputJSON(a.stdout, &openapi3.Components{Schemas: schemas})
			}

			form, err := orch.Form(cmd.Context(), a.formID(args))
			if err != nil {
				return classify(err)
			}
			schema, err := export.Schema(form, orch.Catalog())
			if err != nil {
				return withCode(ExitConfigError, err)
			}
			return outputJSON(a.stdout, schema)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "emit every form as OpenAPI components")
	return cmd
}
