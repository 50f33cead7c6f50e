package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formguard/pkg/orchestrator"
	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/renderers/vanilla"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		valuesPath   string
		validate     bool
		themeName    string
		themeVariant string
		styles       bool
		stylesheets  []string
		templatesDir string
		hiddenPairs  []string
		csrfToken    string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "render [form]",
		Short: "Render a form as HTML",
		Long: `render prints the HTML markup for a form. With --values the controls
are pre-filled; adding --validate also submits them so inline errors, the
invalid indicators and the status summary appear in the markup.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readValues(valuesPath, a.stdin)
			if err != nil {
				return withCode(ExitDataError, err)
			}
			hidden, err := render.ParseHidden(hiddenPairs)
			if err != nil {
				return withCode(ExitError, err)
			}
			if csrfToken != "" {
				hidden = append(hidden, render.CSRFToken("", csrfToken))
			}

			opts := []vanilla.Option{vanilla.WithTemplatesDir(templatesDir)}
			if styles {
				opts = append(opts, vanilla.WithDefaultStyles())
			}
			for _, href := range stylesheets {
				opts = append(opts, vanilla.WithStylesheet(href))
			}
			html, err := vanilla.New(opts...)
			if err != nil {
				return withCode(ExitConfigError, err)
			}
			registry := render.NewRegistry()
			if err := registry.Register(html); err != nil {
				return withCode(ExitError, err)
			}

			orch := a.orchestrator(orchestrator.WithRegistry(registry))
			out, err := orch.Generate(cmd.Context(), orchestrator.Request{
				FormID:       a.formID(args),
				Renderer:     html.Name(),
				Values:       values,
				Validate:     validate,
				ThemeName:    themeName,
				ThemeVariant: themeVariant,
				RenderOptions: render.RenderOptions{
					Hidden: render.MergeHiddenFields(nil, hidden...),
				},
			})
			if err != nil {
				return classify(err)
			}
			if output != "" {
				if err := writeOutput(a.stdout, output, out); err != nil {
					return withCode(ExitError, err)
				}
				a.logger.Printf("form written to %s", output)
				return nil
			}
			_, err = fmt.Fprintln(a.stdout, string(out))
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&valuesPath, "values", "", "YAML/JSON file with field values (- for stdin)")
	flags.BoolVar(&validate, "validate", false, "submit the values so errors render inline")
	flags.StringVar(&themeName, "theme", "", "theme name (default from settings)")
	flags.StringVar(&themeVariant, "variant", "", "theme variant (default from settings)")
	flags.BoolVar(&styles, "styles", false, "inline the bundled stylesheet")
	flags.StringArrayVar(&stylesheets, "stylesheet", nil, "link an external stylesheet (repeatable)")
	flags.StringVar(&templatesDir, "templates", "", "directory overriding the bundled templates")
	flags.StringArrayVar(&hiddenPairs, "hidden", nil, "hidden field as name=value (repeatable)")
	flags.StringVar(&csrfToken, "csrf", "", "CSRF token rendered as a hidden field")
	flags.StringVarP(&output, "output", "o", "", "write HTML to a file instead of stdout")
	return cmd
}
