package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/mansoorceksport/p90xcheck/internal/service"
	"github.com/spf13/cobra"
)

type checkFunc func(ctx context.Context, v *service.TemplateValidationService, t *domain.WorkoutTemplate) *domain.ValidationResult

type namedResult struct {
	Template string                   `json:"template"`
	Result   *domain.ValidationResult `json:"result"`
}

func newValidateCmd(app *App, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Run the full validation on every template in the files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPerTemplate(cmd, app, opts, args, func(ctx context.Context, v *service.TemplateValidationService, t *domain.WorkoutTemplate) *domain.ValidationResult {
				return v.ValidateTemplate(ctx, t)
			})
		},
	}
}

func newP90XCmd(app *App, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "p90x FILE...",
		Short: "Check templates against the P90X program requirements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPerTemplate(cmd, app, opts, args, func(ctx context.Context, v *service.TemplateValidationService, t *domain.WorkoutTemplate) *domain.ValidationResult {
				return v.ValidateP90XRequirements(ctx, t)
			})
		},
	}
}

func newConsistencyCmd(app *App, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "consistency FILE...",
		Short: "Check a set of templates for duplicate or similar names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			templates, err := loadTemplates(args)
			if err != nil {
				return err
			}

			// consistency only compares names, no catalog needed
			v := service.NewTemplateValidationService(nil, app.Logger)
			result := v.ValidateConsistency(ctx, templates)

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				if err := writeJSON(out, namedResult{Template: "*", Result: result}); err != nil {
					return err
				}
			} else {
				printResult(out, fmt.Sprintf("%d template(s)", len(templates)), result)
			}
			if !result.IsValid() {
				return ErrInvalidTemplates
			}
			return nil
		},
	}
}

func newSuggestCmd(app *App, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest FILE",
		Short: "Print improvement suggestions for the templates in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			templates, err := loadTemplates(args)
			if err != nil {
				return err
			}
			v, release, err := opts.validator(ctx, app)
			if err != nil {
				return err
			}
			defer release()

			out := cmd.OutOrStdout()
			all := make(map[string][]string, len(templates))
			for _, t := range templates {
				suggestions := v.GetSuggestions(ctx, t)
				if opts.jsonOutput {
					all[t.Name] = suggestions
					continue
				}
				fmt.Fprintf(out, "%s\n", t.Name)
				if len(suggestions) == 0 {
					fmt.Fprintln(out, "  no suggestions")
				}
				for _, s := range suggestions {
					fmt.Fprintf(out, "  - %s\n", s)
				}
			}
			if opts.jsonOutput {
				return writeJSON(out, all)
			}
			return nil
		},
	}
}

func runPerTemplate(cmd *cobra.Command, app *App, opts *options, paths []string, check checkFunc) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	templates, err := loadTemplates(paths)
	if err != nil {
		return err
	}
	v, release, err := opts.validator(ctx, app)
	if err != nil {
		return err
	}
	defer release()

	out := cmd.OutOrStdout()
	results := make([]namedResult, 0, len(templates))
	invalid := false
	for _, t := range templates {
		result := check(ctx, v, t)
		if !result.IsValid() {
			invalid = true
		}
		if opts.jsonOutput {
			results = append(results, namedResult{Template: t.Name, Result: result})
			continue
		}
		printResult(out, t.Name, result)
	}

	if opts.jsonOutput {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	}
	if invalid {
		return ErrInvalidTemplates
	}
	return nil
}

func printResult(out io.Writer, title string, r *domain.ValidationResult) {
	fmt.Fprintf(out, "%s: %s\n", title, r.Summary())
	for _, e := range r.Errors {
		fmt.Fprintf(out, "  ERROR   %-28s %s\n", e.Kind, e.Message)
		if e.Suggestion != "" {
			fmt.Fprintf(out, "          -> %s\n", e.Suggestion)
		}
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(out, "  WARNING %-28s %s\n", w.Kind, w.Message)
		if w.Suggestion != "" {
			fmt.Fprintf(out, "          -> %s\n", w.Suggestion)
		}
	}
	for _, i := range r.Info {
		fmt.Fprintf(out, "  INFO    %-28s %s\n", i.Kind, i.Message)
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
