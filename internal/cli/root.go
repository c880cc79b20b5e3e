package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/mansoorceksport/p90xcheck/internal/repository"
	"github.com/mansoorceksport/p90xcheck/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrInvalidTemplates is returned when at least one checked template has
// validation errors. The binary maps it to exit code 1.
var ErrInvalidTemplates = errors.New("one or more templates failed validation")

// CatalogOpener connects to the exercise catalog used when no catalog file
// is given. The returned func releases the connection.
type CatalogOpener func(ctx context.Context) (domain.ExerciseCatalog, func(), error)

// App holds what the commands need outside of their flags
type App struct {
	OpenCatalog CatalogOpener
	Logger      *zap.Logger
}

type options struct {
	catalogPath string
	jsonOutput  bool
}

// NewRootCmd creates the top-level "templatecheck" command
func NewRootCmd(app *App) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "templatecheck",
		Short:         "Validate workout template files offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML or JSON exercise catalog file (defaults to the Mongo catalog)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(
		newValidateCmd(app, opts),
		newSuggestCmd(app, opts),
		newP90XCmd(app, opts),
		newConsistencyCmd(app, opts),
		newKindsCmd(opts),
	)

	return root
}

// validator builds a validation service over the selected catalog
func (o *options) validator(ctx context.Context, app *App) (*service.TemplateValidationService, func(), error) {
	logger := app.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if o.catalogPath != "" {
		catalog, err := repository.LoadFileExerciseCatalog(o.catalogPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("loaded exercise catalog", zap.String("path", o.catalogPath), zap.Int("exercises", catalog.Len()))
		return service.NewTemplateValidationService(catalog, logger), func() {}, nil
	}

	if app.OpenCatalog == nil {
		return nil, nil, fmt.Errorf("no exercise catalog: pass --catalog FILE")
	}
	catalog, release, err := app.OpenCatalog(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open exercise catalog: %w", err)
	}
	return service.NewTemplateValidationService(catalog, logger), release, nil
}

func loadTemplates(paths []string) ([]*domain.WorkoutTemplate, error) {
	var all []*domain.WorkoutTemplate
	for _, path := range paths {
		templates, err := repository.LoadTemplateFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, templates...)
	}
	return all, nil
}
