package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultAuditConcurrency = 4

// TemplateAuditService validates every stored template and the set as a whole
type TemplateAuditService struct {
	templateRepo domain.TemplateRepository
	validator    *TemplateValidationService
	reportStore  domain.ReportStore // optional
	concurrency  int
	logger       *zap.Logger
	now          func() time.Time
}

func NewTemplateAuditService(
	templateRepo domain.TemplateRepository,
	validator *TemplateValidationService,
	reportStore domain.ReportStore,
	concurrency int,
	logger *zap.Logger,
) *TemplateAuditService {
	if concurrency <= 0 {
		concurrency = defaultAuditConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TemplateAuditService{
		templateRepo: templateRepo,
		validator:    validator,
		reportStore:  reportStore,
		concurrency:  concurrency,
		logger:       logger.Named("audit"),
		now:          time.Now,
	}
}

// NewReportID creates a new ULID string for a validation or audit report
func NewReportID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), rand.Reader).String()
}

// Run validates all templates concurrently and checks them for duplicate or
// similar names. Per-template results keep repository order. When a report
// store is configured the report is archived; archive failures are logged
// and do not fail the audit.
func (s *TemplateAuditService) Run(ctx context.Context) (*domain.AuditReport, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	generatedAt := s.now().UTC()
	report := &domain.AuditReport{
		ID:            NewReportID(generatedAt),
		GeneratedAt:   generatedAt,
		TemplateCount: len(templates),
		Templates:     make([]domain.TemplateReport, len(templates)),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, tmpl := range templates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			report.Templates[i] = domain.TemplateReport{
				TemplateID:   tmpl.ID,
				TemplateName: tmpl.Name,
				Result:       s.validator.ValidateTemplate(gCtx, tmpl),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("audit interrupted: %w", err)
	}

	for _, tr := range report.Templates {
		if tr.Result.IsValid() {
			report.ValidCount++
		} else {
			report.InvalidCount++
		}
	}
	report.Consistency = s.validator.ValidateConsistency(ctx, templates)

	if s.reportStore != nil {
		url, err := s.archive(ctx, report)
		if err != nil {
			s.logger.Warn("failed to archive audit report", zap.String("report_id", report.ID), zap.Error(err))
		} else {
			report.ArchiveURL = url
		}
	}

	s.logger.Info("template audit completed",
		zap.String("report_id", report.ID),
		zap.Int("templates", report.TemplateCount),
		zap.Int("invalid", report.InvalidCount),
		zap.Int("consistency_errors", report.Consistency.ErrorCount()),
	)

	return report, nil
}

func (s *TemplateAuditService) archive(ctx context.Context, report *domain.AuditReport) (string, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal audit report: %w", err)
	}
	return s.reportStore.Upload(ctx, data, fmt.Sprintf("audits/%s.json", report.ID), "application/json")
}
