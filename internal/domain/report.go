package domain

import (
	"context"
	"time"
)

// TemplateReport is the validation outcome of one stored template
type TemplateReport struct {
	TemplateID   string            `json:"template_id"`
	TemplateName string            `json:"template_name"`
	Result       *ValidationResult `json:"result"`
}

// AuditReport covers every stored template plus the cross-template check
type AuditReport struct {
	ID            string            `json:"id"`
	GeneratedAt   time.Time         `json:"generated_at"`
	TemplateCount int               `json:"template_count"`
	ValidCount    int               `json:"valid_count"`
	InvalidCount  int               `json:"invalid_count"`
	Templates     []TemplateReport  `json:"templates"`
	Consistency   *ValidationResult `json:"consistency"`
	ArchiveURL    string            `json:"archive_url,omitempty"`
}

// ReportStore archives serialized reports and returns their location
type ReportStore interface {
	Upload(ctx context.Context, file []byte, filename string, contentType string) (string, error)
}
