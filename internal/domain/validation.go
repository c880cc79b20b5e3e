package domain

import (
	"encoding/json"
	"fmt"
)

// Finding is a single error, warning or info entry produced by validation.
// Context fields are set only when they apply.
type Finding[K ~string] struct {
	Kind         K      `json:"kind"`
	Message      string `json:"message"`
	Field        string `json:"field,omitempty"`
	TemplateName string `json:"template_name,omitempty"`
	SectionName  string `json:"section_name,omitempty"`
	ExerciseID   string `json:"exercise_id,omitempty"`
	Value        string `json:"value,omitempty"`
	Suggestion   string `json:"suggestion,omitempty"`
}

type (
	ValidationError   = Finding[ErrorKind]
	ValidationWarning = Finding[WarningKind]
	ValidationInfo    = Finding[InfoKind]
)

// ValidationResult accumulates findings for one validation call.
// Each stage builds its own result and callers combine them with Merge.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
	Info     []ValidationInfo
}

func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationWarning{},
		Info:     []ValidationInfo{},
	}
}

// InternalFailure builds a result holding a single InternalValidationError
func InternalFailure(err error) *ValidationResult {
	r := NewValidationResult()
	r.AddError(ValidationError{
		Kind:    ErrorInternalValidation,
		Message: fmt.Sprintf("Validation failed unexpectedly: %v", err),
	})
	return r
}

func (r *ValidationResult) AddError(e ValidationError) {
	r.Errors = append(r.Errors, e)
}

func (r *ValidationResult) AddWarning(w ValidationWarning) {
	r.Warnings = append(r.Warnings, w)
}

func (r *ValidationResult) AddInfo(i ValidationInfo) {
	r.Info = append(r.Info, i)
}

// Merge appends other's findings after r's, preserving order
func (r *ValidationResult) Merge(other *ValidationResult) *ValidationResult {
	if other == nil {
		return r
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	return r
}

func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) ErrorCount() int   { return len(r.Errors) }
func (r *ValidationResult) WarningCount() int { return len(r.Warnings) }
func (r *ValidationResult) InfoCount() int    { return len(r.Info) }

// HasError reports whether an error of the given kind was recorded
func (r *ValidationResult) HasError(kind ErrorKind) bool {
	for _, e := range r.Errors {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func (r *ValidationResult) HasWarning(kind WarningKind) bool {
	for _, w := range r.Warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

func (r *ValidationResult) HasInfo(kind InfoKind) bool {
	for _, i := range r.Info {
		if i.Kind == kind {
			return true
		}
	}
	return false
}

func (r *ValidationResult) Summary() string {
	status := "Valid"
	if !r.IsValid() {
		status = "Invalid"
	}
	return fmt.Sprintf("%s: %d error(s), %d warning(s), %d info", status, r.ErrorCount(), r.WarningCount(), r.InfoCount())
}

type validationResultJSON struct {
	IsValid      bool                `json:"is_valid"`
	Summary      string              `json:"summary"`
	ErrorCount   int                 `json:"error_count"`
	WarningCount int                 `json:"warning_count"`
	InfoCount    int                 `json:"info_count"`
	Errors       []ValidationError   `json:"errors"`
	Warnings     []ValidationWarning `json:"warnings"`
	Info         []ValidationInfo    `json:"info"`
}

// MarshalJSON includes the derived validity, counts and summary
func (r *ValidationResult) MarshalJSON() ([]byte, error) {
	out := validationResultJSON{
		IsValid:      r.IsValid(),
		Summary:      r.Summary(),
		ErrorCount:   r.ErrorCount(),
		WarningCount: r.WarningCount(),
		InfoCount:    r.InfoCount(),
		Errors:       r.Errors,
		Warnings:     r.Warnings,
		Info:         r.Info,
	}
	if out.Errors == nil {
		out.Errors = []ValidationError{}
	}
	if out.Warnings == nil {
		out.Warnings = []ValidationWarning{}
	}
	if out.Info == nil {
		out.Info = []ValidationInfo{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the lists back; derived fields are recomputed on demand
func (r *ValidationResult) UnmarshalJSON(data []byte) error {
	var in validationResultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.Errors = in.Errors
	r.Warnings = in.Warnings
	r.Info = in.Info
	return nil
}
