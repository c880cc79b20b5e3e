package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTemplateRepo struct {
	templates []*domain.WorkoutTemplate
	listErr   error
}

func (f *fakeTemplateRepo) Create(context.Context, *domain.WorkoutTemplate) error { return nil }
func (f *fakeTemplateRepo) GetByID(context.Context, string) (*domain.WorkoutTemplate, error) {
	return nil, domain.ErrTemplateNotFound
}
func (f *fakeTemplateRepo) List(context.Context) ([]*domain.WorkoutTemplate, error) {
	return f.templates, f.listErr
}
func (f *fakeTemplateRepo) Update(context.Context, *domain.WorkoutTemplate) error { return nil }
func (f *fakeTemplateRepo) Delete(context.Context, string) error                  { return nil }

type fakeReportStore struct {
	mu       sync.Mutex
	uploads  map[string][]byte
	failWith error
}

func (f *fakeReportStore) Upload(_ context.Context, data []byte, filename, contentType string) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploads == nil {
		f.uploads = make(map[string][]byte)
	}
	f.uploads[filename] = data
	return "http://store/" + filename, nil
}

func auditFixture() []*domain.WorkoutTemplate {
	invalid := validTemplate()
	invalid.Name = "Broken"
	invalid.Sections = nil

	dup := validTemplate()
	dup.Name = "morning flow"

	return []*domain.WorkoutTemplate{validTemplate(), invalid, dup}
}

func TestAuditRun(t *testing.T) {
	repo := &fakeTemplateRepo{templates: auditFixture()}
	store := &fakeReportStore{}
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	svc := NewTemplateAuditService(repo, newService(newStubCatalog("ex-1", "ex-2")), store, 2, nil)
	svc.now = func() time.Time { return fixed }

	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, fixed, report.GeneratedAt)
	assert.Equal(t, 3, report.TemplateCount)
	assert.Equal(t, 2, report.ValidCount)
	assert.Equal(t, 1, report.InvalidCount)

	require.Len(t, report.Templates, 3)
	assert.Equal(t, "Morning Flow", report.Templates[0].TemplateName)
	assert.Equal(t, "Broken", report.Templates[1].TemplateName)
	assert.True(t, report.Templates[1].Result.HasError(domain.ErrorWorkoutNoSections))
	assert.Equal(t, "morning flow", report.Templates[2].TemplateName)

	require.NotNil(t, report.Consistency)
	assert.True(t, report.Consistency.HasError(domain.ErrorDuplicateName))

	id, err := ulid.Parse(report.ID)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(fixed), id.Time())

	key := "audits/" + report.ID + ".json"
	assert.Equal(t, "http://store/"+key, report.ArchiveURL)
	require.Contains(t, store.uploads, key)

	var archived map[string]any
	require.NoError(t, json.Unmarshal(store.uploads[key], &archived))
	assert.Equal(t, report.ID, archived["id"])
}

func TestAuditRun_ArchiveFailureIsNotFatal(t *testing.T) {
	repo := &fakeTemplateRepo{templates: auditFixture()}
	store := &fakeReportStore{failWith: errors.New("bucket gone")}

	svc := NewTemplateAuditService(repo, newService(newStubCatalog("ex-1", "ex-2")), store, 0, nil)
	report, err := svc.Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report.ArchiveURL)
	assert.Equal(t, 3, report.TemplateCount)
}

func TestAuditRun_WithoutStore(t *testing.T) {
	svc := NewTemplateAuditService(&fakeTemplateRepo{}, newService(newStubCatalog()), nil, 4, nil)
	report, err := svc.Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, report.TemplateCount)
	assert.Empty(t, report.Templates)
	assert.True(t, report.Consistency.IsValid())
	assert.Empty(t, report.ArchiveURL)
}

func TestAuditRun_ListError(t *testing.T) {
	repo := &fakeTemplateRepo{listErr: errors.New("mongo down")}
	svc := NewTemplateAuditService(repo, newService(newStubCatalog()), nil, 4, nil)

	_, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo down")
}

func TestAuditRun_CancelledContext(t *testing.T) {
	repo := &fakeTemplateRepo{templates: auditFixture()}
	svc := NewTemplateAuditService(repo, newService(newStubCatalog("ex-1", "ex-2")), nil, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
