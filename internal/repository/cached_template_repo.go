package repository

import (
	"context"
	"time"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
)

const (
	templateByIDKeyPrefix   = "template:id:"
	templateListKey         = "template:list"
	DefaultTemplateCacheTTL = 5 * time.Minute
)

// CachedTemplateRepository wraps a TemplateRepository with Redis caching.
// Exercise catalog lookups are never cached here.
type CachedTemplateRepository struct {
	store domain.TemplateRepository
	cache *RedisCacheRepository
	ttl   time.Duration
}

// NewCachedTemplateRepository creates a new cached template repository
func NewCachedTemplateRepository(store domain.TemplateRepository, cache *RedisCacheRepository, ttl time.Duration) *CachedTemplateRepository {
	if ttl <= 0 {
		ttl = DefaultTemplateCacheTTL
	}
	return &CachedTemplateRepository{
		store: store,
		cache: cache,
		ttl:   ttl,
	}
}

// GetByID retrieves a template with caching
func (r *CachedTemplateRepository) GetByID(ctx context.Context, id string) (*domain.WorkoutTemplate, error) {
	key := templateByIDKeyPrefix + id

	// Try cache first
	var tmpl domain.WorkoutTemplate
	if err := r.cache.Get(ctx, key, &tmpl); err == nil {
		return &tmpl, nil
	}

	// Cache miss - fetch from the store
	result, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore cache errors)
	_ = r.cache.Set(ctx, key, result, r.ttl)

	return result, nil
}

// List retrieves all templates with caching
func (r *CachedTemplateRepository) List(ctx context.Context) ([]*domain.WorkoutTemplate, error) {
	var templates []*domain.WorkoutTemplate
	if err := r.cache.Get(ctx, templateListKey, &templates); err == nil {
		return templates, nil
	}

	result, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, templateListKey, result, r.ttl)

	return result, nil
}

// Create creates a template and invalidates the list cache
func (r *CachedTemplateRepository) Create(ctx context.Context, tmpl *domain.WorkoutTemplate) error {
	if err := r.store.Create(ctx, tmpl); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, templateListKey)
	return nil
}

// Update updates a template and invalidates its caches
func (r *CachedTemplateRepository) Update(ctx context.Context, tmpl *domain.WorkoutTemplate) error {
	if err := r.store.Update(ctx, tmpl); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, templateByIDKeyPrefix+tmpl.ID, templateListKey)
	return nil
}

// Delete deletes a template and invalidates its caches
func (r *CachedTemplateRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, templateByIDKeyPrefix+id, templateListKey)
	return nil
}
