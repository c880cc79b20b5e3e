package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileExerciseCatalog is an in-memory catalog loaded from a YAML or JSON
// file, used for offline validation.
type FileExerciseCatalog struct {
	exercises map[string]*domain.Exercise
}

type catalogFile struct {
	Exercises []*domain.Exercise `yaml:"exercises"`
}

// LoadFileExerciseCatalog reads a file of the form `exercises: [...]`.
// JSON is accepted as well since it is valid YAML.
func LoadFileExerciseCatalog(path string) (*FileExerciseCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseExerciseCatalog(data)
}

func ParseExerciseCatalog(data []byte) (*FileExerciseCatalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	catalog := &FileExerciseCatalog{exercises: make(map[string]*domain.Exercise, len(file.Exercises))}
	for i, ex := range file.Exercises {
		if ex == nil || ex.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, dup := catalog.exercises[ex.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, ex.ID)
		}
		catalog.exercises[ex.ID] = ex
	}
	return catalog, nil
}

func (c *FileExerciseCatalog) Exists(_ context.Context, id string) (bool, error) {
	_, ok := c.exercises[id]
	return ok, nil
}

func (c *FileExerciseCatalog) Len() int {
	return len(c.exercises)
}
