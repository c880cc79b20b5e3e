package repository

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"gopkg.in/yaml.v3"
)

type templateFile struct {
	Templates []*domain.WorkoutTemplate `yaml:"templates"`
}

// LoadTemplateFile reads workout templates from a YAML or JSON file. The file
// holds either a single template or a `templates: [...]` list.
func LoadTemplateFile(path string) ([]*domain.WorkoutTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	templates, err := ParseTemplates(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return templates, nil
}

func ParseTemplates(data []byte) ([]*domain.WorkoutTemplate, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("template file is empty")
	}

	var list templateFile
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	if len(list.Templates) > 0 {
		return list.Templates, nil
	}

	var single domain.WorkoutTemplate
	if err := yaml.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return []*domain.WorkoutTemplate{&single}, nil
}
