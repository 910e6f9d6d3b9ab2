// Package flowfile loads wizard flow definitions from YAML.
package flowfile

import (
	"fmt"
	"os"

	"github.com/gosimple/slug"
	"github.com/mark3labs/stepflow/internal/hooks"
	"github.com/mark3labs/stepflow/wizard"
	"gopkg.in/yaml.v3"
)

// Step kinds understood by the terminal runner.
const (
	KindNote    = "note"
	KindInput   = "input"
	KindChoice  = "choice"
	KindSummary = "summary"
)

// Flow is one parsed flow definition.
type Flow struct {
	Title string            `yaml:"title"`
	Steps []StepDef         `yaml:"steps"`
	Hooks hooks.HooksConfig `yaml:"hooks"`

	// Path is where the flow was loaded from; set by Load.
	Path string `yaml:"-"`
}

// StepDef is one step of a flow definition.
type StepDef struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Kind        string   `yaml:"kind"`
	Body        string   `yaml:"body"`
	Prompt      string   `yaml:"prompt"`
	Placeholder string   `yaml:"placeholder"`
	Required    bool     `yaml:"required"`
	Options     []string `yaml:"options"`
	Default     string   `yaml:"default"`
	Enabled     *bool    `yaml:"enabled"` // nil means true
	NextLabel   string   `yaml:"next_label"`
	BackLabel   string   `yaml:"back_label"`
}

// IsEnabled resolves the optional enabled flag (default true).
func (d *StepDef) IsEnabled() bool {
	return d.Enabled == nil || *d.Enabled
}

// Load reads and validates a flow definition.
func Load(path string) (*Flow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading flow file: %w", err)
	}

	flow, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("flow file %s: %w", path, err)
	}
	flow.Path = path
	return flow, nil
}

// Parse parses and validates flow YAML.
func Parse(data []byte) (*Flow, error) {
	var flow Flow
	if err := yaml.Unmarshal(data, &flow); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	if err := flow.validate(); err != nil {
		return nil, err
	}
	return &flow, nil
}

func (f *Flow) validate() error {
	if f.Title == "" {
		return fmt.Errorf("flow title is required")
	}
	if len(f.Steps) == 0 {
		return fmt.Errorf("flow needs at least one step")
	}

	seen := make(map[string]bool, len(f.Steps))
	for i := range f.Steps {
		d := &f.Steps[i]
		if d.Title == "" {
			return fmt.Errorf("step %d: title is required", i+1)
		}
		if d.ID == "" {
			d.ID = slug.Make(d.Title)
		}
		if seen[d.ID] {
			return fmt.Errorf("step %d: duplicate id %q", i+1, d.ID)
		}
		seen[d.ID] = true

		if d.Kind == "" {
			d.Kind = KindNote
		}
		switch d.Kind {
		case KindNote, KindInput, KindChoice, KindSummary:
		default:
			return fmt.Errorf("step %q: unknown kind %q", d.ID, d.Kind)
		}
		if d.Kind == KindChoice && len(d.Options) == 0 {
			return fmt.Errorf("step %q: choice step needs options", d.ID)
		}
	}
	return nil
}

// Slug returns the flow's identity used for run ids and hook variables.
func (f *Flow) Slug() string {
	return slug.Make(f.Title)
}

// Step returns the definition with the given id, or nil.
func (f *Flow) Step(id string) *StepDef {
	for i := range f.Steps {
		if f.Steps[i].ID == id {
			return &f.Steps[i]
		}
	}
	return nil
}

// Registry builds the wizard registry for this flow, applying enabled
// flags and label overrides.
func (f *Flow) Registry() (*wizard.Registry, error) {
	reg := wizard.NewRegistry()
	for i := range f.Steps {
		d := &f.Steps[i]
		s := wizard.NewStep(d.ID, d.Title)
		s.SetEnabled(d.IsEnabled())
		s.SetForwardLabel(d.NextLabel)
		s.SetBackLabel(d.BackLabel)
		if err := reg.Append(s); err != nil {
			return nil, fmt.Errorf("registering step %q: %w", d.ID, err)
		}
	}
	return reg, nil
}
