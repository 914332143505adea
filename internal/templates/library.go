package templates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/MKhiriev/go-qr-forge/internal/validators"
	"github.com/MKhiriev/go-qr-forge/models"
	"gopkg.in/yaml.v3"
)

var ErrTemplateNotFound = errors.New("template not found")

// File is the layout of a user template file.
type File struct {
	Presets   []models.Preset   `yaml:"presets"`
	Templates []models.Template `yaml:"templates"`
}

// LoadFile reads a YAML template file. The result is not validated.
func LoadFile(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("error reading template file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return File{}, fmt.Errorf("error decoding template file %s: %w", path, err)
	}
	return f, nil
}

// Load reads a template file and checks every template with v. An empty
// path yields an empty File.
func Load(ctx context.Context, path string, v validators.Validator) (File, error) {
	if path == "" {
		return File{}, nil
	}

	f, err := LoadFile(path)
	if err != nil {
		return File{}, err
	}

	var errs []error
	for _, t := range f.Templates {
		if err = v.Validate(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return File{}, fmt.Errorf("invalid template file %s: %w", path, errors.Join(errs...))
	}
	return f, nil
}

// Library is an ordered, read-only set of templates and presets.
// Built-ins come first; a later template or preset with an existing id or
// name replaces the earlier one in place.
type Library struct {
	templates []models.Template
	presets   []models.Preset
}

// NewLibrary returns the built-ins extended with extra.
func NewLibrary(extra File) *Library {
	l := &Library{
		templates: Builtin(),
		presets:   BuiltinPresets(),
	}
	for _, p := range extra.Presets {
		l.addPreset(p)
	}
	for _, t := range extra.Templates {
		l.addTemplate(t)
	}
	return l
}

func (l *Library) addTemplate(t models.Template) {
	i := slices.IndexFunc(l.templates, func(x models.Template) bool { return x.ID == t.ID })
	if i >= 0 {
		l.templates[i] = t
		return
	}
	l.templates = append(l.templates, t)
}

func (l *Library) addPreset(p models.Preset) {
	i := slices.IndexFunc(l.presets, func(x models.Preset) bool { return x.Name == p.Name })
	if i >= 0 {
		l.presets[i] = p
		return
	}
	l.presets = append(l.presets, p)
}

// List returns a copy of all templates in display order.
func (l *Library) List() []models.Template {
	return slices.Clone(l.templates)
}

// Presets returns a copy of all presets.
func (l *Library) Presets() []models.Preset {
	return slices.Clone(l.presets)
}

// Get returns the template with the given id.
func (l *Library) Get(id string) (models.Template, error) {
	i := slices.IndexFunc(l.templates, func(x models.Template) bool { return x.ID == id })
	if i < 0 {
		return models.Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return l.templates[i], nil
}

// Preset returns the named preset.
func (l *Library) Preset(name string) (models.Preset, bool) {
	i := slices.IndexFunc(l.presets, func(x models.Preset) bool { return x.Name == name })
	if i < 0 {
		return models.Preset{}, false
	}
	return l.presets[i], true
}

// Typed returns the template data as a payload envelope.
func Typed(t models.Template) (models.TypedData, error) {
	raw, err := json.Marshal(t.Data)
	if err != nil {
		return models.TypedData{}, fmt.Errorf("marshal template %s: %w", t.ID, err)
	}
	return models.TypedData{Type: t.Type, Data: raw}, nil
}
