// Package catalog holds the reference data the recommender works from: the
// elective subjects, career packages, RIASEC questionnaire and the lookup tables
// that turn a student profile into subject features.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Peminatan/internal/riasec"
)

//go:embed catalog.yaml
var defaultYAML []byte

type Subject struct {
	ID       int     `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	Category string  `yaml:"category" json:"category"`
	Group    string  `yaml:"group" json:"group"`
	Icon     string  `yaml:"icon" json:"icon"`
	MinGrade float64 `yaml:"min_grade" json:"min_grade"`
}

type CareerPackage struct {
	Key          string   `yaml:"key" json:"key"`
	Label        string   `yaml:"label" json:"label"`
	Icon         string   `yaml:"icon" json:"icon"`
	Subjects     []string `yaml:"subjects" json:"subjects"`
	Optional     []string `yaml:"optional" json:"optional"`
	Description  string   `yaml:"description" json:"description"`
	Universities []string `yaml:"universities" json:"universities"`
}

type Description struct {
	Label       string   `yaml:"label" json:"label"`
	Title       string   `yaml:"title" json:"title"`
	Color       string   `yaml:"color" json:"color"`
	Description string   `yaml:"description" json:"description"`
	Careers     []string `yaml:"careers" json:"careers"`
}

// AspirationRule lists the subjects relevant to an aspiration keyword, most
// relevant first.
type AspirationRule struct {
	Keyword  string   `yaml:"keyword"`
	Subjects []string `yaml:"subjects"`
}

// CareerKeyword points an aspiration keyword at a career package.
type CareerKeyword struct {
	Keyword string `yaml:"keyword"`
	Package string `yaml:"package"`
}

type Catalog struct {
	Subjects       []Subject                        `yaml:"subjects"`
	CareerPackages []CareerPackage                  `yaml:"career_packages"`
	Questions      []riasec.Question                `yaml:"questions"`
	Descriptions   map[riasec.Dimension]Description `yaml:"descriptions"`
	SubjectRIASEC  map[string][]riasec.Dimension    `yaml:"subject_riasec"`
	Aspirations    []AspirationRule                 `yaml:"aspirations"`
	Availability   map[string]float64               `yaml:"availability"`
	CareerKeywords []CareerKeyword                  `yaml:"career_keywords"`
}

// Default returns the embedded catalog. It panics only if the embedded file is
// broken, which the package tests rule out.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog from path, or returns the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the cross references between the tables.
func (c *Catalog) Validate() error {
	var errs []error

	if len(c.Subjects) == 0 {
		errs = append(errs, errors.New("no subjects"))
	}
	names := make(map[string]bool, len(c.Subjects))
	for _, s := range c.Subjects {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("subject %d has no name", s.ID))
			continue
		}
		if names[s.Name] {
			errs = append(errs, fmt.Errorf("duplicate subject %q", s.Name))
		}
		names[s.Name] = true
	}

	for _, q := range c.Questions {
		if !q.Type.Valid() {
			errs = append(errs, fmt.Errorf("question %d has unknown type %q", q.ID, q.Type))
		}
	}
	for subject, dims := range c.SubjectRIASEC {
		for _, d := range dims {
			if !d.Valid() {
				errs = append(errs, fmt.Errorf("subject %q maps to unknown type %q", subject, d))
			}
		}
	}
	for d := range c.Descriptions {
		if !d.Valid() {
			errs = append(errs, fmt.Errorf("description for unknown type %q", d))
		}
	}

	keys := make(map[string]bool, len(c.CareerPackages))
	for _, p := range c.CareerPackages {
		if keys[p.Key] {
			errs = append(errs, fmt.Errorf("duplicate career package %q", p.Key))
		}
		keys[p.Key] = true
	}
	for _, kw := range c.CareerKeywords {
		if !keys[kw.Package] {
			errs = append(errs, fmt.Errorf("keyword %q points at unknown package %q", kw.Keyword, kw.Package))
		}
	}
	for cat, v := range c.Availability {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("availability for %q is %g, want 0..1", cat, v))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}

// SubjectsByGroup returns the subjects in group, or all of them when group is empty.
func (c *Catalog) SubjectsByGroup(group string) []Subject {
	if group == "" {
		return c.Subjects
	}
	out := []Subject{}
	for _, s := range c.Subjects {
		if s.Group == group {
			out = append(out, s)
		}
	}
	return out
}

// Subject looks a subject up by name.
func (c *Catalog) Subject(name string) (Subject, bool) {
	for _, s := range c.Subjects {
		if s.Name == name {
			return s, true
		}
	}
	return Subject{}, false
}

// Package looks a career package up by key.
func (c *Catalog) Package(key string) (CareerPackage, bool) {
	for _, p := range c.CareerPackages {
		if p.Key == key {
			return p, true
		}
	}
	return CareerPackage{}, false
}
