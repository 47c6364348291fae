package curriculum

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml data/*.schema.json
var dataFS embed.FS

// Store is the immutable curriculum data store. It is built once at
// startup from the embedded data files and never mutated afterwards.
type Store struct {
	forms     []Form
	standards []FormStandards
	reference Reference

	formByNumber      map[int]int
	standardsByNumber map[int]int
}

// Load parses and validates the embedded curriculum data.
func Load() (*Store, error) {
	s := &Store{
		formByNumber:      make(map[int]int),
		standardsByNumber: make(map[int]int),
	}

	var curriculumDoc struct {
		Forms []Form `yaml:"forms"`
	}
	if err := s.loadFile("data/curriculum.yaml", "data/curriculum.schema.json", &curriculumDoc); err != nil {
		return nil, err
	}
	s.forms = curriculumDoc.Forms

	var standardsDoc struct {
		Forms []FormStandards `yaml:"forms"`
	}
	if err := s.loadFile("data/standards.yaml", "data/standards.schema.json", &standardsDoc); err != nil {
		return nil, err
	}
	s.standards = standardsDoc.Forms

	if err := s.loadFile("data/reference.yaml", "", &s.reference); err != nil {
		return nil, err
	}

	for i, f := range s.forms {
		if _, dup := s.formByNumber[f.Number]; dup {
			return nil, fmt.Errorf("duplicate form %d in curriculum data", f.Number)
		}
		s.formByNumber[f.Number] = i
	}
	for i, fs := range s.standards {
		if _, dup := s.standardsByNumber[fs.Form]; dup {
			return nil, fmt.Errorf("duplicate form %d in standards data", fs.Form)
		}
		s.standardsByNumber[fs.Form] = i
	}

	if err := s.check(); err != nil {
		return nil, err
	}

	slog.Info("curriculum loaded",
		"forms", len(s.forms),
		"standards_forms", len(s.standards),
	)
	return s, nil
}

func (s *Store) loadFile(path, schemaPath string, out any) error {
	data, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if schemaPath != "" {
		if err := validateSchema(data, schemaPath); err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// validateSchema checks a YAML document against an embedded JSON Schema.
// The data is compile-time-embedded, so a failure here is a build defect
// surfaced at boot rather than a runtime error path.
func validateSchema(yamlData []byte, schemaPath string) error {
	schemaData, err := dataFS.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(yamlData, &doc); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	jsonDoc, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("converting document: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(jsonDoc),
	)
	if err != nil {
		return fmt.Errorf("running schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("schema violations: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// check enforces the structural invariants of the syllabus data.
func (s *Store) check() error {
	for _, f := range s.forms {
		for _, blk := range f.Skills {
			if _, ok := skillMeta[blk.Skill]; !ok {
				return fmt.Errorf("form %d: unknown skill %q", f.Number, blk.Skill)
			}
			seen := make(map[string]bool, len(blk.Standards))
			prefix := blk.Skill.Meta().CodePrefix + "."
			for _, std := range blk.Standards {
				if seen[std.Code] {
					return fmt.Errorf("form %d %s: duplicate code %s", f.Number, blk.Skill, std.Code)
				}
				seen[std.Code] = true
				if !strings.HasPrefix(std.Code, prefix) {
					return fmt.Errorf("form %d %s: code %s outside prefix %s", f.Number, blk.Skill, std.Code, prefix)
				}
			}
		}
	}

	for _, fs := range s.standards {
		for _, set := range fs.Skills {
			if _, ok := skillMeta[set.Skill]; !ok {
				return fmt.Errorf("standards form %d: unknown skill %q", fs.Form, set.Skill)
			}
			// The rubric is exactly levels 1..6 in ascending order;
			// it encodes a pedagogical scale, not an arbitrary enum.
			if len(set.PerformanceLevels) != 6 {
				return fmt.Errorf("standards form %d %s: %d performance levels, want 6", fs.Form, set.Skill, len(set.PerformanceLevels))
			}
			for i, pl := range set.PerformanceLevels {
				if pl.Level != i+1 {
					return fmt.Errorf("standards form %d %s: performance level %d at position %d", fs.Form, set.Skill, pl.Level, i)
				}
			}
			for _, cs := range set.ContentStandards {
				for _, ls := range cs.LearningStandards {
					if ls.Pending && ls.Description != "" {
						return fmt.Errorf("standards form %d: %s is pending but has a description", fs.Form, ls.Code)
					}
					if !ls.Pending && ls.Description == "" {
						return fmt.Errorf("standards form %d: %s has no description", fs.Form, ls.Code)
					}
				}
			}
		}
	}
	return nil
}

// Forms returns all curriculum forms in ascending order.
func (s *Store) Forms() []Form {
	return s.forms
}

// FormByNumber returns the curriculum record for one form.
func (s *Store) FormByNumber(n int) (Form, bool) {
	i, ok := s.formByNumber[n]
	if !ok {
		return Form{}, false
	}
	return s.forms[i], true
}

// Standards returns the explorer-view standards document for one form.
func (s *Store) Standards(n int) (FormStandards, bool) {
	i, ok := s.standardsByNumber[n]
	if !ok {
		return FormStandards{}, false
	}
	return s.standards[i], true
}

// StandardsForms lists the form numbers that have explorer-view standards.
func (s *Store) StandardsForms() []int {
	nums := make([]int, 0, len(s.standards))
	for _, fs := range s.standards {
		nums = append(nums, fs.Form)
	}
	return nums
}

// Reference returns the quick-reference material.
func (s *Store) Reference() Reference {
	return s.reference
}
