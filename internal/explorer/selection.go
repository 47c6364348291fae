// Package explorer composes filtered and comparative views over the
// standards hierarchy and the form browser data.
package explorer

import (
	"slices"

	"github.com/ashrofu/kssm-hub/internal/curriculum"
)

// CompareMode selects how the explorer arranges its output.
type CompareMode string

const (
	CompareForms  CompareMode = "forms"
	CompareSkills CompareMode = "skills"
	CompareBoth   CompareMode = "both"
)

// Aspects toggles the three layers of the standards hierarchy.
type Aspects struct {
	Content     bool `json:"content"`
	Learning    bool `json:"learning"`
	Performance bool `json:"performance"`
}

// Selection is the explorer's filter state. Empty form and skill sets are
// valid; composing them just yields nothing.
type Selection struct {
	Forms   []int              `json:"forms"`
	Skills  []curriculum.Skill `json:"skills"`
	Aspects Aspects            `json:"aspects"`
	Mode    CompareMode        `json:"mode"`
}

// NewSelection returns the default state: Form 1, all skills, every aspect
// on, comparing by forms.
func NewSelection() Selection {
	return Selection{
		Forms:   []int{1},
		Skills:  slices.Clone(curriculum.AllSkills),
		Aspects: Aspects{Content: true, Learning: true, Performance: true},
		Mode:    CompareForms,
	}
}

// ToggleForm adds or removes a form from the selection.
func (s *Selection) ToggleForm(form int) {
	if i := slices.Index(s.Forms, form); i >= 0 {
		s.Forms = slices.Delete(s.Forms, i, i+1)
		return
	}
	s.Forms = append(s.Forms, form)
	slices.Sort(s.Forms)
}

// ToggleSkill adds or removes a skill from the selection.
func (s *Selection) ToggleSkill(skill curriculum.Skill) {
	if i := slices.Index(s.Skills, skill); i >= 0 {
		s.Skills = slices.Delete(s.Skills, i, i+1)
		return
	}
	s.Skills = append(s.Skills, skill)
	sortSkills(s.Skills)
}

// SelectAllSkills selects every skill.
func (s *Selection) SelectAllSkills() {
	s.Skills = slices.Clone(curriculum.AllSkills)
}

// ClearAllSkills empties the skill selection.
func (s *Selection) ClearAllSkills() {
	s.Skills = []curriculum.Skill{}
}

// SetAspects replaces the aspect toggles. All-false is allowed.
func (s *Selection) SetAspects(a Aspects) {
	s.Aspects = a
}

// SetCompareMode switches the comparison arrangement.
func (s *Selection) SetCompareMode(m CompareMode) {
	s.Mode = m
}

// HasSkill reports whether a skill is selected.
func (s Selection) HasSkill(skill curriculum.Skill) bool {
	return slices.Contains(s.Skills, skill)
}

// sortSkills keeps a skill slice in syllabus order.
func sortSkills(skills []curriculum.Skill) {
	slices.SortFunc(skills, func(a, b curriculum.Skill) int {
		return slices.Index(curriculum.AllSkills, a) - slices.Index(curriculum.AllSkills, b)
	})
}
