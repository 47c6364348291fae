package explorer

import "github.com/ashrofu/kssm-hub/internal/curriculum"

// SkillCounts is one cell of the comparison grid: per-skill counts with each
// count present only when its aspect is enabled.
type SkillCounts struct {
	Skill             curriculum.Skill `json:"skill"`
	ContentStandards  *int             `json:"contentStandards,omitempty"`
	LearningStandards *int             `json:"learningStandards,omitempty"`
	PerformanceLevels *int             `json:"performanceLevels,omitempty"`
}

// FormColumn is one column of the comparison grid.
type FormColumn struct {
	Form      int           `json:"form"`
	CEFRLevel string        `json:"cefrLevel"`
	Skills    []SkillCounts `json:"skills"`
}

// Comparison is the side-by-side count summary across forms.
type Comparison struct {
	Columns []FormColumn `json:"columns"`
}

// DetailSection is the full filtered hierarchy for one form and skill.
type DetailSection struct {
	Form              int                           `json:"form"`
	CEFRLevel         string                        `json:"cefrLevel"`
	Skill             curriculum.Skill              `json:"skill"`
	ContentStandards  []curriculum.ContentStandard  `json:"contentStandards,omitempty"`
	PerformanceLevels []curriculum.PerformanceLevel `json:"performanceLevels,omitempty"`
}

// Detail is the expanded view with its grid column policy.
type Detail struct {
	GridColumns int             `json:"gridColumns"`
	Sections    []DetailSection `json:"sections"`
}

// Layout is the composed explorer output. Mode forms with several forms
// selected yields only the comparison, mode both yields both parts.
type Layout struct {
	Comparison *Comparison `json:"comparison,omitempty"`
	Detail     *Detail     `json:"detail,omitempty"`
}

// Compose builds the layout for a selection over the standards store. Forms
// or skills the store does not have are skipped silently.
func Compose(store *curriculum.Store, sel Selection) Layout {
	var layout Layout

	comparing := sel.Mode == CompareForms && len(sel.Forms) > 1
	if comparing || sel.Mode == CompareBoth {
		layout.Comparison = composeComparison(store, sel)
	}
	if !comparing {
		layout.Detail = composeDetail(store, sel)
	}
	return layout
}

func composeComparison(store *curriculum.Store, sel Selection) *Comparison {
	cmp := &Comparison{Columns: []FormColumn{}}
	for _, form := range sel.Forms {
		fs, ok := store.Standards(form)
		if !ok {
			continue
		}
		col := FormColumn{Form: fs.Form, CEFRLevel: fs.CEFRLevel, Skills: []SkillCounts{}}
		for _, skill := range sel.Skills {
			set, ok := fs.SkillSet(skill)
			if !ok {
				continue
			}
			counts := SkillCounts{Skill: skill}
			if sel.Aspects.Content {
				n := len(set.ContentStandards)
				counts.ContentStandards = &n
			}
			if sel.Aspects.Learning {
				n := 0
				for _, cs := range set.ContentStandards {
					n += len(cs.LearningStandards)
				}
				counts.LearningStandards = &n
			}
			if sel.Aspects.Performance {
				n := len(set.PerformanceLevels)
				counts.PerformanceLevels = &n
			}
			col.Skills = append(col.Skills, counts)
		}
		cmp.Columns = append(cmp.Columns, col)
	}
	return cmp
}

func composeDetail(store *curriculum.Store, sel Selection) *Detail {
	detail := &Detail{
		GridColumns: detailGridColumns(len(sel.Skills)),
		Sections:    []DetailSection{},
	}
	for _, form := range sel.Forms {
		fs, ok := store.Standards(form)
		if !ok {
			continue
		}
		for _, skill := range sel.Skills {
			set, ok := fs.SkillSet(skill)
			if !ok {
				continue
			}
			section := DetailSection{Form: fs.Form, CEFRLevel: fs.CEFRLevel, Skill: skill}
			if sel.Aspects.Content || sel.Aspects.Learning {
				for _, cs := range set.ContentStandards {
					if !sel.Aspects.Learning {
						cs.LearningStandards = nil
					}
					section.ContentStandards = append(section.ContentStandards, cs)
				}
			}
			if sel.Aspects.Performance {
				section.PerformanceLevels = set.PerformanceLevels
			}
			detail.Sections = append(detail.Sections, section)
		}
	}
	return detail
}

// detailGridColumns is the explorer grid policy: one column per selected
// skill, capped at three.
func detailGridColumns(skills int) int {
	switch {
	case skills <= 1:
		return 1
	case skills == 2:
		return 2
	default:
		return 3
	}
}
