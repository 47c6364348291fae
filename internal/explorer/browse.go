package explorer

import (
	"slices"

	"github.com/ashrofu/kssm-hub/internal/curriculum"
)

// BrowseTab names one comparison facet of the form browser.
type BrowseTab string

const (
	TabGrammar    BrowseTab = "grammar"
	TabVocabulary BrowseTab = "vocabulary"
	TabStandards  BrowseTab = "standards"
	TabTextTypes  BrowseTab = "texttypes"
)

// ValidBrowseTab reports whether a tab name is one of the four facets.
func ValidBrowseTab(tab BrowseTab) bool {
	switch tab {
	case TabGrammar, TabVocabulary, TabStandards, TabTextTypes:
		return true
	}
	return false
}

// BrowseSelection is the form browser's selection. Unlike the explorer it
// keeps at least one form selected at all times.
type BrowseSelection struct {
	Forms []int `json:"forms"`
}

// NewBrowseSelection starts with Form 1 selected.
func NewBrowseSelection() BrowseSelection {
	return BrowseSelection{Forms: []int{1}}
}

// ToggleForm adds or removes a form. Removing the last selected form is a
// no-op.
func (s *BrowseSelection) ToggleForm(form int) {
	if i := slices.Index(s.Forms, form); i >= 0 {
		if len(s.Forms) == 1 {
			return
		}
		s.Forms = slices.Delete(s.Forms, i, i+1)
		return
	}
	s.Forms = append(s.Forms, form)
	slices.Sort(s.Forms)
}

// BrowseColumn is one form's slice of the browse comparison. Only the field
// matching the requested tab is populated.
type BrowseColumn struct {
	Form       int                            `json:"form"`
	CEFRLevel  string                         `json:"cefrLevel"`
	Grammar    []string                       `json:"grammar,omitempty"`
	Vocabulary []curriculum.VocabularySection `json:"vocabulary,omitempty"`
	Standards  []curriculum.SkillStandards    `json:"standards,omitempty"`
	TextTypes  []string                       `json:"textTypes,omitempty"`
}

// BrowseComparison is the side-by-side browse view for one tab.
type BrowseComparison struct {
	Tab         BrowseTab      `json:"tab"`
	GridColumns int            `json:"gridColumns"`
	Columns     []BrowseColumn `json:"columns"`
}

// BrowseCompare builds the comparison for the selected forms. Unknown forms
// are skipped silently.
func BrowseCompare(store *curriculum.Store, forms []int, tab BrowseTab) BrowseComparison {
	cmp := BrowseComparison{
		Tab:     tab,
		Columns: []BrowseColumn{},
	}
	for _, n := range forms {
		f, ok := store.FormByNumber(n)
		if !ok {
			continue
		}
		col := BrowseColumn{Form: f.Number, CEFRLevel: f.CEFRLevel}
		switch tab {
		case TabGrammar:
			col.Grammar = f.Grammar
		case TabVocabulary:
			col.Vocabulary = f.Vocabulary
		case TabStandards:
			col.Standards = f.Skills
		case TabTextTypes:
			col.TextTypes = f.TextTypes
		}
		cmp.Columns = append(cmp.Columns, col)
	}
	cmp.GridColumns = browseGridColumns(len(cmp.Columns))
	return cmp
}

// browseGridColumns is the browse grid policy: one column per form, capped
// at five.
func browseGridColumns(forms int) int {
	switch {
	case forms <= 1:
		return 1
	case forms >= 5:
		return 5
	default:
		return forms
	}
}
