package explorer_test

import (
	"testing"

	"github.com/ashrofu/kssm-hub/internal/curriculum"
	"github.com/ashrofu/kssm-hub/internal/explorer"
)

func loadStore(t *testing.T) *curriculum.Store {
	t.Helper()
	s, err := curriculum.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestSelectionCommands(t *testing.T) {
	sel := explorer.NewSelection()

	if len(sel.Forms) != 1 || sel.Forms[0] != 1 {
		t.Fatalf("default forms = %v, want [1]", sel.Forms)
	}
	if len(sel.Skills) != 5 {
		t.Fatalf("default skills = %v, want all five", sel.Skills)
	}

	sel.ToggleForm(3)
	if len(sel.Forms) != 2 || sel.Forms[1] != 3 {
		t.Errorf("forms = %v, want [1 3]", sel.Forms)
	}
	sel.ToggleForm(1)
	sel.ToggleForm(3)
	if len(sel.Forms) != 0 {
		t.Errorf("forms = %v, want empty, zero forms is a valid state", sel.Forms)
	}

	sel.ClearAllSkills()
	if len(sel.Skills) != 0 {
		t.Errorf("skills = %v, want empty", sel.Skills)
	}
	sel.ToggleSkill(curriculum.SkillWriting)
	sel.ToggleSkill(curriculum.SkillListening)
	if sel.Skills[0] != curriculum.SkillListening || sel.Skills[1] != curriculum.SkillWriting {
		t.Errorf("skills = %v, want syllabus order", sel.Skills)
	}
	sel.SelectAllSkills()
	if len(sel.Skills) != 5 {
		t.Errorf("SelectAllSkills left %v", sel.Skills)
	}
}

func TestComposeFormsModeSingleForm(t *testing.T) {
	store := loadStore(t)
	sel := explorer.NewSelection()

	layout := explorer.Compose(store, sel)
	if layout.Comparison != nil {
		t.Error("single form in forms mode should not yield a comparison")
	}
	if layout.Detail == nil {
		t.Fatal("single form should yield detail")
	}
	if layout.Detail.GridColumns != 3 {
		t.Errorf("gridColumns = %d, want 3 for five skills", layout.Detail.GridColumns)
	}
	if len(layout.Detail.Sections) != 5 {
		t.Errorf("sections = %d, want 5", len(layout.Detail.Sections))
	}
}

func TestComposeFormsModeMultipleForms(t *testing.T) {
	store := loadStore(t)
	sel := explorer.NewSelection()
	sel.ToggleForm(2)

	layout := explorer.Compose(store, sel)
	if layout.Detail != nil {
		t.Error("multi-form forms mode should yield no detail")
	}
	if layout.Comparison == nil {
		t.Fatal("multi-form forms mode should yield a comparison")
	}
	// Only Form 1 ships hierarchy data; Form 2 is skipped silently.
	if len(layout.Comparison.Columns) != 1 {
		t.Fatalf("columns = %d, want 1", len(layout.Comparison.Columns))
	}

	col := layout.Comparison.Columns[0]
	if col.Form != 1 {
		t.Errorf("column form = %d, want 1", col.Form)
	}
	if len(col.Skills) != 5 {
		t.Fatalf("column skills = %d, want 5", len(col.Skills))
	}
	listening := col.Skills[0]
	if listening.ContentStandards == nil || *listening.ContentStandards != 3 {
		t.Errorf("listening content count = %v, want 3", listening.ContentStandards)
	}
	if listening.PerformanceLevels == nil || *listening.PerformanceLevels != 6 {
		t.Errorf("listening performance count = %v, want 6", listening.PerformanceLevels)
	}
}

func TestComposeBothMode(t *testing.T) {
	store := loadStore(t)
	sel := explorer.NewSelection()
	sel.SetCompareMode(explorer.CompareBoth)

	layout := explorer.Compose(store, sel)
	if layout.Comparison == nil || layout.Detail == nil {
		t.Error("both mode should yield comparison and detail")
	}
}

func TestComposeAspectFilters(t *testing.T) {
	store := loadStore(t)
	sel := explorer.NewSelection()
	sel.Skills = []curriculum.Skill{curriculum.SkillListening}

	sel.SetAspects(explorer.Aspects{Content: true})
	layout := explorer.Compose(store, sel)
	section := layout.Detail.Sections[0]
	if len(section.ContentStandards) != 3 {
		t.Errorf("content standards = %d, want 3", len(section.ContentStandards))
	}
	for _, cs := range section.ContentStandards {
		if len(cs.LearningStandards) != 0 {
			t.Errorf("%s: learning standards present with learning aspect off", cs.Code)
		}
	}
	if len(section.PerformanceLevels) != 0 {
		t.Error("performance levels present with performance aspect off")
	}

	sel.SetAspects(explorer.Aspects{})
	layout = explorer.Compose(store, sel)
	section = layout.Detail.Sections[0]
	if len(section.ContentStandards) != 0 || len(section.PerformanceLevels) != 0 {
		t.Error("all-false aspects should yield an empty section")
	}
	if layout.Detail.GridColumns != 1 {
		t.Errorf("gridColumns = %d, want 1 for a single skill", layout.Detail.GridColumns)
	}
}

func TestComposeEmptySelection(t *testing.T) {
	store := loadStore(t)
	sel := explorer.NewSelection()
	sel.Forms = nil
	sel.ClearAllSkills()

	layout := explorer.Compose(store, sel)
	if layout.Detail == nil || len(layout.Detail.Sections) != 0 {
		t.Error("empty selection should compose to empty detail, not fail")
	}
}

func TestBrowseSelectionMinimum(t *testing.T) {
	sel := explorer.NewBrowseSelection()

	sel.ToggleForm(1)
	if len(sel.Forms) != 1 {
		t.Error("removing the last selected form must be a no-op")
	}
	sel.ToggleForm(4)
	sel.ToggleForm(1)
	if len(sel.Forms) != 1 || sel.Forms[0] != 4 {
		t.Errorf("forms = %v, want [4]", sel.Forms)
	}
}

func TestBrowseCompareTabs(t *testing.T) {
	store := loadStore(t)

	cmp := explorer.BrowseCompare(store, []int{1, 3}, explorer.TabGrammar)
	if cmp.GridColumns != 2 {
		t.Errorf("gridColumns = %d, want 2", cmp.GridColumns)
	}
	if len(cmp.Columns) != 2 {
		t.Fatalf("columns = %d, want 2", len(cmp.Columns))
	}
	if len(cmp.Columns[0].Grammar) == 0 || len(cmp.Columns[0].Vocabulary) != 0 {
		t.Error("grammar tab should populate only grammar")
	}

	cmp = explorer.BrowseCompare(store, []int{1, 2, 3, 4, 5}, explorer.TabVocabulary)
	if cmp.GridColumns != 5 {
		t.Errorf("gridColumns = %d, want 5", cmp.GridColumns)
	}
	if len(cmp.Columns[4].Vocabulary) == 0 {
		t.Error("vocabulary tab should populate vocabulary")
	}

	cmp = explorer.BrowseCompare(store, []int{2}, explorer.TabTextTypes)
	if cmp.GridColumns != 1 {
		t.Errorf("gridColumns = %d, want 1", cmp.GridColumns)
	}

	// Unknown forms are skipped without error.
	cmp = explorer.BrowseCompare(store, []int{7}, explorer.TabStandards)
	if len(cmp.Columns) != 0 {
		t.Errorf("columns = %d, want 0", len(cmp.Columns))
	}

	if explorer.ValidBrowseTab("grammar") != true || explorer.ValidBrowseTab("themes") {
		t.Error("ValidBrowseTab misjudged a tab name")
	}
}
