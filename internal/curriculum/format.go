package curriculum

import (
	"fmt"
	"strings"
)

// pendingText renders a learning standard slot deferred to a later form.
const pendingText = "No learning standard (will be taught in subsequent years)"

// GrammarText returns the numbered grammar list for a form, ready for the
// clipboard.
func GrammarText(f Form) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Form %d Grammar (%s):\n\n", f.Number, f.CEFRLevel)
	for i, g := range f.Grammar {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, g)
	}
	return b.String()
}

// VocabularyText returns the full vocabulary of a form grouped by category.
func VocabularyText(f Form) string {
	sections := make([]string, 0, len(f.Vocabulary))
	for _, v := range f.Vocabulary {
		sections = append(sections, fmt.Sprintf("%s:\n%s", v.Category, strings.Join(v.Words, ", ")))
	}
	return fmt.Sprintf("Form %d Vocabulary (%s):\n\n%s", f.Number, f.CEFRLevel, strings.Join(sections, "\n\n"))
}

// TextTypesText returns the comma-joined text types of a form.
func TextTypesText(f Form) string {
	return fmt.Sprintf("Form %d Text Types (%s):\n\n%s", f.Number, f.CEFRLevel, strings.Join(f.TextTypes, ", "))
}

// StandardsText returns the coded standards of one skill as code: description
// lines. A missing skill yields the empty string.
func StandardsText(f Form, s Skill) string {
	blk, ok := f.SkillBlock(s)
	if !ok {
		return ""
	}
	lines := make([]string, 0, len(blk.Standards))
	for _, std := range blk.Standards {
		lines = append(lines, fmt.Sprintf("%s: %s", std.Code, std.Description))
	}
	return fmt.Sprintf("Form %d %s Standards (%s):\n\n%s", f.Number, s, f.CEFRLevel, strings.Join(lines, "\n"))
}

// StandardsWithPerformanceText is StandardsText with the performance band
// descriptors listed under each standard that carries them.
func StandardsWithPerformanceText(f Form, s Skill) string {
	blk, ok := f.SkillBlock(s)
	if !ok {
		return ""
	}
	blocks := make([]string, 0, len(blk.Standards))
	for _, std := range blk.Standards {
		var b strings.Builder
		fmt.Fprintf(&b, "%s: %s", std.Code, std.Description)
		for _, p := range std.Performance {
			fmt.Fprintf(&b, "\n   %s: %s", p.Band, p.Descriptor)
		}
		blocks = append(blocks, b.String())
	}
	return fmt.Sprintf("Form %d %s Standards with Performance Levels (%s):\n\n%s",
		f.Number, s, f.CEFRLevel, strings.Join(blocks, "\n\n"))
}

// ContentStandardText returns one content standard with its focus and nested
// learning standards.
func ContentStandardText(cs ContentStandard) string {
	lines := make([]string, 0, len(cs.LearningStandards))
	for _, ls := range cs.LearningStandards {
		lines = append(lines, fmt.Sprintf("   %s: %s", ls.Code, learningStandardText(ls)))
	}
	return fmt.Sprintf("%s: %s\nFocus: %s\n\nLearning Standards:\n%s",
		cs.Code, cs.Description, cs.Focus, strings.Join(lines, "\n"))
}

// SkillStandardSetText returns the full hierarchy of one skill: every content
// standard with its learning standards, followed by the performance rubric.
func SkillStandardSetText(form int, set SkillStandardSet) string {
	csBlocks := make([]string, 0, len(set.ContentStandards))
	for _, cs := range set.ContentStandards {
		lines := make([]string, 0, len(cs.LearningStandards))
		for _, ls := range cs.LearningStandards {
			lines = append(lines, fmt.Sprintf("      %s: %s", ls.Code, learningStandardText(ls)))
		}
		csBlocks = append(csBlocks, fmt.Sprintf("   %s: %s\n      Focus: %s\n\n      Learning Standards:\n%s",
			cs.Code, cs.Description, cs.Focus, strings.Join(lines, "\n")))
	}

	psBlocks := make([]string, 0, len(set.PerformanceLevels))
	for _, ps := range set.PerformanceLevels {
		psBlocks = append(psBlocks, fmt.Sprintf("   Level %d: %s\n      (%s)", ps.Level, ps.Descriptor, ps.Note))
	}

	return fmt.Sprintf("Form %d %s Standards\n\nContent Standards:\n%s\n\nPerformance Standards:\n%s",
		form, set.Skill, strings.Join(csBlocks, "\n\n"), strings.Join(psBlocks, "\n\n"))
}

func learningStandardText(ls LearningStandard) string {
	if ls.Pending {
		return pendingText
	}
	return ls.Description
}

// PupilsProfileText returns the pupils' profile attributes as name: description
// blocks.
func PupilsProfileText(r Reference) string {
	blocks := make([]string, 0, len(r.PupilsProfile))
	for _, p := range r.PupilsProfile {
		blocks = append(blocks, fmt.Sprintf("%s: %s", p.Name, p.Description))
	}
	return "Pupils' Profile:\n\n" + strings.Join(blocks, "\n\n")
}

// HOTSText returns the higher-order thinking skill levels.
func HOTSText(r Reference) string {
	blocks := make([]string, 0, len(r.HOTSLevels))
	for _, h := range r.HOTSLevels {
		blocks = append(blocks, fmt.Sprintf("%s: %s", h.Level, h.Description))
	}
	return "HOTS Levels:\n\n" + strings.Join(blocks, "\n\n")
}

// CrossCurricularText returns the cross-curricular elements, one per line.
func CrossCurricularText(r Reference) string {
	return "Cross-Curricular Elements:\n\n" + strings.Join(r.CrossCurricular, "\n")
}
