package curriculum_test

import (
	"strings"
	"testing"

	"github.com/ashrofu/kssm-hub/internal/curriculum"
)

func TestGrammarText(t *testing.T) {
	f := curriculum.Form{
		Number:    1,
		CEFRLevel: "A2 Mid",
		Grammar:   []string{"Present simple", "Past simple"},
	}
	got := curriculum.GrammarText(f)
	want := "Form 1 Grammar (A2 Mid):\n\n1. Present simple\n2. Past simple"
	if got != want {
		t.Errorf("GrammarText = %q, want %q", got, want)
	}
}

func TestVocabularyText(t *testing.T) {
	f := curriculum.Form{
		Number:    2,
		CEFRLevel: "A2 High",
		Vocabulary: []curriculum.VocabularySection{
			{Category: "Transport", Words: []string{"ferry", "tram"}},
			{Category: "Health", Words: []string{"cold", "cough"}},
		},
	}
	got := curriculum.VocabularyText(f)
	want := "Form 2 Vocabulary (A2 High):\n\nTransport:\nferry, tram\n\nHealth:\ncold, cough"
	if got != want {
		t.Errorf("VocabularyText = %q, want %q", got, want)
	}
}

func TestTextTypesText(t *testing.T) {
	f := curriculum.Form{Number: 3, CEFRLevel: "B1 Low", TextTypes: []string{"Articles", "Emails"}}
	got := curriculum.TextTypesText(f)
	want := "Form 3 Text Types (B1 Low):\n\nArticles, Emails"
	if got != want {
		t.Errorf("TextTypesText = %q, want %q", got, want)
	}
}

func TestStandardsText(t *testing.T) {
	f := curriculum.Form{
		Number:    1,
		CEFRLevel: "A2 Mid",
		Skills: []curriculum.SkillStandards{
			{
				Skill: curriculum.SkillReading,
				Standards: []curriculum.Standard{
					{Code: "3.1", Description: "Understand a variety of texts"},
					{Code: "3.2", Description: "Read independently"},
				},
			},
		},
	}

	got := curriculum.StandardsText(f, curriculum.SkillReading)
	want := "Form 1 Reading Standards (A2 Mid):\n\n3.1: Understand a variety of texts\n3.2: Read independently"
	if got != want {
		t.Errorf("StandardsText = %q, want %q", got, want)
	}

	if got := curriculum.StandardsText(f, curriculum.SkillWriting); got != "" {
		t.Errorf("missing skill should render empty, got %q", got)
	}
}

func TestStandardsWithPerformanceText(t *testing.T) {
	f := curriculum.Form{
		Number:    1,
		CEFRLevel: "A2 Mid",
		Skills: []curriculum.SkillStandards{
			{
				Skill: curriculum.SkillListening,
				Standards: []curriculum.Standard{
					{
						Code:        "1.1",
						Description: "Understand meaning",
						Performance: []curriculum.PerformanceBand{
							{Band: "B1", Descriptor: "Can understand the main points"},
							{Band: "B2", Descriptor: "Can understand extended speech"},
						},
					},
				},
			},
		},
	}

	got := curriculum.StandardsWithPerformanceText(f, curriculum.SkillListening)
	want := "Form 1 Listening Standards with Performance Levels (A2 Mid):\n\n" +
		"1.1: Understand meaning\n" +
		"   B1: Can understand the main points\n" +
		"   B2: Can understand extended speech"
	if got != want {
		t.Errorf("StandardsWithPerformanceText = %q, want %q", got, want)
	}
}

func TestContentStandardText(t *testing.T) {
	cs := curriculum.ContentStandard{
		Code:        "1.3",
		Description: "Recognise features of spoken genres on familiar topics",
		Focus:       "Recognise typical features of spoken texts",
		LearningStandards: []curriculum.LearningStandard{
			{Code: "1.3.1", Pending: true},
		},
	}

	got := curriculum.ContentStandardText(cs)
	if !strings.Contains(got, "1.3.1: No learning standard (will be taught in subsequent years)") {
		t.Errorf("pending standard not rendered with placeholder text:\n%s", got)
	}
	if !strings.HasPrefix(got, "1.3: Recognise features") {
		t.Errorf("unexpected prefix:\n%s", got)
	}
	if !strings.Contains(got, "Focus: Recognise typical features of spoken texts") {
		t.Errorf("focus line missing:\n%s", got)
	}
}

func TestSkillStandardSetText(t *testing.T) {
	set := curriculum.SkillStandardSet{
		Skill: curriculum.SkillReading,
		ContentStandards: []curriculum.ContentStandard{
			{
				Code:        "3.2",
				Description: "Read independently",
				Focus:       "Read independently and extensively",
				LearningStandards: []curriculum.LearningStandard{
					{Code: "3.2.1", Description: "Read and demonstrate understanding"},
				},
			},
		},
		PerformanceLevels: []curriculum.PerformanceLevel{
			{Level: 1, Descriptor: "Hardly understands", Note: "Requires support"},
		},
	}

	got := curriculum.SkillStandardSetText(1, set)
	if !strings.HasPrefix(got, "Form 1 Reading Standards\n\nContent Standards:\n") {
		t.Errorf("unexpected prefix:\n%s", got)
	}
	if !strings.Contains(got, "      3.2.1: Read and demonstrate understanding") {
		t.Errorf("learning standard line missing:\n%s", got)
	}
	if !strings.Contains(got, "   Level 1: Hardly understands\n      (Requires support)") {
		t.Errorf("performance block missing:\n%s", got)
	}
}

func TestReferenceTexts(t *testing.T) {
	r := curriculum.Reference{
		PupilsProfile: []curriculum.ProfileAttribute{
			{Name: "Resilient", Description: "Pupils are steadfast."},
			{Name: "Thinker", Description: "Pupils think critically."},
		},
		HOTSLevels: []curriculum.HOTSLevel{
			{Level: "Applying", Description: "Using knowledge."},
		},
		CrossCurricular: []string{"Language", "Values"},
	}

	if got, want := curriculum.PupilsProfileText(r),
		"Pupils' Profile:\n\nResilient: Pupils are steadfast.\n\nThinker: Pupils think critically."; got != want {
		t.Errorf("PupilsProfileText = %q, want %q", got, want)
	}
	if got, want := curriculum.HOTSText(r), "HOTS Levels:\n\nApplying: Using knowledge."; got != want {
		t.Errorf("HOTSText = %q, want %q", got, want)
	}
	if got, want := curriculum.CrossCurricularText(r), "Cross-Curricular Elements:\n\nLanguage\nValues"; got != want {
		t.Errorf("CrossCurricularText = %q, want %q", got, want)
	}
}
