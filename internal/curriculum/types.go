package curriculum

import "fmt"

// Skill is one of the five fixed competency areas of the syllabus.
type Skill string

const (
	SkillListening  Skill = "Listening"
	SkillSpeaking   Skill = "Speaking"
	SkillReading    Skill = "Reading"
	SkillWriting    Skill = "Writing"
	SkillLiterature Skill = "Literature in Action"
)

// AllSkills lists every skill in syllabus order.
var AllSkills = []Skill{
	SkillListening,
	SkillSpeaking,
	SkillReading,
	SkillWriting,
	SkillLiterature,
}

// SkillMeta carries the presentation tokens and the standard-code prefix
// for a skill. Codes follow a fixed numbering convention: 1.x Listening,
// 2.x Speaking, 3.x Reading, 4.x Writing, 5.x Literature in Action.
type SkillMeta struct {
	CodePrefix string `json:"codePrefix"`
	Icon       string `json:"icon"`
	Accent     string `json:"accent"`
}

var skillMeta = map[Skill]SkillMeta{
	SkillListening:  {CodePrefix: "1", Icon: "headphones", Accent: "yellow"},
	SkillSpeaking:   {CodePrefix: "2", Icon: "mic", Accent: "red"},
	SkillReading:    {CodePrefix: "3", Icon: "book-open", Accent: "green"},
	SkillWriting:    {CodePrefix: "4", Icon: "pen-tool", Accent: "blue"},
	SkillLiterature: {CodePrefix: "5", Icon: "drama", Accent: "purple"},
}

func init() {
	// Every enumeration member must have a meta entry; a silent
	// fallback-to-default here would hide data bugs.
	for _, s := range AllSkills {
		if _, ok := skillMeta[s]; !ok {
			panic(fmt.Sprintf("curriculum: no meta entry for skill %q", s))
		}
	}
}

// Meta returns the presentation metadata for a skill.
func (s Skill) Meta() SkillMeta {
	return skillMeta[s]
}

// ParseSkill maps a skill name to its enumeration member.
func ParseSkill(name string) (Skill, bool) {
	for _, s := range AllSkills {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

// PerformanceBand is a CEFR-style band descriptor attached to a browse-view
// standard (B1..B6).
type PerformanceBand struct {
	Band       string `yaml:"band" json:"band"`
	Descriptor string `yaml:"descriptor" json:"descriptor"`
}

// Standard is a coded standard as shown in the form browser.
type Standard struct {
	Code        string            `yaml:"code" json:"code"`
	Description string            `yaml:"description" json:"description"`
	Performance []PerformanceBand `yaml:"performance,omitempty" json:"performance,omitempty"`
}

// SkillStandards groups the browse-view standards of one skill.
type SkillStandards struct {
	Skill     Skill      `yaml:"skill" json:"skill"`
	Standards []Standard `yaml:"standards" json:"standards"`
}

// VocabularySection is an ordered vocabulary category. Category order is
// part of the syllabus and must survive serialization, so this is a slice
// of pairs rather than a map.
type VocabularySection struct {
	Category string   `yaml:"category" json:"category"`
	Words    []string `yaml:"words" json:"words"`
}

// Form is the full curriculum record for one school year.
type Form struct {
	Number     int                 `yaml:"form" json:"form"`
	CEFRLevel  string              `yaml:"cefr_level" json:"cefrLevel"`
	Themes     []string            `yaml:"themes" json:"themes"`
	Grammar    []string            `yaml:"grammar" json:"grammar"`
	Vocabulary []VocabularySection `yaml:"vocabulary" json:"vocabulary"`
	TextTypes  []string            `yaml:"text_types" json:"textTypes"`
	Skills     []SkillStandards    `yaml:"skills" json:"skills"`
}

// SkillBlock returns the browse-view standards for one skill of the form.
func (f Form) SkillBlock(s Skill) (SkillStandards, bool) {
	for _, blk := range f.Skills {
		if blk.Skill == s {
			return blk, true
		}
	}
	return SkillStandards{}, false
}

// LearningStandard is a specific, assessable objective nested under a
// content standard. Pending marks a slot the syllabus defers to a later
// form; such entries have no description of their own.
type LearningStandard struct {
	Code        string `yaml:"code" json:"code"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Pending     bool   `yaml:"pending,omitempty" json:"pending,omitempty"`
}

// ContentStandard is a broad learning goal for a skill within a form.
type ContentStandard struct {
	Code              string             `yaml:"code" json:"code"`
	Description       string             `yaml:"description" json:"description"`
	Focus             string             `yaml:"focus" json:"focus"`
	LearningStandards []LearningStandard `yaml:"learning_standards" json:"learningStandards"`
}

// PerformanceLevel is one of the six ordered proficiency bands
// (1 = requires support, 6 = exceeds expectations).
type PerformanceLevel struct {
	Level      int    `yaml:"level" json:"level"`
	Descriptor string `yaml:"descriptor" json:"descriptor"`
	Note       string `yaml:"note" json:"note"`
}

// SkillStandardSet is the explorer-view hierarchy for one skill:
// content standards with nested learning standards, plus the sibling
// performance rubric.
type SkillStandardSet struct {
	Skill             Skill              `yaml:"skill" json:"skill"`
	ContentStandards  []ContentStandard  `yaml:"content_standards" json:"contentStandards"`
	PerformanceLevels []PerformanceLevel `yaml:"performance_levels" json:"performanceLevels"`
}

// FormStandards is the explorer-view standards document for one form.
type FormStandards struct {
	Form      int                `yaml:"form" json:"form"`
	CEFRLevel string             `yaml:"cefr_level" json:"cefrLevel"`
	Skills    []SkillStandardSet `yaml:"skills" json:"skills"`
}

// SkillSet returns the explorer hierarchy for one skill of the form.
func (fs FormStandards) SkillSet(s Skill) (SkillStandardSet, bool) {
	for _, set := range fs.Skills {
		if set.Skill == s {
			return set, true
		}
	}
	return SkillStandardSet{}, false
}

// ProfileAttribute is one of the nine pupils' profile attributes.
type ProfileAttribute struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// HOTSLevel is one of the four higher-order thinking skill levels.
type HOTSLevel struct {
	Level       string `yaml:"level" json:"level"`
	Description string `yaml:"description" json:"description"`
}

// Reference bundles the quick-reference material of the syllabus.
type Reference struct {
	PupilsProfile   []ProfileAttribute `yaml:"pupils_profile" json:"pupilsProfile"`
	HOTSLevels      []HOTSLevel        `yaml:"hots_levels" json:"hotsLevels"`
	CrossCurricular []string           `yaml:"cross_curricular" json:"crossCurricular"`
	Themes          []string           `yaml:"themes" json:"themes"`
}
