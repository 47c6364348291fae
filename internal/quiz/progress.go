package quiz

import "sort"

// Progress is a player's persisted quiz progress. The JSON shape is the
// storage contract: scores are keyed by the level number's decimal string,
// which map[int]int produces on its own.
type Progress struct {
	CompletedLevels []int       `json:"completedLevels"`
	CurrentLevel    int         `json:"currentLevel"`
	Scores          map[int]int `json:"scores"`
}

// NewProgress returns the empty starting state: nothing completed, level 1
// reachable.
func NewProgress() Progress {
	return Progress{
		CompletedLevels: []int{},
		CurrentLevel:    1,
		Scores:          make(map[int]int),
	}
}

// normalize repairs a progress value loaded from storage so the zero values
// of a missing or partial record behave like NewProgress.
func (p *Progress) normalize() {
	if p.CompletedLevels == nil {
		p.CompletedLevels = []int{}
	}
	if p.Scores == nil {
		p.Scores = make(map[int]int)
	}
	if p.CurrentLevel < 1 {
		p.CurrentLevel = 1
	}
}

// IsCompleted reports whether a level has been passed.
func (p Progress) IsCompleted(level int) bool {
	for _, l := range p.CompletedLevels {
		if l == level {
			return true
		}
	}
	return false
}

// IsUnlocked reports whether a level may be started: level 1 always, any
// other level only once its predecessor is completed.
func (p Progress) IsUnlocked(level int) bool {
	if level == 1 {
		return true
	}
	return p.IsCompleted(level - 1)
}

// markCompleted inserts a level into the completed set. Re-passing a level
// leaves the set unchanged.
func (p *Progress) markCompleted(level int) {
	if p.IsCompleted(level) {
		return
	}
	p.CompletedLevels = append(p.CompletedLevels, level)
	sort.Ints(p.CompletedLevels)
}

// TotalScore sums the recorded level scores.
func (p Progress) TotalScore() int {
	total := 0
	for _, s := range p.Scores {
		total += s
	}
	return total
}
