package quiz

// LevelSummary is one menu entry: a level's headline data plus the player's
// standing on it.
type LevelSummary struct {
	Level         int    `json:"level"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	QuestionCount int    `json:"questionCount"`
	PassScore     int    `json:"passScore"`
	Unlocked      bool   `json:"unlocked"`
	Completed     bool   `json:"completed"`
	Score         *int   `json:"score,omitempty"`
}

// QuestionView is the current question as shown to the player. The correct
// option and explanation are withheld until the answer is revealed.
type QuestionView struct {
	Index    int      `json:"index"`
	Total    int      `json:"total"`
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// AnswerReveal is the feedback shown after an answer is submitted.
type AnswerReveal struct {
	Selected      int    `json:"selected"`
	Correct       bool   `json:"correct"`
	CorrectOption int    `json:"correctOption"`
	Explanation   string `json:"explanation"`
}

// PlayingView is the in-level portion of a snapshot.
type PlayingView struct {
	Level    int           `json:"level"`
	Title    string        `json:"title"`
	Score    int           `json:"score"`
	Question QuestionView  `json:"question"`
	Reveal   *AnswerReveal `json:"reveal,omitempty"`
}

// LevelOutcome is the end-of-level portion of a snapshot.
type LevelOutcome struct {
	Level         int    `json:"level"`
	Title         string `json:"title"`
	Score         int    `json:"score"`
	QuestionCount int    `json:"questionCount"`
	PassScore     int    `json:"passScore"`
	Passed        bool   `json:"passed"`
}

// Snapshot is the full observable session state.
type Snapshot struct {
	State      State          `json:"state"`
	Progress   Progress       `json:"progress"`
	TotalScore int            `json:"totalScore"`
	Levels     []LevelSummary `json:"levels"`
	Playing    *PlayingView   `json:"playing,omitempty"`
	Outcome    *LevelOutcome  `json:"outcome,omitempty"`
}

// Snapshot renders the current session state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		State:      e.state,
		Progress:   clone(e.progress),
		TotalScore: e.progress.TotalScore(),
		Levels:     make([]LevelSummary, 0, e.bank.MaxLevel()),
	}

	for _, lvl := range e.bank.Levels() {
		sum := LevelSummary{
			Level:         lvl.Level,
			Title:         lvl.Title,
			Description:   lvl.Description,
			QuestionCount: len(lvl.Questions),
			PassScore:     lvl.PassScore,
			Unlocked:      e.progress.IsUnlocked(lvl.Level),
			Completed:     e.progress.IsCompleted(lvl.Level),
		}
		if score, ok := e.progress.Scores[lvl.Level]; ok {
			s := score
			sum.Score = &s
		}
		snap.Levels = append(snap.Levels, sum)
	}

	switch e.state {
	case StatePlaying:
		lvl, _ := e.bank.Level(e.level)
		q := lvl.Questions[e.qIndex]
		playing := &PlayingView{
			Level: e.level,
			Title: lvl.Title,
			Score: e.score,
			Question: QuestionView{
				Index:    e.qIndex,
				Total:    len(lvl.Questions),
				ID:       q.ID,
				Question: q.Question,
				Options:  q.Options,
			},
		}
		if e.answered {
			playing.Reveal = &AnswerReveal{
				Selected:      e.selected,
				Correct:       e.selected == q.Correct,
				CorrectOption: q.Correct,
				Explanation:   q.Explanation,
			}
		}
		snap.Playing = playing
	case StateLevelComplete, StateGameComplete:
		lvl, _ := e.bank.Level(e.level)
		snap.Outcome = &LevelOutcome{
			Level:         e.level,
			Title:         lvl.Title,
			Score:         e.score,
			QuestionCount: len(lvl.Questions),
			PassScore:     lvl.PassScore,
			Passed:        e.passed,
		}
	}

	return snap
}
