package quiz_test

import "testing"

func TestBankShape(t *testing.T) {
	b := loadBank(t)

	if b.MaxLevel() != 10 {
		t.Fatalf("MaxLevel = %d, want 10", b.MaxLevel())
	}
	if got := b.TotalQuestions(); got != 52 {
		t.Errorf("TotalQuestions = %d, want 52", got)
	}

	wantPass := []int{3, 3, 3, 3, 3, 4, 4, 4, 4, 5}
	for i, lvl := range b.Levels() {
		if lvl.Level != i+1 {
			t.Errorf("level at %d numbered %d", i, lvl.Level)
		}
		if lvl.PassScore != wantPass[i] {
			t.Errorf("level %d pass score = %d, want %d", lvl.Level, lvl.PassScore, wantPass[i])
		}
		want := 5
		if lvl.Level == 10 {
			want = 7
		}
		if len(lvl.Questions) != want {
			t.Errorf("level %d has %d questions, want %d", lvl.Level, len(lvl.Questions), want)
		}
	}

	first, _ := b.Level(1)
	if first.Title != "Curriculum Foundations" {
		t.Errorf("level 1 title = %q", first.Title)
	}
	last, _ := b.Level(10)
	if last.Title != "Master Challenge" {
		t.Errorf("level 10 title = %q", last.Title)
	}
}

func TestQuestionByID(t *testing.T) {
	b := loadBank(t)

	q, ok := b.QuestionByID("l10q7")
	if !ok {
		t.Fatal("l10q7 missing")
	}
	if q.Correct != 1 {
		t.Errorf("l10q7 correct = %d, want 1", q.Correct)
	}
	if _, ok := b.QuestionByID("l11q1"); ok {
		t.Error("l11q1 should not exist")
	}
}

func TestLevelBounds(t *testing.T) {
	b := loadBank(t)
	if _, ok := b.Level(0); ok {
		t.Error("Level(0) should miss")
	}
	if _, ok := b.Level(11); ok {
		t.Error("Level(11) should miss")
	}
	if _, ok := b.Level(10); !ok {
		t.Error("Level(10) should exist")
	}
}
