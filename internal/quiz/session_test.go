package quiz_test

import (
	"context"
	"testing"

	"github.com/ashrofu/kssm-hub/internal/quiz"
)

func TestSessionsPerUser(t *testing.T) {
	sessions := quiz.NewSessions(loadBank(t), quiz.NewMemoryStore())
	ctx := context.Background()

	alice := sessions.Get(ctx, "alice")
	if again := sessions.Get(ctx, "alice"); again != alice {
		t.Error("same user should get the same engine")
	}
	if bob := sessions.Get(ctx, "bob"); bob == alice {
		t.Error("different users must not share an engine")
	}

	if err := alice.Start(1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if snap := sessions.Get(ctx, "bob").Snapshot(); snap.State != quiz.StateMenu {
		t.Errorf("bob state = %s, want menu", snap.State)
	}
}
