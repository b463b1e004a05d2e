package service

import (
	"errors"
	"testing"

	"github.com/momhive/momhive/internal/model"
	"github.com/momhive/momhive/internal/repository"
)

func TestScreeningService_Score(t *testing.T) {
	database := newTestDB(t)
	signup(t, newAuthService(database), "alice")
	screening := NewScreeningService(repository.NewScreeningRepository(database))

	_, err := screening.Latest("alice")
	if !errors.Is(err, ErrNoScreeningData) {
		t.Fatalf("expected ErrNoScreeningData, got %v", err)
	}

	tests := []struct {
		answers [10]int
		total   int
		outcome model.ScreeningOutcome
	}{
		{[10]int{}, 0, model.OutcomeGood},
		{[10]int{3, 3, 3, 2}, 11, model.OutcomeGood},
		{[10]int{3, 3, 3, 3}, 12, model.OutcomeEnteringPPD},
		{[10]int{3, 3, 3, 3, 2}, 14, model.OutcomeEnteringPPD},
		{[10]int{3, 3, 3, 3, 3}, 15, model.OutcomeNeedsConsultation},
		{[10]int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3}, 30, model.OutcomeNeedsConsultation},
	}

	for _, tt := range tests {
		result, err := screening.Score("alice", tt.answers)
		if err != nil {
			t.Fatalf("score %v: %v", tt.answers, err)
		}
		if result.Total != tt.total || result.Outcome != tt.outcome {
			t.Errorf("score %v = (%d, %s), want (%d, %s)", tt.answers, result.Total, result.Outcome, tt.total, tt.outcome)
		}

		latest, err := screening.Latest("alice")
		if err != nil {
			t.Fatalf("latest: %v", err)
		}
		if latest.Score != tt.total {
			t.Errorf("latest score = %d, want %d", latest.Score, tt.total)
		}
	}
}
