package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/krishi-officer/krishicli/internal/models"
)

func completedResponse(id, text string) *models.QueryResponse {
	return &models.QueryResponse{
		ID:           id,
		OriginalText: text,
		Status:       "completed",
	}
}

func TestStartProcessingClearsPreviousCycle(t *testing.T) {
	state := NewQueryState()
	state.FinishWithResponse(completedResponse("x1", "Q"), "Q")
	state.FinishWithError(errors.New("old failure"))

	state.StartProcessing()

	if !state.IsProcessing() {
		t.Error("should be processing")
	}
	if state.GetResponse() != nil {
		t.Error("prior response should be cleared")
	}
	if state.GetLastError() != nil {
		t.Error("prior error should be cleared")
	}
}

func TestFinishWithResponseRecordsHistory(t *testing.T) {
	state := NewQueryState()
	state.StartProcessing()
	state.FinishWithResponse(completedResponse("x1", "Q"), "Q")

	if state.IsProcessing() {
		t.Error("processing should have ended")
	}
	if state.GetLastError() != nil {
		t.Errorf("error should be empty, got %v", state.GetLastError())
	}
	if got := state.GetResponse(); got == nil || got.ID != "x1" {
		t.Fatalf("response = %+v", got)
	}

	history := state.GetHistory()
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	entry := history[0]
	if entry.ID != "x1" || entry.Query != "Q" || entry.Status != "completed" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Timestamp == "" {
		t.Error("missing response timestamp should be filled in")
	}
}

func TestHistoryBoundedAtFiveMostRecentFirst(t *testing.T) {
	state := NewQueryState()

	for i := 1; i <= 6; i++ {
		id := fmt.Sprintf("x%d", i)
		state.StartProcessing()
		state.FinishWithResponse(completedResponse(id, "Q"+id), "Q"+id)
	}

	history := state.GetHistory()
	if len(history) != 5 {
		t.Fatalf("history length = %d, want 5", len(history))
	}
	for i, wantID := range []string{"x6", "x5", "x4", "x3", "x2"} {
		if history[i].ID != wantID {
			t.Errorf("history[%d].ID = %s, want %s", i, history[i].ID, wantID)
		}
	}
}

func TestFinishWithErrorLeavesHistoryAndResponseAbsent(t *testing.T) {
	state := NewQueryState()
	state.StartProcessing()
	state.FinishWithResponse(completedResponse("x1", "Q"), "Q")

	state.StartProcessing()
	state.FinishWithError(errors.New("backend returned status 500"))

	if state.GetResponse() != nil {
		t.Error("response should stay absent after a failed cycle")
	}
	if got := state.GetLastError(); got == nil {
		t.Error("error should be set")
	}
	if len(state.GetHistory()) != 1 {
		t.Errorf("failed cycle must not mutate history, got %d entries", len(state.GetHistory()))
	}
}

func TestGetHistoryReturnsCopy(t *testing.T) {
	state := NewQueryState()
	state.FinishWithResponse(completedResponse("x1", "Q"), "Q")

	history := state.GetHistory()
	history[0].Query = "tampered"

	if state.GetHistory()[0].Query != "Q" {
		t.Error("mutating the returned slice must not affect state")
	}
}

func TestHistoryFallbackID(t *testing.T) {
	state := NewQueryState()
	state.FinishWithResponse(&models.QueryResponse{OriginalText: "Q", Status: "completed"}, "Q")

	if state.GetHistory()[0].ID == "" {
		t.Error("history entry should get a generated id when the response has none")
	}
}
