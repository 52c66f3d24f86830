package core

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/krishi-officer/krishicli/internal/models"
)

// maxHistoryEntries bounds the session history list.
const maxHistoryEntries = 5

// QueryState manages the submission state for the event-driven architecture.
// One submission cycle holds either a response or an error, never both.
type QueryState struct {
	mu           sync.RWMutex
	response     *models.QueryResponse
	history      []models.HistoryEntry
	isProcessing bool
	lastError    error
}

func NewQueryState() *QueryState {
	return &QueryState{
		history: make([]models.HistoryEntry, 0, maxHistoryEntries),
	}
}

// StartProcessing begins a submission cycle: clears the previous response and
// error, sets the processing flag. Atomic so the UI never sees a stale mix.
func (qs *QueryState) StartProcessing() {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	qs.isProcessing = true
	qs.lastError = nil
	qs.response = nil
}

// FinishWithResponse stores the backend response, prepends a history entry
// derived from it and ends the cycle. submittedText is the query as the
// farmer typed it, which is what history records.
func (qs *QueryState) FinishWithResponse(response *models.QueryResponse, submittedText string) {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	qs.isProcessing = false
	qs.lastError = nil
	qs.response = response

	entry := models.HistoryEntry{
		ID:        response.ID,
		Query:     submittedText,
		Timestamp: response.Timestamp,
		Status:    response.Status,
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	qs.history = append([]models.HistoryEntry{entry}, qs.history...)
	if len(qs.history) > maxHistoryEntries {
		qs.history = qs.history[:maxHistoryEntries]
	}
}

// FinishWithError ends the cycle with an error. The history is untouched and
// the response stays absent.
func (qs *QueryState) FinishWithError(err error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	qs.isProcessing = false
	qs.lastError = err
}

func (qs *QueryState) GetResponse() *models.QueryResponse {
	qs.mu.RLock()
	defer qs.mu.RUnlock()
	return qs.response
}

// GetHistory returns a copy so entries stay immutable to callers.
func (qs *QueryState) GetHistory() []models.HistoryEntry {
	qs.mu.RLock()
	defer qs.mu.RUnlock()

	result := make([]models.HistoryEntry, len(qs.history))
	copy(result, qs.history)
	return result
}

func (qs *QueryState) IsProcessing() bool {
	qs.mu.RLock()
	defer qs.mu.RUnlock()
	return qs.isProcessing
}

func (qs *QueryState) GetLastError() error {
	qs.mu.RLock()
	defer qs.mu.RUnlock()
	return qs.lastError
}
