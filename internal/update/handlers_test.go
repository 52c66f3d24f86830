package update

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/krishi-officer/krishicli/internal/eventbus"
	"github.com/krishi-officer/krishicli/internal/models"
)

func pendingCoreEvents(eb *eventbus.EventBus) int {
	count := 0
	for {
		select {
		case <-eb.UIToCore():
			count++
		default:
			return count
		}
	}
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestEnterWithEmptyQueryIsNoOp(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eb := eventbus.NewEventBus()
			appModel := &models.AppModel{Query: tt.query, Status: "Ready"}

			HandleKeyMsgWithEventBus(appModel, enterKey(), eb, true)

			if got := pendingCoreEvents(eb); got != 0 {
				t.Errorf("events sent = %d, want 0", got)
			}
			if appModel.Loading || appModel.ErrMsg != "" || appModel.Response != nil {
				t.Error("empty submit must not change state")
			}
		})
	}
}

func TestEnterSubmitsQueryAndLocation(t *testing.T) {
	eb := eventbus.NewEventBus()
	appModel := &models.AppModel{Query: "തെങ്ങിന് എന്ത് വളം ഇടണം?", Location: "Kannur"}

	HandleKeyMsgWithEventBus(appModel, enterKey(), eb, true)

	select {
	case event := <-eb.UIToCore():
		submit, ok := event.(eventbus.SubmitQueryEvent)
		if !ok {
			t.Fatalf("event type = %T", event)
		}
		if submit.Text != appModel.Query || submit.Location != "Kannur" {
			t.Errorf("submit = %+v", submit)
		}
	default:
		t.Fatal("expected a submit event")
	}

	if appModel.Query == "" {
		t.Error("form should keep the question text after submit")
	}
}

func TestEnterBlockedWhileLoading(t *testing.T) {
	eb := eventbus.NewEventBus()
	appModel := &models.AppModel{Query: "Q", Loading: true}

	HandleKeyMsgWithEventBus(appModel, enterKey(), eb, true)

	if got := pendingCoreEvents(eb); got != 0 {
		t.Errorf("events sent while loading = %d, want 0", got)
	}
}

func TestEnterWhenServiceNotReady(t *testing.T) {
	eb := eventbus.NewEventBus()
	appModel := &models.AppModel{Query: "Q"}

	HandleKeyMsgWithEventBus(appModel, enterKey(), eb, false)

	if got := pendingCoreEvents(eb); got != 0 {
		t.Errorf("events sent = %d, want 0", got)
	}
	if appModel.Status != "Backend not configured" {
		t.Errorf("status = %q", appModel.Status)
	}
}

func TestSelectSampleCopiesTextOnly(t *testing.T) {
	eb := eventbus.NewEventBus()
	appModel := &models.AppModel{
		Focus: models.FieldLocation,
		Samples: []models.SampleQuestion{
			{Text: "sample one"},
			{Text: "sample two"},
		},
	}

	HandleKeyMsgWithEventBus(appModel, tea.KeyMsg{Type: tea.KeyF2}, eb, true)

	if appModel.Query != "sample two" {
		t.Errorf("query = %q", appModel.Query)
	}
	if appModel.Focus != models.FieldQuery {
		t.Error("focus should move to the query field")
	}
	if got := pendingCoreEvents(eb); got != 0 {
		t.Errorf("sample select must not send events, got %d", got)
	}
}

func TestSelectSampleOutOfRange(t *testing.T) {
	appModel := &models.AppModel{Samples: []models.SampleQuestion{{Text: "one"}}}

	SelectSample(appModel, 5)

	if appModel.Query != "" {
		t.Errorf("query = %q, want empty", appModel.Query)
	}
}

func TestTabTogglesFocus(t *testing.T) {
	eb := eventbus.NewEventBus()
	appModel := &models.AppModel{}

	HandleKeyMsgWithEventBus(appModel, tea.KeyMsg{Type: tea.KeyTab}, eb, true)
	if appModel.Focus != models.FieldLocation {
		t.Error("tab should move focus to location")
	}
	HandleKeyMsgWithEventBus(appModel, tea.KeyMsg{Type: tea.KeyTab}, eb, true)
	if appModel.Focus != models.FieldQuery {
		t.Error("tab should move focus back to query")
	}
}

func TestTypingGoesToFocusedField(t *testing.T) {
	eb := eventbus.NewEventBus()
	appModel := &models.AppModel{Focus: models.FieldLocation}

	HandleKeyMsgWithEventBus(appModel, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("വയനാട്")}, eb, true)

	if appModel.Location != "വയനാട്" {
		t.Errorf("location = %q", appModel.Location)
	}
	if appModel.Query != "" {
		t.Errorf("query = %q, want empty", appModel.Query)
	}
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	eb := eventbus.NewEventBus()
	appModel := &models.AppModel{Query: "വളം"}

	HandleKeyMsgWithEventBus(appModel, tea.KeyMsg{Type: tea.KeyBackspace}, eb, true)

	if appModel.Query != "വള" {
		t.Errorf("query = %q, want %q", appModel.Query, "വള")
	}
}

func TestCoreEventUpdatesModel(t *testing.T) {
	appModel := &models.AppModel{Loading: true, Status: "Consulting agents"}

	response := &models.QueryResponse{ID: "x1", OriginalText: "Q", Status: "completed"}
	HandleCoreEvent(appModel, CoreEventMsg{Event: eventbus.QueryStateEvent{
		Response: response,
		History:  []models.HistoryEntry{{ID: "x1", Query: "Q", Status: "completed"}},
	}})

	if appModel.Loading {
		t.Error("loading should clear")
	}
	if appModel.Response != response {
		t.Error("response not stored")
	}
	if len(appModel.History) != 1 {
		t.Errorf("history = %+v", appModel.History)
	}
	if appModel.ErrMsg != "" || appModel.Status != "Ready" {
		t.Errorf("err/status = %q/%q", appModel.ErrMsg, appModel.Status)
	}
}

func TestCoreEventWithErrorExcludesResponse(t *testing.T) {
	appModel := &models.AppModel{}

	HandleCoreEvent(appModel, CoreEventMsg{Event: eventbus.QueryStateEvent{
		Error: errors.New("backend returned status 500: boom"),
	}})

	if appModel.Response != nil {
		t.Error("error snapshot must not carry a response")
	}
	if appModel.ErrMsg == "" {
		t.Error("error message should be set")
	}
}

func TestTickAnimatesOnlyWhileLoading(t *testing.T) {
	appModel := &models.AppModel{Loading: true}
	HandleTickMsg(appModel)
	if appModel.LoadingDots != 1 {
		t.Errorf("dots = %d, want 1", appModel.LoadingDots)
	}

	idle := &models.AppModel{}
	HandleTickMsg(idle)
	if idle.LoadingDots != 0 {
		t.Errorf("idle dots = %d, want 0", idle.LoadingDots)
	}
}
