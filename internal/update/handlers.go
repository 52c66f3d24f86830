package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/krishi-officer/krishicli/internal/eventbus"
	"github.com/krishi-officer/krishicli/internal/models"
)

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus, serviceReady bool) tea.Cmd {
	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return tea.Quit
	case tea.KeyTab, tea.KeyShiftTab:
		toggleFocus(appModel)
		return nil
	case tea.KeyEnter:
		submitQuery(appModel, eb, serviceReady)
		return nil
	case tea.KeyF1:
		SelectSample(appModel, 0)
		return nil
	case tea.KeyF2:
		SelectSample(appModel, 1)
		return nil
	case tea.KeyF3:
		SelectSample(appModel, 2)
		return nil
	case tea.KeyBackspace:
		deleteLastRune(appModel)
		return nil
	case tea.KeySpace:
		appendToFocusedField(appModel, " ")
		return nil
	case tea.KeyRunes:
		appendToFocusedField(appModel, string(keyMsg.Runes))
		return nil
	}
	return nil
}

// submitQuery gates submission: empty queries are silent no-ops and the
// control stays disabled while a request is in flight.
func submitQuery(appModel *models.AppModel, eb *eventbus.EventBus, serviceReady bool) {
	if strings.TrimSpace(appModel.Query) == "" {
		return
	}
	if appModel.Loading {
		return
	}
	if !serviceReady {
		appModel.Status = "Backend not configured"
		return
	}

	event := eventbus.SubmitQueryEvent{
		Text:     appModel.Query,
		Location: appModel.Location,
	}
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Error submitting query: " + err.Error()
	}
}

// SelectSample copies the indexed sample question into the query field.
// Pure state update, no network effect.
func SelectSample(appModel *models.AppModel, index int) {
	if index < 0 || index >= len(appModel.Samples) {
		return
	}
	appModel.Query = appModel.Samples[index].Text
	appModel.Focus = models.FieldQuery
}

func toggleFocus(appModel *models.AppModel) {
	if appModel.Focus == models.FieldQuery {
		appModel.Focus = models.FieldLocation
	} else {
		appModel.Focus = models.FieldQuery
	}
}

func appendToFocusedField(appModel *models.AppModel, s string) {
	if appModel.Focus == models.FieldQuery {
		appModel.Query += s
	} else {
		appModel.Location += s
	}
}

// deleteLastRune trims one rune, not one byte; Malayalam input is multibyte.
func deleteLastRune(appModel *models.AppModel) {
	if appModel.Focus == models.FieldQuery {
		appModel.Query = trimLastRune(appModel.Query)
	} else {
		appModel.Location = trimLastRune(appModel.Location)
	}
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.QueryStateEvent:
		appModel.Response = event.Response
		appModel.History = event.History
		appModel.Loading = event.IsProcessing

		if event.Error != nil {
			appModel.ErrMsg = event.Error.Error()
		} else {
			appModel.ErrMsg = ""
		}

		switch {
		case event.Error != nil:
			appModel.Status = "Error: " + event.Error.Error()
		case event.IsProcessing:
			appModel.Status = "Consulting agents"
		default:
			appModel.Status = "Ready"
		}
	}

	return nil
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// Only handle UI animations - loading dots
	if appModel.Loading {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	}
	return TickCmd()
}
