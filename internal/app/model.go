package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/krishi-officer/krishicli/internal/update"
	"github.com/krishi-officer/krishicli/ui/components"
	"github.com/krishi-officer/krishicli/ui/styles"
)

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus, m.appModel.ServiceReady)

	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(styles.ProgramStyle().Render("-- DIGITAL KRISHI OFFICER --") + "\n\n")
	b.WriteString(components.RenderSamples(m.appModel.Samples))
	b.WriteString(components.RenderError(m.appModel.ErrMsg))
	b.WriteString(components.RenderResponse(m.appModel.Response))
	b.WriteString(components.RenderHistory(m.appModel.History))
	b.WriteString(components.RenderForm(m.appModel.Query, m.appModel.Location, m.appModel.Focus, m.appModel.Loading, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.appModel.Status, m.appModel.Loading, m.appModel.LoadingDots, m.appModel.Width))

	return b.String()
}
