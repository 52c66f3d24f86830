package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/krishi-officer/krishicli/internal/config"
	"github.com/krishi-officer/krishicli/internal/core"
	"github.com/krishi-officer/krishicli/internal/dispatcher"
	"github.com/krishi-officer/krishicli/internal/eventbus"
	"github.com/krishi-officer/krishicli/internal/models"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.QueryService
	model      *AppModel
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)
	service := core.NewQueryService(cfg, eb)

	model := &AppModel{
		appModel:   createInitialAppModel(cfg, service),
		dispatcher: disp,
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model)
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
}

func createInitialAppModel(cfg *config.Config, service *core.QueryService) models.AppModel {
	return models.AppModel{
		Location:     cfg.GetLocation(),
		Status:       "Ready",
		ServiceReady: service.IsReady(),
		Samples:      sampleQuestions(),
	}
}

// sampleQuestions are the canned Malayalam queries offered via F1-F3.
func sampleQuestions() []models.SampleQuestion {
	return []models.SampleQuestion{
		{
			Text:        "എന്റെ നെല്ല് വിളയിൽ പുഴുക്കൾ വന്നിട്ടുണ്ട്. എന്ത് ചെയ്യണം?",
			Description: "Rice crop has worms, what to do?",
		},
		{
			Text:        "തെങ്ങിന് എന്ത് വളം ഇടണം?",
			Description: "What fertilizer for coconut?",
		},
		{
			Text:        "കുരുമുളകിന്റെ രോഗത്തിന് ചികിത്സ എന്താണ്?",
			Description: "Treatment for pepper disease?",
		},
	}
}
