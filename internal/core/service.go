package core

import (
	"context"
	"strings"

	"github.com/krishi-officer/krishicli/internal/api"
	"github.com/krishi-officer/krishicli/internal/config"
	"github.com/krishi-officer/krishicli/internal/eventbus"
	"github.com/krishi-officer/krishicli/internal/models"
)

// submitter is the slice of the API client the service needs; tests swap in a
// stub so no real backend is required.
type submitter interface {
	SubmitQuery(ctx context.Context, text, location string) (*models.QueryResponse, error)
}

// QueryService owns the submission lifecycle: it consumes UI events, performs
// the single in-flight backend call and pushes state snapshots back to the UI.
type QueryService struct {
	client submitter
	config *config.Config
	state  *QueryState
	bus    *eventbus.EventBus
	ctx    context.Context
	cancel context.CancelFunc
}

func NewQueryService(cfg *config.Config, eb *eventbus.EventBus) *QueryService {
	ctx, cancel := context.WithCancel(context.Background())

	return &QueryService{
		client: api.NewClient(cfg.GetBaseURL(), cfg.GetFarmerID()),
		config: cfg,
		state:  NewQueryState(),
		bus:    eb,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start runs the core logic in a goroutine
func (qs *QueryService) Start() {
	// Send initial state to UI immediately
	qs.pushStateToUI()
	go qs.eventLoop()
}

func (qs *QueryService) Stop() {
	qs.cancel()
}

func (qs *QueryService) IsReady() bool {
	return qs.config.IsValid()
}

func (qs *QueryService) eventLoop() {
	for {
		select {
		case <-qs.ctx.Done():
			return
		case event, ok := <-qs.bus.UIToCore():
			if !ok {
				return
			}
			qs.handleUIEvent(event)
		}
	}
}

func (qs *QueryService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SubmitQueryEvent:
		qs.processQuery(e.Text, e.Location)
	}
}

// processQuery runs one submission cycle. An empty query is a no-op: no
// network call, no state change. A single failed attempt surfaces
// immediately; nothing is retried.
func (qs *QueryService) processQuery(text, location string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	qs.state.StartProcessing()
	qs.pushStateToUI()

	response, err := qs.client.SubmitQuery(qs.ctx, text, strings.TrimSpace(location))
	if err != nil {
		qs.state.FinishWithError(err)
		qs.pushStateToUI()
		return
	}

	qs.state.FinishWithResponse(response, text)
	qs.pushStateToUI()
}

func (qs *QueryService) pushStateToUI() {
	event := eventbus.QueryStateEvent{
		Response:     qs.state.GetResponse(),
		History:      qs.state.GetHistory(),
		IsProcessing: qs.state.IsProcessing(),
		Error:        qs.state.GetLastError(),
	}

	if err := qs.bus.SendToUI(event); err != nil {
		// The UI missed a snapshot; the next push carries the full state
		// again, so there is nothing to recover here.
		return
	}
}
