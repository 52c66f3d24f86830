package eventbus

import (
	"testing"
	"time"
)

func TestSendToCoreDelivers(t *testing.T) {
	eb := NewEventBus()

	event := SubmitQueryEvent{Text: "Q", Location: "Wayanad"}
	if err := eb.SendToCore(event); err != nil {
		t.Fatalf("SendToCore: %v", err)
	}

	select {
	case got := <-eb.UIToCore():
		submit, ok := got.(SubmitQueryEvent)
		if !ok || submit.Text != "Q" || submit.Location != "Wayanad" {
			t.Errorf("received = %+v", got)
		}
	default:
		t.Fatal("event not delivered")
	}
}

func TestSendToUIDelivers(t *testing.T) {
	eb := NewEventBus()

	if err := eb.SendToUI(QueryStateEvent{IsProcessing: true}); err != nil {
		t.Fatalf("SendToUI: %v", err)
	}

	select {
	case got := <-eb.CoreToUI():
		state, ok := got.(QueryStateEvent)
		if !ok || !state.IsProcessing {
			t.Errorf("received = %+v", got)
		}
	default:
		t.Fatal("event not delivered")
	}
}

func TestSendToCoreFullChannel(t *testing.T) {
	eb := NewEventBus()

	for i := 0; i < 100; i++ {
		if err := eb.SendToCore(SubmitQueryEvent{Text: "Q"}); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}

	if err := eb.SendToCore(SubmitQueryEvent{Text: "Q"}); err == nil {
		t.Fatal("expected error when channel is full")
	}
}

func TestCircuitBreakerOpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker(3, time.Minute)

	for i := 0; i < 3; i++ {
		if cb.IsOpen() {
			t.Fatalf("open after %d failures", i)
		}
		cb.RecordFailure()
	}

	if !cb.IsOpen() {
		t.Error("should open after max failures")
	}

	cb.RecordSuccess()
	if cb.IsOpen() {
		t.Error("success should close the breaker")
	}
}

func TestCircuitBreakerHalfOpenAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker(1, 10*time.Millisecond)
	cb.RecordFailure()

	if !cb.IsOpen() {
		t.Fatal("should be open")
	}

	time.Sleep(20 * time.Millisecond)
	if cb.IsOpen() {
		t.Error("should transition to half-open after the reset timeout")
	}
}

func TestErrorCallbackInvoked(t *testing.T) {
	eb := NewEventBus()

	var reported EventBusError
	eb.SetErrorCallback(func(e EventBusError) {
		reported = e
	})

	for i := 0; i < 100; i++ {
		eb.SendToCore(SubmitQueryEvent{Text: "Q"})
	}
	eb.SendToCore(SubmitQueryEvent{Text: "Q"})

	if reported.Operation != "SendToCore" {
		t.Errorf("operation = %q", reported.Operation)
	}
	if reported.Err == nil {
		t.Error("callback should carry the error")
	}
	if reported.Timestamp.IsZero() {
		t.Error("callback should carry a timestamp")
	}
}
