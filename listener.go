package dexdecode

// EventListener receives decoded events one at a time. Implementations must
// not block the caller for long; the decoder itself never buffers or
// retries a delivery.
type EventListener interface {
	OnEvent(event DexEvent)
}

// StreamingEventListener is an EventListener that also wants to know when a
// contiguous run of facts from the upstream feed has been fully drained,
// e.g. to flush a downstream batch.
type StreamingEventListener interface {
	EventListener
	OnDrained()
}

// EventListenerFunc adapts a plain function to EventListener.
type EventListenerFunc func(DexEvent)

func (f EventListenerFunc) OnEvent(event DexEvent) { f(event) }
