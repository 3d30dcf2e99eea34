package monitor

import (
	"sync"
	"time"

	"digital.vasic.matchers/pkg/match"
	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/render"
)

// EventCollector captures evaluation events and aggregate
// counts. It is safe for concurrent use.
type EventCollector struct {
	mu       sync.RWMutex
	events   []Event
	handlers []func(Event)
	stats    CollectorStats
}

// CollectorStats holds aggregate statistics.
type CollectorStats struct {
	Total     int           `json:"total"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`
}

// NewEventCollector creates a new event collector.
func NewEventCollector() *EventCollector {
	return &EventCollector{
		events: make([]Event, 0, 64),
		stats:  CollectorStats{StartTime: time.Now()},
	}
}

// OnEvent registers a handler to be called for each event.
func (c *EventCollector) OnEvent(handler func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers.
func (c *EventCollector) Emit(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	c.stats.Total++
	switch event.Type {
	case EventPassed:
		c.stats.Passed++
	case EventFailed, EventRaised:
		c.stats.Failed++
	}
	c.stats.Duration = time.Since(c.stats.StartTime)
	handlers := make([]func(Event), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// Events returns a copy of all collected events.
func (c *EventCollector) Events() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Event, len(c.events))
	copy(result, c.events)
	return result
}

// Stats returns the current aggregate statistics.
func (c *EventCollector) Stats() CollectorStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.stats
	s.Duration = time.Since(s.StartTime)
	return s
}

// Reset clears all collected events and statistics.
func (c *EventCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
	c.stats = CollectorStats{StartTime: time.Now()}
}

// instrumented wraps a matcher so each evaluation emits one
// event to the collector.
type instrumented struct {
	inner     matcher.Matcher
	name      string
	collector *EventCollector
	renderer  *render.Renderer
}

// Wrap decorates a matcher with event emission. On failure the
// emitted event carries the rendered failure message.
func Wrap(
	m matcher.Matcher,
	name string,
	collector *EventCollector,
	renderer *render.Renderer,
) matcher.Matcher {
	return instrumented{
		inner:     m,
		name:      name,
		collector: collector,
		renderer:  renderer,
	}
}

func (i instrumented) Match(
	actual any,
	cfg matcher.Config,
) match.Result {
	res := i.inner.Match(actual, cfg)

	event := Event{
		Type:   EventPassed,
		Name:   i.name,
		Actual: i.renderer.Decorate(actual),
	}
	if !res.Matches {
		event.Type = EventFailed
		event.Message = res.Failure.RenderMessage(i.renderer)
	}
	i.collector.Emit(event)

	return res
}
