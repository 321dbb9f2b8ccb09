package events

import "slices"

// EventCollector is embedded in aggregates to collect the domain events a
// state change produces until they are published.
type EventCollector struct {
	events []DomainEvent
}

// Record appends a domain event.
func (c *EventCollector) Record(event DomainEvent) {
	c.events = append(c.events, event)
}

// Events returns a copy of the pending events without clearing them.
func (c *EventCollector) Events() []DomainEvent {
	return slices.Clone(c.events)
}

// PendingEvents reports how many events are waiting to be published.
func (c *EventCollector) PendingEvents() int {
	return len(c.events)
}

// ClearEvents returns the pending events and forgets them. It returns nil
// when nothing is pending.
func (c *EventCollector) ClearEvents() []DomainEvent {
	collected := c.events
	c.events = nil
	return collected
}
