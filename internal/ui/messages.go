package ui

import (
	"multipick/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerMsg reports that the selection pager has exited
type pagerMsg struct {
	err error
}
