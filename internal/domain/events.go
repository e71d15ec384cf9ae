package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventScanRequested    EventType = "ScanRequested"
	EventScanStarted      EventType = "ScanStarted"
	EventItemsLoaded      EventType = "ItemsLoaded"
	EventScanCompleted    EventType = "ScanCompleted"
	EventSelectionChanged EventType = "SelectionChanged"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ScanRequestedEvent is emitted to request a new listing of Dir
type ScanRequestedEvent struct {
	Dir string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// ScanStartedEvent is emitted when a directory listing begins
type ScanStartedEvent struct {
	Dir string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ItemsLoadedEvent carries a freshly listed directory
type ItemsLoadedEvent struct {
	Dir   string
	Items ItemList
}

func (e ItemsLoadedEvent) Type() EventType { return EventItemsLoaded }

// ScanCompletedEvent is emitted when a directory listing finishes
type ScanCompletedEvent struct {
	Dir        string
	ItemsFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// SelectionChangedEvent is emitted after a gesture changed the selected set
type SelectionChangedEvent struct {
	Indexes []int
	Paths   []string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
	Dir  string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
