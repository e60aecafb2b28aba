package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageChanged   EventType = "PageChanged"
	EventPageOpened    EventType = "PageOpened"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventConfigChanged EventType = "ConfigChanged"
	EventAppReady      EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageChangedEvent is emitted after the pager settles on a page
type PageChangedEvent struct {
	From int
	To   int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// PageOpenedEvent is emitted when a page is handed to the full-screen reader
type PageOpenedEvent struct {
	Index int
	Title string
}

func (e PageOpenedEvent) Type() EventType { return EventPageOpened }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path      string
	PageCount int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	LastPage int
	Seq      uint64 // increases with every change from the same publisher
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// AppReadyEvent is emitted when the UI has laid out its pages
type AppReadyEvent struct {
	Pages int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
