package provisioning

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger is the minimal logging interface used during provisioning.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer defines the interface for structured observability during
// provisioning and teardown.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType // Type of event
	Phase     string    // Phase name (e.g., "role", "cluster")
	Message   string    // Human-readable message
	Resource  string    // Resource name/ID if applicable
	Timestamp time.Time // When the event occurred
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventResourceCreating indicates a resource is being created.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource was created successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceExists indicates a resource already exists.
	EventResourceExists EventType = "resource.exists"
	// EventResourceDeleting indicates a resource is being deleted.
	EventResourceDeleting EventType = "resource.deleting"
	// EventResourceDeleted indicates a resource was deleted successfully.
	EventResourceDeleted EventType = "resource.deleted"
	// EventResourceAbsent indicates a resource slated for deletion was
	// already gone.
	EventResourceAbsent EventType = "resource.absent"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct{}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{}
}

// Printf implements the Logger interface.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event logs a structured event in a single human-readable line.
func (o *ConsoleObserver) Event(event Event) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", event.Phase, event.Type)
	if event.Resource != "" {
		fmt.Fprintf(&b, " %s", event.Resource)
	}
	if event.Message != "" {
		fmt.Fprintf(&b, ": %s", event.Message)
	}
	log.Print(b.String())
}
