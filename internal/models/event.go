package models

// Event operations published after a successful insert.
const (
	OperationUserCreated     = "user.created"
	OperationPropertyCreated = "property.created"
)

// Event describes a row created through the data access layer. It never carries credentials.
type Event struct {
	EventID   string `json:"event_id"`           // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`          // Timestamp is the Unix time (seconds) the row was created.
	Operation string `json:"operation"`          // Operation is one of the Operation* constants.
	EntityID  int64  `json:"entity_id"`          // EntityID is the generated primary key of the new row.
	OwnerID   int64  `json:"owner_id,omitempty"` // OwnerID is set for property events.
}
