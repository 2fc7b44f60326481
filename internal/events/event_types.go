package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDepartmentCreated EventType = "department_created"
	EventDepartmentUpdated EventType = "department_updated"
	EventDepartmentDeleted EventType = "department_deleted"
	EventEmployeeCreated   EventType = "employee_created"
	EventEmployeeUpdated   EventType = "employee_updated"
	EventEmployeeDeleted   EventType = "employee_deleted"
)

// Event represents a lifecycle event emitted by the rule engines after a
// successful write.
type Event struct {
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// DepartmentPayload accompanies department events. EmployeesDetached is only
// populated on deletion.
type DepartmentPayload struct {
	Name              string `json:"name"`
	EmployeesDetached int64  `json:"employees_detached,omitempty"`
}

// EmployeePayload accompanies employee events.
type EmployeePayload struct {
	Email        string  `json:"email"`
	DepartmentID *string `json:"department_id,omitempty"`
}
