package enums

import "fmt"

// ProcessEventType distinguishes alerts from plain notifications and approvals.
type ProcessEventType string

const (
	ProcessEventTypeAlert        ProcessEventType = "alert"
	ProcessEventTypeNotification ProcessEventType = "notification"
	ProcessEventTypeApproval     ProcessEventType = "approval"
)

func (t ProcessEventType) String() string {
	return string(t)
}

func (t ProcessEventType) IsValid() bool {
	switch t {
	case ProcessEventTypeAlert, ProcessEventTypeNotification, ProcessEventTypeApproval:
		return true
	default:
		return false
	}
}

// ProcessEventStatus tracks the lifecycle of a process event.
type ProcessEventStatus string

const (
	ProcessEventStatusPending  ProcessEventStatus = "pending"
	ProcessEventStatusResolved ProcessEventStatus = "resolved"
	ProcessEventStatusApproved ProcessEventStatus = "approved"
	ProcessEventStatusRejected ProcessEventStatus = "rejected"
)

func (s ProcessEventStatus) String() string {
	return string(s)
}

// ProcessEventSeverity grades how urgent an event is.
type ProcessEventSeverity string

const (
	ProcessEventSeverityLow    ProcessEventSeverity = "low"
	ProcessEventSeverityMedium ProcessEventSeverity = "medium"
	ProcessEventSeverityHigh   ProcessEventSeverity = "high"
)

func (s ProcessEventSeverity) String() string {
	return string(s)
}

var validProcessEventSeverities = []ProcessEventSeverity{
	ProcessEventSeverityLow,
	ProcessEventSeverityMedium,
	ProcessEventSeverityHigh,
}

// ParseProcessEventSeverity converts raw input into a ProcessEventSeverity.
func ParseProcessEventSeverity(value string) (ProcessEventSeverity, error) {
	for _, candidate := range validProcessEventSeverities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid process event severity %q", value)
}
