package domain

// NotificationStatus delivery status of a confirmation notification
type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// NotificationOutcome is the result of a notifier call: Sent, or Failed with a reason.
// A failed delivery is a value, not an error.
type NotificationOutcome struct {
	Status NotificationStatus
	Reason string // Empty when Status is NotificationSent
}

// Sent builds a successful outcome
func Sent() NotificationOutcome {
	return NotificationOutcome{Status: NotificationSent}
}

// Failed builds a failed outcome with the reason
func Failed(reason string) NotificationOutcome {
	return NotificationOutcome{Status: NotificationFailed, Reason: reason}
}

// IsSent returns true if the notifier acknowledged the message
func (o NotificationOutcome) IsSent() bool {
	return o.Status == NotificationSent
}

// Notification is a message to deliver through the email service
type Notification struct {
	Recipients []string
	Subject    string
	Body       string
	IsHTML     bool
}
