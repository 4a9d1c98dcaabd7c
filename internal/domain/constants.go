package domain

// Confirmation message templates
const (
	ConfirmationSubject     = "Your appointment is confirmed!"
	ConfirmationBodyPattern = "Your appointment (ID: %s) has been confirmed."
)

// Business validation constants
const (
	MaxEmailLength = 254
)
