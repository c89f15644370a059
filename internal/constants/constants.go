package constants

import "time"

const (
	// Context keys set by the identity middleware
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"

	// MinPasswordLength is the minimum accepted password length
	MinPasswordLength = 6

	// TokenTTL is how long an issued bearer token stays valid
	TokenTTL = 24 * time.Hour

	// OTPTTL is how long a password-reset code stays valid
	OTPTTL = 5 * time.Minute
)
