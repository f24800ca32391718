package errors

// Authentication and subscription-gate error constructors, kept separate so
// handlers can build the common denials without repeating messages.

// ErrMissingToken is returned when no bearer credential accompanies a request.
func ErrMissingToken() *AppError {
	return NewUnauthorizedError("missing authorization token")
}

// ErrInvalidToken is returned when the bearer credential fails verification.
func ErrInvalidToken() *AppError {
	return NewUnauthorizedError("invalid or expired token")
}

// ErrNoSubscription denies a tenant with no subscription history.
func ErrNoSubscription() *AppError {
	return NewForbiddenError("Access denied. No subscription found for this condominium.")
}

// ErrSubscriptionInactive denies a tenant whose latest subscription is not
// active; detail carries the offending status.
func ErrSubscriptionInactive(status string) *AppError {
	return NewForbiddenError("Access denied. Subscription is suspended or past due.", status)
}
