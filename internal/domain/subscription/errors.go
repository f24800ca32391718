package subscription

import "errors"

var (
	ErrPlanNotFound         = errors.New("plan not found")
	ErrPlanCodeTaken        = errors.New("plan code already exists")
	ErrPlanInUse            = errors.New("plan has active subscriptions")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
