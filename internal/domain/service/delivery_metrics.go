package service

import "time"

// DeliveryMetrics records dispatch outcomes.
type DeliveryMetrics interface {
	ObserveDispatch(mode, status string, successCount, failureCount int, elapsed time.Duration)
}
