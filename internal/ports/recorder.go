package ports

import (
	"delivery-estimate-service/internal/domain"
	"time"
)

// Outcome labels reported for each estimate run.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// DispatchRecorder observes each vehicle trip as the scheduler commits it.
type DispatchRecorder interface {
	RecordDispatch(d domain.Dispatch)
}

// EstimateRecorder observes whole estimate runs.
type EstimateRecorder interface {
	DispatchRecorder
	RecordEstimate(outcome string, dur time.Duration)
}
