package comparison

import (
	"context"

	"github.com/cmlabs-hris/device-benefit-calculator/internal/domain/tax"
)

// ComparisonService defines the calculator operations exposed to transports
type ComparisonService interface {
	// Compare both financing paths for one salary and device
	Compare(ctx context.Context, req CompareRequest) ComparisonResponse

	// Compute the annual tax on one income
	ComputeTax(ctx context.Context, req tax.TaxRequest) tax.TaxResponse

	// Describe the compiled-in tax schedule; fails when the schedule breaks its invariants
	GetSchedule(ctx context.Context) (tax.ScheduleResponse, error)
}
