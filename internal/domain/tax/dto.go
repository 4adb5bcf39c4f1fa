package tax

import (
	"fmt"

	"github.com/cmlabs-hris/device-benefit-calculator/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== TAX DTOs ==========

type TaxRequest struct {
	AnnualIncome validator.Amount `json:"annual_income"`
	WithDisplay  bool             `json:"-"`
}

type TaxResponse struct {
	AnnualIncome   decimal.Decimal   `json:"annual_income"`
	TaxableIncome  decimal.Decimal   `json:"taxable_income"`
	BasicTax       decimal.Decimal   `json:"basic_tax"`
	SurchargeRate  decimal.Decimal   `json:"surcharge_rate"`
	Surcharge      decimal.Decimal   `json:"surcharge"`
	MarginalRelief decimal.Decimal   `json:"marginal_relief"`
	Cess           decimal.Decimal   `json:"cess"`
	TotalTax       decimal.Decimal   `json:"total_tax"`
	MonthlyTax     decimal.Decimal   `json:"monthly_tax"`
	NetIncome      decimal.Decimal   `json:"net_income"`
	FloorApplied   bool              `json:"floor_applied"`
	Display        map[string]string `json:"display,omitempty"`
}

// ========== SCHEDULE DTOs ==========

type BracketResponse struct {
	Lower decimal.Decimal  `json:"lower"`
	Upper *decimal.Decimal `json:"upper"`
	Rate  decimal.Decimal  `json:"rate"`
}

type SurchargeTierResponse struct {
	Threshold decimal.Decimal `json:"threshold"`
	Rate      decimal.Decimal `json:"rate"`
}

type ScheduleResponse struct {
	Name              string                  `json:"name"`
	StandardDeduction decimal.Decimal         `json:"standard_deduction"`
	RebateCeiling     decimal.Decimal         `json:"rebate_ceiling"`
	Brackets          []BracketResponse       `json:"brackets"`
	SurchargeTiers    []SurchargeTierResponse `json:"surcharge_tiers"`
	CessRate          decimal.Decimal         `json:"cess_rate"`
	FloorIncome       decimal.Decimal         `json:"floor_income"`
}

func NewScheduleResponse(s Schedule) ScheduleResponse {
	brackets := make([]BracketResponse, 0, len(s.Brackets))
	for _, b := range s.Brackets {
		br := BracketResponse{Lower: b.Lower, Rate: b.Rate}
		if b.Upper.Valid {
			upper := b.Upper.Decimal
			br.Upper = &upper
		}
		brackets = append(brackets, br)
	}

	tiers := make([]SurchargeTierResponse, 0, len(s.SurchargeTiers))
	for _, t := range s.SurchargeTiers {
		tiers = append(tiers, SurchargeTierResponse{Threshold: t.Threshold, Rate: t.Rate})
	}

	return ScheduleResponse{
		Name:              s.Name,
		StandardDeduction: s.StandardDeduction,
		RebateCeiling:     s.RebateCeiling,
		Brackets:          brackets,
		SurchargeTiers:    tiers,
		CessRate:          s.CessRate,
		FloorIncome:       s.FloorIncome,
	}
}

// Validate checks the slab and surcharge invariants of a schedule.
func (s Schedule) Validate() error {
	var errs validator.ValidationErrors

	if len(s.Brackets) == 0 {
		errs = append(errs, validator.ValidationError{Field: "brackets", Message: "is required"})
	}
	for i, b := range s.Brackets {
		field := fmt.Sprintf("brackets[%d]", i)
		if b.Rate.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field + ".rate", Message: "must be non-negative"})
		}
		if i == 0 && !b.Lower.IsZero() {
			errs = append(errs, validator.ValidationError{Field: field + ".lower", Message: "must start at 0"})
		}
		if i > 0 {
			prev := s.Brackets[i-1]
			if !prev.Upper.Valid || !prev.Upper.Decimal.Equal(b.Lower) {
				errs = append(errs, validator.ValidationError{Field: field + ".lower", Message: "must equal the previous upper bound"})
			}
		}
		last := i == len(s.Brackets)-1
		if last && b.Upper.Valid {
			errs = append(errs, validator.ValidationError{Field: field + ".upper", Message: "last bracket must be unbounded"})
		}
		if !last && (!b.Upper.Valid || b.Upper.Decimal.LessThanOrEqual(b.Lower)) {
			errs = append(errs, validator.ValidationError{Field: field + ".upper", Message: "must be greater than lower"})
		}
	}

	for i, t := range s.SurchargeTiers {
		if i > 0 && t.Threshold.LessThanOrEqual(s.SurchargeTiers[i-1].Threshold) {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("surcharge_tiers[%d].threshold", i), Message: "must be strictly increasing"})
		}
	}

	if s.StandardDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "standard_deduction", Message: "must be non-negative"})
	}
	if s.CessRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "cess_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
