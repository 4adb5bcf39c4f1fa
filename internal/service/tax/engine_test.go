package tax

import (
	"fmt"
	"sort"
	"testing"

	domainTax "github.com/cmlabs-hris/device-benefit-calculator/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inr(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, context ...string) {
	t.Helper()
	msg := fmt.Sprintf("want %s, got %s", want, got)
	if len(context) > 0 {
		msg = context[0] + ": " + msg
	}
	assert.True(t, inr(want).Equal(got), msg)
}

func TestComputeBasicTax(t *testing.T) {
	tests := []struct {
		name   string
		income string
		want   string
	}{
		{"zero income", "0", "0"},
		{"negative income", "-50000", "0"},
		{"inside rebate", "1000000", "0"},
		{"at rebate ceiling", "1275000", "0"},
		{"one rupee above rebate", "1275001", "60000.15"},
		{"15 percent slab", "1400000", "78750"},
		{"top of 25 percent slab", "2475000", "300000"},
		{"30 percent slab", "5075000", "1080000"},
		{"first surcharge threshold plus 100", "5075100", "1080030"},
		{"second surcharge threshold", "10075000", "2580000"},
		{"third surcharge threshold", "20075000", "5580000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertAmount(t, tt.want, ComputeBasicTax(inr(tt.income)))
		})
	}
}

func TestComputeBasicTax_SlabsWithoutRebate(t *testing.T) {
	// A schedule without a rebate exposes the raw slab arithmetic below the ceiling.
	schedule := domainTax.NewRegime2025()
	schedule.RebateCeiling = decimal.Zero
	engine := NewEngine(schedule)

	tests := []struct {
		income string
		want   string
	}{
		{"475000", "0"},
		{"875000", "20000"},
		{"1000000", "32500"},
		{"1275000", "60000"},
		{"1675000", "120000"},
		{"2075000", "200000"},
	}

	for _, tt := range tests {
		assertAmount(t, tt.want, engine.ComputeBasicTax(inr(tt.income)), "income "+tt.income)
	}
}

func TestComputeTotalTax_Examples(t *testing.T) {
	tests := []struct {
		name   string
		income string
		want   string
	}{
		{"zero", "0", "0"},
		{"rebate zone", "1200000", "0"},
		{"rebate ceiling", "1275000", "0"},
		{"floor guarantee", "1300000", "26000"},
		{"floor no longer binding", "1350000", "74100"},
		{"above floor", "1400000", "81900"},
		{"at first threshold", "5075000", "1123200"},
		{"just above first threshold", "5075100", "1123304"},
		{"inside first tier", "7000000", "1896180"},
		{"at second threshold", "10075000", "2951520"},
		{"just above second threshold", "10075100", "2951624"},
		{"at third threshold", "20075000", "6673680"},
		{"just above third threshold", "20075100", "6673784"},
		{"five crore", "50000000", "18924750"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertAmount(t, tt.want, TotalTax(inr(tt.income)))
		})
	}
}

func TestComputeTotalTax_Breakdown(t *testing.T) {
	t.Run("ten lakh is rebated", func(t *testing.T) {
		result := ComputeTotalTax(inr("1000000"))
		assertAmount(t, "925000", result.TaxableIncome)
		assertAmount(t, "0", result.BasicTax)
		assertAmount(t, "0", result.TotalTax)
		assert.False(t, result.FloorApplied)
	})

	t.Run("ten lakh slab tax without rebate", func(t *testing.T) {
		schedule := domainTax.NewRegime2025()
		schedule.RebateCeiling = decimal.Zero
		result := NewEngine(schedule).ComputeTotalTax(inr("1000000"))
		assertAmount(t, "32500", result.BasicTax)
		assertAmount(t, "0", result.Surcharge)
		assertAmount(t, "1300", result.Cess)
		assertAmount(t, "33800", result.TotalTax)
		assert.False(t, result.FloorApplied)
	})

	t.Run("surcharge with marginal relief", func(t *testing.T) {
		result := ComputeTotalTax(inr("5075100"))
		assertAmount(t, "1080030", result.BasicTax)
		assertAmount(t, "0.1", result.SurchargeRate)
		assertAmount(t, "108003", result.Surcharge)
		assertAmount(t, "107933", result.MarginalRelief)
		assertAmount(t, "1080100", result.TaxBeforeCess())
		assertAmount(t, "43204", result.Cess)
		assertAmount(t, "1123304", result.TotalTax)
		assert.False(t, result.FloorApplied)
	})

	t.Run("surcharge without relief", func(t *testing.T) {
		result := ComputeTotalTax(inr("7000000"))
		assertAmount(t, "165750", result.Surcharge)
		assertAmount(t, "0", result.MarginalRelief)
		assertAmount(t, "72930", result.Cess)
	})

	t.Run("floor guarantee overrides", func(t *testing.T) {
		result := ComputeTotalTax(inr("1300000"))
		assertAmount(t, "63750", result.BasicTax)
		assertAmount(t, "38750", result.MarginalRelief)
		assertAmount(t, "25000", result.TaxBeforeCess())
		assertAmount(t, "1000", result.Cess)
		assertAmount(t, "26000", result.TotalTax)
		assertAmount(t, "1274000", result.NetIncome())
		assert.True(t, result.FloorApplied)
	})

	t.Run("one rupee above rebate", func(t *testing.T) {
		result := ComputeTotalTax(inr("1275001"))
		assertAmount(t, "1.04", result.TotalTax)
		assert.True(t, result.FloorApplied)
	})

	t.Run("components add up", func(t *testing.T) {
		for _, income := range []string{"1300000", "5075100", "10075100", "20075100", "50000000"} {
			r := ComputeTotalTax(inr(income))
			sum := r.BasicTax.Add(r.Surcharge).Sub(r.MarginalRelief).Add(r.Cess)
			assertAmount(t, sum.String(), r.TotalTax, "income "+income)
			assert.False(t, r.MarginalRelief.IsNegative(), "income %s", income)
		}
	})
}

func TestComputeTotalTax_ZeroInsideRebate(t *testing.T) {
	for income := int64(0); income <= 1275000; income += 5000 {
		got := TotalTax(decimal.NewFromInt(income))
		require.True(t, got.IsZero(), "income %d taxed %s", income, got)
	}
}

func TestComputeTotalTax_Monotonic(t *testing.T) {
	var incomes []decimal.Decimal
	for income := int64(0); income <= 25000000; income += 2500 {
		incomes = append(incomes, decimal.NewFromInt(income))
	}
	// dense sampling around each discontinuity of the raw formula
	for _, edge := range []int64{1275000, 1350000, 5075000, 10075000, 20075000} {
		for delta := int64(-1000); delta <= 1000; delta += 7 {
			incomes = append(incomes, decimal.NewFromInt(edge+delta))
		}
	}
	sortDecimals(incomes)

	prev := TotalTax(incomes[0])
	for _, income := range incomes[1:] {
		got := TotalTax(income)
		require.True(t, got.GreaterThanOrEqual(prev), "tax fell to %s at income %s (was %s)", got, income, prev)
		prev = got
	}
}

func TestComputeTotalTax_NoCliffAtSurchargeThresholds(t *testing.T) {
	cess := DefaultSchedule().CessRate
	for _, tier := range DefaultSchedule().SurchargeTiers {
		atThreshold := ComputeTotalTax(tier.Threshold)
		for _, delta := range []int64{1, 100, 10000, 250000} {
			d := decimal.NewFromInt(delta)
			above := ComputeTotalTax(tier.Threshold.Add(d))
			// net may only shrink by the cess on the extra income
			minNet := atThreshold.NetIncome().Sub(d.Mul(cess))
			assert.True(t, above.NetIncome().GreaterThanOrEqual(minNet),
				"threshold %s + %d: net %s below %s", tier.Threshold, delta, above.NetIncome(), minNet)
		}
	}
}

func TestComputeTotalTax_Idempotent(t *testing.T) {
	for _, income := range []string{"0", "1300000", "5075100", "20075100"} {
		first := ComputeTotalTax(inr(income))
		second := ComputeTotalTax(inr(income))
		assert.True(t, first.TotalTax.Equal(second.TotalTax))
		assert.True(t, first.MarginalRelief.Equal(second.MarginalRelief))
		assert.Equal(t, first.FloorApplied, second.FloorApplied)
	}
}

func TestDefaultScheduleIsValid(t *testing.T) {
	require.NoError(t, DefaultSchedule().Validate())
}

func TestScheduleValidate(t *testing.T) {
	t.Run("gap between brackets", func(t *testing.T) {
		s := domainTax.NewRegime2025()
		s.Brackets[2].Lower = inr("900000")
		assert.Error(t, s.Validate())
	})

	t.Run("bounded last bracket", func(t *testing.T) {
		s := domainTax.NewRegime2025()
		s.Brackets[len(s.Brackets)-1].Upper = decimal.NewNullDecimal(inr("99999999"))
		assert.Error(t, s.Validate())
	})

	t.Run("unordered surcharge tiers", func(t *testing.T) {
		s := domainTax.NewRegime2025()
		s.SurchargeTiers[1].Threshold = inr("1000")
		assert.Error(t, s.Validate())
	})

	t.Run("empty schedule", func(t *testing.T) {
		assert.Error(t, domainTax.Schedule{}.Validate())
	})
}

func sortDecimals(ds []decimal.Decimal) {
	sort.Slice(ds, func(i, j int) bool { return ds[i].LessThan(ds[j]) })
}
