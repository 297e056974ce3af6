package pricing

import (
	"devicequote/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var (
	criticalMultiplier   = decimal.RequireFromString("0.25")
	functionalMultiplier = decimal.RequireFromString("0.60")
	defaultMultiplier    = decimal.RequireFromString("0.25")

	cosmeticMatrix = map[entity.ScreenState]map[entity.BodyState]decimal.Decimal{
		entity.ScreenFlawless: {
			entity.BodyFlawless:  decimal.RequireFromString("1.00"),
			entity.BodyScratches: decimal.RequireFromString("0.80"),
			entity.BodyDents:     decimal.RequireFromString("0.65"),
			entity.BodyBent:      decimal.RequireFromString("0.35"),
		},
		entity.ScreenScratches: {
			entity.BodyFlawless:  decimal.RequireFromString("0.85"),
			entity.BodyScratches: decimal.RequireFromString("0.75"),
			entity.BodyDents:     decimal.RequireFromString("0.60"),
			entity.BodyBent:      decimal.RequireFromString("0.30"),
		},
		entity.ScreenCracked: {
			entity.BodyFlawless:  decimal.RequireFromString("0.45"),
			entity.BodyScratches: decimal.RequireFromString("0.40"),
			entity.BodyDents:     decimal.RequireFromString("0.30"),
			entity.BodyBent:      decimal.RequireFromString("0.20"),
		},
	}
)

// CosmeticMultiplier looks up the screen x body matrix. Pairs outside the
// matrix get the 0.25 default rather than being reported as unpriced.
func CosmeticMultiplier(screen entity.ScreenState, body entity.BodyState) decimal.Decimal {
	if row, ok := cosmeticMatrix[screen]; ok {
		if m, ok := row[body]; ok {
			return m
		}
	}

	return defaultMultiplier
}

// Multiplier returns the factor applied to the anchor base price for in.
func Multiplier(in entity.ConditionInput) (decimal.Decimal, DeductionClass) {
	class := Deduction(in)
	switch class {
	case DeductionCritical:
		return criticalMultiplier, class
	case DeductionFunctional:
		return functionalMultiplier, class
	default:
		return CosmeticMultiplier(in.ScreenState, in.BodyState), class
	}
}
