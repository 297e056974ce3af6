// Package pricing holds the fixed business policy that turns a device
// condition into a tier and a price. It does no I/O; callers pass in the
// device dataset they already loaded.
package pricing

import "devicequote/internal/domain/entity"

// Classify maps a condition input onto a tier. The rules are evaluated in
// order and the first match wins: locks and power dominate function, which
// dominates cosmetics.
func Classify(in entity.ConditionInput) entity.ConditionTier {
	switch {
	case !in.TurnsOn || !in.IsUnlocked:
		return entity.TierDamaged
	case !in.WorksCorrectly || in.FaceIDFailed():
		return entity.TierDamaged
	case in.ScreenState == entity.ScreenCracked || in.BodyState == entity.BodyBent:
		return entity.TierDamaged
	case in.BodyState == entity.BodyDents:
		return entity.TierFair
	case in.ScreenState == entity.ScreenScratches:
		return entity.TierFair
	case in.BodyState == entity.BodyScratches:
		return entity.TierGood
	case in.ScreenState == entity.ScreenFlawless && in.BodyState == entity.BodyFlawless:
		return entity.TierLikeNew
	default:
		return entity.TierGood
	}
}

// DeductionClass decides which multiplier path the anchor fallback takes.
type DeductionClass string

const (
	DeductionCritical   DeductionClass = "critical"
	DeductionFunctional DeductionClass = "functional"
	DeductionCosmetic   DeductionClass = "cosmetic"
)

// Deduction classifies the input for the fallback computation. It looks at
// the raw input, not the tier, since a cracked screen and a locked device
// share a tier but not a price.
func Deduction(in entity.ConditionInput) DeductionClass {
	switch {
	case !in.TurnsOn || !in.IsUnlocked:
		return DeductionCritical
	case !in.WorksCorrectly || in.FaceIDFailed():
		return DeductionFunctional
	default:
		return DeductionCosmetic
	}
}

// RepresentativeInput is the condition used when only a tier is known, as in
// bulk valuation and the quote's per-tier detail.
func RepresentativeInput(tier entity.ConditionTier) entity.ConditionInput {
	in := entity.ConditionInput{
		TurnsOn:        true,
		WorksCorrectly: true,
		IsUnlocked:     true,
		ScreenState:    entity.ScreenFlawless,
		BodyState:      entity.BodyFlawless,
		BatteryHealth:  entity.BatteryNormal,
	}

	switch tier {
	case entity.TierGood:
		in.BodyState = entity.BodyScratches
	case entity.TierFair:
		in.BodyState = entity.BodyDents
	case entity.TierDamaged:
		in.ScreenState = entity.ScreenCracked
	case entity.TierLikeNew:
	}

	return in
}
