package entity

// ScreenState is the cosmetic state of the display.
type ScreenState string

const (
	ScreenFlawless  ScreenState = "flawless"
	ScreenScratches ScreenState = "scratches"
	ScreenCracked   ScreenState = "cracked"
)

// BodyState is the cosmetic state of the housing.
type BodyState string

const (
	BodyFlawless  BodyState = "flawless"
	BodyScratches BodyState = "scratches"
	BodyDents     BodyState = "dents"
	BodyBent      BodyState = "bent"
)

// BatteryHealth reports whether the battery needs service.
type BatteryHealth string

const (
	BatteryNormal  BatteryHealth = "normal"
	BatteryService BatteryHealth = "service"
)

// ConditionTier is the coarse condition bucket buyback prices are keyed by.
type ConditionTier string

const (
	TierLikeNew ConditionTier = "like-new"
	TierGood    ConditionTier = "good"
	TierFair    ConditionTier = "fair"
	TierDamaged ConditionTier = "damaged"
)

// ConditionTiers lists every tier from best to worst.
func ConditionTiers() []ConditionTier {
	return []ConditionTier{TierLikeNew, TierGood, TierFair, TierDamaged}
}

// Valid reports whether t is one of the four known tiers.
func (t ConditionTier) Valid() bool {
	switch t {
	case TierLikeNew, TierGood, TierFair, TierDamaged:
		return true
	default:
		return false
	}
}

// ConditionInput is what a customer reports about a device in the quote wizard.
// FaceIDWorking is optional; nil means the question was not asked and is
// treated as not-a-problem.
type ConditionInput struct {
	TurnsOn        bool          `json:"turnsOn"`
	WorksCorrectly bool          `json:"worksCorrectly"`
	IsUnlocked     bool          `json:"isUnlocked"`
	FaceIDWorking  *bool         `json:"faceIdWorking,omitempty"`
	ScreenState    ScreenState   `json:"screenState" validate:"required,oneof=flawless scratches cracked"`
	BodyState      BodyState     `json:"bodyState" validate:"required,oneof=flawless scratches dents bent"`
	BatteryHealth  BatteryHealth `json:"batteryHealth,omitempty" validate:"omitempty,oneof=normal service"`
}

// FaceIDFailed reports an explicit Face ID failure.
func (in ConditionInput) FaceIDFailed() bool {
	return in.FaceIDWorking != nil && !*in.FaceIDWorking
}
