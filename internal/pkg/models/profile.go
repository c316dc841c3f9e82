package models

import (
	"time"

	"github.com/google/uuid"
)

// TrustLevel buckets a user's accumulated verification and reputation state.
type TrustLevel string

const (
	TrustLevelNew      TrustLevel = "new"
	TrustLevelBasic    TrustLevel = "basic"
	TrustLevelVerified TrustLevel = "verified"
	TrustLevelTrusted  TrustLevel = "trusted"
)

// Profile holds per-user trust and reputation state, one-to-one with User.
type Profile struct {
	UserID           uuid.UUID  `json:"user_id" db:"user_id"`
	IdentityVerified bool       `json:"identity_verified" db:"identity_verified"`
	LicenseVerified  bool       `json:"license_verified" db:"license_verified"`
	AddressVerified  bool       `json:"address_verified" db:"address_verified"`
	EmailVerified    bool       `json:"email_verified" db:"email_verified"`
	PhoneVerified    bool       `json:"phone_verified" db:"phone_verified"`
	TwoFactorEnabled bool       `json:"two_factor_enabled" db:"two_factor_enabled"`
	TrustLevel       TrustLevel `json:"trust_level" db:"trust_level"`
	Rating           float64    `json:"rating" db:"rating"`
	RatingCount      int        `json:"rating_count" db:"rating_count"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// NewProfile returns the initial profile state created on first access.
func NewProfile(userID uuid.UUID) *Profile {
	now := time.Now()
	return &Profile{
		UserID:     userID,
		TrustLevel: TrustLevelNew,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ComputeTrustLevel derives the trust level from verification state and
// review reputation.
func (p *Profile) ComputeTrustLevel() TrustLevel {
	verified := 0
	for _, v := range []bool{
		p.IdentityVerified,
		p.LicenseVerified,
		p.AddressVerified,
		p.EmailVerified,
		p.PhoneVerified,
	} {
		if v {
			verified++
		}
	}

	switch {
	case verified >= 4 && p.RatingCount >= 10 && p.Rating >= 4.5:
		return TrustLevelTrusted
	case verified >= 3:
		return TrustLevelVerified
	case verified >= 1:
		return TrustLevelBasic
	default:
		return TrustLevelNew
	}
}
