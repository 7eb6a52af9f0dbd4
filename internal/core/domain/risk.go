package domain

import (
	"github.com/govalues/decimal"
)

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
	RiskLevelNone   RiskLevel = ""
)

const (
	riskMediumFrom = 30
	riskHighFrom   = 70
)

// RiskBucket derives a display level from a 0-100 fraud score.
func RiskBucket(score int) RiskLevel {
	switch {
	case score < riskMediumFrom:
		return RiskLevelLow
	case score < riskHighFrom:
		return RiskLevelMedium
	default:
		return RiskLevelHigh
	}
}

// EffectiveRiskLevel resolves the level shown to the user. A level supplied
// by the marketplace is authoritative; the score-derived bucket is only a
// fallback when the level is absent. Returns RiskLevelNone when neither is
// present.
func EffectiveRiskLevel(score *int, level RiskLevel) RiskLevel {
	if level != RiskLevelNone {
		return level
	}
	if score == nil {
		return RiskLevelNone
	}
	return RiskBucket(*score)
}

// platformFeePercent is the marketplace cut previewed on fund release.
var platformFeePercent = decimal.MustNew(3, 0)

// PayoutPreview splits price into the seller payout and the 3% platform fee
// the marketplace withholds on release. Display only; the remote ledger is
// authoritative.
func PayoutPreview(price decimal.Decimal) (payout, fee decimal.Decimal, err error) {
	hundred := decimal.MustNew(100, 0)

	fee, err = price.Mul(platformFeePercent)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	fee, err = fee.Quo(hundred)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	payout, err = price.Sub(fee)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	return payout, fee, nil
}
