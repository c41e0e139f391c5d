package pricing

import (
	"github.com/shopspring/decimal"

	"rms-web/internal/domain"
)

// Subtotal sums unit price times quantity over the cart lines.
func Subtotal(lines []domain.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// MaxBonus is the redemption cap: the smaller of the earned balance and the
// subtotal. Never negative.
func MaxBonus(bonusEarned, subtotal decimal.Decimal) decimal.Decimal {
	limit := decimal.Min(bonusEarned, subtotal)
	if limit.IsNegative() {
		return decimal.Zero
	}
	return limit
}

// ClampBonus forces a requested redemption into [0, MaxBonus]. Typing a value
// above the cap silently lands on the cap.
func ClampBonus(requested, bonusEarned, subtotal decimal.Decimal) decimal.Decimal {
	if requested.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(requested, MaxBonus(bonusEarned, subtotal))
}

// Total computes the order total: subtotal plus tip minus redeemed bonus,
// floored at zero.
func Total(subtotal, tip, bonusUsed decimal.Decimal) decimal.Decimal {
	total := subtotal.Add(tip).Sub(bonusUsed)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Quote is the checkout summary for one cart snapshot. Edits to the bonus and
// tip fields go through the setters so the invariants hold after every edit.
type Quote struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	BonusEarned decimal.Decimal `json:"bonus_earned"`
	BonusUsed   decimal.Decimal `json:"bonus_used"`
	Tip         decimal.Decimal `json:"tip"`
}

func NewQuote(lines []domain.CartLine, bonusEarned decimal.Decimal) Quote {
	return Quote{
		Subtotal:    Subtotal(lines),
		BonusEarned: bonusEarned,
	}
}

// SetBonus applies a user edit of the redemption amount, clamped to the cap.
func (q *Quote) SetBonus(requested decimal.Decimal) {
	q.BonusUsed = ClampBonus(requested, q.BonusEarned, q.Subtotal)
}

// ToggleAllBonus flips between redeeming the full cap and redeeming nothing.
func (q *Quote) ToggleAllBonus() {
	if q.BonusUsed.IsZero() {
		q.BonusUsed = MaxBonus(q.BonusEarned, q.Subtotal)
		return
	}
	q.BonusUsed = decimal.Zero
}

// SetTip applies a tip edit; negative input lands on zero.
func (q *Quote) SetTip(tip decimal.Decimal) {
	if tip.IsNegative() {
		tip = decimal.Zero
	}
	q.Tip = tip
}

func (q Quote) Total() decimal.Decimal {
	return Total(q.Subtotal, q.Tip, q.BonusUsed)
}
