package service

import (
	"github.com/shopspring/decimal"

	"rms-web/internal/domain"
	"rms-web/internal/listing"
	"rms-web/internal/pricing"
)

// ProfileView is the profile screen payload: the raw profile plus the
// resolved role and whether administrative controls render.
type ProfileView struct {
	Profile         domain.UserProfile `json:"profile"`
	Role            domain.Role        `json:"role"`
	CanManageOrders bool               `json:"can_manage_orders"`
}

// MenuPage is one page of the menu listing screen.
type MenuPage struct {
	Items      []domain.MenuItem  `json:"items"`
	Pagination listing.Pagination `json:"pagination"`
}

// ItemView is the single-item screen: the item plus its reviews.
type ItemView struct {
	Item    domain.MenuItem `json:"item"`
	Reviews []domain.Review `json:"reviews"`
}

// QuoteOptions are the user's checkout inputs as last edited.
type QuoteOptions struct {
	Bonus       decimal.Decimal
	Tip         decimal.Decimal
	UseAllBonus bool
}

// CartView is the cart screen: the mirrored lines, which of them have edits
// in flight, and the priced quote for the current bonus/tip inputs.
type CartView struct {
	Lines     []domain.CartLine `json:"lines"`
	BusyLines []int             `json:"busy_lines"`
	Quote     pricing.Quote     `json:"quote"`
	Total     decimal.Decimal   `json:"total"`
}
