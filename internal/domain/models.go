package domain

import "github.com/shopspring/decimal"

// Wire shapes of the remote REST API. Money fields arrive as JSON strings
// ("12.50") and are kept as decimals end to end.

type Category struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type MenuItem struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Featured bool            `json:"featured"`
	Category int             `json:"category"`
	Image    string          `json:"image"`
}

// CartLine mirrors one row of the server-side cart. Quantity never drops
// below 1 through the quantity controls; removal is a separate operation.
type CartLine struct {
	MenuItem  MenuItem        `json:"menuitem"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Price     decimal.Decimal `json:"price"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	MenuItem int             `json:"menuitem"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type Order struct {
	ID           int             `json:"id"`
	Date         string          `json:"date"`
	Status       OrderStatus     `json:"status"`
	Total        decimal.Decimal `json:"total"`
	DeliveryCrew *int            `json:"delivery_crew"`
	Items        []OrderItem     `json:"orderitem"`
}

// OrderReceipt is the order-creation response: the stored order plus the
// pricing the server settled on, including the bonus balance after earning
// and redemption.
type OrderReceipt struct {
	ID              int             `json:"id"`
	Date            string          `json:"date"`
	Status          OrderStatus     `json:"status"`
	Total           decimal.Decimal `json:"total"`
	TotalAfterBonus decimal.Decimal `json:"total_after_bonus"`
	BonusUsed       decimal.Decimal `json:"bonus_used"`
	BonusEarned     decimal.Decimal `json:"bonus_earned"`
	Tip             decimal.Decimal `json:"tip"`
}

type Reservation struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	PhoneNumber    string `json:"phone_number"`
	NumberOfGuests int    `json:"number_of_guests"`
	Message        string `json:"message"`
}

type ReviewUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type Review struct {
	ID        int        `json:"id"`
	User      ReviewUser `json:"user"`
	MenuItem  int        `json:"menu_item"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	CreatedAt string     `json:"created_at"`
}

type UserProfile struct {
	ID          int             `json:"id"`
	Username    string          `json:"username"`
	Groups      []int           `json:"groups"`
	IsStaff     bool            `json:"is_staff"`
	BonusEarned decimal.Decimal `json:"bonus_earned"`
}

// CrewMember is one entry of the delivery-crew user listing.
type CrewMember struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Page carries the pagination metadata of a listing response.
type Page struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}
