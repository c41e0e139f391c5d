package service

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"

	"rms-web/internal/backend"
	"rms-web/internal/domain"
	"rms-web/internal/listing"
)

// Narrow views of the backend client, one per service, so tests can mock
// exactly what each service touches.

type AuthBackend interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password string) error
	Me(ctx context.Context, token string) (domain.UserProfile, error)
}

type MenuBackend interface {
	Categories(ctx context.Context) ([]domain.Category, domain.Page, error)
	MenuItems(ctx context.Context, q listing.Query) ([]domain.MenuItem, domain.Page, error)
	MenuItem(ctx context.Context, id int) (domain.MenuItem, error)
	Reviews(ctx context.Context, menuItemID int) ([]domain.Review, domain.Page, error)
	CreateReview(ctx context.Context, token string, menuItemID, rating int, comment string) (domain.Review, error)
}

type CartBackend interface {
	CartItems(ctx context.Context, token string) ([]domain.CartLine, error)
	AddCartItem(ctx context.Context, token string, menuItemID, quantity int) error
	RemoveCartItem(ctx context.Context, token string, menuItemID int) error
	ClearCart(ctx context.Context, token string) error
	CreateOrder(ctx context.Context, token string, bonusUsed, tip decimal.Decimal) (domain.OrderReceipt, error)
	Me(ctx context.Context, token string) (domain.UserProfile, error)
}

type OrderBackend interface {
	Orders(ctx context.Context, token string) ([]domain.Order, domain.Page, error)
	Order(ctx context.Context, token string, id int) (domain.Order, error)
	UpdateOrder(ctx context.Context, token string, id int, update backend.OrderUpdate) (domain.Order, error)
	DeliveryCrew(ctx context.Context, token string) ([]domain.CrewMember, error)
	Me(ctx context.Context, token string) (domain.UserProfile, error)
}

type ReservationBackend interface {
	Reservations(ctx context.Context, token string) ([]domain.Reservation, error)
	CreateReservation(ctx context.Context, token string, reservation domain.Reservation) (domain.Reservation, error)
}

// ListingCache is the redis-backed cache for menu and category listings.
type ListingCache interface {
	MenuKey(values url.Values) string
	CategoriesKey() string
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
}

// OrderPublisher emits order-placed events after checkout.
type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

// Screen-facing service contracts consumed by the HTTP handlers.

type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password string) error
	Profile(ctx context.Context, token string) (ProfileView, error)
}

type MenuServiceInterface interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Browse(ctx context.Context, q listing.Query) (MenuPage, error)
	Item(ctx context.Context, id int) (ItemView, error)
	SubmitReview(ctx context.Context, token string, menuItemID, rating int, comment string) (domain.Review, error)
}

type CartServiceInterface interface {
	View(ctx context.Context, token string, opts QuoteOptions) (CartView, error)
	Add(ctx context.Context, token string, menuItemID, quantity int) error
	ChangeQuantity(ctx context.Context, token string, menuItemID, delta int) (CartView, error)
	Remove(ctx context.Context, token string, menuItemID int) error
	Clear(ctx context.Context, token string) error
	Checkout(ctx context.Context, token string, bonusUsed, tip decimal.Decimal) (domain.OrderReceipt, error)
}

type OrderServiceInterface interface {
	List(ctx context.Context, token string) ([]domain.Order, error)
	Get(ctx context.Context, token string, id int) (domain.Order, error)
	Update(ctx context.Context, token string, id int, update backend.OrderUpdate) (domain.Order, error)
	Crew(ctx context.Context, token string) ([]domain.CrewMember, error)
}

type ReservationServiceInterface interface {
	List(ctx context.Context, token string) ([]domain.Reservation, error)
	Create(ctx context.Context, token string, reservation domain.Reservation) (domain.Reservation, error)
}
