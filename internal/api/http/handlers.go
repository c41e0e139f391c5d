package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"

	"rms-web/internal/backend"
	"rms-web/internal/cart"
	"rms-web/internal/domain"
	"rms-web/internal/listing"
	"rms-web/internal/service"
	"rms-web/internal/session"
)

// Handler wires the screens to their services. TrackingURL is the public
// base the order QR codes point at; CookieTTL is the login cookie lifetime.
type Handler struct {
	Auth         service.AuthServiceInterface
	Menu         service.MenuServiceInterface
	Cart         service.CartServiceInterface
	Orders       service.OrderServiceInterface
	Reservations service.ReservationServiceInterface

	TrackingURL string
	CookieTTL   time.Duration
}

func (h *Handler) cookieTTL() time.Duration {
	if h.CookieTTL > 0 {
		return h.CookieTTL
	}
	return session.DefaultTTL
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/auth/login", h.login).Methods("POST")
	r.HandleFunc("/auth/logout", h.logout).Methods("POST")
	r.HandleFunc("/auth/register", h.register).Methods("POST")

	r.HandleFunc("/api/profile", h.profile).Methods("GET")
	r.HandleFunc("/api/categories", h.categories).Methods("GET")
	r.HandleFunc("/api/menu", h.browseMenu).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.menuItem).Methods("GET")
	r.HandleFunc("/api/menu/{id}/reviews", h.submitReview).Methods("POST")

	r.HandleFunc("/api/cart", h.viewCart).Methods("GET")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}/quantity", h.changeQuantity).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.updateOrder).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.orderQRCode).Methods("GET")
	r.HandleFunc("/api/delivery-crew", h.deliveryCrew).Methods("GET")

	r.HandleFunc("/api/reservations", h.listReservations).Methods("GET")
	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps failures onto the screens' degraded states: 401 for a
// missing session, the remote status and message forwarded inline for API
// rejections, 502 for network trouble. Nothing here retries.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *backend.APIError

	switch {
	case errors.Is(err, session.ErrNoToken), errors.Is(err, backend.ErrNoToken):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not logged in"})
	case errors.As(err, &apiErr):
		message := apiErr.Body
		if message == "" {
			message = http.StatusText(apiErr.StatusCode)
		}
		writeJSON(w, apiErr.StatusCode, map[string]string{"error": message})
	case errors.Is(err, service.ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, cart.ErrLineBusy):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, cart.ErrMinQuantity), errors.Is(err, cart.ErrUnknownLine),
		errors.Is(err, service.ErrBadStatus), errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrBadReservation):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		log.Printf("[web] upstream failure: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "service unavailable"})
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "rms-web",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	token, err := h.Auth.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "login failed, check your username or password"})
			return
		}
		writeError(w, err)
		return
	}

	session.Write(w, token, h.cookieTTL())
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged in"})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	session.Clear(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var form struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Auth.Register(r.Context(), form.Username, form.Email, form.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "account created"})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}

	view, err := h.Auth.Profile(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menu.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// queryFromRequest rebuilds the listing filter state from the screen's
// query parameters.
func queryFromRequest(r *http.Request) listing.Query {
	params := r.URL.Query()
	q := listing.Query{
		CategoryTitle: params.Get("category_title"),
		Search:        params.Get("search"),
		PriceMin:      params.Get("price_min"),
		PriceMax:      params.Get("price_max"),
		Ordering:      params.Get("ordering"),
	}
	if id, err := strconv.Atoi(params.Get("category")); err == nil {
		q.Category = id
	}
	if page, err := strconv.Atoi(params.Get("page")); err == nil {
		q.SetPage(page)
	} else {
		q.Page = 1
	}
	return q
}

func (h *Handler) browseMenu(w http.ResponseWriter, r *http.Request) {
	page, err := h.Menu.Browse(r.Context(), queryFromRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) menuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item id"})
		return
	}

	view, err := h.Menu.Item(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item id"})
		return
	}

	var form struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if form.Rating < 1 || form.Rating > 5 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "rating must be between 1 and 5"})
		return
	}

	review, err := h.Menu.SubmitReview(r.Context(), token, id, form.Rating, form.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

// quoteOptions reads the checkout inputs from query parameters; malformed
// numbers fall back to zero, matching an empty input field.
func quoteOptions(r *http.Request) service.QuoteOptions {
	params := r.URL.Query()
	opts := service.QuoteOptions{}
	if bonus, err := decimal.NewFromString(params.Get("bonus")); err == nil {
		opts.Bonus = bonus
	}
	if tip, err := decimal.NewFromString(params.Get("tip")); err == nil {
		opts.Tip = tip
	}
	opts.UseAllBonus = params.Get("all_bonus") == "1" || params.Get("all_bonus") == "true"
	return opts
}

func (h *Handler) viewCart(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}

	view, err := h.Cart.View(r.Context(), token, quoteOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var form struct {
		MenuItemID int `json:"menuitem_id"`
		Quantity   int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Cart.Add(r.Context(), token, form.MenuItemID, form.Quantity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "item added to cart"})
}

func (h *Handler) changeQuantity(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item id"})
		return
	}

	var form struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if form.Delta != 1 && form.Delta != -1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "delta must be +1 or -1"})
		return
	}

	view, err := h.Cart.ChangeQuantity(r.Context(), token, id, form.Delta)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item id"})
		return
	}

	if err := h.Cart.Remove(r.Context(), token, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "item removed"})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Cart.Clear(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "cart cleared"})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}

	// An empty body is the plain "order everything" flow: no bonus, no tip.
	var form struct {
		BonusUsed decimal.Decimal `json:"bonus_used"`
		Tip       decimal.Decimal `json:"tip"`
	}
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
			return
		}
	}

	receipt, err := h.Cart.Checkout(r.Context(), token, form.BonusUsed, form.Tip)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}

	orders, err := h.Orders.List(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order id"})
		return
	}

	order, err := h.Orders.Get(r.Context(), token, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order id"})
		return
	}

	var update backend.OrderUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	order, err := h.Orders.Update(r.Context(), token, id, update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// orderQRCode renders a PNG linking to the order tracking view, so a printed
// receipt can carry the link.
func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order id"})
		return
	}

	// Only orders visible to this session get a code.
	if _, err := h.Orders.Get(r.Context(), token, id); err != nil {
		writeError(w, err)
		return
	}

	png, err := qrcode.Encode(h.TrackingURL+"/orders/"+strconv.Itoa(id), qrcode.Medium, 256)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate QR code"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) deliveryCrew(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}

	crew, err := h.Orders.Crew(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, crew)
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}

	reservations, err := h.Reservations.List(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	token, err := session.Token(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var reservation domain.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	created, err := h.Reservations.Create(r.Context(), token, reservation)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
