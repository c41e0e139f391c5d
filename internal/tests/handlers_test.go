package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "rms-web/internal/api/http"
	"rms-web/internal/backend"
	"rms-web/internal/cart"
	"rms-web/internal/domain"
	"rms-web/internal/listing"
	"rms-web/internal/mocks"
	"rms-web/internal/service"
	"rms-web/internal/session"
)

type testMocks struct {
	auth         *mocks.AuthServiceInterface
	menu         *mocks.MenuServiceInterface
	cart         *mocks.CartServiceInterface
	orders       *mocks.OrderServiceInterface
	reservations *mocks.ReservationServiceInterface
}

func setupTestRouter(t *testing.T) (*mux.Router, testMocks) {
	m := testMocks{
		auth:         mocks.NewAuthServiceInterface(t),
		menu:         mocks.NewMenuServiceInterface(t),
		cart:         mocks.NewCartServiceInterface(t),
		orders:       mocks.NewOrderServiceInterface(t),
		reservations: mocks.NewReservationServiceInterface(t),
	}
	handler := &httpapi.Handler{
		Auth:         m.auth,
		Menu:         m.menu,
		Cart:         m.cart,
		Orders:       m.orders,
		Reservations: m.reservations,
		TrackingURL:  "http://localhost:8080",
	}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, m
}

func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
	return req
}

func TestHandler_healthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]any
	json.NewDecoder(recorder.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "rms-web", body["service"])
}

func TestHandler_login(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(m testMocks)
		expectedCode int
		expectCookie bool
	}{
		{
			name:    "success_sets_cookie",
			payload: `{"username":"maria","password":"secret"}`,
			prepareMocks: func(m testMocks) {
				m.auth.On("Login", mock.Anything, "maria", "secret").
					Return("tok123", nil).Once()
			},
			expectedCode: http.StatusOK,
			expectCookie: true,
		},
		{
			name:    "bad_credentials",
			payload: `{"username":"maria","password":"wrong"}`,
			prepareMocks: func(m testMocks) {
				m.auth.On("Login", mock.Anything, "maria", "wrong").
					Return("", &backend.APIError{StatusCode: 400, Body: "Unable to log in"}).Once()
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func(m testMocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "upstream_down",
			payload: `{"username":"maria","password":"secret"}`,
			prepareMocks: func(m testMocks) {
				m.auth.On("Login", mock.Anything, "maria", "secret").
					Return("", errors.New("connection refused")).Once()
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.prepareMocks(m)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectCookie {
				cookies := recorder.Result().Cookies()
				assert.Len(t, cookies, 1)
				assert.Equal(t, session.CookieName, cookies[0].Name)
				assert.Equal(t, "tok123", cookies[0].Value)
			}
		})
	}
}

func TestHandler_logout_clearsCookie(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := authedRequest(http.MethodPost, "/auth/logout", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	cookies := recorder.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
}

func TestHandler_profile_requiresSession(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_profile(t *testing.T) {
	router, m := setupTestRouter(t)

	m.auth.On("Profile", mock.Anything, "tok").Return(service.ProfileView{
		Profile:         domain.UserProfile{ID: 7, Username: "maria", Groups: []int{1}},
		Role:            domain.RoleManager,
		CanManageOrders: true,
	}, nil).Once()

	req := authedRequest(http.MethodGet, "/api/profile", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"role":"Manager"`)
	assert.Contains(t, recorder.Body.String(), `"can_manage_orders":true`)
}

func TestHandler_browseMenu(t *testing.T) {
	router, m := setupTestRouter(t)

	m.menu.On("Browse", mock.Anything, mock.MatchedBy(func(q listing.Query) bool {
		return q.Search == "pasta" && q.Page == 2 && q.Category == 3
	})).Return(service.MenuPage{
		Items: []domain.MenuItem{{ID: 1, Title: "Lasagna"}},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/menu?search=pasta&page=2&category=3", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Lasagna")
}

func TestHandler_submitReview(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(m testMocks)
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"rating":5,"comment":"Great!"}`,
			prepareMocks: func(m testMocks) {
				m.menu.On("SubmitReview", mock.Anything, "tok", 5, 5, "Great!").
					Return(domain.Review{ID: 1, Rating: 5}, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "rating_out_of_range",
			payload:      `{"rating":6}`,
			prepareMocks: func(m testMocks) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.prepareMocks(m)

			req := authedRequest(http.MethodPost, "/api/menu/5/reviews", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_viewCart_passesQuoteOptions(t *testing.T) {
	router, m := setupTestRouter(t)

	m.cart.On("View", mock.Anything, "tok", mock.MatchedBy(func(opts service.QuoteOptions) bool {
		return opts.UseAllBonus && opts.Tip.Equal(decimal.NewFromInt(5))
	})).Return(service.CartView{}, nil).Once()

	req := authedRequest(http.MethodGet, "/api/cart?tip=5&all_bonus=1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_changeQuantity(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(m testMocks)
		expectedCode int
	}{
		{
			name:    "increment",
			payload: `{"delta":1}`,
			prepareMocks: func(m testMocks) {
				m.cart.On("ChangeQuantity", mock.Anything, "tok", 3, 1).
					Return(service.CartView{}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "bad_delta",
			payload:      `{"delta":4}`,
			prepareMocks: func(m testMocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "line_busy",
			payload: `{"delta":-1}`,
			prepareMocks: func(m testMocks) {
				m.cart.On("ChangeQuantity", mock.Anything, "tok", 3, -1).
					Return(service.CartView{}, cart.ErrLineBusy).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:    "at_minimum",
			payload: `{"delta":-1}`,
			prepareMocks: func(m testMocks) {
				m.cart.On("ChangeQuantity", mock.Anything, "tok", 3, -1).
					Return(service.CartView{}, cart.ErrMinQuantity).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.prepareMocks(m)

			req := authedRequest(http.MethodPost, "/api/cart/items/3/quantity", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_clearCart(t *testing.T) {
	router, m := setupTestRouter(t)

	m.cart.On("Clear", mock.Anything, "tok").Return(nil).Once()

	req := authedRequest(http.MethodDelete, "/api/cart", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_checkout(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(m testMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "with_bonus_and_tip",
			payload: `{"bonus_used":"20","tip":"5"}`,
			prepareMocks: func(m testMocks) {
				m.cart.On("Checkout", mock.Anything, "tok",
					mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(20)) }),
					mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(5)) }),
				).Return(domain.OrderReceipt{ID: 12, Status: domain.StatusPending}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":12`,
		},
		{
			name:    "empty_body_orders_everything",
			payload: ``,
			prepareMocks: func(m testMocks) {
				m.cart.On("Checkout", mock.Anything, "tok", mock.Anything, mock.Anything).
					Return(domain.OrderReceipt{ID: 13}, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "empty_cart",
			payload: `{}`,
			prepareMocks: func(m testMocks) {
				m.cart.On("Checkout", mock.Anything, "tok", mock.Anything, mock.Anything).
					Return(domain.OrderReceipt{}, service.ErrEmptyCart).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.prepareMocks(m)

			req := authedRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_updateOrder_forbidden(t *testing.T) {
	router, m := setupTestRouter(t)

	m.orders.On("Update", mock.Anything, "tok", 12, mock.Anything).
		Return(domain.Order{}, service.ErrForbidden).Once()

	req := authedRequest(http.MethodPut, "/api/orders/12", bytes.NewBufferString(`{"status":"READY"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestHandler_apiErrorForwarded(t *testing.T) {
	router, m := setupTestRouter(t)

	m.orders.On("Get", mock.Anything, "tok", 404).
		Return(domain.Order{}, &backend.APIError{StatusCode: 404, Body: "order not found"}).Once()

	req := authedRequest(http.MethodGet, "/api/orders/404", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "order not found")
}

func TestHandler_orderQRCode(t *testing.T) {
	router, m := setupTestRouter(t)

	m.orders.On("Get", mock.Anything, "tok", 12).
		Return(domain.Order{ID: 12}, nil).Once()

	req := authedRequest(http.MethodGet, "/api/orders/12/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	assert.NotEmpty(t, recorder.Body.Bytes())
}

func TestHandler_orderQRCode_hiddenOrder(t *testing.T) {
	router, m := setupTestRouter(t)

	m.orders.On("Get", mock.Anything, "tok", 12).
		Return(domain.Order{}, &backend.APIError{StatusCode: 404, Body: "not found"}).Once()

	req := authedRequest(http.MethodGet, "/api/orders/12/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_createReservation(t *testing.T) {
	router, m := setupTestRouter(t)

	expected := domain.Reservation{
		Date:           "2025-06-01",
		Time:           "19:30",
		PhoneNumber:    "+39 055 1234567",
		NumberOfGuests: 4,
	}
	m.reservations.On("Create", mock.Anything, "tok", expected).
		Return(expected, nil).Once()

	payload := `{"date":"2025-06-01","time":"19:30","phone_number":"+39 055 1234567","number_of_guests":4}`
	req := authedRequest(http.MethodPost, "/api/reservations", bytes.NewBufferString(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
}
