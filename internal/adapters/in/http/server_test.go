package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapterhttp "darkstore/internal/adapters/in/http"
	"darkstore/internal/adapters/out/auth"
	"darkstore/internal/adapters/out/kv/orderrepo"
	"darkstore/internal/adapters/out/kv/productrepo"
	"darkstore/internal/adapters/out/kv/supportrepo"
	"darkstore/internal/adapters/out/kv/userrepo"
	"darkstore/internal/adapters/out/memory/kvstore"
	"darkstore/internal/core/application/usecases/commands"
	"darkstore/internal/core/application/usecases/queries"
	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/user"
	"darkstore/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end tests over the full wiring: echo routes, auth middleware, real
// repositories on the in-memory store, and the static gateway where the
// bearer token is the user ID.

type testEnv struct {
	echo  *echo.Echo
	users *userrepo.Repository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := kvstore.NewStore()
	orders := orderrepo.NewRepository(store)
	products := productrepo.NewRepository(store)
	users := userrepo.NewRepository(store)
	supportRepo := supportrepo.NewRepository(store)

	calculator, err := services.NewDarkstoreETACalculator()
	require.NoError(t, err)

	server := adapterhttp.NewServer(adapterhttp.ServerParams{
		Gateway: auth.NewStaticGateway(),
		Users:   users,

		CreateOrder:   commands.NewCreateOrderCommandHandler(orders, calculator),
		ClaimOrder:    commands.NewClaimOrderCommandHandler(orders),
		CompleteOrder: commands.NewCompleteOrderCommandHandler(orders),
		CancelOrder:   commands.NewCancelOrderCommandHandler(orders),

		CreateProduct: commands.NewCreateProductCommandHandler(products),
		UpdateProduct: commands.NewUpdateProductCommandHandler(products),
		DeleteProduct: commands.NewDeleteProductCommandHandler(products),

		RegisterUser:   commands.NewRegisterUserCommandHandler(users),
		UpdateProfile:  commands.NewUpdateProfileCommandHandler(users),
		SubmitFeedback: commands.NewSubmitFeedbackCommandHandler(supportRepo),
		ReportBug:      commands.NewReportBugCommandHandler(supportRepo),

		GetCustomerOrders: queries.NewGetCustomerOrdersQueryHandler(orders),
		GetAllOrders:      queries.NewGetAllOrdersQueryHandler(orders),
		GetProducts:       queries.NewGetProductsQueryHandler(products),
		GetProfile:        queries.NewGetProfileQueryHandler(users),
		GetAnalytics:      queries.NewGetAnalyticsQueryHandler(orders, users),
		GetBugReports:     queries.NewGetBugReportsQueryHandler(supportRepo),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	return &testEnv{echo: e, users: users}
}

// seedUser stores a profile directly and returns the token that resolves to
// it through the static gateway.
func (env *testEnv) seedUser(t *testing.T, role user.Role) string {
	t.Helper()

	id := kernel.NewUUID()
	profile, err := user.NewUser(id, fmt.Sprintf("%s@example.com", id.String()[:8]), "Test User", role, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, env.users.Add(context.Background(), profile))

	return id.String()
}

func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &value))
	return value
}

func (env *testEnv) placeOrder(t *testing.T, consumerToken string) adapterhttp.CreateOrderResponse {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/orders", consumerToken, map[string]any{
		"items": []map[string]any{
			{"productId": kernel.NewUUID().String(), "price": 30, "quantity": 2},
			{"productId": kernel.NewUUID().String(), "price": 50, "quantity": 1},
		},
		"address":   "14 Lajpat Nagar",
		"latitude":  28.63,
		"longitude": 77.22,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	return decode[adapterhttp.CreateOrderResponse](t, rec)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthentication(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/profile", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "unauthorized", decode[adapterhttp.ErrorResponse](t, rec).Code)
	})

	t.Run("token without profile", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/profile", kernel.NewUUID().String(), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/profile", "not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestSignupAndProfile(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/signup", "", map[string]any{
		"email": "rhea@example.com",
		"name":  "Rhea",
		"role":  "consumer",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[adapterhttp.ProfileResponse](t, rec)
	assert.Equal(t, "rhea@example.com", created.Email)
	assert.Equal(t, "consumer", created.Role)

	// With the static gateway the returned ID doubles as the token.
	rec = env.do(t, http.MethodGet, "/profile", created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decode[adapterhttp.ProfileResponse](t, rec).ID)

	rec = env.do(t, http.MethodPut, "/profile", created.ID, map[string]any{"name": "Rhea K"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rhea K", decode[adapterhttp.ProfileResponse](t, rec).Name)
}

func TestSignup_RejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/signup", "", map[string]any{
		"email": "x@example.com",
		"name":  "X",
		"role":  "superuser",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_failed", decode[adapterhttp.ErrorResponse](t, rec).Code)
}

func TestProductLifecycle(t *testing.T) {
	env := newTestEnv(t)
	manager := env.seedUser(t, user.Manager)
	consumer := env.seedUser(t, user.Consumer)

	body := map[string]any{
		"name": "Whole Milk 1L", "description": "Full cream",
		"price": 55.0, "category": "dairy", "image": "", "stock": 40,
	}

	t.Run("consumer cannot manage catalog", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/products", consumer, body)
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "forbidden", decode[adapterhttp.ErrorResponse](t, rec).Code)
	})

	rec := env.do(t, http.MethodPost, "/products", manager, body)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[adapterhttp.ProductResponse](t, rec)
	assert.Equal(t, "Whole Milk 1L", created.Name)

	t.Run("anyone authenticated can browse", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/products", consumer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]adapterhttp.ProductResponse](t, rec), 1)
	})

	rec = env.do(t, http.MethodPut, "/products/"+created.ID, manager, map[string]any{
		"name": "Whole Milk 1L", "price": 58.0, "category": "dairy", "stock": 35,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 58.0, decode[adapterhttp.ProductResponse](t, rec).Price)

	rec = env.do(t, http.MethodDelete, "/products/"+created.ID, manager, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/products", consumer, nil)
	assert.Len(t, decode[[]adapterhttp.ProductResponse](t, rec), 0)
}

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)
	consumer := env.seedUser(t, user.Consumer)

	created := env.placeOrder(t, consumer)

	assert.Equal(t, 110.0, created.Order.Total)
	assert.Equal(t, "pending", created.Order.Status)
	assert.Len(t, created.Otp, 6)
	assert.Positive(t, created.Order.EtaMinutes)

	t.Run("listing own orders never exposes the code", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/orders", consumer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), created.Otp)
	})
}

func TestCreateOrder_ClientTotal(t *testing.T) {
	env := newTestEnv(t)
	consumer := env.seedUser(t, user.Consumer)

	body := func(total float64) map[string]any {
		return map[string]any{
			"items": []map[string]any{
				{"productId": kernel.NewUUID().String(), "price": 30, "quantity": 2},
			},
			"total":     total,
			"address":   "14 Lajpat Nagar",
			"latitude":  28.63,
			"longitude": 77.22,
		}
	}

	rec := env.do(t, http.MethodPost, "/orders", consumer, body(60))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/orders", consumer, body(999))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_failed", decode[adapterhttp.ErrorResponse](t, rec).Code)
}

func TestCreateOrder_RoleGate(t *testing.T) {
	env := newTestEnv(t)
	agent := env.seedUser(t, user.DeliveryPartner)

	rec := env.do(t, http.MethodPost, "/orders", agent, map[string]any{
		"items":     []map[string]any{{"productId": kernel.NewUUID().String(), "price": 30, "quantity": 1}},
		"address":   "14 Lajpat Nagar",
		"latitude":  28.63,
		"longitude": 77.22,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOrderVisibility(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, user.Consumer)
	bob := env.seedUser(t, user.Consumer)
	agent := env.seedUser(t, user.DeliveryPartner)

	env.placeOrder(t, alice)
	env.placeOrder(t, bob)

	t.Run("consumers see only their own", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/orders", alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]adapterhttp.OrderResponse](t, rec), 1)
	})

	t.Run("agents see the full backlog", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/orders/all", agent, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]adapterhttp.OrderResponse](t, rec), 2)
	})

	t.Run("consumers cannot read the backlog", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/orders/all", alice, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("agents cannot use the consumer listing", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/orders", agent, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestClaimOrder(t *testing.T) {
	env := newTestEnv(t)
	consumer := env.seedUser(t, user.Consumer)
	agent := env.seedUser(t, user.DeliveryPartner)
	rival := env.seedUser(t, user.DeliveryPartner)

	created := env.placeOrder(t, consumer)
	claim := map[string]any{"status": "on_the_way"}

	rec := env.do(t, http.MethodPut, "/orders/"+created.Order.ID, agent, claim)
	require.Equal(t, http.StatusOK, rec.Code)
	claimed := decode[adapterhttp.OrderResponse](t, rec)
	assert.Equal(t, "on_the_way", claimed.Status)
	require.NotNil(t, claimed.AgentID)

	t.Run("second claim conflicts", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/orders/"+created.Order.ID, rival, claim)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "invalid_state", decode[adapterhttp.ErrorResponse](t, rec).Code)
	})

	t.Run("consumer cannot claim", func(t *testing.T) {
		other := env.placeOrder(t, consumer)
		rec := env.do(t, http.MethodPut, "/orders/"+other.Order.ID, consumer, claim)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown order", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/orders/"+kernel.NewUUID().String(), agent, claim)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unsupported status", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/orders/"+created.Order.ID, agent, map[string]any{"status": "delivered"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVerifyOtp(t *testing.T) {
	env := newTestEnv(t)
	consumer := env.seedUser(t, user.Consumer)
	agent := env.seedUser(t, user.DeliveryPartner)
	rival := env.seedUser(t, user.DeliveryPartner)

	created := env.placeOrder(t, consumer)
	path := "/orders/" + created.Order.ID + "/verify-otp"

	t.Run("pending order cannot be verified", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, path, agent, map[string]any{"otp": created.Otp})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	rec := env.do(t, http.MethodPut, "/orders/"+created.Order.ID, agent, map[string]any{"status": "on_the_way"})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("wrong code", func(t *testing.T) {
		wrong := "000000"
		if created.Otp == wrong {
			wrong = "000001"
		}
		rec := env.do(t, http.MethodPost, path, agent, map[string]any{"otp": wrong})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "otp_mismatch", decode[adapterhttp.ErrorResponse](t, rec).Code)
	})

	t.Run("another agent cannot complete", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, path, rival, map[string]any{"otp": created.Otp})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	rec = env.do(t, http.MethodPost, path, agent, map[string]any{"otp": created.Otp})
	require.Equal(t, http.StatusOK, rec.Code)
	delivered := decode[adapterhttp.OrderResponse](t, rec)
	assert.Equal(t, "delivered", delivered.Status)
	assert.NotNil(t, delivered.DeliveredAt)

	t.Run("repeat verification conflicts", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, path, agent, map[string]any{"otp": created.Otp})
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "invalid_state", decode[adapterhttp.ErrorResponse](t, rec).Code)
	})
}

func TestVerifyOtp_AttemptsExceeded(t *testing.T) {
	env := newTestEnv(t)
	consumer := env.seedUser(t, user.Consumer)
	agent := env.seedUser(t, user.DeliveryPartner)

	created := env.placeOrder(t, consumer)
	path := "/orders/" + created.Order.ID + "/verify-otp"

	rec := env.do(t, http.MethodPut, "/orders/"+created.Order.ID, agent, map[string]any{"status": "on_the_way"})
	require.Equal(t, http.StatusOK, rec.Code)

	wrong := "000000"
	if created.Otp == wrong {
		wrong = "000001"
	}
	for range 5 {
		rec := env.do(t, http.MethodPost, path, agent, map[string]any{"otp": wrong})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}

	// Even the right code is refused once the attempt budget is spent.
	rec = env.do(t, http.MethodPost, path, agent, map[string]any{"otp": created.Otp})
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "otp_attempts_exceeded", decode[adapterhttp.ErrorResponse](t, rec).Code)
}

func TestCancelOrder(t *testing.T) {
	env := newTestEnv(t)
	consumer := env.seedUser(t, user.Consumer)
	agent := env.seedUser(t, user.DeliveryPartner)
	manager := env.seedUser(t, user.Manager)

	created := env.placeOrder(t, consumer)
	cancel := map[string]any{"status": "cancelled", "cancellationReason": "out of stock"}

	t.Run("agents cannot cancel", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/orders/"+created.Order.ID, agent, cancel)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("reason is required", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/orders/"+created.Order.ID, manager, map[string]any{"status": "cancelled"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	rec := env.do(t, http.MethodPut, "/orders/"+created.Order.ID, manager, cancel)
	require.Equal(t, http.StatusOK, rec.Code)
	cancelled := decode[adapterhttp.OrderResponse](t, rec)
	assert.Equal(t, "cancelled", cancelled.Status)
	assert.Equal(t, "out of stock", cancelled.CancellationReason)

	t.Run("cancelled order cannot be claimed", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/orders/"+created.Order.ID, agent, map[string]any{"status": "on_the_way"})
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "invalid_state", decode[adapterhttp.ErrorResponse](t, rec).Code)
	})
}

func TestSupportEndpoints(t *testing.T) {
	env := newTestEnv(t)
	consumer := env.seedUser(t, user.Consumer)
	manager := env.seedUser(t, user.Manager)

	rec := env.do(t, http.MethodPost, "/feedback", consumer, map[string]any{"rating": 5, "comment": "fast"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 5, decode[adapterhttp.FeedbackResponse](t, rec).Rating)

	rec = env.do(t, http.MethodPost, "/feedback", consumer, map[string]any{"rating": 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/bugs", consumer, map[string]any{
		"title": "eta shows zero", "description": "after claiming",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "open", decode[adapterhttp.BugReportResponse](t, rec).Status)

	t.Run("only managers read reports", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/bugs", consumer, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = env.do(t, http.MethodGet, "/bugs", manager, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]adapterhttp.BugReportResponse](t, rec), 1)
	})
}

func TestAnalytics(t *testing.T) {
	env := newTestEnv(t)
	consumer := env.seedUser(t, user.Consumer)
	agent := env.seedUser(t, user.DeliveryPartner)
	manager := env.seedUser(t, user.Manager)

	first := env.placeOrder(t, consumer)
	env.placeOrder(t, consumer)

	rec := env.do(t, http.MethodPut, "/orders/"+first.Order.ID, agent, map[string]any{"status": "on_the_way"})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("agents cannot read analytics", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/analytics", agent, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	rec = env.do(t, http.MethodGet, "/analytics", manager, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rollup := decode[adapterhttp.AnalyticsResponse](t, rec)
	assert.Equal(t, 2, rollup.TotalOrders)
	assert.Equal(t, 220.0, rollup.TotalRevenue)
	assert.Equal(t, 1, rollup.PendingOrders)
	assert.Equal(t, 1, rollup.OnTheWayOrders)
	assert.Equal(t, 1, rollup.TotalCustomers)
}
