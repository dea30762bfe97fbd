package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/meal"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMealRepository is a mock implementation of ports.MealRepository.
type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) Get(ctx context.Context, area string, mealID string) (*meal.Meal, error) {
	args := m.Called(ctx, area, mealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meal.Meal), args.Error(1)
}

// MockOrderRepository is a mock implementation of ports.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, area string, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, area, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

// MockOrderUoW is a mock implementation of commands.OrderUoW.
type MockOrderUoW struct {
	mock.Mock
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) MealRepository() ports.MealRepository {
	args := m.Called()
	return args.Get(0).(ports.MealRepository)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

// MockOrderUoWFactory is a mock implementation of commands.OrderUoWFactory.
type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func newTestServer(uowFactory commands.OrderUoWFactory) *httpadapter.Server {
	return httpadapter.NewServer(
		commands.NewSubmitOrderCommandHandler(uowFactory),
		queries.GetMealsByAreaQueryHandler{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func doRequest(method, target, body string, handler func(echo.Context) error) *httptest.ResponseRecorder {
	e := echo.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	_ = handler(e.NewContext(req, rec))
	return rec
}

func Test_SubmitOrder_InvalidJSON_Returns400(t *testing.T) {
	server := newTestServer(new(MockOrderUoWFactory))

	rec := doRequest(http.MethodPost, "/api/v1/orders", `{not json`, server.SubmitOrder)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Invalid JSON body"}`, rec.Body.String())
}

func Test_SubmitOrder_MissingFields_Returns400(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "missing area", body: `{"address": "1 Main St", "items": [{"mealId": "M1", "qty": 1}]}`},
		{name: "missing address", body: `{"area": "downtown", "items": [{"mealId": "M1", "qty": 1}]}`},
		{name: "missing items", body: `{"area": "downtown", "address": "1 Main St"}`},
		{name: "empty items", body: `{"area": "downtown", "address": "1 Main St", "items": []}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newTestServer(new(MockOrderUoWFactory))

			rec := doRequest(http.MethodPost, "/api/v1/orders", tc.body, server.SubmitOrder)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error": "Missing or invalid fields: area, address, items[]"}`, rec.Body.String())
		})
	}
}

func Test_SubmitOrder_UnknownMeal_Returns500Processing(t *testing.T) {
	mealRepo := new(MockMealRepository)
	mealRepo.On("Get", mock.Anything, "downtown", "M404").
		Return(nil, errs.NewObjectNotFoundError("meal", "M404"))

	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("MealRepository").Return(mealRepo)
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	server := newTestServer(factory)

	body := `{"area": "downtown", "address": "1 Main St", "items": [{"mealId": "M404", "qty": 1}]}`
	rec := doRequest(http.MethodPost, "/api/v1/orders", body, server.SubmitOrder)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Error processing order items"}`, rec.Body.String())

	mealRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func Test_SubmitOrder_WriteFailure_Returns500Saving(t *testing.T) {
	testMeal, err := meal.NewMeal(
		"downtown", "M1", "Luigi's", "Margherita", "",
		20, decimal.RequireFromString("9.90"),
	)
	require.NoError(t, err)

	mealRepo := new(MockMealRepository)
	mealRepo.On("Get", mock.Anything, "downtown", "M1").Return(testMeal, nil)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errors.New("connection reset"))

	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("MealRepository").Return(mealRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	server := newTestServer(factory)

	body := `{"area": "downtown", "address": "1 Main St", "items": [{"mealId": "M1", "qty": 1}]}`
	rec := doRequest(http.MethodPost, "/api/v1/orders", body, server.SubmitOrder)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Error saving order"}`, rec.Body.String())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func Test_SubmitOrder_ValidOrder_Returns200WithTotals(t *testing.T) {
	testMeal, err := meal.NewMeal(
		"downtown", "M1", "Luigi's", "Margherita", "",
		20, decimal.RequireFromString("9.90"),
	)
	require.NoError(t, err)

	mealRepo := new(MockMealRepository)
	mealRepo.On("Get", mock.Anything, "downtown", "M1").Return(testMeal, nil)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil)

	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("MealRepository").Return(mealRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	server := newTestServer(factory)

	body := `{"area": "downtown", "address": "1 Main St", "items": [{"mealId": "M1", "qty": 3}]}`
	rec := doRequest(http.MethodPost, "/api/v1/orders", body, server.SubmitOrder)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		OrderID            string          `json:"orderId"`
		TotalCost          decimal.Decimal `json:"totalCost"`
		EstDeliveryMinutes int             `json:"estDeliveryMinutes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	_, err = kernel.UUIDFromString(response.OrderID)
	assert.NoError(t, err, "orderId must be a well-formed UUID")
	assert.True(t, decimal.RequireFromString("29.70").Equal(response.TotalCost))
	// 20 minutes prep for three meals plus pickup and delivery overhead
	assert.Equal(t, 85, response.EstDeliveryMinutes)

	mealRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func Test_GetMealsByArea_MissingArea_Returns400(t *testing.T) {
	testCases := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "GET without area", method: http.MethodGet, target: "/api/v1/meals"},
		{name: "GET with empty area", method: http.MethodGet, target: "/api/v1/meals?area="},
		{name: "POST without body", method: http.MethodPost, target: "/api/v1/meals"},
		{name: "POST with empty area field", method: http.MethodPost, target: "/api/v1/meals", body: `{"area": ""}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newTestServer(new(MockOrderUoWFactory))

			rec := doRequest(tc.method, tc.target, tc.body, server.GetMealsByArea)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error": "Missing 'area' parameter"}`, rec.Body.String())
		})
	}
}
