package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jordanhale/lapstore-backend/internal/orders"
	"github.com/jordanhale/lapstore-backend/pkg/db/models"
	"github.com/jordanhale/lapstore-backend/pkg/enums"
	pkgerrors "github.com/jordanhale/lapstore-backend/pkg/errors"
)

type stubOrdersService struct {
	order     *models.Order
	list      []models.Order
	stats     *orders.Stats
	err       error
	gotUser   uuid.UUID
	gotActor  orders.Actor
	gotID     uuid.UUID
	gotStatus string
	gotInput  orders.CreateOrderInput
}

func (s *stubOrdersService) Create(_ context.Context, userID uuid.UUID, input orders.CreateOrderInput) (*models.Order, error) {
	s.gotUser, s.gotInput = userID, input
	return s.order, s.err
}

func (s *stubOrdersService) List(_ context.Context, actor orders.Actor) ([]models.Order, error) {
	s.gotActor = actor
	return s.list, s.err
}

func (s *stubOrdersService) ListByStatus(_ context.Context, status string) ([]models.Order, error) {
	s.gotStatus = status
	return s.list, s.err
}

func (s *stubOrdersService) GetByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	s.gotID = id
	return s.order, s.err
}

func (s *stubOrdersService) UpdateStatus(_ context.Context, id uuid.UUID, status string) (*models.Order, error) {
	s.gotID, s.gotStatus = id, status
	return s.order, s.err
}

func (s *stubOrdersService) Delete(_ context.Context, id uuid.UUID) error {
	s.gotID = id
	return s.err
}

func (s *stubOrdersService) Stats(_ context.Context) (*orders.Stats, error) {
	return s.stats, s.err
}

func TestOrdersCreateReturns201(t *testing.T) {
	userID := uuid.New()
	svc := &stubOrdersService{order: &models.Order{ID: uuid.New(), UserID: userID}}
	handler := OrdersCreate(svc, nil)

	body := `{
		"shipping_name": "Dana Buyer",
		"shipping_address": "44 Elm St",
		"shipping_city": "Tulsa",
		"subtotal": "1200",
		"tax": "96",
		"shipping_cost": "25",
		"total_amount": "1321",
		"items": [{"product_id":"` + uuid.NewString() + `","product_name":"ZenBook","unit_price":"600","quantity":2,"total_price":"1200"}]
	}`
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/orders", body, userID, "customer"))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotUser != userID {
		t.Fatalf("expected user %s got %s", userID, svc.gotUser)
	}
	if !svc.gotInput.TotalAmount.Equal(decimal.NewFromInt(1321)) {
		t.Fatalf("total not passed through: %s", svc.gotInput.TotalAmount)
	}
}

func TestOrdersCreateRejectsMissingShipping(t *testing.T) {
	handler := OrdersCreate(&stubOrdersService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/orders", `{"subtotal":"1"}`, uuid.New(), "customer"))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestOrdersListBuildsActorFromContext(t *testing.T) {
	userID := uuid.New()
	svc := &stubOrdersService{list: []models.Order{}}
	handler := OrdersList(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/v1/orders", "", userID, "admin"))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotActor.UserID != userID || svc.gotActor.Role != enums.UserRoleAdmin {
		t.Fatalf("unexpected actor: %+v", svc.gotActor)
	}
}

func TestOrdersGetRejectsMalformedID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/orders/{orderId}", OrdersGet(&stubOrdersService{}, nil))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, authedRequest(http.MethodGet, "/orders/not-a-uuid", "", uuid.New(), "customer"))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestOrdersUpdateStatusPassesThrough(t *testing.T) {
	orderID := uuid.New()
	svc := &stubOrdersService{order: &models.Order{ID: orderID, Status: enums.OrderStatusShipped}}

	r := chi.NewRouter()
	r.Put("/orders/{orderId}/status", OrdersUpdateStatus(svc, nil))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, authedRequest(http.MethodPut, "/orders/"+orderID.String()+"/status", `{"status":"shipped"}`, uuid.New(), "admin"))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotID != orderID || svc.gotStatus != "shipped" {
		t.Fatalf("unexpected call: id=%s status=%s", svc.gotID, svc.gotStatus)
	}
}

func TestOrdersDeletePropagatesNotFound(t *testing.T) {
	svc := &stubOrdersService{err: pkgerrors.New(pkgerrors.CodeNotFound, "order not found")}

	r := chi.NewRouter()
	r.Delete("/orders/{orderId}", OrdersDelete(svc, nil))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, authedRequest(http.MethodDelete, "/orders/"+uuid.NewString(), "", uuid.New(), "admin"))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestOrdersStatsReturnsAggregates(t *testing.T) {
	svc := &stubOrdersService{stats: &orders.Stats{TotalOrders: 5, TotalRevenue: decimal.NewFromInt(700)}}
	handler := OrdersStats(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/v1/orders/stats/overview", "", uuid.New(), "admin"))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
