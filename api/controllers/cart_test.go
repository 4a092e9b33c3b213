package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jordanhale/lapstore-backend/api/middleware"
	"github.com/jordanhale/lapstore-backend/pkg/db/models"
	pkgerrors "github.com/jordanhale/lapstore-backend/pkg/errors"
)

type stubCartService struct {
	cart       *models.Cart
	err        error
	gotUser    uuid.UUID
	gotProduct uuid.UUID
	gotItem    uuid.UUID
	gotQty     int
}

func (s *stubCartService) GetOrCreateCart(_ context.Context, userID uuid.UUID) (*models.Cart, error) {
	s.gotUser = userID
	return s.cart, s.err
}

func (s *stubCartService) AddToCart(_ context.Context, userID, productID uuid.UUID, quantity int) (*models.Cart, error) {
	s.gotUser, s.gotProduct, s.gotQty = userID, productID, quantity
	return s.cart, s.err
}

func (s *stubCartService) UpdateCartItem(_ context.Context, userID, itemID uuid.UUID, quantity int) (*models.Cart, error) {
	s.gotUser, s.gotItem, s.gotQty = userID, itemID, quantity
	return s.cart, s.err
}

func (s *stubCartService) RemoveFromCart(_ context.Context, userID, itemID uuid.UUID) (*models.Cart, error) {
	s.gotUser, s.gotItem = userID, itemID
	return s.cart, s.err
}

func (s *stubCartService) ClearCart(_ context.Context, userID uuid.UUID) (*models.Cart, error) {
	s.gotUser = userID
	return s.cart, s.err
}

func authedRequest(method, target, body string, userID uuid.UUID, role string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := middleware.WithUserID(req.Context(), userID.String())
	ctx = middleware.WithRole(ctx, role)
	return req.WithContext(ctx)
}

func TestCartGetRequiresIdentity(t *testing.T) {
	handler := CartGet(&stubCartService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCartGetReturnsCartEnvelope(t *testing.T) {
	userID := uuid.New()
	svc := &stubCartService{cart: &models.Cart{ID: uuid.New(), UserID: userID}}
	handler := CartGet(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/v1/cart", "", userID, "customer"))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotUser != userID {
		t.Fatalf("expected user %s got %s", userID, svc.gotUser)
	}
	var payload struct {
		Data struct {
			ID string `json:"ID"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestCartAddItemDecodesPayload(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	svc := &stubCartService{cart: &models.Cart{ID: uuid.New(), UserID: userID}}
	handler := CartAddItem(svc, nil)

	body := `{"product_id":"` + productID.String() + `","quantity":2}`
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", body, userID, "customer"))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if svc.gotProduct != productID || svc.gotQty != 2 {
		t.Fatalf("unexpected call: product=%s qty=%d", svc.gotProduct, svc.gotQty)
	}
}

func TestCartAddItemRejectsMalformedBody(t *testing.T) {
	handler := CartAddItem(&stubCartService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", `{"quantity":`, uuid.New(), "customer"))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartAddItemRejectsZeroQuantity(t *testing.T) {
	handler := CartAddItem(&stubCartService{}, nil)

	body := `{"product_id":"` + uuid.NewString() + `","quantity":0}`
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", body, uuid.New(), "customer"))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartUpdateItemAllowsZeroQuantity(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	svc := &stubCartService{cart: &models.Cart{ID: uuid.New(), UserID: userID}}

	r := chi.NewRouter()
	r.Put("/cart/items/{itemId}", CartUpdateItem(svc, nil))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, authedRequest(http.MethodPut, "/cart/items/"+itemID.String(), `{"quantity":0}`, userID, "customer"))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotItem != itemID || svc.gotQty != 0 {
		t.Fatalf("unexpected call: item=%s qty=%d", svc.gotItem, svc.gotQty)
	}
}

func TestCartRemoveItemPropagatesNotFound(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")}

	r := chi.NewRouter()
	r.Delete("/cart/items/{itemId}", CartRemoveItem(svc, nil))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, authedRequest(http.MethodDelete, "/cart/items/"+uuid.NewString(), "", uuid.New(), "customer"))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
