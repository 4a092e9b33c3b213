package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/jordanhale/lapstore-backend/pkg/errors"
)

func TestWriteSuccessWrapsDataEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccess(w, map[string]string{"hello": "world"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", w.Code)
	}

	var payload struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Data["hello"] != "world" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestWriteErrorMapsTypedCodes(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", pkgerrors.New(pkgerrors.CodeNotFound, "order not found"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", pkgerrors.New(pkgerrors.CodeConflict, "already saved"), http.StatusConflict, "CONFLICT"},
		{"validation", pkgerrors.New(pkgerrors.CodeValidation, "bad input"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unauthorized", pkgerrors.New(pkgerrors.CodeUnauthorized, "no token"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"untyped is internal", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(context.Background(), nil, w, tc.err)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected status %d but got %d", tc.wantStatus, w.Code)
			}

			var payload struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if payload.Error.Code != tc.wantCode {
				t.Fatalf("expected code %s but got %s", tc.wantCode, payload.Error.Code)
			}
		})
	}
}

func TestWriteErrorHidesInternalMessage(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(context.Background(), nil, w, errors.New("db password leaked"))

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error.Message != "internal server error" {
		t.Fatalf("internal detail exposed: %q", payload.Error.Message)
	}
}
