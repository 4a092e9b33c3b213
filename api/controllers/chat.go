package controllers

import (
	"net/http"

	"github.com/jordanhale/lapstore-backend/api/responses"
	"github.com/jordanhale/lapstore-backend/api/validators"
	"github.com/jordanhale/lapstore-backend/internal/chatbot"
	pkgerrors "github.com/jordanhale/lapstore-backend/pkg/errors"
	"github.com/jordanhale/lapstore-backend/pkg/logger"
)

type chatPayload struct {
	Message string `json:"message" validate:"required"`
}

// Chat answers a shopper question from the chatbot's product snapshot.
func Chat(svc chatbot.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "chatbot unavailable"))
			return
		}

		var payload chatPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		reply, err := svc.Reply(ctx, payload.Message)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"reply": reply})
	}
}
