package controllers

import (
	"context"

	"github.com/google/uuid"

	"github.com/jordanhale/lapstore-backend/api/middleware"
	"github.com/jordanhale/lapstore-backend/internal/orders"
	"github.com/jordanhale/lapstore-backend/pkg/enums"
	pkgerrors "github.com/jordanhale/lapstore-backend/pkg/errors"
)

// actorUserID extracts the authenticated user id seeded by the auth middleware.
func actorUserID(ctx context.Context) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(ctx)
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user identity")
	}
	return id, nil
}

// actorFromContext builds the order-visibility actor from the request context.
func actorFromContext(ctx context.Context) (orders.Actor, error) {
	userID, err := actorUserID(ctx)
	if err != nil {
		return orders.Actor{}, err
	}
	role, err := enums.ParseUserRole(middleware.RoleFromContext(ctx))
	if err != nil {
		return orders.Actor{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid actor role")
	}
	return orders.Actor{UserID: userID, Role: role}, nil
}
