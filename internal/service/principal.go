package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dispatch/internal/auth"
)

// requirePrincipal returns the authenticated principal from ctx or
// ErrUnauthenticated. Every mutating command calls this instead of trusting
// caller-supplied identifiers alone.
func requirePrincipal(ctx context.Context) (auth.Principal, error) {
	p, ok := auth.FromContext(ctx)
	if !ok {
		return auth.Principal{}, ErrUnauthenticated
	}
	return p, nil
}

// parseID converts a hex string to an object id, mapping bad input to a
// validation error.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
