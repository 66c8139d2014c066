package repository

import "context"

// TxRunner executes fn inside a single atomic unit against the store. The
// context passed to fn must be used for every store call made within it so
// the writes commit or abort together.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
