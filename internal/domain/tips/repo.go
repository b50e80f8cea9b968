package tips

import "context"

type Repository interface {
	// Create inserts a tip. Used by the seed catalogue.
	Create(ctx context.Context, t *Tip) error
	// ListActive returns active tips newest first.
	ListActive(ctx context.Context, limit, offset int) ([]*Tip, error)
	// Random returns one active tip at random, pgx.ErrNoRows when the
	// catalogue is empty.
	Random(ctx context.Context) (*Tip, error)
	// Count reports the number of tips in the catalogue, active or not.
	Count(ctx context.Context) (int, error)
}
