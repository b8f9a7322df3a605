package cache

import "context"

var _ Invalidator = Nop{}

// Nop backs tests and one-shot CLI runs where no query cache exists.
type Nop struct{}

func NewNop() Nop {
	return Nop{}
}

func (Nop) MarkStale(ctx context.Context, keys ...string) error {
	return nil
}
