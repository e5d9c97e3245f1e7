package repokit

import (
	"context"
	"fmt"
	"time"
)

// Pinger is any dependency that answers a ping
type Pinger interface{ Ping(context.Context) error }

// MustPing panics if p does not answer within the ctx deadline, or 5s without one
func MustPing(ctx context.Context, name string, p Pinger) {
	if p == nil {
		panic(fmt.Sprintf("%s: nil dependency", name))
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		panic(fmt.Sprintf("%s ping failed: %v", name, err))
	}
}

// MustGuard runs a store guard at boot and panics on any error
func MustGuard(ctx context.Context, st interface{ Guard(context.Context) error }) {
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
