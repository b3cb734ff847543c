package mocks

import (
	"context"
	"sync"

	"sportshub/infras/otel"
)

// Otel hands out recording scopes and keeps them in creation order.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope := &Scope{Name: spanName}
	o.scopes = append(o.scopes, scope)

	return ctx, scope
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scopes returns every scope opened under spanName.
func (o *Otel) Scopes(spanName string) []*Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	var res []*Scope

	for _, scope := range o.scopes {
		if scope.Name == spanName {
			res = append(res, scope)
		}
	}

	return res
}

func NewOtel() otel.Otel {
	return &Otel{}
}

func NewRecorder() *Otel {
	return &Otel{}
}
