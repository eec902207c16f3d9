// Package throttle espaça as requisições feitas à Graph API.
//
// O intervalo fixo entre requisições é um token bucket de capacidade 1; quando
// a API sinaliza limite de uso, Penalize empurra o próximo slot para frente.
package throttle

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Throttle struct {
	limiter *rate.Limiter
	backoff time.Duration

	mu           sync.Mutex
	blockedUntil time.Time
}

// New cria um throttle que libera uma requisição a cada interval.
// interval <= 0 desativa o espaçamento.
func New(interval, backoff time.Duration) *Throttle {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}

	return &Throttle{
		limiter: rate.NewLimiter(limit, 1),
		backoff: backoff,
	}
}

// Wait bloqueia até a próxima requisição poder ser feita ou o contexto ser cancelado
func (t *Throttle) Wait(ctx context.Context) error {
	t.mu.Lock()
	until := t.blockedUntil
	t.mu.Unlock()

	if wait := time.Until(until); wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return t.limiter.Wait(ctx)
}

// Penalize suspende novas requisições pelo tempo de backoff configurado
func (t *Throttle) Penalize() {
	if t.backoff <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	next := time.Now().Add(t.backoff)
	if next.After(t.blockedUntil) {
		t.blockedUntil = next
	}
}
