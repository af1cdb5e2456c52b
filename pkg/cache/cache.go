// Package cache implementa um cache em memória com TTL e relógio injetável.
// Substitui os Maps globais por requisição do painel de ponto: a expiração é uma
// função pura de (entrada, agora), testável sem timers reais.
package cache

import (
	"sync"
	"time"
)

// entry par valor + instante de gravação.
type entry[V any] struct {
	value   V
	savedAt time.Time
}

// Expired informa se a entrada venceu o TTL no instante dado.
func (e entry[V]) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(e.savedAt) >= ttl
}

// TTLCache cache chave->valor com expiração por tempo.
// Seguro para uso concorrente.
type TTLCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

// New cria um cache com o TTL dado. now é opcional (nil = time.Now).
func New[V any](ttl time.Duration, now func() time.Time) *TTLCache[V] {
	if now == nil {
		now = time.Now
	}
	return &TTLCache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     now,
	}
}

// Get devolve o valor se existir e não estiver expirado.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || e.Expired(c.ttl, c.now()) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set grava o valor com o instante atual.
func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, savedAt: c.now()}
	c.mu.Unlock()
}

// Sweep remove todas as entradas expiradas e devolve quantas removeu.
// Chamado periodicamente por um timer de fundo no main.
func (c *TTLCache[V]) Sweep() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for k, e := range c.entries {
		if e.Expired(c.ttl, now) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len devolve o número de entradas, expiradas ou não.
func (c *TTLCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// StartSweeper dispara uma goroutine que varre o cache no intervalo dado até o
// canal stop ser fechado.
func (c *TTLCache[V]) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Sweep()
			case <-stop:
				return
			}
		}
	}()
}
