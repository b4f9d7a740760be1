package cart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/RouNNdeL/bada-project/internal/infra/metrics"
)

// Store keeps one cart per session token. The cart used to hide inside
// ambient session state; here the token is explicit and the surrounding
// auth layer decides which token a request gets. No locking is promised
// across two requests racing on the same token beyond the map staying
// consistent.
type Store struct {
	mu    sync.Mutex
	carts map[string]Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]Cart)}
}

// NewSession mints a fresh session token with an empty cart behind it.
func (s *Store) NewSession() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.carts[token] = Cart{}
	s.mu.Unlock()
	return token
}

// Add merges a line into the session's cart, creating the cart on first
// interaction.
func (s *Store) Add(token string, itemID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[token]
	if !ok {
		c = Cart{}
	}
	if err := c.Add(itemID, quantity); err != nil {
		return err
	}
	s.carts[token] = c
	metrics.CartAdds.Inc()
	return nil
}

// Get returns a copy of the session's cart; mutations go through Add.
func (s *Store) Get(token string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.carts[token]
	out := make(Cart, len(c))
	for id, qty := range c {
		out[id] = qty
	}
	return out
}

// Clear drops the session's cart. Clearing an absent cart is a no-op.
func (s *Store) Clear(token string) {
	s.mu.Lock()
	delete(s.carts, token)
	s.mu.Unlock()
}
