package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/avelle/storefront-cli/internal/ports"
)

// CartStore holds the client's cached view of the server-side cart. Every
// mutation goes refetch-after-write: the remote call is made, then the
// authoritative cart is re-read wholesale. No local patching, no optimistic
// updates; the server is the only party trusted to compute totals.
type CartStore struct {
	api      ports.CartAPI
	notifier ports.Notifier

	mu       sync.RWMutex
	cart     *domain.CartView
	loading  bool
	fetchSeq uint64
}

func NewCartStore(api ports.CartAPI, notifier ports.Notifier) *CartStore {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}

	return &CartStore{api: api, notifier: notifier}
}

// Fetch replaces the held cart with the server's. On failure the previous
// view is kept, stale but available. Responses that lose the race to a more
// recently issued fetch are discarded.
func (s *CartStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.loading = true
	s.mu.Unlock()

	cart, err := s.api.Cart(ctx)

	s.mu.Lock()
	if seq == s.fetchSeq {
		s.loading = false
		if err == nil {
			s.cart = &cart
		}
	}
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("fetch cart: %w", err)
	}

	return nil
}

func (s *CartStore) AddItem(ctx context.Context, addition domain.CartAddition) bool {
	if _, err := s.api.AddItem(ctx, addition); err != nil {
		s.notifier.Error(domain.UserMessage(err, "Failed to add item to cart"))
		return false
	}

	// A refetch failure here must not override the add's success; the held
	// view just stays stale until the next fetch.
	_ = s.Fetch(ctx)
	s.notifier.Success("Item added to cart!")
	return true
}

// UpdateItem changes a line's quantity. A quantity below one is a removal;
// that policy lives here so no caller has to decide it.
func (s *CartStore) UpdateItem(ctx context.Context, itemID domain.CartLineID, quantity int) bool {
	if quantity < 1 {
		return s.RemoveItem(ctx, itemID)
	}

	if _, err := s.api.UpdateItem(ctx, itemID, quantity); err != nil {
		s.notifier.Error(domain.UserMessage(err, "Failed to update item"))
		return false
	}

	_ = s.Fetch(ctx)
	return true
}

func (s *CartStore) RemoveItem(ctx context.Context, itemID domain.CartLineID) bool {
	if err := s.api.RemoveItem(ctx, itemID); err != nil {
		s.notifier.Error(domain.UserMessage(err, "Failed to remove item"))
		return false
	}

	_ = s.Fetch(ctx)
	s.notifier.Success("Item removed from cart")
	return true
}

// ClearCart empties the remote cart and, unlike the other mutators, sets the
// held view empty directly instead of refetching.
func (s *CartStore) ClearCart(ctx context.Context) bool {
	if err := s.api.Clear(ctx); err != nil {
		s.notifier.Error(domain.UserMessage(err, "Failed to clear cart"))
		return false
	}

	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()

	s.notifier.Success("Cart cleared")
	return true
}

// Cart returns a copy of the held view and whether one has been loaded.
func (s *CartStore) Cart() (domain.CartView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cart == nil {
		return domain.CartView{}, false
	}
	return *s.cart, true
}

func (s *CartStore) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cart == nil {
		return 0
	}
	return s.cart.TotalItems
}

func (s *CartStore) TotalAmount() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cart == nil {
		return 0
	}
	return s.cart.TotalAmount
}

func (s *CartStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
