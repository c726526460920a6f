// Package cart holds the in-memory shopping cart for one browsing session.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Item is one product row in the cart.
type Item struct {
	ID             string
	Name           string
	ImageURL       string
	UnitPriceCents int64
	Quantity       int
}

// Product describes what a caller needs to supply when adding to the cart.
type Product struct {
	ID             string
	Name           string
	ImageURL       string
	UnitPriceCents int64
}

// Store owns the cart aggregate. Adding the same product twice merges into
// one row; rows keep the order they were first added in. Totals are always
// derived from the rows, never stored.
type Store struct {
	mu          sync.Mutex
	items       []Item
	subscribers map[int]func()
	nextSubID   int
}

func NewStore() *Store {
	return &Store{subscribers: map[int]func(){}}
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Add merges the product into the cart: an existing row's quantity grows by
// one, a new product is appended with quantity 1.
func (s *Store) Add(p Product) {
	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, Item{
			ID:             p.ID,
			Name:           p.Name,
			ImageURL:       p.ImageURL,
			UnitPriceCents: p.UnitPriceCents,
			Quantity:       1,
		})
	}
	subs := s.snapshotSubscribersLocked()
	s.mu.Unlock()

	notify(subs)
}

// UpdateQuantity sets the row's quantity. An unknown id is a no-op. A
// quantity of zero or less removes the row so the cart never carries an
// unobservable zero-quantity entry.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.Remove(id)
		return
	}

	s.mu.Lock()
	var subs []func()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			subs = s.snapshotSubscribersLocked()
			break
		}
	}
	s.mu.Unlock()

	notify(subs)
}

// Remove filters out the row with the given id. Unknown ids are a no-op;
// remaining rows keep their order.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	var subs []func()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			subs = s.snapshotSubscribersLocked()
			break
		}
	}
	s.mu.Unlock()

	notify(subs)
}

// Items returns a copy of the cart rows in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]Item, len(s.items))
	copy(copied, s.items)
	return copied
}

// Len reports the number of distinct rows.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Count reports the sum of quantities across all rows.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for i := range s.items {
		total += s.items[i].Quantity
	}
	return total
}

// TotalCents reports the cart total in minor currency units.
func (s *Store) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for i := range s.items {
		total += s.items[i].UnitPriceCents * int64(s.items[i].Quantity)
	}
	return total
}

// Total reports the cart total as a decimal dollar amount for display.
func (s *Store) Total() decimal.Decimal {
	return decimal.NewFromInt(s.TotalCents()).Div(decimal.NewFromInt(100))
}

func (s *Store) snapshotSubscribersLocked() []func() {
	subs := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
