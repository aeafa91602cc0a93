package cart

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alseiny20/bkbweb-go/internal/catalog"
)

// AnimationDelay is how long the add-to-cart pulse stays on.
const AnimationDelay = 600 * time.Millisecond

// Store persists cart snapshots between sessions. Implementations should
// degrade unreadable data to an empty snapshot; the manager treats any load
// error the same way and never fails because of one.
type Store interface {
	LoadCart() ([]LineItem, error)
	SaveCart(items []LineItem) error
}

// Manager owns the cart for the lifetime of the session. All mutations go
// through it; after each one it persists a full snapshot best-effort and
// notifies subscribers. The in-memory state is the source of truth; a failed
// save is logged, not rolled back.
type Manager struct {
	store Store
	log   *zap.Logger

	mu        sync.Mutex
	items     []LineItem
	animating bool

	subs []func()
}

// NewManager rehydrates the cart from the store, starting empty when there is
// nothing (or nothing readable) to restore.
func NewManager(store Store, log *zap.Logger) *Manager {
	m := &Manager{store: store, log: log}

	items, err := store.LoadCart()
	if err != nil {
		log.Warn("cart snapshot unreadable, starting empty", zap.Error(err))
		items = nil
	}
	m.items = items
	return m
}

// Subscribe registers fn to run after every committed mutation. Subscribers
// are invoked synchronously, outside the state lock, in registration order.
func (m *Manager) Subscribe(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Add puts one unit of product in the cart. A product with no stock is
// rejected with ErrOutOfStock; incrementing an existing line past its
// snapshotted stock is rejected with ErrStockLimitReached. Either way the
// cart is left untouched. On success the animation flag pulses for
// AnimationDelay.
func (m *Manager) Add(product catalog.Product) error {
	m.mu.Lock()

	if product.Stock <= 0 {
		m.mu.Unlock()
		return fmt.Errorf("%s: %w", product.Name, ErrOutOfStock)
	}

	found := false
	for i := range m.items {
		if m.items[i].ID == product.ID {
			if m.items[i].Quantity+1 > product.Stock {
				m.mu.Unlock()
				return fmt.Errorf("%s (%d available): %w", product.Name, product.Stock, ErrStockLimitReached)
			}
			m.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		m.items = append(m.items, LineItem{Product: product, Quantity: 1})
	}

	m.animating = true
	// Fire-and-forget: a rapid second Add does not cancel a pending clear,
	// the last scheduled one wins. The flag is cosmetic only.
	time.AfterFunc(AnimationDelay, func() {
		m.mu.Lock()
		m.animating = false
		m.mu.Unlock()
	})

	m.commitLocked()
	return nil
}

// Remove drops the line for productID. Removing an absent id is a no-op, not
// an error, and does not trigger persistence or notification.
func (m *Manager) Remove(productID int) {
	m.mu.Lock()

	for i := range m.items {
		if m.items[i].ID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.commitLocked()
			return
		}
	}
	m.mu.Unlock()
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line. No stock ceiling is enforced here: only the Add
// increment path checks stock; callers driving quantity directly are expected
// to clamp to the line's snapshotted stock themselves.
func (m *Manager) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		m.Remove(productID)
		return
	}

	m.mu.Lock()
	for i := range m.items {
		if m.items[i].ID == productID {
			m.items[i].Quantity = quantity
			m.commitLocked()
			return
		}
	}
	m.mu.Unlock()
}

// Clear empties the cart unconditionally.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.items = nil
	m.commitLocked()
}

// Items returns a copy of the current line items in insertion order.
func (m *Manager) Items() []LineItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LineItem(nil), m.items...)
}

// Total sums price times quantity over all lines.
func (m *Manager) Total() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0.0
	for _, li := range m.items {
		total += li.Subtotal()
	}
	return total
}

// ItemCount sums quantities over all lines, not distinct products.
func (m *Manager) ItemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, li := range m.items {
		count += li.Quantity
	}
	return count
}

// Animating reports whether the add-to-cart pulse is currently on.
func (m *Manager) Animating() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.animating
}

// commitLocked persists a snapshot and notifies subscribers. It must be
// called with the lock held and releases it.
func (m *Manager) commitLocked() {
	snapshot := append([]LineItem(nil), m.items...)
	subs := make([]func(), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	if err := m.store.SaveCart(snapshot); err != nil {
		m.log.Warn("cart snapshot not saved", zap.Error(err), zap.Int("lines", len(snapshot)))
	}
	for _, fn := range subs {
		fn()
	}
}
