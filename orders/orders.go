package orders

import (
	"sync"
	"time"

	"otttrusted/auth"
	"otttrusted/store"
	"otttrusted/utils"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Order is a receipt, not a live join: it snapshots the buyer's identity at
// order time, so later user edits never propagate to past orders.
type Order struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	UserName      string    `json:"userName"`
	UserEmail     string    `json:"userEmail"`
	UserPhone     string    `json:"userPhone"`
	OTTName       string    `json:"ottName"`
	PlanName      string    `json:"planName"`
	Amount        int       `json:"amount"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	ProofAttached bool      `json:"proofAttached"`
	ProofImage    string    `json:"proofImage,omitempty"`
}

// Manager holds the order list, newest first, mirrored to the store.
//
// lockTerminal controls whether an APPROVED or REJECTED order may still be
// overwritten. The storefront this replaces allowed it (last write wins), so
// false keeps that behavior; true refuses the transition.
type Manager struct {
	mu           sync.RWMutex
	st           store.Store
	orders       []Order
	lockTerminal bool
}

func NewManager(st store.Store, lockTerminal bool) *Manager {
	m := &Manager{st: st, lockTerminal: lockTerminal}
	st.Load(store.KeyOrders, &m.orders)
	return m
}

// Place records a new PENDING order for the acting user and persists it.
func (m *Manager) Place(u auth.User, ottName, planName string, amount int, proofAttached bool, proofImage string) (Order, error) {
	order := Order{
		ID:            utils.GenerateOrderID(),
		UserID:        u.ID,
		UserName:      u.Name,
		UserEmail:     u.Email,
		UserPhone:     u.Phone,
		OTTName:       ottName,
		PlanName:      planName,
		Amount:        amount,
		Status:        StatusPending,
		CreatedAt:     time.Now().UTC(),
		ProofAttached: proofAttached,
		ProofImage:    proofImage,
	}

	m.mu.Lock()
	m.orders = append([]Order{order}, m.orders...)
	snapshot := append([]Order(nil), m.orders...)
	m.mu.Unlock()

	if err := m.st.Save(store.KeyOrders, snapshot); err != nil {
		return Order{}, err
	}
	return order, nil
}

// UpdateStatus replaces the status of the matching order, leaving every other
// field untouched, and persists. Unknown ids are a silent no-op, as is a
// refused terminal overwrite; both report nil. Authorization is the caller's
// job.
func (m *Manager) UpdateStatus(id string, status Status) (*Order, error) {
	m.mu.Lock()
	var updated *Order
	for i := range m.orders {
		if m.orders[i].ID != id {
			continue
		}
		if m.lockTerminal && m.orders[i].Status != StatusPending {
			break
		}
		m.orders[i].Status = status
		o := m.orders[i]
		updated = &o
		break
	}
	if updated == nil {
		m.mu.Unlock()
		return nil, nil
	}
	snapshot := append([]Order(nil), m.orders...)
	m.mu.Unlock()

	if err := m.st.Save(store.KeyOrders, snapshot); err != nil {
		return nil, err
	}
	return updated, nil
}

// List returns all orders, newest first.
func (m *Manager) List() []Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Order(nil), m.orders...)
}

// ByUser returns the orders owned by the given user id, newest first.
func (m *Manager) ByUser(userID string) []Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// ByStatus filters orders by status, newest first.
func (m *Manager) ByStatus(status Status) []Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Order
	for _, o := range m.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// Get returns the order with the given id.
func (m *Manager) Get(id string) (Order, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, o := range m.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}
