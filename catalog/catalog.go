package catalog

import (
	"sort"
	"sync"

	"otttrusted/store"
)

// OTTPlan is one purchasable tier of a streaming service. Plans are owned by
// their parent service and always rewritten as part of it.
type OTTPlan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Duration string   `json:"duration"`
	Features []string `json:"features"`
}

// OTTService is a top-level catalog entry.
type OTTService struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Logo          string    `json:"logo"`
	Color         string    `json:"color"`
	Plans         []OTTPlan `json:"plans"`
	IsRecommended bool      `json:"isRecommended,omitempty"`
}

// ServicePatch carries a partial service update; nil fields are left alone.
// A non-nil Plans replaces the plan list wholesale.
type ServicePatch struct {
	Name          *string    `json:"name"`
	Logo          *string    `json:"logo"`
	Color         *string    `json:"color"`
	Plans         *[]OTTPlan `json:"plans"`
	IsRecommended *bool      `json:"isRecommended"`
}

// PlanPatch carries a partial plan update.
type PlanPatch struct {
	Name     *string   `json:"name"`
	Price    *int      `json:"price"`
	Duration *string   `json:"duration"`
	Features *[]string `json:"features"`
}

// Manager holds the in-memory catalog mirrored to the store. It subscribes to
// the catalog key, so a write from another context is reloaded here; when two
// contexts write near-simultaneously the later write wins.
type Manager struct {
	mu       sync.RWMutex
	st       store.Store
	services []OTTService
}

func NewManager(st store.Store) *Manager {
	m := &Manager{st: st}

	var svcs []OTTService
	found, _ := st.Load(store.KeyServices, &svcs)
	if !found {
		// first run, persist the seed catalog
		svcs = DefaultServices()
		st.Save(store.KeyServices, svcs)
	}
	m.services = svcs

	st.Subscribe(store.KeyServices, m.reload)
	return m
}

func (m *Manager) reload() {
	var svcs []OTTService
	found, _ := m.st.Load(store.KeyServices, &svcs)
	if !found {
		return
	}
	m.mu.Lock()
	m.services = svcs
	m.mu.Unlock()
}

// List returns the catalog with recommended services first, insertion order
// preserved within each group.
func (m *Manager) List() []OTTService {
	m.mu.RLock()
	out := append([]OTTService(nil), m.services...)
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsRecommended && !out[j].IsRecommended
	})
	return out
}

func (m *Manager) Get(id string) (OTTService, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.services {
		if s.ID == id {
			return s, true
		}
	}
	return OTTService{}, false
}

func (m *Manager) Add(svc OTTService) error {
	m.mu.Lock()
	m.services = append(m.services, svc)
	snapshot := append([]OTTService(nil), m.services...)
	m.mu.Unlock()

	return m.st.Save(store.KeyServices, snapshot)
}

// Delete removes the service with the given id. Unknown ids are a no-op.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	kept := m.services[:0]
	for _, s := range m.services {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	removed := len(kept) < len(m.services)
	m.services = kept
	if !removed {
		m.mu.Unlock()
		return nil
	}
	snapshot := append([]OTTService(nil), m.services...)
	m.mu.Unlock()

	return m.st.Save(store.KeyServices, snapshot)
}

// Update merges the provided fields into the matching service and persists
// immediately. Unknown ids are a no-op.
func (m *Manager) Update(id string, patch ServicePatch) error {
	m.mu.Lock()
	matched := false
	for i := range m.services {
		if m.services[i].ID != id {
			continue
		}
		matched = true
		s := &m.services[i]
		if patch.Name != nil {
			s.Name = *patch.Name
		}
		if patch.Logo != nil {
			s.Logo = *patch.Logo
		}
		if patch.Color != nil {
			s.Color = *patch.Color
		}
		if patch.Plans != nil {
			s.Plans = *patch.Plans
		}
		if patch.IsRecommended != nil {
			s.IsRecommended = *patch.IsRecommended
		}
		break
	}
	if !matched {
		m.mu.Unlock()
		return nil
	}
	snapshot := append([]OTTService(nil), m.services...)
	m.mu.Unlock()

	return m.st.Save(store.KeyServices, snapshot)
}

// AddPlan appends a plan to the parent service by rewriting its plan list.
func (m *Manager) AddPlan(serviceID string, p OTTPlan) error {
	svc, ok := m.Get(serviceID)
	if !ok {
		return nil
	}
	plans := append(append([]OTTPlan(nil), svc.Plans...), p)
	return m.Update(serviceID, ServicePatch{Plans: &plans})
}

// UpdatePlan merges a patch into one plan of the parent service.
func (m *Manager) UpdatePlan(serviceID, planID string, patch PlanPatch) error {
	svc, ok := m.Get(serviceID)
	if !ok {
		return nil
	}

	plans := append([]OTTPlan(nil), svc.Plans...)
	for i := range plans {
		if plans[i].ID != planID {
			continue
		}
		p := &plans[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Duration != nil {
			p.Duration = *patch.Duration
		}
		if patch.Features != nil {
			p.Features = *patch.Features
		}
		break
	}
	return m.Update(serviceID, ServicePatch{Plans: &plans})
}

// RemovePlan drops one plan from the parent service.
func (m *Manager) RemovePlan(serviceID, planID string) error {
	svc, ok := m.Get(serviceID)
	if !ok {
		return nil
	}

	plans := make([]OTTPlan, 0, len(svc.Plans))
	for _, p := range svc.Plans {
		if p.ID != planID {
			plans = append(plans, p)
		}
	}
	return m.Update(serviceID, ServicePatch{Plans: &plans})
}
