package settings

import (
	"encoding/json"
	"errors"
	"sync"

	"otttrusted/store"
)

// Review is an admin-editable testimonial shown on the landing page.
type Review struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Review string `json:"review"`
	Avatar string `json:"avatar"`
}

// AppSettings is the singleton site configuration record.
type AppSettings struct {
	WhatsappNumber string   `json:"whatsappNumber"`
	UpiID          string   `json:"upiId"`
	DemoVideoURL   string   `json:"demoVideoUrl"`
	HeroVideoURL   string   `json:"heroVideoUrl"`
	Reviews        []Review `json:"reviews"`
}

// Defaults is the built-in configuration used on first run and as the
// recovery base when the persisted record is damaged.
func Defaults() AppSettings {
	return AppSettings{
		WhatsappNumber: "9113401017",
		UpiID:          "otttrusted@upi",
		DemoVideoURL:   "https://assets.mixkit.co/videos/preview/mixkit-popcorn-falling-onto-a-table-in-slow-motion-4433-large.mp4",
		HeroVideoURL:   "https://assets.mixkit.co/videos/preview/mixkit-popcorn-falling-onto-a-table-in-slow-motion-4433-large.mp4",
		Reviews: []Review{
			{ID: "1", Name: "Rahul Sharma", Role: "Elite Streamer", Review: "Instant activation. I was watching Netflix in 4K within 5 minutes. Highly recommend OTT Trusted!", Avatar: "https://i.pravatar.cc/150?u=rahul"},
			{ID: "2", Name: "Sneha Kapoor", Role: "Movie Buff", Review: "The support is actually human and very helpful. Had a small issue with login and it was fixed in minutes.", Avatar: "https://i.pravatar.cc/150?u=sneha"},
			{ID: "3", Name: "Arjun Verma", Role: "Cricket Fan", Review: "Hotstar premium for the IPL was seamless. Best price in the market with guaranteed uptime.", Avatar: "https://i.pravatar.cc/150?u=arjun"},
		},
	}
}

// Load reads the persisted settings, merging still-parsable top-level fields
// over the defaults. Garbage falls all the way back to the defaults.
func Load(st store.Store) AppSettings {
	s := Defaults()

	raw, ok := st.LoadRaw(store.KeySettings)
	if !ok {
		return s
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		// A type mismatch on one field still fills the others, so keep the
		// merge. Anything else means the document itself is garbage.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return s
		}
		return Defaults()
	}
	return s
}

// Manager owns the in-memory settings record mirrored to the store.
type Manager struct {
	mu  sync.RWMutex
	st  store.Store
	cur AppSettings
}

func NewManager(st store.Store) *Manager {
	m := &Manager{st: st}
	m.cur = Load(st)
	st.Subscribe(store.KeySettings, m.reload)
	return m
}

func (m *Manager) reload() {
	s := Load(m.st)
	m.mu.Lock()
	m.cur = s
	m.mu.Unlock()
}

func (m *Manager) Get() AppSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.cur
	s.Reviews = append([]Review(nil), m.cur.Reviews...)
	return s
}

// Set replaces the whole record and persists it.
func (m *Manager) Set(s AppSettings) error {
	m.mu.Lock()
	m.cur = s
	m.mu.Unlock()
	return m.st.Save(store.KeySettings, s)
}

// ReviewPatch carries the fields of a review edit; nil means leave as is.
type ReviewPatch struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Review *string `json:"review"`
	Avatar *string `json:"avatar"`
}

func (m *Manager) AddReview(r Review) error {
	m.mu.Lock()
	m.cur.Reviews = append(m.cur.Reviews, r)
	s := m.cur
	m.mu.Unlock()
	return m.st.Save(store.KeySettings, s)
}

// UpdateReview merges a patch into the review at the given position,
// preserving display order. Out-of-range indexes are ignored.
func (m *Manager) UpdateReview(index int, patch ReviewPatch) error {
	m.mu.Lock()
	if index < 0 || index >= len(m.cur.Reviews) {
		m.mu.Unlock()
		return nil
	}

	r := &m.cur.Reviews[index]
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.Role != nil {
		r.Role = *patch.Role
	}
	if patch.Review != nil {
		r.Review = *patch.Review
	}
	if patch.Avatar != nil {
		r.Avatar = *patch.Avatar
	}
	s := m.cur
	m.mu.Unlock()
	return m.st.Save(store.KeySettings, s)
}

func (m *Manager) RemoveReview(index int) error {
	m.mu.Lock()
	if index < 0 || index >= len(m.cur.Reviews) {
		m.mu.Unlock()
		return nil
	}
	m.cur.Reviews = append(m.cur.Reviews[:index], m.cur.Reviews[index+1:]...)
	s := m.cur
	m.mu.Unlock()
	return m.st.Save(store.KeySettings, s)
}
