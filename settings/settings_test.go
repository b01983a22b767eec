package settings_test

import (
	"testing"

	"otttrusted/settings"
	"otttrusted/store"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	st := store.NewMemStore()

	s := settings.Load(st)
	if s.UpiID != "otttrusted@upi" {
		t.Error("Expected default UPI id, got", s.UpiID)
	}
	if len(s.Reviews) != 3 {
		t.Error("Expected 3 seed reviews, got", len(s.Reviews))
	}
}

func TestLoadCorruptFallsBackToDefaults(t *testing.T) {
	st := store.NewMemStore()
	st.SetRaw(store.KeySettings, []byte("{{{"))

	s := settings.Load(st)
	if s.UpiID != "otttrusted@upi" || s.WhatsappNumber != "9113401017" {
		t.Error("Expected pure defaults on corrupt settings, got", s)
	}
}

func TestLoadMergesPartialOverDefaults(t *testing.T) {
	st := store.NewMemStore()
	st.SetRaw(store.KeySettings, []byte(`{"upiId":"merchant@okaxis"}`))

	s := settings.Load(st)
	if s.UpiID != "merchant@okaxis" {
		t.Error("Expected parsed upiId to win, got", s.UpiID)
	}
	if s.WhatsappNumber != "9113401017" {
		t.Error("Expected default whatsapp number to survive, got", s.WhatsappNumber)
	}
	if len(s.Reviews) != 3 {
		t.Error("Expected default reviews to survive, got", len(s.Reviews))
	}
}

func TestLoadKeepsParsableFieldsOnTypeMismatch(t *testing.T) {
	st := store.NewMemStore()
	st.SetRaw(store.KeySettings, []byte(`{"whatsappNumber":"12345","upiId":5}`))

	s := settings.Load(st)
	if s.WhatsappNumber != "12345" {
		t.Error("Expected parsable whatsapp number to survive, got", s.WhatsappNumber)
	}
	if s.UpiID != "otttrusted@upi" {
		t.Error("Expected mismatched upiId to fall back to default, got", s.UpiID)
	}
	if len(s.Reviews) != 3 {
		t.Error("Expected default reviews to survive, got", len(s.Reviews))
	}
}

func TestManagerSetPersists(t *testing.T) {
	st := store.NewMemStore()
	m := settings.NewManager(st)

	s := m.Get()
	s.WhatsappNumber = "12345"
	if err := m.Set(s); err != nil {
		t.Fatal(err)
	}

	reloaded := settings.Load(st)
	if reloaded.WhatsappNumber != "12345" {
		t.Error("Expected persisted whatsapp number, got", reloaded.WhatsappNumber)
	}
}

func TestManagerReloadsOnStoreChange(t *testing.T) {
	st := store.NewMemStore()
	m := settings.NewManager(st)

	other := settings.Defaults()
	other.UpiID = "second@tab"
	st.Save(store.KeySettings, other)

	if m.Get().UpiID != "second@tab" {
		t.Error("Expected manager to converge on store write, got", m.Get().UpiID)
	}
}

func TestReviewEditsPreserveOrder(t *testing.T) {
	st := store.NewMemStore()
	m := settings.NewManager(st)

	name := "Edited"
	if err := m.UpdateReview(1, settings.ReviewPatch{Name: &name}); err != nil {
		t.Fatal(err)
	}

	got := m.Get().Reviews
	if got[0].Name != "Rahul Sharma" {
		t.Error("Expected first review untouched, got", got[0].Name)
	}
	if got[1].Name != "Edited" {
		t.Error("Expected second review edited, got", got[1].Name)
	}
	if got[1].Role != "Movie Buff" {
		t.Error("Expected unpatched field untouched, got", got[1].Role)
	}

	if err := m.RemoveReview(0); err != nil {
		t.Fatal(err)
	}
	got = m.Get().Reviews
	if len(got) != 2 || got[0].Name != "Edited" {
		t.Error("Expected remove to preserve remaining order, got", got)
	}

	// out of range is a no-op
	if err := m.UpdateReview(99, settings.ReviewPatch{Name: &name}); err != nil {
		t.Error("Expected out-of-range update to be a no-op, got", err)
	}
}
