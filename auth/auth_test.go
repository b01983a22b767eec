package auth_test

import (
	"testing"

	"otttrusted/auth"
	"otttrusted/store"
)

func newGate() (*auth.Gate, *store.MemStore) {
	st := store.NewMemStore()
	return auth.NewGate(st, "admin@otttrusted.in", "9113401017"), st
}

func TestAdminLogin(t *testing.T) {
	gate, _ := newGate()

	user, err := gate.Login("admin@otttrusted.in", "9113401017")
	if err != nil {
		t.Fatal(err)
	}
	if user.Role != auth.RoleAdmin {
		t.Error("Expected ADMIN role, got", user.Role)
	}

	current, ok := gate.Current()
	if !ok || current.Role != auth.RoleAdmin {
		t.Error("Expected admin session to be persisted")
	}
}

func TestLoginRejectsUnknownCredentials(t *testing.T) {
	gate, _ := newGate()

	if _, err := gate.Login("nobody@x.com", "pw"); err != auth.ErrInvalidCredentials {
		t.Error("Expected generic credential error, got", err)
	}
	if _, err := gate.Login("admin@otttrusted.in", "wrong"); err != auth.ErrInvalidCredentials {
		t.Error("Expected generic credential error for bad admin password, got", err)
	}
}

func TestRegisterThenLogin(t *testing.T) {
	gate, _ := newGate()

	user, err := gate.Register("Asha", "asha@x.com", "9000000001", "pw1")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID == "" {
		t.Error("Expected a freshly generated non-empty id")
	}
	if user.Role != auth.RoleClient {
		t.Error("Expected CLIENT role, got", user.Role)
	}

	// register implies login
	current, ok := gate.Current()
	if !ok || current.Email != "asha@x.com" {
		t.Error("Expected session for the new user")
	}

	again, err := gate.Login("asha@x.com", "pw1")
	if err != nil {
		t.Fatal(err)
	}
	if again.ID != user.ID || again.Role != auth.RoleClient {
		t.Error("Expected the registered record back, got", again)
	}
}

func TestDuplicateRegistrationCreatesSecondRecord(t *testing.T) {
	gate, st := newGate()

	first, _ := gate.Register("Asha", "asha@x.com", "9000000001", "pw1")
	second, _ := gate.Register("Asha Again", "asha@x.com", "9000000002", "pw2")
	if first.ID == second.ID {
		t.Error("Expected distinct ids for duplicate registration")
	}

	var users []auth.User
	st.Load(store.KeyUsers, &users)
	if len(users) != 2 {
		t.Error("Expected two records, got", len(users))
	}
}

func TestLogoutClearsSessionOnly(t *testing.T) {
	gate, st := newGate()

	gate.Register("Asha", "asha@x.com", "9000000001", "pw1")
	if err := gate.Logout(); err != nil {
		t.Fatal(err)
	}

	if _, ok := gate.Current(); ok {
		t.Error("Expected no session after logout")
	}

	var users []auth.User
	st.Load(store.KeyUsers, &users)
	if len(users) != 1 {
		t.Error("Expected user record to survive logout, got", len(users))
	}

	if _, err := gate.Login("asha@x.com", "pw1"); err != nil {
		t.Error("Expected login to still work after logout, got", err)
	}
}

func TestByID(t *testing.T) {
	gate, _ := newGate()

	user, _ := gate.Register("Asha", "asha@x.com", "9000000001", "pw1")

	got, ok := gate.ByID(user.ID)
	if !ok || got.Email != "asha@x.com" {
		t.Error("Expected registered user by id, got", got)
	}

	admin, ok := gate.ByID("admin-0")
	if !ok || admin.Role != auth.RoleAdmin {
		t.Error("Expected built-in admin by id, got", admin)
	}

	if _, ok := gate.ByID("missing"); ok {
		t.Error("Expected unknown id to report not found")
	}
}
