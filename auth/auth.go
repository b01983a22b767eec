package auth

import (
	"errors"
	"sync"

	"otttrusted/store"
	"otttrusted/utils"
)

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

// User is a registered account. Passwords are stored and compared in clear
// text, exactly like the storefront this replaces; that is a known flaw of
// the source, carried over deliberately rather than silently fixed.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone"`
	Role     Role   `json:"role"`
}

// Sanitized returns a copy safe to hand back over the wire.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

var ErrInvalidCredentials = errors.New("invalid email or password")

const adminID = "admin-0"

// Gate validates credentials against the one built-in admin pair and the
// registered-user list, and owns the persisted session record.
type Gate struct {
	mu            sync.Mutex
	st            store.Store
	adminEmail    string
	adminPassword string
}

func NewGate(st store.Store, adminEmail, adminPassword string) *Gate {
	return &Gate{st: st, adminEmail: adminEmail, adminPassword: adminPassword}
}

func (g *Gate) adminUser() User {
	return User{
		ID:    adminID,
		Name:  "System Administrator",
		Email: g.adminEmail,
		Phone: "000",
		Role:  RoleAdmin,
	}
}

// Login checks the admin pair first, then scans the registered users for an
// exact email/password match. Failure never says which field was wrong.
func (g *Gate) Login(email, password string) (User, error) {
	if email == g.adminEmail && password == g.adminPassword {
		admin := g.adminUser()
		if err := g.st.Save(store.KeySession, admin); err != nil {
			return User{}, err
		}
		return admin, nil
	}

	var users []User
	g.st.Load(store.KeyUsers, &users)
	for _, u := range users {
		if u.Email == email && u.Password == password {
			if err := g.st.Save(store.KeySession, u); err != nil {
				return User{}, err
			}
			return u, nil
		}
	}

	return User{}, ErrInvalidCredentials
}

// Register appends a new CLIENT record and establishes its session. There is
// no uniqueness check; registering an email twice creates a second record.
func (g *Gate) Register(name, email, phone, password string) (User, error) {
	user := User{
		ID:       utils.GenerateUUID(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
		Role:     RoleClient,
	}

	g.mu.Lock()
	var users []User
	g.st.Load(store.KeyUsers, &users)
	users = append(users, user)
	err := g.st.Save(store.KeyUsers, users)
	g.mu.Unlock()
	if err != nil {
		return User{}, err
	}

	if err := g.st.Save(store.KeySession, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Logout clears the session record only; the user record stays.
func (g *Gate) Logout() error {
	return g.st.Delete(store.KeySession)
}

// Current returns the persisted session, if any.
func (g *Gate) Current() (User, bool) {
	var u User
	found, _ := g.st.Load(store.KeySession, &u)
	return u, found
}

// ByID resolves a user id back to its record, including the built-in admin.
func (g *Gate) ByID(id string) (User, bool) {
	if id == adminID {
		return g.adminUser(), true
	}

	var users []User
	g.st.Load(store.KeyUsers, &users)
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
