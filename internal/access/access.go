// Package access implements the shared-password storefront gate. It is a
// capability check against one plaintext secret from the design tree, with the
// granted flag kept in a pluggable cookie session. This is deliberately
// low-security per the product requirements: one shared secret, no per-user
// identity.
package access

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "sts_access"
	grantedKey  = "granted"
)

// PasswordSource yields the current shared password and whether a password is
// configured at all. The design repository implements it.
type PasswordSource interface {
	Password() string
	PasswordConfigured() bool
}

// Gate verifies access candidates and tracks the granted flag in a session.
type Gate struct {
	source PasswordSource
	store  sessions.Store
}

func NewGate(source PasswordSource, store sessions.Store) *Gate {
	return &Gate{source: source, store: store}
}

// Enabled reports whether the gate is enforced. An unconfigured password
// leaves the storefront open.
func (g *Gate) Enabled() bool {
	return g.source.PasswordConfigured()
}

// Verify compares a candidate against the shared password.
func (g *Gate) Verify(candidate string) bool {
	password := g.source.Password()
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(password)) == 1
}

// Grant marks the session as granted.
func (g *Gate) Grant(w http.ResponseWriter, r *http.Request) error {
	session, _ := g.store.Get(r, sessionName)
	session.Values[grantedKey] = true
	return session.Save(r, w)
}

// Granted reports whether the session already holds the granted flag.
func (g *Gate) Granted(r *http.Request) bool {
	session, err := g.store.Get(r, sessionName)
	if err != nil {
		return false
	}
	granted, _ := session.Values[grantedKey].(bool)
	return granted
}

// Revoke clears the granted flag.
func (g *Gate) Revoke(w http.ResponseWriter, r *http.Request) error {
	session, _ := g.store.Get(r, sessionName)
	delete(session.Values, grantedKey)
	return session.Save(r, w)
}
