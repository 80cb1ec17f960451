package presence

import (
	"sort"
	"sync"
)

// Registry tracks which usernames currently hold an active session.
// Every read and mutation runs under one mutex: duplicate-login
// prevention needs check-then-insert to be indivisible, and a snapshot
// must never observe a half-applied rename.
type Registry struct {
	mu     sync.Mutex
	online map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{online: make(map[string]struct{})}
}

// TryLogin marks the user online. It returns false, changing nothing,
// if the user already has a session. Among concurrent calls for the
// same username exactly one succeeds.
func (r *Registry) TryLogin(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.online[username]; ok {
		return false
	}
	r.online[username] = struct{}{}
	return true
}

// Logout removes the user's session. Removing an absent user is not an error.
func (r *Registry) Logout(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.online, username)
}

// Rename moves a session from the old username to the new one in a
// single step. The new name is inserted unconditionally, mirroring the
// account-update semantics this registry backs.
func (r *Registry) Rename(oldUsername, newUsername string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.online, oldUsername)
	r.online[newUsername] = struct{}{}
}

func (r *Registry) IsOnline(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.online[username]
	return ok
}

// Snapshot returns all online usernames in ascending order.
func (r *Registry) Snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]string, 0, len(r.online))
	for username := range r.online {
		users = append(users, username)
	}
	sort.Strings(users)
	return users
}

func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.online)
}
