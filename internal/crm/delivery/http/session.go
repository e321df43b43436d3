package http

import (
	"sync"
	"time"

	"crm-admin-gateway/pkg/debounce"
	"crm-admin-gateway/pkg/odata"
)

// listSession carries per-console-tab state: a pager that rewinds to
// page 1 on search/sort/filter changes, and a debouncer that coalesces
// search-as-you-type requests.
type listSession struct {
	mu    sync.Mutex
	pager odata.Pager
	deb   *debounce.Debouncer
}

// apply runs the query state through the session pager under the lock.
func (s *listSession) apply(state odata.QueryState) odata.QueryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.Apply(state)
}

type sessionRegistry struct {
	mu       sync.Mutex
	window   time.Duration
	sessions map[string]*listSession
}

func newSessionRegistry(window time.Duration) *sessionRegistry {
	return &sessionRegistry{
		window:   window,
		sessions: make(map[string]*listSession),
	}
}

// get returns the session for id, creating it on first sight.
func (r *sessionRegistry) get(id string) *listSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		sess = &listSession{deb: debounce.New(r.window)}
		r.sessions[id] = sess
	}
	return sess
}
