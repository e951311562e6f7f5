package slider

// Router is the global input surface. At most one session owns the pointer
// capture at a time, and while it does, motion and release events are routed
// to it wherever the pointer is.
type Router struct {
	owner *Session
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Guard is a held pointer capture. Release is idempotent.
type Guard struct {
	router   *Router
	session  *Session
	released bool
}

// Acquire gives the capture to s. A previous owner is cancelled first.
func (r *Router) Acquire(s *Session) *Guard {
	if r.owner != nil && r.owner != s {
		r.owner.Cancel()
	}
	r.owner = s
	return &Guard{router: r, session: s}
}

// Release gives the capture back if this guard still holds it.
func (g *Guard) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	if g.router.owner == g.session {
		g.router.owner = nil
	}
}

// Owner returns the session holding the capture, or nil.
func (r *Router) Owner() *Session {
	return r.owner
}

// Move routes pointer motion to the capturing session.
// Returns false if nothing holds the capture.
func (r *Router) Move(p Point) bool {
	if r.owner == nil {
		return false
	}
	r.owner.Move(p)
	return true
}

// Release routes a pointer release to the capturing session and commits.
// Returns false if nothing holds the capture.
func (r *Router) Release(p Point) bool {
	if r.owner == nil {
		return false
	}
	r.owner.Release(p, true)
	return true
}
