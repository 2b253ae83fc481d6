package domain

// Viewer identifies who is looking at the feed. It is either anonymous
// or authenticated with a user id; operations switch on it explicitly
// instead of passing nullable ids around.
type Viewer struct {
	id            string
	authenticated bool
}

// AnonymousViewer returns the unauthenticated viewer.
func AnonymousViewer() Viewer {
	return Viewer{}
}

// AuthenticatedViewer returns a viewer bound to a user id.
func AuthenticatedViewer(id string) Viewer {
	return Viewer{id: id, authenticated: true}
}

// ID returns the viewer's user id and whether the viewer is authenticated.
func (v Viewer) ID() (string, bool) {
	return v.id, v.authenticated
}

// Authenticated reports whether the viewer is logged in.
func (v Viewer) Authenticated() bool {
	return v.authenticated
}
