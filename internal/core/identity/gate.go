package identity

// Gate decides whether a write may proceed for a given caller. It is a
// binary check, not a role system: any resolvable non-anonymous identity may
// write, anonymous callers may not. Per-resource ownership is out of scope;
// the gate exists to prevent anonymous writes and keep authorship truthful.
type Gate struct{}

// NewGate creates the authorization gate.
func NewGate() *Gate {
	return &Gate{}
}

// Authorize returns ErrUnauthorized for anonymous callers and nil otherwise.
func (g *Gate) Authorize(p Principal) error {
	if p.IsAnonymous() {
		return ErrUnauthorized
	}
	return nil
}
