package policy

// Actor is the identity a request acts as. A zero ID means the request is
// anonymous. Roles carry the live group membership loaded for this request;
// nothing here is cached between requests.
type Actor struct {
	ID    uint
	Roles []string
}

func (a Actor) Authenticated() bool { return a.ID != 0 }

// Has is a set-membership test, not an exclusive tag: an actor may hold
// several roles at once.
func (a Actor) Has(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (a Actor) HasAny(roles ...string) bool {
	for _, r := range roles {
		if a.Has(r) {
			return true
		}
	}
	return false
}

// RoleSource reports the live role membership of a stored user.
// A user that does not exist yields an empty set, not an error.
type RoleSource interface {
	RolesOf(userID uint) ([]string, error)
}
