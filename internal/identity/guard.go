package identity

import "github.com/google/uuid"

// Access is the outcome of an ownership check.
type Access int

const (
	Forbidden Access = iota
	Authorized
)

func (a Access) String() string {
	if a == Authorized {
		return "authorized"
	}
	return "forbidden"
}

// Guard authorizes id to mutate a resource whose stored owner is owner.
func Guard(id Identity, owner uuid.UUID) Access {
	if id.UserID == uuid.Nil || id.UserID != owner {
		return Forbidden
	}
	return Authorized
}
