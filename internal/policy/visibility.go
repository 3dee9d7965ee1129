package policy

import (
	"fmt"
	"strings"

	"pt-booking/internal/data/entity"

	"github.com/google/uuid"
)

// Visibility decides how far a trainer can see.
type Visibility string

const (
	// VisibilityAssigned limits a trainer to bookings assigned to them.
	VisibilityAssigned Visibility = "assigned"
	// VisibilityGlobal lets every trainer see every booking.
	VisibilityGlobal Visibility = "global"
)

func ParseVisibility(raw string) (Visibility, error) {
	switch v := Visibility(strings.ToLower(strings.TrimSpace(raw))); v {
	case "", VisibilityAssigned:
		return VisibilityAssigned, nil
	case VisibilityGlobal:
		return v, nil
	}
	return "", fmt.Errorf("unknown trainer visibility %q", raw)
}

// Scope is the set of bookings an actor may list or address. Exactly one
// of All, TrainerID or ClientID is set.
type Scope struct {
	All       bool
	TrainerID *uuid.UUID
	ClientID  *uuid.UUID
	// ClientName also matches bookings with no client account whose
	// client_name equals it case-insensitively. Only used with ClientID.
	ClientName string
}

// ScopeFor returns the listing scope for a.
func ScopeFor(a Actor, v Visibility) Scope {
	id := a.ID()
	switch a.(type) {
	case Trainer:
		if v == VisibilityGlobal {
			return Scope{All: true}
		}
		return Scope{TrainerID: &id}
	default:
		return Scope{ClientID: &id, ClientName: strings.TrimSpace(a.Name())}
	}
}

// Contains is the row-level form of the scope, matching the SQL filter.
func (s Scope) Contains(b *entity.Booking) bool {
	switch {
	case s.All:
		return true
	case s.TrainerID != nil:
		return b.TrainerID != nil && *b.TrainerID == *s.TrainerID
	case s.ClientID != nil:
		if b.ClientID != nil {
			return *b.ClientID == *s.ClientID
		}
		return s.ClientName != "" && strings.EqualFold(strings.TrimSpace(b.ClientName), s.ClientName)
	}
	return false
}

// CanAccess reports whether a may view, edit, cancel or delete b.
func CanAccess(a Actor, b *entity.Booking, v Visibility) bool {
	return ScopeFor(a, v).Contains(b)
}
