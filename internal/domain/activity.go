// Package domain defines the activity record and the outcomes of roster mutations.
package domain

import "errors"

var (
	// ErrActivityNotFound is returned when an activity name is not a registry key.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered is returned when a signup email is already on the roster.
	ErrAlreadyRegistered = errors.New("student already signed up for this activity")
	// ErrParticipantNotFound is returned when a removal targets an email not on the roster.
	ErrParticipantNotFound = errors.New("participant not found in this activity")
)

// Activity is a single extracurricular offering. The activity name is the
// registry key rather than a field, mirroring the keyed shape of the
// GET /activities response.
type Activity struct {
	Description string `json:"description"`
	Schedule    string `json:"schedule"`
	// MaxParticipants is advisory. Signup never checks it, so rosters may
	// legitimately exceed it.
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a copy whose participant slice does not alias the original.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
