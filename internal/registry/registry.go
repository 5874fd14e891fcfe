// Package registry is the in-memory store of all activities and the single
// source of truth for roster state.
package registry

import (
	"sync"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// Registry owns every activity record. A single registry-wide lock keeps
// signup and removal linearizable; at this scale per-activity locking buys
// nothing.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// New builds a registry from a seed catalog. The registry copies the seed,
// so later mutations never reach the caller's map.
func New(seed map[string]domain.Activity) *Registry {
	activities := make(map[string]domain.Activity, len(seed))
	for name, activity := range seed {
		activities[name] = activity.Clone()
		observability.SetRosterSize(name, len(activity.Participants))
	}
	return &Registry{activities: activities}
}

// Snapshot returns a deep copy of the full activity set keyed by name.
func (r *Registry) Snapshot() map[string]domain.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.Clone()
	}
	return out
}

// Signup appends email to the activity's roster, preserving insertion order.
// Name matching is exact and case-sensitive. The email is stored verbatim:
// no syntax or domain validation, and no capacity check against
// MaxParticipants.
func (r *Registry) Signup(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, participant := range activity.Participants {
		if participant == email {
			return domain.ErrAlreadyRegistered
		}
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	observability.SetRosterSize(name, len(activity.Participants))
	return nil
}

// Remove deletes email from the activity's roster. The roster holds no
// duplicates, so at most one entry matches; the order of the remaining
// participants is preserved.
func (r *Registry) Remove(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}

	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i:i], activity.Participants[i+1:]...)
			r.activities[name] = activity
			observability.SetRosterSize(name, len(activity.Participants))
			return nil
		}
	}
	return domain.ErrParticipantNotFound
}
