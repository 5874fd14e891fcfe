package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/activities/internal/domain"
)

func seed() map[string]domain.Activity {
	return map[string]domain.Activity{
		"Chess Club": {
			Description:     "Chess",
			Schedule:        "Fridays",
			MaxParticipants: 2,
			Participants:    []string{"michael@mergington.edu"},
		},
		"Art Club": {
			Description:     "Art",
			Schedule:        "Thursdays",
			MaxParticipants: 5,
			Participants:    []string{},
		},
	}
}

func TestSignupAppendsInOrder(t *testing.T) {
	reg := New(seed())

	require.NoError(t, reg.Signup("Chess Club", "a@mergington.edu"))
	require.NoError(t, reg.Signup("Chess Club", "b@mergington.edu"))

	roster := reg.Snapshot()["Chess Club"].Participants
	require.Equal(t, []string{"michael@mergington.edu", "a@mergington.edu", "b@mergington.edu"}, roster)
}

func TestSignupErrors(t *testing.T) {
	reg := New(seed())

	require.ErrorIs(t, reg.Signup("Nonexistent Club", "a@mergington.edu"), domain.ErrActivityNotFound)
	require.ErrorIs(t, reg.Signup("Chess Club", "michael@mergington.edu"), domain.ErrAlreadyRegistered)

	// Matching is case-sensitive on the activity name, not the email.
	require.ErrorIs(t, reg.Signup("chess club", "new@mergington.edu"), domain.ErrActivityNotFound)
	require.NoError(t, reg.Signup("Chess Club", "MICHAEL@mergington.edu"))
}

func TestSignupIgnoresCapacity(t *testing.T) {
	reg := New(seed())

	for i := 0; i < 10; i++ {
		require.NoError(t, reg.Signup("Chess Club", fmt.Sprintf("s%d@mergington.edu", i)))
	}
	activity := reg.Snapshot()["Chess Club"]
	require.Greater(t, len(activity.Participants), activity.MaxParticipants)
}

func TestRemovePreservesOrderOfRest(t *testing.T) {
	reg := New(seed())
	require.NoError(t, reg.Signup("Chess Club", "a@mergington.edu"))
	require.NoError(t, reg.Signup("Chess Club", "b@mergington.edu"))

	require.NoError(t, reg.Remove("Chess Club", "a@mergington.edu"))
	require.Equal(t, []string{"michael@mergington.edu", "b@mergington.edu"},
		reg.Snapshot()["Chess Club"].Participants)
}

func TestRemoveErrors(t *testing.T) {
	reg := New(seed())

	require.ErrorIs(t, reg.Remove("Nonexistent Club", "a@mergington.edu"), domain.ErrActivityNotFound)
	require.ErrorIs(t, reg.Remove("Chess Club", "stranger@mergington.edu"), domain.ErrParticipantNotFound)
}

func TestRemoveLastParticipantLeavesEmptyRoster(t *testing.T) {
	reg := New(seed())

	require.NoError(t, reg.Remove("Chess Club", "michael@mergington.edu"))
	roster := reg.Snapshot()["Chess Club"].Participants
	require.NotNil(t, roster)
	require.Empty(t, roster)
}

func TestSnapshotDoesNotAliasStore(t *testing.T) {
	reg := New(seed())

	snap := reg.Snapshot()
	snap["Chess Club"].Participants[0] = "tampered@mergington.edu"

	require.Equal(t, "michael@mergington.edu", reg.Snapshot()["Chess Club"].Participants[0])
}

func TestNewCopiesSeed(t *testing.T) {
	data := seed()
	reg := New(data)

	data["Chess Club"].Participants[0] = "tampered@mergington.edu"
	require.Equal(t, "michael@mergington.edu", reg.Snapshot()["Chess Club"].Participants[0])
}

func TestConcurrentSignupsStayUnique(t *testing.T) {
	reg := New(seed())

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			// Two goroutines race on every email; exactly one must win.
			_ = reg.Signup("Art Club", fmt.Sprintf("s%d@mergington.edu", i/2))
		}(i)
	}
	wg.Wait()

	roster := reg.Snapshot()["Art Club"].Participants
	require.Len(t, roster, workers/2)
	seen := make(map[string]bool, len(roster))
	for _, email := range roster {
		require.False(t, seen[email], "duplicate %s", email)
		seen[email] = true
	}
}
