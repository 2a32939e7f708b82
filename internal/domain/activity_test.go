package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActivityAddRemove(t *testing.T) {
	a := &Activity{Name: "Chess Club", Participants: []Email{"a@x", "b@x", "c@x"}}

	require.ErrorIs(t, a.Add("b@x"), ErrAlreadySignedUp)
	require.Len(t, a.Participants, 3)

	require.NoError(t, a.Remove("b@x"))
	require.Equal(t, []Email{"a@x", "c@x"}, a.Participants)

	require.ErrorIs(t, a.Remove("b@x"), ErrParticipantNotFound)

	require.NoError(t, a.Add("b@x"))
	require.Equal(t, []Email{"a@x", "c@x", "b@x"}, a.Participants)
}

func TestActivityClone(t *testing.T) {
	a := &Activity{Name: "Chess Club", Participants: []Email{"a@x"}}
	c := a.Clone()
	c.Participants[0] = "mutated"
	require.Equal(t, Email("a@x"), a.Participants[0])
}

func TestErrorKinds(t *testing.T) {
	require.True(t, errors.Is(ErrActivityNotFound, ErrNotFound))
	require.True(t, errors.Is(ErrParticipantNotFound, ErrNotFound))
	require.True(t, errors.Is(ErrAlreadySignedUp, ErrConflict))
	require.False(t, errors.Is(ErrAlreadySignedUp, ErrNotFound))
	require.Equal(t, "already signed up", ErrAlreadySignedUp.Error())
}
