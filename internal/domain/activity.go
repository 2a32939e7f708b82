// Package domain contains the roster entities and the rules every layer agrees on.
package domain

type (
	ActivityName string
	Email        string
)

// Activity is one entry of the roster. Participants keeps insertion order.
type Activity struct {
	Name            ActivityName
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []Email
}

// Has reports whether email is on the roster.
func (a *Activity) Has(email Email) bool {
	return a.indexOf(email) >= 0
}

func (a *Activity) indexOf(email Email) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}

// Add appends email unless it is already present.
func (a *Activity) Add(email Email) error {
	if a.Has(email) {
		return ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Remove drops the single occurrence of email, keeping the others in order.
func (a *Activity) Remove(email Email) error {
	i := a.indexOf(email)
	if i < 0 {
		return ErrParticipantNotFound
	}
	a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
	return nil
}

// Clone returns a copy that shares no memory with a.
func (a *Activity) Clone() Activity {
	out := *a
	out.Participants = make([]Email, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
