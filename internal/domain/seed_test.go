package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	acts := DefaultSeed()
	require.Len(t, acts, 9)
	require.Equal(t, ActivityName("Chess Club"), acts[0].Name)
	require.Equal(t, 12, acts[0].MaxParticipants)
	require.Equal(t, []Email{"michael@mergington.edu", "daniel@mergington.edu"}, acts[0].Participants)
	require.Equal(t, ActivityName("Science Club"), acts[8].Name)
}

func TestParseSeedRejects(t *testing.T) {
	cases := map[string]struct {
		doc string
		err error
	}{
		"empty": {
			doc: "activities: []\n",
			err: ErrSeedEmpty,
		},
		"no name": {
			doc: "activities:\n  - description: x\n",
			err: ErrSeedNameEmpty,
		},
		"duplicate name": {
			doc: "activities:\n  - name: A\n  - name: A\n",
			err: ErrSeedDuplicateName,
		},
		"negative max": {
			doc: "activities:\n  - name: A\n    max_participants: -1\n",
			err: ErrSeedNegativeMax,
		},
		"empty email": {
			doc: "activities:\n  - name: A\n    participants: [\"\"]\n",
			err: ErrSeedEmailEmpty,
		},
		"duplicate email": {
			doc: "activities:\n  - name: A\n    participants: [a@x, a@x]\n",
			err: ErrSeedDuplicateMail,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tc.doc))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseSeedBadYAML(t *testing.T) {
	_, err := ParseSeed([]byte("activities: [: nope"))
	require.Error(t, err)
}

func TestLoadSeed(t *testing.T) {
	acts, err := LoadSeed("")
	require.NoError(t, err)
	require.Len(t, acts, 9)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	doc := "activities:\n  - name: Robotics\n    schedule: Mondays\n    max_participants: 4\n    participants: [ada@mergington.edu]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	acts, err = LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	require.Equal(t, ActivityName("Robotics"), acts[0].Name)
	require.Equal(t, []Email{"ada@mergington.edu"}, acts[0].Participants)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
