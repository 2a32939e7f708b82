package domain

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

var (
	ErrSeedEmpty         = errors.New("seed has no activities")
	ErrSeedNameEmpty     = errors.New("activity name empty")
	ErrSeedDuplicateName = errors.New("duplicate activity name")
	ErrSeedNegativeMax   = errors.New("max_participants is negative")
	ErrSeedEmailEmpty    = errors.New("participant email empty")
	ErrSeedDuplicateMail = errors.New("duplicate participant email")
)

type seedFile struct {
	Activities []seedActivity `yaml:"activities"`
}

type seedActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// DefaultSeed returns the built-in activity set.
func DefaultSeed() []Activity {
	acts, err := ParseSeed(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("embedded seed: %v", err))
	}
	return acts
}

// LoadSeed reads a seed file, or the built-in seed when path is empty.
func LoadSeed(path string) ([]Activity, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	acts, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return acts, nil
}

// ParseSeed decodes a YAML seed document and checks the roster invariants.
// The returned order matches the document.
func ParseSeed(data []byte) ([]Activity, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if len(f.Activities) == 0 {
		return nil, ErrSeedEmpty
	}

	names := make(map[string]struct{}, len(f.Activities))
	out := make([]Activity, 0, len(f.Activities))
	for i, sa := range f.Activities {
		if sa.Name == "" {
			return nil, fmt.Errorf("activity #%d: %w", i+1, ErrSeedNameEmpty)
		}
		if _, dup := names[sa.Name]; dup {
			return nil, fmt.Errorf("%q: %w", sa.Name, ErrSeedDuplicateName)
		}
		names[sa.Name] = struct{}{}
		if sa.MaxParticipants < 0 {
			return nil, fmt.Errorf("%q: %w", sa.Name, ErrSeedNegativeMax)
		}

		act := Activity{
			Name:            ActivityName(sa.Name),
			Description:     sa.Description,
			Schedule:        sa.Schedule,
			MaxParticipants: sa.MaxParticipants,
			Participants:    make([]Email, 0, len(sa.Participants)),
		}
		for _, p := range sa.Participants {
			if p == "" {
				return nil, fmt.Errorf("%q: %w", sa.Name, ErrSeedEmailEmpty)
			}
			if err := act.Add(Email(p)); err != nil {
				return nil, fmt.Errorf("%q: %s: %w", sa.Name, p, ErrSeedDuplicateMail)
			}
		}
		out = append(out, act)
	}
	return out, nil
}
