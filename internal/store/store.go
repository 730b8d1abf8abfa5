// Package store persists the three record collections as a single JSON file.
// The whole state is rewritten after every mutation; a missing or unreadable
// file degrades to empty collections rather than an error.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trackwise/trackwise/pkg/domain"
)

// State is the tri-collection envelope written to disk.
type State struct {
	Hackathons  []domain.Hackathon  `json:"hackathons"`
	Projects    []domain.Project    `json:"projects"`
	Internships []domain.Internship `json:"internships"`
}

// Store owns the in-memory state and its backing file. There is exactly one
// logical writer (the user's current action), so no locking.
type Store struct {
	path  string
	log   *zap.Logger
	state State
}

// Open loads the store at path. A missing file or a payload that fails to
// parse yields empty collections; neither is surfaced as an error.
func Open(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{path: path, log: log}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("read state file", zap.String("path", path), zap.Error(err))
		}
		return s
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		log.Warn("state file unparseable, starting empty", zap.String("path", path), zap.Error(err))
		return s
	}
	s.state = st
	return s
}

// State returns the current tri-collection state.
func (s *Store) State() State {
	return s.state
}

// Hackathons returns the hackathon collection.
func (s *Store) Hackathons() []domain.Hackathon { return s.state.Hackathons }

// Projects returns the project collection.
func (s *Store) Projects() []domain.Project { return s.state.Projects }

// Internships returns the internship collection.
func (s *Store) Internships() []domain.Internship { return s.state.Internships }

// UpsertHackathon replaces the hackathon with a matching id, or appends it
// with a freshly minted id when none matches. Returns the stored record.
func (s *Store) UpsertHackathon(h domain.Hackathon) domain.Hackathon {
	if h.ID != "" {
		for i, cur := range s.state.Hackathons {
			if cur.ID == h.ID {
				s.state.Hackathons[i] = h
				s.save()
				return h
			}
		}
	}
	h.ID = uuid.NewString()
	s.state.Hackathons = append(s.state.Hackathons, h)
	s.save()
	return h
}

// UpsertProject replaces the project with a matching id, or appends it with
// a freshly minted id when none matches. Returns the stored record.
func (s *Store) UpsertProject(p domain.Project) domain.Project {
	if p.ID != "" {
		for i, cur := range s.state.Projects {
			if cur.ID == p.ID {
				s.state.Projects[i] = p
				s.save()
				return p
			}
		}
	}
	p.ID = uuid.NewString()
	s.state.Projects = append(s.state.Projects, p)
	s.save()
	return p
}

// UpsertInternship replaces the internship with a matching id, or appends it
// with a freshly minted id when none matches. Returns the stored record.
func (s *Store) UpsertInternship(in domain.Internship) domain.Internship {
	if in.ID != "" {
		for i, cur := range s.state.Internships {
			if cur.ID == in.ID {
				s.state.Internships[i] = in
				s.save()
				return in
			}
		}
	}
	in.ID = uuid.NewString()
	s.state.Internships = append(s.state.Internships, in)
	s.save()
	return in
}

// PatchStatus replaces only the status of the matching record. A missing id
// or a status outside the kind's enumeration is a no-op; the latter is
// logged. Returns whether a record was updated.
func (s *Store) PatchStatus(kind domain.Kind, id string, status domain.Status) bool {
	if !domain.ValidStatus(kind, status) {
		s.log.Warn("status outside enumeration ignored",
			zap.String("kind", string(kind)), zap.String("status", string(status)))
		return false
	}
	switch kind {
	case domain.KindHackathon:
		for i := range s.state.Hackathons {
			if s.state.Hackathons[i].ID == id {
				s.state.Hackathons[i].Status = status
				s.save()
				return true
			}
		}
	case domain.KindProject:
		for i := range s.state.Projects {
			if s.state.Projects[i].ID == id {
				s.state.Projects[i].Status = status
				s.save()
				return true
			}
		}
	case domain.KindInternship:
		for i := range s.state.Internships {
			if s.state.Internships[i].ID == id {
				s.state.Internships[i].Status = status
				s.save()
				return true
			}
		}
	}
	return false
}

// Remove deletes the matching record. Unknown ids are a no-op so a stale UI
// row cannot fail a delete.
func (s *Store) Remove(kind domain.Kind, id string) {
	switch kind {
	case domain.KindHackathon:
		for i, h := range s.state.Hackathons {
			if h.ID == id {
				s.state.Hackathons = append(s.state.Hackathons[:i], s.state.Hackathons[i+1:]...)
				s.save()
				return
			}
		}
	case domain.KindProject:
		for i, p := range s.state.Projects {
			if p.ID == id {
				s.state.Projects = append(s.state.Projects[:i], s.state.Projects[i+1:]...)
				s.save()
				return
			}
		}
	case domain.KindInternship:
		for i, in := range s.state.Internships {
			if in.ID == id {
				s.state.Internships = append(s.state.Internships[:i], s.state.Internships[i+1:]...)
				s.save()
				return
			}
		}
	}
}

// save rewrites the full state. Write failures are logged, not returned:
// the in-memory state stays authoritative for the session.
func (s *Store) save() {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		s.log.Warn("marshal state", zap.Error(err))
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		s.log.Warn("create state dir", zap.Error(err))
		return
	}
	// Staged write + rename so a crash mid-write cannot truncate the file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		s.log.Warn("write state file", zap.Error(err))
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.log.Warn("replace state file", zap.Error(err))
	}
}
