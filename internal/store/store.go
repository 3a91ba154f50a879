package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"wtt/internal/model"
)

// Store owns the persisted document and is the only path to reading or
// mutating it. All mutators validate before touching the document, so a
// failed call leaves the in-memory state exactly as it was. Nothing is
// written to disk until Flush.
type Store struct {
	path string
	doc  model.Document
	now  func() time.Time
}

// Open loads the document from path. A missing file is not an error and
// yields an empty document; an unreadable or unparsable file is a
// *StorageError and the caller must abort.
func Open(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Debug("database file missing, starting empty", "path", path)
		s.doc = model.EmptyDocument()
		return s, nil
	}
	if err != nil {
		return nil, &StorageError{Path: path, Err: err}
	}

	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, &StorageError{Path: path, Err: fmt.Errorf("parsing JSON: %w", err)}
	}
	if s.doc.Sessions == nil {
		s.doc.Sessions = []model.Session{}
	}
	if s.doc.Labels == nil {
		s.doc.Labels = []string{}
	}

	slog.Debug("loaded document", "path", path,
		"sessions", len(s.doc.Sessions), "labels", len(s.doc.Labels))
	return s, nil
}

// Flush serialises the whole document and overwrites the backing file.
// The document is marshalled fully in memory and written to a temp file
// which is renamed over the target, so a crash mid-write never leaves an
// unparseable file behind.
func (s *Store) Flush() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return &StorageError{Path: s.path, Err: fmt.Errorf("marshalling JSON: %w", err)}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return &StorageError{Path: s.path, Err: fmt.Errorf("writing temp file: %w", err)}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &StorageError{Path: s.path, Err: fmt.Errorf("renaming temp file: %w", err)}
	}

	slog.Debug("flushed document", "path", s.path, "bytes", len(data))
	return nil
}

// Sessions returns a deep copy of the sessions whose start_at lies within
// [from, to] (either bound nil = unbounded) and, when labels is non-empty,
// whose label set intersects it. Every requested filter label must exist
// globally; unknown names fail the whole call. The result is sorted
// ascending by start_at.
func (s *Store) Sessions(from, to *int64, labels []string) ([]model.Session, error) {
	if missing := s.missingLabels(labels); len(missing) > 0 {
		return nil, invalidf("unknown labels: %s", strings.Join(missing, ", "))
	}

	out := []model.Session{}
	for _, sess := range s.doc.Sessions {
		if from != nil && sess.StartAt < *from {
			continue
		}
		if to != nil && sess.StartAt > *to {
			continue
		}
		if len(labels) > 0 && !intersects(sess.Labels, labels) {
			continue
		}
		out = append(out, sess.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].StartAt < out[j].StartAt })
	return out, nil
}

// CreateSession starts a new running session tagged with the given labels,
// all of which must already exist. It returns the generated session id.
// Any number of sessions may be running at once.
func (s *Store) CreateSession(labels []string) (string, error) {
	if missing := s.missingLabels(labels); len(missing) > 0 {
		return "", invalidf("unknown labels: %s", strings.Join(missing, ", "))
	}

	sess := model.Session{
		ID:      uuid.NewString(),
		StartAt: s.now().Unix(),
		Labels:  append([]string{}, labels...),
	}
	s.doc.Sessions = append(s.doc.Sessions, sess)
	return sess.ID, nil
}

// EndSession closes a session. With an empty id it picks the running
// session with the greatest start_at; with an explicit id the session must
// exist and still be running. A non-empty note is stored alongside the end
// timestamp. Returns the id of the affected session.
func (s *Store) EndSession(id, note string) (string, error) {
	var sess *model.Session
	if id == "" {
		for i := range s.doc.Sessions {
			c := &s.doc.Sessions[i]
			if !c.Running() {
				continue
			}
			if sess == nil || c.StartAt > sess.StartAt {
				sess = c
			}
		}
		if sess == nil {
			return "", invalidf("no running session")
		}
	} else {
		sess = s.find(id)
		if sess == nil {
			return "", invalidf("session %q not found", id)
		}
		if !sess.Running() {
			return "", invalidf("session %q already ended", id)
		}
	}

	end := s.now().Unix()
	sess.EndAt = &end
	if note != "" {
		sess.Note = &note
	}
	return sess.ID, nil
}

// SetNote overwrites the note of an ended session. Running sessions cannot
// be annotated.
func (s *Store) SetNote(id, note string) error {
	sess := s.find(id)
	if sess == nil {
		return invalidf("session %q not found", id)
	}
	if sess.Running() {
		return invalidf("session %q is still running", id)
	}
	sess.Note = &note
	return nil
}

// Labels returns a copy of the label names in insertion order.
func (s *Store) Labels() []string {
	return append([]string{}, s.doc.Labels...)
}

// CreateLabel appends a new label name. Names are case-sensitive and must
// be unique.
func (s *Store) CreateLabel(name string) error {
	for _, l := range s.doc.Labels {
		if l == name {
			return invalidf("label %q already exists", name)
		}
	}
	s.doc.Labels = append(s.doc.Labels, name)
	return nil
}

// DeleteLabel removes a label from the global set and strips it from every
// session's label list. The sessions themselves, including their notes and
// timestamps, are untouched.
func (s *Store) DeleteLabel(name string) error {
	idx := -1
	for i, l := range s.doc.Labels {
		if l == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return invalidf("label %q not found", name)
	}

	s.doc.Labels = append(s.doc.Labels[:idx], s.doc.Labels[idx+1:]...)
	for i := range s.doc.Sessions {
		sess := &s.doc.Sessions[i]
		kept := sess.Labels[:0]
		for _, l := range sess.Labels {
			if l != name {
				kept = append(kept, l)
			}
		}
		sess.Labels = kept
	}
	return nil
}

// find returns a pointer into the document for the session with the given
// id, or nil.
func (s *Store) find(id string) *model.Session {
	for i := range s.doc.Sessions {
		if s.doc.Sessions[i].ID == id {
			return &s.doc.Sessions[i]
		}
	}
	return nil
}

// missingLabels returns the requested names absent from the global label
// set.
func (s *Store) missingLabels(names []string) []string {
	var missing []string
	for _, n := range names {
		found := false
		for _, l := range s.doc.Labels {
			if l == n {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, n)
		}
	}
	return missing
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
