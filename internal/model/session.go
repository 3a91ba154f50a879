package model

// Session represents one recorded interval of work. StartAt and EndAt are
// Unix epoch seconds. EndAt is nil while the session is running; Note may
// only be set once the session has ended.
type Session struct {
	ID      string   `json:"id"`
	StartAt int64    `json:"start_at"`
	EndAt   *int64   `json:"end_at,omitempty"`
	Note    *string  `json:"note,omitempty"`
	Labels  []string `json:"labels"`
}

// Document is the persisted aggregate: all sessions plus the global label
// set, loaded and saved wholesale.
type Document struct {
	Sessions []Session `json:"sessions"`
	Labels   []string  `json:"labels"`
}

// Running reports whether the session has no end timestamp yet.
func (s Session) Running() bool {
	return s.EndAt == nil
}

// Clone returns a deep copy of the session. Mutating the copy never affects
// the original.
func (s Session) Clone() Session {
	c := s
	c.Labels = append([]string(nil), s.Labels...)
	if s.EndAt != nil {
		end := *s.EndAt
		c.EndAt = &end
	}
	if s.Note != nil {
		note := *s.Note
		c.Note = &note
	}
	return c
}

// EmptyDocument returns a Document with both collections initialised, so an
// empty store still serialises as [] rather than null.
func EmptyDocument() Document {
	return Document{Sessions: []Session{}, Labels: []string{}}
}
