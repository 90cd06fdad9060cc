package adi2edi

type captureState uint8

const (
	unseen captureState = iota
	seen
	consumed
)

type tagCapture struct {
	state captureState
	// Declared ADIF length; recorded, never validated
	length int
}

// captureSet latches the values of a fixed set of tags within one scope
// (a record, or the whole document). A tag's value is taken at most once.
type captureSet struct {
	order []string
	tags  map[string]*tagCapture
}

func newCaptureSet(tags ...string) *captureSet {
	s := &captureSet{order: tags, tags: make(map[string]*tagCapture, len(tags))}
	for _, t := range tags {
		s.tags[t] = &tagCapture{}
	}
	return s
}

// markSeen flags an upper-cased tag name. Names outside the set are ignored.
func (s *captureSet) markSeen(name string) {
	if c, ok := s.tags[name]; ok && c.state == unseen {
		c.state = seen
	}
}

// declareLength records n on every tag that is seen but not yet consumed.
func (s *captureSet) declareLength(n int) {
	for _, c := range s.tags {
		if c.state == seen {
			c.length = n
		}
	}
}

// takeIfReady reports true exactly once per scope, for a seen tag.
func (s *captureSet) takeIfReady(name string) bool {
	c, ok := s.tags[name]
	if !ok || c.state != seen {
		return false
	}
	c.state = consumed
	return true
}

// take returns the tags ready for the current value, in set order, and
// consumes them.
func (s *captureSet) take() []string {
	var out []string
	for _, t := range s.order {
		if s.takeIfReady(t) {
			out = append(out, t)
		}
	}
	return out
}
