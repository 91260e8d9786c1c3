package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/hibiken/red/syntax"
)

// Direction is the direction a search walks through the rows.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Signal tells a search step what the user did.
type Signal int

const (
	// SearchInput means the query changed; the scan restarts from the top.
	SearchInput Signal = iota
	SearchNext
	SearchPrev
	SearchConfirm
	SearchCancel
)

// Search is an incremental search over the rows of a buffer. The row
// holding the current match has its matched span tagged syntax.Match; the
// overwritten highlights are restored on the following step.
type Search struct {
	direction Direction
	// row index of the last match, -1 if none.
	lastMatch int

	savedRow int
	savedHl  []syntax.Highlight
}

// NewSearch returns a search with no match yet.
func NewSearch() *Search {
	return &Search{lastMatch: -1, savedRow: -1}
}

// Direction returns the current search direction.
func (s *Search) Direction() Direction { return s.direction }

// LastMatch returns the row of the last match, or -1.
func (s *Search) LastMatch() int { return s.lastMatch }

// Restore puts back the highlights hidden by the current match overlay.
func (s *Search) Restore(b *Buffer) {
	if s.savedHl == nil {
		return
	}
	if s.savedRow < b.Len() {
		copy(b.rows[s.savedRow].hl, s.savedHl)
	}
	s.savedRow = -1
	s.savedHl = nil
}

// Step advances the search for query according to sig. It returns the
// position of the match and true, or false if nothing matched or the
// search was confirmed or canceled.
func (s *Search) Step(b *Buffer, query string, sig Signal) (Pos, bool) {
	s.Restore(b)

	switch sig {
	case SearchConfirm, SearchCancel:
		s.lastMatch = -1
		s.direction = Forward
		return Pos{}, false
	case SearchNext:
		s.direction = Forward
	case SearchPrev:
		s.direction = Backward
	default:
		// the query changed, start over from the top.
		s.lastMatch = -1
		s.direction = Forward
	}

	if s.lastMatch == -1 {
		s.direction = Forward
	}

	n := b.Len()
	if query == "" || n == 0 {
		return Pos{}, false
	}
	step := 1
	if s.direction == Backward {
		step = n - 1
	}

	current := s.lastMatch
	for i := 0; i < n; i++ {
		current = (current + step + n) % n

		row := b.rows[current]
		line := string(row.chars)
		at := strings.Index(line, query)
		if at == -1 {
			continue
		}
		cx := utf8.RuneCountInString(line[:at])
		s.lastMatch = current

		// highlight the matched string
		rx := cursorToRender(row.chars, cx, b.tabStop)
		rxEnd := cursorToRender(row.chars, cx+utf8.RuneCountInString(query), b.tabStop)
		s.savedRow = current
		s.savedHl = make([]syntax.Highlight, len(row.hl))
		copy(s.savedHl, row.hl)
		fill(row.hl[rx:rxEnd], syntax.Match)
		return Pos{X: cx, Y: current}, true
	}
	return Pos{}, false
}
