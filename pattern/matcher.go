package pattern

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrNoPatterns is returned by Compile if it is called without any literal.
var ErrNoPatterns = errors.New("pattern source is empty")

// noMatch denotes trie nodes where no literal ends.
const noMatch = -1

// Span is a single match: the raw text matched and the byte position in the
// input where it starts.
type Span struct {
	Text   string
	Offset int
}

// End returns the byte position just behind the span.
func (s Span) End() int {
	return s.Offset + len(s.Text)
}

// node is a state of the byte trie. priority is the index of the literal
// ending at this node, if any.
type node struct {
	next     map[byte]*node
	priority int
}

func newNode() *node {
	return &node{priority: noMatch}
}

// Matcher matches a compiled set of literal byte sequences.
type Matcher struct {
	root     *node
	literals int // number of distinct literals
	longest  int // byte length of longest literal
}

// Compile creates a Matcher from an ordered list of literals. The index of
// a literal in the list is its priority, lower indices winning over higher ones
// if more than one literal matches at the same position. A literal occurring
// more than once keeps the priority of its first occurrence.
//
// Literals must be non-empty and legal UTF-8.
func Compile(literals []string) (*Matcher, error) {
	if len(literals) == 0 {
		return nil, ErrNoPatterns
	}
	m := &Matcher{root: newNode()}
	for i, lit := range literals {
		if len(lit) == 0 {
			return nil, fmt.Errorf("pattern #%d is empty", i)
		}
		if !utf8.ValidString(lit) {
			return nil, fmt.Errorf("pattern #%d (% x) is not valid UTF-8", i, lit)
		}
		if m.insert(lit, i) {
			m.literals++
			if len(lit) > m.longest {
				m.longest = len(lit)
			}
		} else {
			tracer().Debugf("pattern #%d is a duplicate, keeping first occurrence", i)
		}
	}
	tracer().Infof("compiled %d emoji patterns, longest is %d bytes", m.literals, m.longest)
	return m, nil
}

// insert enters a literal into the trie. It returns false if the literal has
// been entered before.
func (m *Matcher) insert(lit string, priority int) bool {
	n := m.root
	for i := 0; i < len(lit); i++ {
		if n.next == nil {
			n.next = make(map[byte]*node)
		}
		child, ok := n.next[lit[i]]
		if !ok {
			child = newNode()
			n.next[lit[i]] = child
		}
		n = child
	}
	if n.priority != noMatch {
		return false
	}
	n.priority = priority
	return true
}

// Len returns the number of distinct literals of m.
func (m *Matcher) Len() int {
	return m.literals
}

// matchAt returns the byte length of the winning literal starting at pos, or
// 0 if no literal matches there.
func (m *Matcher) matchAt(text string, pos int) int {
	best, length := noMatch, 0
	n := m.root
	for i := pos; i < len(text) && i-pos < m.longest; i++ {
		if n = n.next[text[i]]; n == nil {
			break
		}
		if n.priority != noMatch && (best == noMatch || n.priority < best) {
			best, length = n.priority, i-pos+1
		}
	}
	return length
}

// FindAll returns all non-overlapping matches in text, ordered by byte offset.
func (m *Matcher) FindAll(text string) []Span {
	var spans []Span
	sc := m.Scanner(text)
	defer sc.Release()
	for sc.Next() {
		spans = append(spans, sc.Span())
	}
	return spans
}

// FindFirst returns the leftmost match in text, if any.
func (m *Matcher) FindFirst(text string) (Span, bool) {
	sc := m.Scanner(text)
	defer sc.Release()
	if sc.Next() {
		return sc.Span(), true
	}
	return Span{}, false
}
