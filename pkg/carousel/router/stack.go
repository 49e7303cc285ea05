package router

// DefaultHistoryDepth bounds how many screens back navigation remembers.
const DefaultHistoryDepth = 32

// StackEntry represents a single entry in the navigation history.
// It stores the screen that was left and the action that left it.
type StackEntry struct {
	Screen Screen
	Action Action
}

// Stack manages navigation history for back navigation.
// When full, pushing drops the oldest entry.
type Stack struct {
	entries  []StackEntry
	maxDepth int
}

// NewStack creates a new empty navigation stack holding at most maxDepth
// entries. A non-positive maxDepth means unbounded.
func NewStack(maxDepth int) *Stack {
	return &Stack{
		entries:  make([]StackEntry, 0),
		maxDepth: maxDepth,
	}
}

// Push adds a new entry to the stack.
// Called when navigating forward to a new screen.
func (s *Stack) Push(screen Screen, action Action) {
	if s.maxDepth > 0 && len(s.entries) >= s.maxDepth {
		s.entries = append(s.entries[:0], s.entries[1:]...)
	}
	s.entries = append(s.entries, StackEntry{
		Screen: screen,
		Action: action,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// SetMaxDepth changes the bound, dropping the oldest entries if needed.
func (s *Stack) SetMaxDepth(maxDepth int) {
	s.maxDepth = maxDepth
	if maxDepth > 0 && len(s.entries) > maxDepth {
		s.entries = append(s.entries[:0], s.entries[len(s.entries)-maxDepth:]...)
	}
}
