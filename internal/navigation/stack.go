package navigation

// Stack is the back-navigation history of requests.
type Stack struct {
	entries []Request
}

func NewStack() *Stack {
	return &Stack{entries: make([]Request, 0)}
}

// Push records a request when navigating forward.
func (s *Stack) Push(r Request) {
	s.entries = append(s.entries, r)
}

// Pop removes and returns the top request. Returns false when empty.
func (s *Stack) Pop() (Request, bool) {
	if len(s.entries) == 0 {
		return Request{}, false
	}
	r := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return r, true
}

// Peek returns the top request without removing it.
func (s *Stack) Peek() (Request, bool) {
	if len(s.entries) == 0 {
		return Request{}, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *Stack) IsEmpty() bool { return len(s.entries) == 0 }

func (s *Stack) Len() int { return len(s.entries) }
