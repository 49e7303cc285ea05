package router

import (
	"errors"
	"testing"
)

func TestStackDropsOldest(t *testing.T) {
	s := NewStack(2)
	s.Push(0, ActionNext)
	s.Push(1, ActionNext)
	s.Push(2, ActionGoto)

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if top := s.Pop(); top.Screen != 2 || top.Action != ActionGoto {
		t.Errorf("Pop() = %+v, want screen 2 via goto", top)
	}
	if top := s.Pop(); top.Screen != 1 {
		t.Errorf("Pop() = %+v, want screen 1", top)
	}
	if s.Pop() != nil || !s.IsEmpty() {
		t.Error("stack should be empty")
	}
}

func TestNavigateBackSkipsCurrent(t *testing.T) {
	r := New(3, false, nil)
	r.Stack().Push(0, ActionGoto)
	r.Stack().Push(1, ActionGoto)
	r.Stack().Push(1, ActionGoto)

	next, err := r.Navigate(1, Back())
	if err != nil {
		t.Fatalf("Navigate() error = %v", err)
	}
	if next != 0 {
		t.Errorf("Navigate(Back) = %d, want 0", next)
	}
	if !r.Stack().IsEmpty() {
		t.Errorf("history = %d entries, want empty", r.Stack().Len())
	}
}

func TestNavigateBackEmptyHistory(t *testing.T) {
	r := New(2, false, func(Screen) error {
		t.Fatal("switch must not be called")
		return nil
	})

	next, err := r.Navigate(1, Back())
	if err != nil || next != ScreenNone {
		t.Errorf("Navigate(Back) = %d, %v, want ScreenNone, nil", next, err)
	}
}

func TestNavigateGotoOutOfRange(t *testing.T) {
	errBad := errors.New("bad index")
	r := New(2, false, func(Screen) error { return errBad })

	_, err := r.Navigate(0, Goto(5))
	if !errors.Is(err, errBad) {
		t.Errorf("Navigate(Goto(5)) error = %v, want wrapped switch error", err)
	}
	if !r.Stack().IsEmpty() {
		t.Error("failed navigation must not touch history")
	}
}

func TestNavigateSwitchFailureKeepsHistory(t *testing.T) {
	errBusy := errors.New("busy")
	r := New(3, false, func(Screen) error { return errBusy })

	if _, err := r.Navigate(0, Next()); !errors.Is(err, errBusy) {
		t.Errorf("Navigate() error = %v, want %v", err, errBusy)
	}
	if !r.Stack().IsEmpty() {
		t.Error("failed navigation must not touch history")
	}
}

func TestActionString(t *testing.T) {
	if got := ActionPrevious.String(); got != "previous" {
		t.Errorf("String() = %q", got)
	}
	if got := Action(42).String(); got != "action(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestStackSetMaxDepth(t *testing.T) {
	s := NewStack(0)
	for i := 0; i < 5; i++ {
		s.Push(Screen(i), ActionNext)
	}

	s.SetMaxDepth(2)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if top := s.Pop(); top.Screen != 4 {
		t.Errorf("top = %d, want 4", top.Screen)
	}
	if next := s.Pop(); next.Screen != 3 {
		t.Errorf("next = %d, want 3", next.Screen)
	}
}
