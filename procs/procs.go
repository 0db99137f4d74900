package procs

import "context"

// Procs runs its elements in order. A step that returns a continuation
// replaces itself until it finishes.
type Procs[C any] []Proc[C]

var _ Proc[any] = Procs[any]{}

func (p Procs[C]) Run(ctx context.Context, state C) (Proc[C], error) {
	if len(p) == 0 {
		return nil, nil
	}
	next, err := p[0].Run(ctx, state)
	if err != nil {
		return nil, err
	}
	if next == nil {
		if len(p) == 1 {
			return nil, nil
		}
		return p[1:], nil
	}
	// copy so the caller's slice is not modified
	ret := make(Procs[C], len(p))
	copy(ret, p)
	ret[0] = next
	return ret, nil
}

// Named tags a step so failures say which step failed.
type Named[C any] struct {
	Name string
	Proc Proc[C]
}

func (n Named[C]) Run(ctx context.Context, state C) (Proc[C], error) {
	next, err := n.Proc.Run(ctx, state)
	if err != nil {
		return nil, &StepError{Step: n.Name, Err: err}
	}
	if next == nil {
		return nil, nil
	}
	return Named[C]{Name: n.Name, Proc: next}, nil
}

type StepError struct {
	Step string
	Err  error
}

func (s *StepError) Error() string {
	return s.Step + ": " + s.Err.Error()
}

func (s *StepError) Unwrap() error {
	return s.Err
}
