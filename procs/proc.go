package procs

import "context"

// Proc is one step of a state machine. Run returns the next step, or nil when
// the step is done.
type Proc[C any] interface {
	Run(ctx context.Context, state C) (Proc[C], error)
}

// Func adapts a single-shot function to Proc.
type Func[C any] func(ctx context.Context, state C) error

var _ Proc[any] = Func[any](nil)

func (f Func[C]) Run(ctx context.Context, state C) (Proc[C], error) {
	return nil, f(ctx, state)
}

// Run drives proc until it finishes, checking ctx before every step.
func Run[C any](ctx context.Context, proc Proc[C], state C) error {
	for proc != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := proc.Run(ctx, state)
		if err != nil {
			return err
		}
		proc = next
	}
	return nil
}
