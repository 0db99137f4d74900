package procs

import (
	"context"
	"errors"
	"testing"
)

type counter struct {
	steps []string
}

func step(name string) Func[*counter] {
	return func(ctx context.Context, c *counter) error {
		c.steps = append(c.steps, name)
		return nil
	}
}

type repeat struct {
	n int
}

func (r repeat) Run(ctx context.Context, c *counter) (Proc[*counter], error) {
	c.steps = append(c.steps, "r")
	if r.n <= 1 {
		return nil, nil
	}
	return repeat{n: r.n - 1}, nil
}

func TestSequence(t *testing.T) {
	c := new(counter)
	procs := Procs[*counter]{
		step("a"),
		repeat{n: 3},
		step("b"),
	}
	if err := Run[*counter](context.Background(), procs, c); err != nil {
		t.Fatal(err)
	}
	got := ""
	for _, s := range c.steps {
		got += s
	}
	if got != "arrrb" {
		t.Fatalf("got %s", got)
	}
	// reusable
	c = new(counter)
	if err := Run[*counter](context.Background(), procs, c); err != nil {
		t.Fatal(err)
	}
	if len(c.steps) != 5 {
		t.Fatalf("got %v", c.steps)
	}
}

func TestStepError(t *testing.T) {
	errFoo := errors.New("foo")
	c := new(counter)
	err := Run[*counter](context.Background(), Procs[*counter]{
		step("a"),
		Named[*counter]{
			Name: "fail",
			Proc: Func[*counter](func(ctx context.Context, c *counter) error {
				return errFoo
			}),
		},
		step("b"),
	}, c)
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != "fail" {
		t.Fatalf("got %v", err)
	}
	if len(c.steps) != 1 {
		t.Fatalf("got %v", c.steps)
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := new(counter)
	err := Run[*counter](ctx, step("a"), c)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	if len(c.steps) != 0 {
		t.Fatal()
	}
}
