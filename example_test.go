package statesman_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/statesman"
	"github.com/dmitrymomot/statesman/store/memory"
)

func Example() {
	ctx := context.Background()

	machine := statesman.MustNew[string]("pending", memory.New[string, string](),
		statesman.WithRules[string](statesman.Rules[string]{
			"pending":   {"confirmed", "cancelled"},
			"confirmed": {"cancelled"},
		}),
		statesman.WithAfterCallback("pending", "confirmed", func(ctx context.Context, id string) error {
			fmt.Printf("notify: order %s confirmed\n", id)
			return nil
		}),
	)

	if err := machine.TransitionTo(ctx, "order-42", "confirmed"); err != nil {
		fmt.Println("transition failed:", err)
		return
	}

	state, _ := machine.CurrentState(ctx, "order-42")
	fmt.Println("current state:", state)

	if err := machine.TransitionTo(ctx, "order-42", "pending"); err != nil {
		fmt.Println("transition failed:", err)
	}

	// Output:
	// notify: order order-42 confirmed
	// current state: confirmed
	// transition failed: model order-42 cannot transition from confirmed to pending
}
