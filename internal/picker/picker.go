// Package picker presents a list of items and lets the user pick any subset.
package picker

import (
	"context"
	"errors"
)

// ErrDismissed indicates the user closed the picker without confirming.
var ErrDismissed = errors.New("selection dismissed")

// Item is one selectable row.
type Item struct {
	Label       string
	Description string
	Picked      bool
}

// Preselected confirms the default selection without showing anything.
type Preselected struct{}

// Pick returns the items whose Picked flag is set, in list order.
func (Preselected) Pick(ctx context.Context, _ string, items []Item) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrDismissed
	}
	return pickedOf(items), nil
}

func pickedOf(items []Item) []Item {
	var out []Item
	for _, it := range items {
		if it.Picked {
			out = append(out, it)
		}
	}
	return out
}
