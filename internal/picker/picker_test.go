package picker

import "testing"

func TestPickedOfKeepsOrder(t *testing.T) {
	items := []Item{
		{Label: "a", Picked: true},
		{Label: "b"},
		{Label: "c", Picked: true},
	}

	got := pickedOf(items)

	if len(got) != 2 || got[0].Label != "a" || got[1].Label != "c" {
		t.Errorf("pickedOf() = %v, want [a c]", got)
	}
}

func TestPickedOfNone(t *testing.T) {
	if got := pickedOf([]Item{{Label: "a"}}); len(got) != 0 {
		t.Errorf("pickedOf() = %v, want empty", got)
	}
	if got := pickedOf(nil); len(got) != 0 {
		t.Errorf("pickedOf(nil) = %v, want empty", got)
	}
}
