package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionFire) || f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    float64
	}{
		{"idle", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
		{"fire only", []Action{ActionFire}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.want {
				t.Errorf("Direction() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
