package core

import "testing"

func TestInputFramePreservesOrder(t *testing.T) {
	f := NewInputFrame()
	f.Digit('1')
	f.Digit('2')
	f.Set(ActionDelete)
	f.Set(ActionConfirm)

	want := []Event{
		{Action: ActionDigit, Rune: '1'},
		{Action: ActionDigit, Rune: '2'},
		{Action: ActionDelete},
		{Action: ActionConfirm},
	}
	if f.Len() != len(want) {
		t.Fatalf("Len() = %d, expected %d", f.Len(), len(want))
	}
	for i, e := range want {
		if f.Events[i] != e {
			t.Errorf("event %d = %+v, expected %+v", i, f.Events[i], e)
		}
	}
}

func TestInputFrameDropsNone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)
	if f.Len() != 0 {
		t.Errorf("ActionNone should be dropped, Len() = %d", f.Len())
	}
}

func TestInputFrameHasClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)

	if !f.Has(ActionConfirm) || f.Has(ActionQuit) {
		t.Error("Has returned wrong result")
	}

	f.Clear()

	if f.Len() != 0 || f.Has(ActionConfirm) {
		t.Error("Clear should empty the frame")
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() != "Confirm" || Action(99).String() != "Unknown" {
		t.Error("Action.String returned wrong name")
	}
}
