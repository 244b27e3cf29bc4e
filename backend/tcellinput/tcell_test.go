package tcellinput_test

import (
	"slices"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/inputmap/backend/tcellinput"
	"github.com/go-theft-auto/inputmap/inputmaptest"
)

func expectEvents(t *testing.T, rec *inputmaptest.Recorder, want ...string) {
	t.Helper()
	if !slices.Equal(rec.Events, want) {
		t.Errorf("expected %v, got %v", want, rec.Events)
	}
	rec.Reset()
}

func TestKeyHeldUntilSilentTick(t *testing.T) {
	rec := &inputmaptest.Recorder{}
	a := tcellinput.NewAdapter(rec)

	if !a.Feed(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Fatal("expected key event to be consumed")
	}
	a.Flush()
	expectEvents(t, rec, "key W Pressed")

	// Key repeat keeps it held
	a.Feed(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	a.Flush()
	expectEvents(t, rec, "key W Pressed")

	a.Flush()
	expectEvents(t, rec, "key W Released")

	a.Flush()
	expectEvents(t, rec)
}

func TestHoldTicks(t *testing.T) {
	rec := &inputmaptest.Recorder{}
	a := tcellinput.NewAdapter(rec, tcellinput.WithHoldTicks(3))

	a.Feed(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	rec.Reset()
	for range 3 {
		a.Flush()
	}
	expectEvents(t, rec)
	a.Flush()
	expectEvents(t, rec, "key Up Released")
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want []string
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), []string{"key Q Pressed"}},
		{tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), []string{"key 7 Pressed"}},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), []string{"key Space Pressed"}},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), []string{"key Enter Pressed"}},
		{tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), []string{"key LCtrl Pressed", "key S Pressed"}},
	}
	for _, tt := range tests {
		rec := &inputmaptest.Recorder{}
		a := tcellinput.NewAdapter(rec)
		a.Feed(tt.ev)
		if !slices.Equal(rec.Events, tt.want) {
			t.Errorf("expected %v, got %v", tt.want, rec.Events)
		}
	}

	rec := &inputmaptest.Recorder{}
	a := tcellinput.NewAdapter(rec)
	if a.Feed(tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone)) {
		t.Error("unmapped rune should not be consumed")
	}
	if a.Feed(tcell.NewEventInterrupt(nil)) {
		t.Error("non-input event should not be consumed")
	}
}

func TestMouse(t *testing.T) {
	rec := &inputmaptest.Recorder{}
	a := tcellinput.NewAdapter(rec)

	a.Feed(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	expectEvents(t, rec, "motion 4,2 0,0")

	a.Feed(tcell.NewEventMouse(6, 1, tcell.Button1, tcell.ModNone))
	expectEvents(t, rec, "motion 6,1 2,-1", "button left Pressed")

	// Same position, left held: nothing new
	a.Feed(tcell.NewEventMouse(6, 1, tcell.Button1, tcell.ModNone))
	expectEvents(t, rec)

	a.Feed(tcell.NewEventMouse(6, 1, tcell.WheelDown, tcell.ModNone))
	expectEvents(t, rec, "button left Released", "wheel 0,-1")

	a.Feed(tcell.NewEventMouse(6, 1, tcell.Button2, tcell.ModNone))
	rec.Reset()
	a.Reset()
	expectEvents(t, rec, "button right Released")
}
