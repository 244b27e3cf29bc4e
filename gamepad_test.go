package inputmap_test

import (
	"slices"
	"testing"

	"github.com/go-theft-auto/inputmap"
	"github.com/go-theft-auto/inputmap/inputmaptest"
)

func TestGamepadTrackerForwardsChanges(t *testing.T) {
	rec := &inputmaptest.Recorder{}
	tracker := inputmap.NewGamepadTracker()

	var snap inputmap.GamepadSnapshot
	snap.Buttons[inputmap.GamepadSouth] = 1
	snap.Axes[inputmap.GamepadLeftStickY] = 0.5
	tracker.Update(rec, 2, snap)

	want := []string{"pad 2 button south 1", "pad 2 axis left_stick_y 0.5"}
	if !slices.Equal(rec.Events, want) {
		t.Errorf("expected %v, got %v", want, rec.Events)
	}

	rec.Reset()
	tracker.Update(rec, 2, snap)
	if len(rec.Events) != 0 {
		t.Errorf("expected no events for an unchanged pad, got %v", rec.Events)
	}
	if !tracker.Known(2) {
		t.Error("expected pad 2 to be known")
	}

	tracker.Disconnect(rec, 2)
	want = []string{"pad 2 button south 0", "pad 2 axis left_stick_y 0"}
	if !slices.Equal(rec.Events, want) {
		t.Errorf("expected %v, got %v", want, rec.Events)
	}
	if tracker.Known(2) || len(tracker.Pads()) != 0 {
		t.Error("disconnected pad should be forgotten")
	}

	rec.Reset()
	tracker.Disconnect(rec, 2)
	if len(rec.Events) != 0 {
		t.Errorf("second disconnect should be silent, got %v", rec.Events)
	}
}

func TestGamepadTrackerDrivesRegistry(t *testing.T) {
	reg := newGameplayRegistry(t)
	player := reg.CreateActor(ctxGameplay)
	tracker := inputmap.NewGamepadTracker()

	var snap inputmap.GamepadSnapshot
	snap.Buttons[inputmap.GamepadRightTrigger] = 0.8
	tick(reg, func() { tracker.Update(reg, 0, snap) })
	if !handle(t, reg, player).JustPressed(actFire) {
		t.Error("expected Fire on trigger pull")
	}

	tick(reg, func() { tracker.Disconnect(reg, 0) })
	if !handle(t, reg, player).JustReleased(actFire) {
		t.Error("expected Fire released on disconnect")
	}
}
