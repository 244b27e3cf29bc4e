package inputmap_test

import (
	"math"
	"testing"

	"github.com/go-theft-auto/inputmap"
)

func ptr(v float32) *float32 { return &v }

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func expectValue(t *testing.T, label string, got float32, ok bool, want float32) {
	t.Helper()
	if !ok {
		t.Errorf("%s: expected value %v, got none", label, want)
		return
	}
	if !approx(got, want) {
		t.Errorf("%s: expected value %v, got %v", label, want, got)
	}
}

func expectNoValue(t *testing.T, label string, got float32, ok bool) {
	t.Helper()
	if ok {
		t.Errorf("%s: expected no value, got %v", label, got)
	}
}

func TestAxisSetMostRecentWins(t *testing.T) {
	set := inputmap.NewAxisSet([]inputmap.AxisMember{
		{Input: keyW, Multiplier: ptr(1)},
		{Input: keyS, Multiplier: ptr(-1)},
	})

	set.Update(keyW, inputmap.Pressed, 1)
	v, ok := set.Value()
	expectValue(t, "W pressed", v, ok, 1)
	if set.Phase() != inputmap.PhaseShouldActivate {
		t.Errorf("expected ShouldActivate, got %v", set.Phase())
	}

	set.Update(keyS, inputmap.Pressed, 0.5)
	v, ok = set.Value()
	expectValue(t, "S over W", v, ok, -0.5)

	set.Update(keyS, inputmap.Released, 0)
	v, ok = set.Value()
	expectValue(t, "S released", v, ok, 1)

	set.Update(keyW, inputmap.Released, 0)
	v, ok = set.Value()
	expectNoValue(t, "all released", v, ok)
	if set.Phase() != inputmap.PhaseShouldDeactivate {
		t.Errorf("expected ShouldDeactivate, got %v", set.Phase())
	}
}

func TestAxisSetSupersededSourceKeepsItsMagnitude(t *testing.T) {
	stick := inputmap.GamepadAxisInput(inputmap.GamepadLeftStickY)
	set := inputmap.NewAxisSet([]inputmap.AxisMember{
		{Input: stick},
		{Input: keyS, Multiplier: ptr(-1)},
	})

	set.Update(stick, inputmap.Pressed, 0.6)
	set.Update(keyS, inputmap.Pressed, 1)

	// The stick moves while the key is on top: no visible change
	set.Update(stick, inputmap.Pressed, 0.8)
	v, ok := set.Value()
	expectValue(t, "key on top", v, ok, -1)

	set.Update(keyS, inputmap.Released, 0)
	v, ok = set.Value()
	expectValue(t, "fallback to stick", v, ok, 0.8)
}

func TestAxisSetTopRefreshesValue(t *testing.T) {
	stick := inputmap.GamepadAxisInput(inputmap.GamepadRightStickX)
	set := inputmap.NewAxisSet([]inputmap.AxisMember{{Input: stick, Multiplier: ptr(2)}})

	set.Update(stick, inputmap.Pressed, 0.25)
	v, ok := set.Value()
	expectValue(t, "first reading", v, ok, 0.5)

	set.Update(stick, inputmap.Pressed, 0.4)
	v, ok = set.Value()
	expectValue(t, "second reading", v, ok, 0.8)
}

func TestAxisSetReleaseFromMiddleKeepsTop(t *testing.T) {
	a := inputmap.KeyInput(inputmap.KeyA)
	d := inputmap.KeyInput(inputmap.KeyD)
	set := inputmap.NewAxisSet([]inputmap.AxisMember{
		{Input: a, Multiplier: ptr(-1)},
		{Input: d, Multiplier: ptr(1)},
		{Input: keyE, Multiplier: ptr(3)},
	})

	set.Update(a, inputmap.Pressed, 1)
	set.Update(d, inputmap.Pressed, 1)
	set.Update(keyE, inputmap.Pressed, 1)
	set.Update(d, inputmap.Released, 0)

	v, ok := set.Value()
	expectValue(t, "middle released", v, ok, 3)
	if top, _ := set.Top(); top != keyE {
		t.Errorf("expected top %v, got %v", keyE, top)
	}

	set.Update(keyE, inputmap.Released, 0)
	v, ok = set.Value()
	expectValue(t, "top released", v, ok, -1)
}

func TestAxisSetDefaultMultiplier(t *testing.T) {
	set := inputmap.NewAxisSet([]inputmap.AxisMember{{Input: keyW}})
	if m, ok := set.Multiplier(keyW); !ok || m != 1 {
		t.Errorf("expected default multiplier 1, got %v (%v)", m, ok)
	}
	set.Update(keyW, inputmap.Pressed, 1)
	v, ok := set.Value()
	expectValue(t, "default multiplier", v, ok, 1)
}

func TestAxisSetRedundantPressIsIgnored(t *testing.T) {
	set := inputmap.NewAxisSet([]inputmap.AxisMember{{Input: keyW}, {Input: keyS, Multiplier: ptr(-1)}})
	set.Update(keyW, inputmap.Pressed, 1)
	set.Update(keyS, inputmap.Pressed, 1)
	set.Update(keyW, inputmap.Pressed, 1)

	v, ok := set.Value()
	expectValue(t, "redundant press", v, ok, -1)
}

func TestAxisSetPromotion(t *testing.T) {
	set := inputmap.NewAxisSet([]inputmap.AxisMember{{Input: keyW}})
	set.Update(keyW, inputmap.Pressed, 1)
	set.Promote()
	if set.Phase() != inputmap.PhaseActive {
		t.Errorf("expected Active, got %v", set.Phase())
	}

	set.Update(keyW, inputmap.Released, 0)
	set.Promote()
	if set.Phase() != inputmap.PhaseReleased {
		t.Errorf("expected Released, got %v", set.Phase())
	}
	if _, ok := set.Top(); ok {
		t.Error("expected empty activation stack")
	}
}

func TestAxisSetIgnoresNonMembers(t *testing.T) {
	set := inputmap.NewAxisSet([]inputmap.AxisMember{{Input: keyW}})
	set.Update(keyS, inputmap.Pressed, 1)
	v, ok := set.Value()
	expectNoValue(t, "non-member", v, ok)
	if set.Phase() != inputmap.PhaseReleased {
		t.Errorf("expected Released, got %v", set.Phase())
	}
}

func TestAxisSetMembersReportExplicitMultipliers(t *testing.T) {
	set := inputmap.NewAxisSet([]inputmap.AxisMember{{Input: keyW}, {Input: keyS, Multiplier: ptr(-1)}})
	members := set.Members()
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].Input != keyW || members[0].Multiplier != nil {
		t.Errorf("unexpected first member %+v", members[0])
	}
	if members[1].Input != keyS || members[1].Multiplier == nil || *members[1].Multiplier != -1 {
		t.Errorf("unexpected second member %+v", members[1])
	}
}
