package craft

import (
	"slices"
	"testing"
	"time"
)

func TestSetRammingIsIdempotent(t *testing.T) {
	c, _ := newRunning(t, Default())

	fx := c.SetRamming(true)
	want := []EffectKind{EffectRamAnimation, EffectRamCollider, EffectJetCue, EffectRamParticles}
	if got := kinds(fx); !slices.Equal(got, want) {
		t.Fatalf("enter effects = %v, want %v", got, want)
	}
	for _, e := range fx {
		if !e.On {
			t.Fatalf("enter effect %v should be on", e)
		}
	}
	if !c.Ram().Active {
		t.Fatal("craft should be ramming")
	}

	if fx := c.SetRamming(true); len(fx) != 0 {
		t.Fatalf("repeated enter produced %v", fx)
	}

	fx = c.SetRamming(false)
	if got := kinds(fx); !slices.Equal(got, want) {
		t.Fatalf("exit effects = %v, want %v", got, want)
	}
	for _, e := range fx {
		if e.On {
			t.Fatalf("exit effect %v should be off", e)
		}
	}
	if fx := c.SetRamming(false); len(fx) != 0 {
		t.Fatalf("repeated exit produced %v", fx)
	}
}

func TestTickRunsRamPredicate(t *testing.T) {
	ramming := false
	pred := func(in RamInput) bool { return ramming }
	c, clk := newRunning(t, Default(), WithRamPredicate(pred))

	if fx := tick(c, clk, 16*time.Millisecond, false); fx.Count(EffectRamAnimation) != 0 {
		t.Fatal("predicate false should not enter ramming")
	}
	ramming = true
	if fx := tick(c, clk, 16*time.Millisecond, false); fx.Count(EffectRamAnimation) != 1 {
		t.Fatal("predicate true should enter ramming once")
	}
	if fx := tick(c, clk, 16*time.Millisecond, false); fx.Count(EffectRamAnimation) != 0 {
		t.Fatal("held predicate should not re-enter")
	}
}

func TestNeverRammingStub(t *testing.T) {
	c, clk := newRunning(t, Default())
	for i := 0; i < 10; i++ {
		tick(c, clk, 16*time.Millisecond, true)
	}
	if c.Ram().Active {
		t.Fatal("default predicate never rams")
	}
}

func TestFinishExitsRamming(t *testing.T) {
	c, _ := newRunning(t, Default())
	c.SetRamming(true)

	_, fx := c.AdjustHealth(-9999)
	if c.Ram().Active {
		t.Fatal("finish should force ram exit")
	}
	e, ok := Effects(fx).Last(EffectRamCollider)
	if !ok || e.On {
		t.Fatalf("finish should disable the ram collider, got %v", e)
	}
	if fx := c.SetRamming(true); len(fx) != 0 {
		t.Fatal("ramming is ignored after finish")
	}
}
