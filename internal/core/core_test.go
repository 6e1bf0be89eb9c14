package core

import (
	"testing"
	"time"
)

type fakeSim struct{}

func (fakeSim) Name() string { return "fake" }
func (fakeSim) Size() Size { return Size{W: 1, H: 1} }
func (fakeSim) Reset(int64) {}
func (fakeSim) Step() {}
func (fakeSim) Cells() []uint8 { return []uint8{0} }

func TestRegisterIgnoresEmpty(t *testing.T) {
	Register("", func(map[string]string) Sim { return fakeSim{} })
	Register("nil-factory", nil)
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name should not register")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("nil factory should not register")
	}

	Register("fake", func(map[string]string) Sim { return fakeSim{} })
	f, ok := Sims()["fake"]
	if !ok {
		t.Fatal("expected fake sim to be registered")
	}
	if got := f(nil).Name(); got != "fake" {
		t.Fatalf("factory built %q, expected fake", got)
	}
}

func TestFixedStepDefaultsAndFirstTick(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/60 {
		t.Fatalf("expected 60 TPS default, got step %v", fs.step)
	}
	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	fs.SetTPS(1)
	if fs.ShouldStep() {
		t.Fatal("second call within a second should not step at 1 TPS")
	}
}
