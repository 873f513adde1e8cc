package config

import (
	"errors"
	"testing"
)

func TestMotionTablesValid(t *testing.T) {
	for _, compact := range []bool{false, true} {
		if err := MotionFor(compact).Validate(); err != nil {
			t.Errorf("MotionFor(%v).Validate() = %v", compact, err)
		}
	}
}

func TestCompactOverridesOnlyCruiseTargets(t *testing.T) {
	def, compact := DefaultMotion(), CompactMotion()
	if compact.TargetSpeed >= def.TargetSpeed || compact.TargetAngularSpeed >= def.TargetAngularSpeed {
		t.Errorf("Compact cruise targets should be slower: %+v vs %+v", compact, def)
	}

	compact.TargetSpeed = def.TargetSpeed
	compact.TargetAngularSpeed = def.TargetAngularSpeed
	if compact != def {
		t.Errorf("Compact table differs beyond the cruise targets:\n%+v\n%+v", compact, def)
	}
}

func TestValidateRejectsBrokenBands(t *testing.T) {
	m := DefaultMotion()
	m.TargetSpeedRange = m.GoHomeDistance + 1
	if err := m.Validate(); !errors.Is(err, ErrInvalidBands) {
		t.Errorf("Validate() = %v, want ErrInvalidBands", err)
	}

	m = DefaultMotion()
	m.TurnaroundAngleMin, m.TurnaroundAngleMax = 90, 10
	if err := m.Validate(); err == nil {
		t.Error("Expected an error for inverted turnaround angles")
	}
}
