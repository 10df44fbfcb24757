package core

import "testing"

func TestMotionModeRoundTrip(t *testing.T) {
	for _, m := range []MotionMode{MotionAuto, MotionReduced, MotionFull} {
		got, err := ParseMotionMode(m.String())
		if err != nil {
			t.Fatalf("Expected %v to parse, got %v", m, err)
		}
		if got != m {
			t.Errorf("Expected %v, got %v", m, got)
		}
	}
}

func TestParseMotionModeUnknown(t *testing.T) {
	tests := []struct {
		in      string
		want    MotionMode
		wantErr bool
	}{
		{"", MotionAuto, false},
		{"reduced", MotionReduced, false},
		{"Reduced", MotionAuto, true},
		{"none", MotionAuto, true},
	}
	for _, tt := range tests {
		got, err := ParseMotionMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: expected error=%v, got %v", tt.in, tt.wantErr, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestMotionModeNextCycles(t *testing.T) {
	m := MotionAuto
	want := []MotionMode{MotionReduced, MotionFull, MotionAuto}
	for i, w := range want {
		m = m.Next()
		if m != w {
			t.Errorf("Step %d: expected %v, got %v", i, w, m)
		}
	}
}
