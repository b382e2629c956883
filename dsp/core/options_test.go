package core

import "testing"

func TestApplyPipelineOptions(t *testing.T) {
	cfg := ApplyPipelineOptions(WithLimit(1024), WithSmoothing(true), WithWindow(8), WithScale(ScaleLinear))
	if cfg.Limit != 1024 {
		t.Fatalf("limit = %d, want 1024", cfg.Limit)
	}
	if !cfg.Smooth {
		t.Fatal("smooth = false, want true")
	}
	if cfg.Window != 8 {
		t.Fatalf("window = %d, want 8", cfg.Window)
	}
	if cfg.Scale != ScaleLinear {
		t.Fatalf("scale = %v, want linear", cfg.Scale)
	}

	cfg = ApplyPipelineOptions(WithFloorDB(-90))
	if cfg.FloorDB != -90 {
		t.Fatalf("floor = %v, want -90", cfg.FloorDB)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyPipelineOptions(WithLimit(0), WithWindow(-1), WithScale(Scale(7)), WithFloorDB(3), nil)
	def := DefaultPipelineConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestDefaultPipelineConfig(t *testing.T) {
	cfg := DefaultPipelineConfig()
	if cfg.Limit != 8192 || cfg.Window != 16 || cfg.Smooth || cfg.Scale != ScaleDecibel || cfg.FloorDB != -120 {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
}

func TestParseScale(t *testing.T) {
	tests := []struct {
		in      string
		want    Scale
		wantErr bool
	}{
		{in: "db", want: ScaleDecibel},
		{in: " Linear ", want: ScaleLinear},
		{in: "decibel", want: ScaleDecibel},
		{in: "log", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScale(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseScale(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScale(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseScale(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.String() == "" {
				t.Fatal("empty String()")
			}
		})
	}
}
