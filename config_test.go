package barneshut

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theta != 0.5 {
		t.Errorf("expected default theta 0.5, got %g", cfg.Theta)
	}
	if cfg.MaxBodiesPerLeaf != 1 {
		t.Errorf("expected default max bodies per leaf 1, got %d", cfg.MaxBodiesPerLeaf)
	}
	if cfg.MaxTreeDepth != 15 {
		t.Errorf("expected default max tree depth 15, got %d", cfg.MaxTreeDepth)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative theta", Config{Theta: -1, MaxBodiesPerLeaf: 1, MaxTreeDepth: 1}},
		{"zero max bodies per leaf", Config{Theta: 0.5, MaxBodiesPerLeaf: 0, MaxTreeDepth: 1}},
		{"zero max tree depth", Config{Theta: 0.5, MaxBodiesPerLeaf: 1, MaxTreeDepth: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfigValidateThetaZeroAllowed(t *testing.T) {
	cfg := Config{Theta: 0, MaxBodiesPerLeaf: 1, MaxTreeDepth: 1}
	if err := cfg.Validate(); err != nil {
		t.Errorf("theta == 0 should be a valid config, got %v", err)
	}
}
