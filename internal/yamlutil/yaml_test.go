package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := Unmarshal([]byte("name: demo\ncount: 3\n"), &s); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if s.Name != "demo" || s.Count != 3 {
			t.Errorf("Unmarshal() = %+v, want {demo 3}", s)
		}
	})

	t.Run("unknown fields tolerated", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := Unmarshal([]byte("name: demo\nextra: true\n"), &s); err != nil {
			t.Errorf("Unmarshal() error = %v, want unknown fields ignored", err)
		}
	})

	t.Run("nil data", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := Unmarshal(nil, &s); !errors.Is(err, ErrNilData) {
			t.Errorf("Unmarshal(nil) error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("Unmarshal(..., nil) error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()

		var s sample
		big := []byte("name: " + strings.Repeat("a", MaxInputSize))
		if err := Unmarshal(big, &s); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("Unmarshal(oversized) error = %v, want ErrInputTooLarge", err)
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := UnmarshalStrict([]byte("name: demo\n"), &s); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := UnmarshalStrict([]byte("name: demo\nextra: true\n"), &s); err == nil {
			t.Error("UnmarshalStrict() accepted an unknown field")
		}
	})
}
