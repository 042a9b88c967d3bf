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

	var s sample
	if err := Unmarshal([]byte("name: plan\ncount: 3\n"), &s); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if s.Name != "plan" || s.Count != 3 {
		t.Errorf("got %+v", s)
	}
}

func TestUnmarshal_Validation(t *testing.T) {
	t.Parallel()

	var s sample

	if err := Unmarshal(nil, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data: error = %v, want ErrNilData", err)
	}
	if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil dest: error = %v, want ErrNilDestination", err)
	}

	big := []byte("name: " + strings.Repeat("a", MaxInputSize))
	if err := Unmarshal(big, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized: error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrict_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var s sample
	if err := UnmarshalStrict([]byte("name: x\nbogus: y\n"), &s); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := Marshal(sample{Name: "plan", Count: 2})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var s sample
	if err := Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if s != (sample{Name: "plan", Count: 2}) {
		t.Errorf("round trip got %+v", s)
	}
}
