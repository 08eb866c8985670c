package models

import "testing"

func TestValidInstanceType(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "M1", value: "M1", valid: true},
		{name: "M2", value: "M2", valid: true},
		{name: "M3", value: "M3", valid: true},
		{name: "reversed", value: "2M", valid: false},
		{name: "lowercase", value: "m1", valid: false},
		{name: "unknown generation", value: "M4", valid: false},
		{name: "empty", value: "", valid: false},
		{name: "padded", value: " M1", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidInstanceType(tt.value); got != tt.valid {
				t.Errorf("ValidInstanceType(%q) = %v, want %v", tt.value, got, tt.valid)
			}
		})
	}
}

func TestInstanceTypesOrder(t *testing.T) {
	want := []InstanceType{InstanceM1, InstanceM2, InstanceM3}
	if len(InstanceTypes) != len(want) {
		t.Fatalf("Expected %d instance types, got %d", len(want), len(InstanceTypes))
	}
	for i, typ := range want {
		if InstanceTypes[i] != typ {
			t.Errorf("InstanceTypes[%d] = %s, want %s", i, InstanceTypes[i], typ)
		}
	}
}

func TestInstanceTypeString(t *testing.T) {
	if got := InstanceM2.String(); got != "M2" {
		t.Errorf("String() = %q, want %q", got, "M2")
	}
}
