package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"E1", "emp-007", "a.b_c", "1001"}
	invalid := []string{"", "code with spaces", "emp/1", "x@y", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimestamp(t *testing.T) {
	valid := []string{"2024-01-10 09:00:00", "1999-12-31 23:59:59"}
	invalid := []string{"2024-01-10T09:00:00Z", "2024-01-10", "09:00:00", "2024-01-10 25:00:00", ""}
	for _, s := range valid {
		_, ok := IsValidTimestamp(s)
		if !ok {
			t.Errorf("IsValidTimestamp(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidTimestamp(s)
		if ok {
			t.Errorf("IsValidTimestamp(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("b", slice) {
		t.Error("IsInSlice(\"b\") = false, want true")
	}
	if IsInSlice("z", slice) {
		t.Error("IsInSlice(\"z\") = true, want false")
	}
}
