package domain

import (
	"errors"
	"testing"
)

func TestParseTime_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"90", 90},
		{"0", 0},
		{"1:30", 90},
		{"01:02:03", 3723},
		{"2:00:00", 7200},
		{"10.5", 10.5},
		{"1:30.5", 90.5},
		{"0:0:0.25", 0.25},
		{" 45 ", 45},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if err != nil {
				t.Fatalf("ParseTime(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTime_Invalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"1:2:3:4",
		"abc",
		"1:xx",
		"1::2:3",
		"12m",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTime(input)
			if err == nil {
				t.Fatalf("ParseTime(%q) expected error, got nil", input)
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ParseTime(%q) error = %v, want ErrInvalidFormat", input, err)
			}
		})
	}
}
