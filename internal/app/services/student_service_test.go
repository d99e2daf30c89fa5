package services

import "testing"

func TestNormalizeRoll(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"lw-2024-001", "LW-2024-001"},
		{"  LW-2024-001  ", "LW-2024-001"},
		{" lw-2024-001\t", "LW-2024-001"},
		{"ALREADY", "ALREADY"},
		{"", ""},
	}

	for _, c := range cases {
		if got := NormalizeRoll(c.in); got != c.want {
			t.Errorf("NormalizeRoll(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
