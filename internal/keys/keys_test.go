package keys

import "testing"

func TestThemeKey(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Space", "space"},
		{"  ocean  depths ", "ocean_depths"},
		{"Breakfast\tFoods", "breakfast_foods"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := ThemeKey(c.in); got != c.want {
			t.Fatalf("ThemeKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
