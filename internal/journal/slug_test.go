package journal

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Texture as Language", "texture-as-language"},
		{"  Mohair & Wool  ", "mohair-and-wool"},
		{"Étude No. 3", "tude-no-3"},
		{"Winter's End", "winters-end"},
		{"---", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := slugify(c.in); got != c.want {
			t.Fatalf("slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
