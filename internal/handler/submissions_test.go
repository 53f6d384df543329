package handler

import "testing"

func TestRoundCoordBlursToFourDecimals(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{60.392643218, 60.3926},
		{5.3245499, 5.3245},
		{-5.3245500001, -5.3246},
		{0, 0},
		{89.99999, 90.0},
	}
	for _, c := range cases {
		if got := roundCoord(c.in, publicCoordDecimals); got != c.want {
			t.Errorf("roundCoord(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
