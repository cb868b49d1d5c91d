package middleware

import "testing"

func TestRemainingQuota(t *testing.T) {
	cases := []struct {
		max   int
		count int64
		want  int
	}{
		{10, 1, 9},
		{10, 10, 0},
		{10, 11, 0},
		{10, 250, 0},
	}
	for _, tc := range cases {
		if got := remainingQuota(tc.max, tc.count); got != tc.want {
			t.Errorf("remainingQuota(%d, %d) = %d, want %d", tc.max, tc.count, got, tc.want)
		}
	}
}
