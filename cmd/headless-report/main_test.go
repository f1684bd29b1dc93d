package main

import "testing"

func TestClassifyRun(t *testing.T) {
	cases := []struct {
		name string
		rs   runStats
		want string
	}{
		{"cleared a level", runStats{level: 2, gameOverTick: -1}, "advancing"},
		{"ran out of lives", runStats{level: 1, gameOverTick: 9000}, "wiped"},
		{"no deaths", runStats{level: 1, gameOverTick: -1, deaths: 0}, "untouched"},
		{"lost lives but alive", runStats{level: 1, gameOverTick: -1, deaths: 2}, "surviving"},
	}
	for _, tc := range cases {
		if got := classifyRun(tc.rs); got != tc.want {
			t.Errorf("%s: classifyRun = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestSurvivalRate(t *testing.T) {
	all := []runStats{
		{gameOverTick: -1},
		{gameOverTick: 5000},
		{gameOverTick: -1},
		{gameOverTick: 12000},
	}
	if got := survivalRate(all); got != 0.5 {
		t.Errorf("survivalRate = %.2f, want 0.50", got)
	}
	if got := survivalRate(nil); got != 0 {
		t.Errorf("survivalRate(nil) = %.2f, want 0", got)
	}
}

func TestAverageScore(t *testing.T) {
	all := []runStats{{score: 100}, {score: 300}}
	if got := averageScore(all); got != 200 {
		t.Errorf("averageScore = %.1f, want 200", got)
	}
}
