package app

import (
	"strings"
	"testing"

	"github.com/jspeirs/mazechomp/internal/sim"
)

func TestBuildDebugReport_IncludesAllAgents(t *testing.T) {
	snap := sim.Snapshot{
		Tick:  420,
		Phase: sim.PhasePlaying,
		Score: 1230,
		Lives: 2,
		Level: 3,
	}
	for i := range snap.Ghosts {
		snap.Ghosts[i].ID = sim.GhostID(i)
	}
	snap.Ghosts[sim.GhostShy].Frightened = true

	report := buildDebugReport(snap)
	for _, want := range []string{"tick=420", "score=1230", "player:", "chaser", "ambusher", "flanker", "shy", "frightened"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
