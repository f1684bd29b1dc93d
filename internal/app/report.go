package app

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/jspeirs/mazechomp/internal/sim"
)

// buildDebugReport dumps the full frame state as text, for pasting into a
// bug report.
func buildDebugReport(snap sim.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- mazechomp debug report ---\n")
	fmt.Fprintf(&b, "tick=%d phase=%s\n", snap.Tick, snap.Phase)
	fmt.Fprintf(&b, "score=%d high=%d lives=%d level=%d\n", snap.Score, snap.HighScore, snap.Lives, snap.Level)
	fmt.Fprintf(&b, "pellets=%d/%d power_ticks=%d\n\n", snap.Pellets, snap.Total, snap.PowerTicks)

	fmt.Fprintf(&b, "player: pos=(%.1f,%.1f) dir=%s mouth=%.2f\n",
		snap.Player.X, snap.Player.Y, snap.Player.Dir, snap.Player.MouthPhase)
	for _, g := range snap.Ghosts {
		fright := ""
		if g.Frightened {
			fright = " frightened"
		}
		fmt.Fprintf(&b, "%-8s pos=(%.1f,%.1f) dir=%-5s mode=%s%s\n",
			g.ID, g.X, g.Y, g.Dir, g.Mode, fright)
	}
	return b.String()
}

// copyDebugReport puts the current frame's report on the system clipboard.
func (a *App) copyDebugReport() error {
	return clipboard.WriteAll(buildDebugReport(a.sim.Snapshot()))
}
