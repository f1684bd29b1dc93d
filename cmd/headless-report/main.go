package main

import (
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/jspeirs/mazechomp/internal/sim"
)

type runStats struct {
	runIndex int
	seed     int64

	score       int
	level       int
	pelletsDot  int
	powerDots   int
	ghostsEaten int
	deaths      int

	firstDeathTick int // -1 when no death occurred
	gameOverTick   int // -1 when the run outlived the tick budget
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless autopilot runs")
	flag.IntVar(&ticks, "ticks", 18000, "tick budget per run (18000 = 5 minutes)")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Printf("=== Headless Autopilot Report ===\n")
	fmt.Printf("batch=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		uuid.NewString(), runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runAutopilot(i+1, seed, ticks)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runAutopilot(runIndex int, seed int64, ticks int) runStats {
	ts := sim.NewTestSim(sim.WithSeed(seed))
	var pilot sim.Autopilot

	stats := runStats{
		runIndex:       runIndex,
		seed:           seed,
		firstDeathTick: -1,
		gameOverTick:   -1,
	}

	for i := 0; i < ticks; i++ {
		pilot.Steer(ts.Sim)
		ts.RunTicks(1)
		if ts.Sim.Phase() == sim.PhaseGameOver {
			stats.gameOverTick = int(ts.Sim.Tick())
			break
		}
	}

	stats.score = ts.Sim.Score()
	stats.level = ts.Sim.Level()
	stats.pelletsDot = ts.SimLog.CountCategory("pellet", "dot")
	stats.powerDots = ts.SimLog.CountCategory("pellet", "power")
	stats.ghostsEaten = ts.SimLog.CountCategory("ghost", "eaten")
	stats.deaths = ts.SimLog.CountCategory("round", "death")
	if deaths := ts.SimLog.Filter("round", "death"); len(deaths) > 0 {
		stats.firstDeathTick = deaths[0].Tick
	}
	return stats
}

// classifyRun labels a run's outcome for the summary line.
func classifyRun(rs runStats) string {
	switch {
	case rs.level > 1 && rs.gameOverTick < 0:
		return "advancing"
	case rs.gameOverTick >= 0:
		return "wiped"
	case rs.deaths == 0:
		return "untouched"
	default:
		return "surviving"
	}
}

// survivalRate is the fraction of runs that outlived the tick budget.
func survivalRate(all []runStats) float64 {
	if len(all) == 0 {
		return 0
	}
	alive := 0
	for _, rs := range all {
		if rs.gameOverTick < 0 {
			alive++
		}
	}
	return float64(alive) / float64(len(all))
}

func averageScore(all []runStats) float64 {
	if len(all) == 0 {
		return 0
	}
	total := 0
	for _, rs := range all {
		total += rs.score
	}
	return float64(total) / float64(len(all))
}

func printRun(rs runStats) {
	fmt.Printf("--- run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s score=%d level=%d\n", classifyRun(rs), rs.score, rs.level)
	fmt.Printf("pellets=%d power=%d ghosts_eaten=%d deaths=%d\n",
		rs.pelletsDot, rs.powerDots, rs.ghostsEaten, rs.deaths)
	if rs.firstDeathTick >= 0 {
		fmt.Printf("first_death_tick=%d\n", rs.firstDeathTick)
	}
	if rs.gameOverTick >= 0 {
		fmt.Printf("game_over_tick=%d\n", rs.gameOverTick)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	fmt.Printf("=== Aggregate (%d runs) ===\n", len(all))
	fmt.Printf("survival_rate=%.2f avg_score=%.1f\n", survivalRate(all), averageScore(all))

	best := runStats{score: -1}
	for _, rs := range all {
		if rs.score > best.score {
			best = rs
		}
	}
	if best.score >= 0 {
		fmt.Printf("best: run %d (seed=%d) score=%d level=%d\n",
			best.runIndex, best.seed, best.score, best.level)
	}
}
