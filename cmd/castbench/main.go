package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"gridcast/internal/config"
	"gridcast/internal/core"
	"gridcast/internal/player"
	"gridcast/internal/projection"
)

type paramSet struct {
	rays      int
	workers   int
	radius    float64
	exclusive bool
}

func (p paramSet) String() string {
	return fmt.Sprintf("rays=%d workers=%d radius=%.0f exclusive=%v", p.rays, p.workers, p.radius, p.exclusive)
}

type scenarioResult struct {
	params    paramSet
	perFrame  time.Duration
	commands  int
	strips    int
	meanDepth float64
}

func main() {
	frames := flag.Int("frames", 120, "frames to render per scenario")
	size := flag.Int("size", 64, "generated map side in cells")
	density := flag.Float64("density", 0.1, "generated wall density")
	seed := flag.Int64("seed", 1337, "map seed")
	jobsN := flag.Int("jobs", 1, "scenarios measured concurrently")
	flag.Parse()

	grid := core.NewGrid(*size, *size)
	grid.Border()
	core.ScatterWalls(grid, core.NewRNG(*seed), *density)

	rayOptions := []int{100, 200, 400, 800}
	workerOptions := []int{1, 2, 4, runtime.NumCPU()}
	radiusOptions := []float64{10, 20, 40}

	var sets []paramSet
	for _, rays := range rayOptions {
		for _, workers := range workerOptions {
			for _, radius := range radiusOptions {
				for _, exclusive := range []bool{false, true} {
					sets = append(sets, paramSet{rays: rays, workers: workers, radius: radius, exclusive: exclusive})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d jobs, %d frames, %dx%d map, %d walls)\n",
		len(sets), *jobsN, *frames, grid.W, grid.H, grid.Walls())

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*jobsN, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(grid, params, *frames)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].perFrame < all[j].perFrame })
	elapsed := time.Since(start)

	fmt.Printf("\nFastest 5 (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		printResult(i+1, all[i])
	}
	fmt.Printf("\nSlowest:\n")
	printResult(len(all), all[len(all)-1])
}

func printResult(rank int, res scenarioResult) {
	fmt.Printf("%2d) frame=%s cmds=%d strips=%d depth=%.2f %s\n",
		rank, res.perFrame.Round(time.Microsecond), res.commands, res.strips, res.meanDepth, res.params)
}

func runScenario(base *core.Grid, params paramSet, frames int) scenarioResult {
	cfg := config.Default()
	cfg.NumberOfRays = params.rays
	cfg.Workers = params.workers
	cfg.FOVRadius = params.radius
	cfg.ExclusiveLines = params.exclusive

	// Each scenario owns its grid because the player marker is written into it.
	grid := core.NewGrid(base.W, base.H)
	copy(grid.Cells(), base.Cells())
	p := player.New(grid, cfg.MovementSpeed, cfg.AngularSpeed)
	engine := projection.New(&cfg)

	var commands, strips int
	var depth float64
	var elapsed time.Duration
	for f := 0; f < frames; f++ {
		start := time.Now()
		commands += len(engine.Render(projection.FirstPerson, grid, p))
		elapsed += time.Since(start)
		for _, c := range engine.Columns(grid, p) {
			if c.Visible {
				strips++
				depth += c.Perpendicular
			}
		}
		p.Rotate(cfg.AngularSpeed)
	}

	res := scenarioResult{params: params, commands: commands / max(frames, 1)}
	if frames > 0 {
		res.perFrame = elapsed / time.Duration(frames)
	}
	res.strips = strips / max(frames, 1)
	if strips > 0 {
		res.meanDepth = depth / float64(strips)
	}
	return res
}
