package main

import (
	"flag"
	"os"

	"gridcast/internal/core"
	"gridcast/internal/level"

	"github.com/sirupsen/logrus"
)

func main() {
	width := flag.Int("width", 32, "map width in cells")
	height := flag.Int("height", 32, "map height in cells")
	density := flag.Float64("density", 0.08, "chance an interior cell becomes a wall")
	seed := flag.Int64("seed", 1337, "seed for wall placement")
	border := flag.Bool("border", true, "wall off the outer ring")
	out := flag.String("out", "data/map.png", "output PNG path")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *width <= 0 || *height <= 0 {
		log.Fatalf("map size must be positive, got %dx%d", *width, *height)
	}
	if *density < 0 || *density > 1 {
		log.Fatalf("density must be in [0,1], got %g", *density)
	}

	g := core.NewGrid(*width, *height)
	if *border {
		g.Border()
	}
	core.ScatterWalls(g, core.NewRNG(*seed), *density)

	if err := level.Save(*out, g); err != nil {
		log.WithError(err).Fatal("write map")
	}
	log.WithFields(logrus.Fields{
		"path":  *out,
		"size":  g.Size(),
		"walls": g.Walls(),
		"seed":  *seed,
	}).Info("map written")
}
