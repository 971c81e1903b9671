package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	kitlog "github.com/go-kit/kit/log"

	planetpos "github.com/ViktorWase/PlanetPosition"
)

var (
	planetFlag   string
	tFlag        float64
	dateFlag     string
	unixFlag     bool
	icrfFlag     bool
	circularFlag bool
)

func init() {
	flag.StringVar(&planetFlag, "planet", "", "planet name (case-insensitive) or 0-indexed number, 0 = Mercury")
	flag.Float64Var(&tFlag, "t", math.NaN(), "time in decimal years (2000.0 = J2000), or Unix milliseconds with -unix")
	flag.StringVar(&dateFlag, "date", "", "RFC3339 instant, e.g. 2017-02-06T02:41:57Z (overrides -t)")
	flag.BoolVar(&unixFlag, "unix", false, "interpret -t as milliseconds since the Unix epoch")
	flag.BoolVar(&icrfFlag, "icrf", false, "return equatorial (ICRF) coordinates instead of ecliptic")
	flag.BoolVar(&circularFlag, "circular", false, "use the circular-orbit approximation (skips the Kepler solve)")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "cmd", "planetpos")

	if planetFlag == "" {
		examples(logger)
		return
	}

	ref := planetpos.ByName(planetFlag)
	if idx, err := strconv.Atoi(planetFlag); err == nil {
		ref = planetpos.ByIndex(idx)
	}
	opts := planetpos.Options{UnixTime: unixFlag, ICRF: icrfFlag, Circular: circularFlag}

	var pos []float64
	var err error
	if dateFlag != "" {
		var dt time.Time
		dt, err = time.Parse(time.RFC3339, dateFlag)
		if err != nil {
			logger.Log("error", err, "date", dateFlag)
			os.Exit(1)
		}
		var planet planetpos.Planet
		planet, err = ref.Resolve()
		if err == nil {
			pos, err = planet.PositionAtEpoch(dt, opts)
		}
	} else {
		pos, err = planetpos.Position(ref, tFlag, opts)
	}
	if err != nil {
		logger.Log("error", err)
		os.Exit(1)
	}
	fmt.Printf("[%.12f, %.12f, %.12f]\n", pos[0], pos[1], pos[2])
}

// examples prints a handful of sample positions when no planet is requested.
func examples(logger kitlog.Logger) {
	for _, ex := range []struct {
		ref  planetpos.PlanetRef
		t    float64
		opts planetpos.Options
	}{
		{planetpos.ByIndex(2), 2000, planetpos.Options{ICRF: true}},
		{planetpos.ByName("jupiter"), 2017.101, planetpos.Options{Circular: true}},
		{planetpos.ByName("earth"), 2100.5, planetpos.Options{ICRF: true, Circular: true}},
		{planetpos.ByIndex(0), 2000.7, planetpos.Options{}},
	} {
		pos, err := planetpos.Position(ex.ref, ex.t, ex.opts)
		if err != nil {
			logger.Log("error", err)
			os.Exit(1)
		}
		fmt.Printf("[%.12f, %.12f, %.12f]\n", pos[0], pos[1], pos[2])
	}
}
