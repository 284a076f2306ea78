package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/srliao/estersim/pkg/chem"
)

func main() {
	var cfg chem.Profile
	var err error

	debugPtr := flag.String("d", "warn", "output level: debug, info, warn")
	secondsPtr := flag.Int("s", 60, "how many seconds to run the sim for")
	pPtr := flag.String("p", "", "which profile to use; built in defaults if empty")
	f := flag.String("o", "", "detailed log file")
	showCaller := flag.Bool("c", false, "show caller in debug low")
	start := flag.String("start", "", "start mode: stoich, alcohol, acid; overrides the profile")
	temp := flag.Int("t", 0, "temperature 1-5; overrides the profile")
	diag := flag.Bool("diag", false, "run with diagnostic params")
	untilDone := flag.Bool("u", false, "stop early once a reactant is used up")
	flag.Parse()

	cfg = chem.DefaultProfile()
	if *pPtr != "" {
		cfg, err = chem.LoadProfile(*pPtr)
		if err != nil {
			log.Fatal(err)
		}
	}

	if *start != "" {
		cfg.StartMode, err = chem.ParseStartMode(*start)
		if err != nil {
			log.Fatal(err)
		}
		//explicit counts would otherwise win over the start mode
		cfg.Acid, cfg.Alcohol = nil, nil
	}
	if *temp != 0 {
		cfg.Temperature = *temp
	}
	if *diag {
		cfg.Diagnostic = true
	}

	cfg.LogConfig.LogLevel = *debugPtr
	cfg.LogConfig.LogFile = *f
	cfg.LogConfig.LogShowCaller = *showCaller
	if *f != "" {
		os.Remove(*f)
	}

	s, err := chem.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	s.Reset()

	initial := s.Counts()
	begin := time.Now()
	var stats chem.Stats
	if *untilDone {
		s.RunUntil(*secondsPtr*60, chem.Exhausted)
		stats = s.Stats()
	} else {
		stats = s.Run(*secondsPtr)
	}
	elapsed := time.Since(begin)

	name := *pPtr
	if name == "" {
		name = "default"
	}
	fmt.Printf("Running profile %v (%v, T=%v, diagnostic=%v)\n", name, s.StartMode(), s.Temperature(), s.Diagnostic())
	fmt.Printf("\tstart: %v\n", initial)
	if stats.Placed != stats.Requested {
		fmt.Printf("\tonly placed %v of %v\n", stats.Placed, stats.Requested)
	}
	fmt.Printf("\tend:   %v\n", s.Counts())
	fmt.Printf("%v reactions and %v collisions over %v ticks (%.1f sim seconds). Sim took %s\n",
		stats.Reactions, stats.Collisions, stats.Ticks, float64(stats.Ticks)/60, elapsed)
}
