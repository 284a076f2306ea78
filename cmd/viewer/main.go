package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srliao/estersim/pkg/chem"
)

func main() {
	debugPtr := flag.String("d", "warn", "output level: debug, info, warn")
	pPtr := flag.String("p", "", "which profile to use; built in defaults if empty")
	f := flag.String("o", "", "detailed log file")
	flag.Parse()

	cfg := chem.DefaultProfile()
	if *pPtr != "" {
		var err error
		cfg, err = chem.LoadProfile(*pPtr)
		if err != nil {
			log.Fatal(err)
		}
	}
	cfg.LogConfig.LogLevel = *debugPtr
	cfg.LogConfig.LogFile = *f

	w, err := chem.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	w.Reset()

	g := newGame(w, cfg.Seed)

	ebiten.SetWindowSize(int(w.Width), int(w.Height))
	ebiten.SetWindowTitle("Esterification")
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
