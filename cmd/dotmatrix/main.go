package main

import (
	"flag"
	"os"

	"github.com/dotmatrix-emu/dotmatrix/internal/gameboy"
	"github.com/dotmatrix-emu/dotmatrix/pkg/display"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
	"github.com/dotmatrix-emu/dotmatrix/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The ROM file to load")
	debug := flag.Bool("debug", false, "Enable the LD B, B software breakpoint")
	speed := flag.Float64("speed", 1, "Emulation speed multiplier")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	logger := log.New()
	if *verbose {
		logger = log.NewDebug()
	}

	if *romFile == "" {
		logger.Errorf("no ROM file provided")
		flag.Usage()
		os.Exit(1)
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("failed to load ROM: %v", err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.Speed(*speed),
	}
	if *debug {
		opts = append(opts, gameboy.Debug())
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		logger.Errorf("failed to start emulator: %v", err)
		os.Exit(1)
	}

	mon, err := display.NewDisplay(gb.MMU.Cart.Title())
	if err != nil {
		logger.Errorf("failed to open display: %v", err)
		os.Exit(1)
	}
	defer mon.Close()

	gb.Start(mon)
}
