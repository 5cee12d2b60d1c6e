package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"go-vjgrid/apc"
	"go-vjgrid/clock"
	"go-vjgrid/config"
	"go-vjgrid/debug"
	"go-vjgrid/midi"
	"go-vjgrid/theme"
	"go-vjgrid/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return 1
	}

	if cfg.Debug {
		if err := debug.Enable(""); err != nil {
			fmt.Printf("Debug log: %v\n", err)
		}
		defer debug.Disable()
	}

	// Load theme
	var palette *theme.Palette
	if cfg.Palette != "" {
		if palette, err = theme.LoadGPL(cfg.Palette); err != nil {
			fmt.Printf("Palette: %v (using default)\n", err)
		}
	}
	th := theme.New(palette)

	mode, err := apc.ParseFaderMode(cfg.FaderMode)
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return 1
	}

	// Create controller state
	ctrl := apc.NewManager(mode)
	ctrl.SetReporter(debug.Reporter{})
	for _, p := range cfg.Pages {
		ctrl.SetMaxOptionsForPage(p.Page, p.MaxOptions[:])
	}

	// Create MIDI device manager (handles hot-plug)
	var deviceMgr *midi.DeviceManager
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Controller.AutoConnect {
		deviceMgr = midi.NewDeviceManager(cfg.Controller.PortMatch)
		go deviceMgr.Run(ctx)
	}

	fmt.Println("go-vjgrid")
	fmt.Println("Connect the controller any time - it will be detected automatically")
	fmt.Println("")

	m := tui.NewModel(ctrl, deviceMgr, clock.New(cfg.Tempo), th)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}
