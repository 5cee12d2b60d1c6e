package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"go-vjgrid/apc"
	"go-vjgrid/midi"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "detect":
		detect()
	case "leds":
		testLEDs()
	case "monitor":
		monitor()
	case "poll":
		pollDevices()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("APC mini mk2 test scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list     - List all MIDI ports")
	fmt.Println("  detect   - Find the APC mini mk2")
	fmt.Println("  leds     - Light every page colour, then clear")
	fmt.Println("  monitor  - Print classified input and mirror it on the LEDs")
	fmt.Println("  poll     - Poll for device changes")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	ins, outs, ok := midi.ListPorts(3 * time.Second)
	if !ok {
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
		return
	}
	for i, p := range ins {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
	fmt.Println("\n=== MIDI Output Ports ===")
	for i, p := range outs {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
}

func findPorts() (drivers.In, drivers.Out) {
	var in drivers.In
	for _, p := range gomidi.GetInPorts() {
		if strings.Contains(strings.ToLower(p.String()), midi.DefaultPortMatch) {
			in = p
			break
		}
	}
	name := ""
	if in != nil {
		name = in.String()
	}
	return in, midi.FindOutPort(gomidi.GetOutPorts(), name, midi.DefaultPortMatch)
}

func detect() {
	fmt.Println("Looking for APC mini mk2...")

	in, out := findPorts()
	if in != nil {
		fmt.Printf("Found input: %s\n", in.String())
	}
	if out != nil {
		fmt.Printf("Found output: %s\n", out.String())
	}

	if in != nil && out != nil {
		fmt.Println("\nAPC mini mk2 detected!")
	} else {
		fmt.Println("\nAPC mini mk2 not found")
	}
}

func open() *midi.APCController {
	in, out := findPorts()
	if in == nil && out == nil {
		fmt.Println("No APC mini mk2 found")
		return nil
	}
	c, err := midi.NewAPCController(midi.DefaultPortMatch, in, out)
	if err != nil {
		fmt.Printf("Error opening ports: %v\n", err)
		return nil
	}
	return c
}

func testLEDs() {
	fmt.Println("Testing LED control...")

	c := open()
	if c == nil {
		return
	}
	defer c.Close()

	ctrl := apc.NewManager(apc.ModeMute)
	ctrl.SetSender(c)
	all := []int{7, 7, 7, 7, 7, 7, 7, 7}

	// Walk the pages: each shows its active colour on a diagonal
	for page := 0; page < apc.NumPages; page++ {
		ctrl.SetMaxOptionsForPage(page, all)
		ctrl.Dispatch(apc.PagePress(page))
		for col := 0; col < apc.GridCols; col++ {
			ctrl.Dispatch(apc.PadPress(col%(apc.GridRows-1), col))
		}
		ctrl.Update(float64(page))
		time.Sleep(300 * time.Millisecond)
	}

	fmt.Printf("Sent %d messages. Press Enter to clear...\n", c.SentCount())
	fmt.Scanln()

	if err := ctrl.Close(); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	fmt.Println("Done!")
}

func monitor() {
	c := open()
	if c == nil {
		return
	}
	defer c.Close()

	ctrl := apc.NewManager(apc.ModeRandom)
	ctrl.SetSender(c)
	for page := 0; page < apc.NumPages; page++ {
		ctrl.SetMaxOptionsForPage(page, []int{8, 8, 8, 8, 8, 8, 8, 8})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Monitoring input. Ctrl+C to exit.")
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	beat := 0

	for {
		select {
		case <-ctx.Done():
			ctrl.Close()
			return
		case msg, ok := <-c.Messages():
			if !ok {
				return
			}
			ev := ctrl.Dispatch(msg)
			fmt.Printf("%02X %3d %3d  %-12s %+v\n", msg.Status(), msg.ID(), msg.Value(), ev.Kind, ev)
		case <-ticker.C:
			beat++
			ctrl.Update(float64(beat))
		}
	}
}

func pollDevices() {
	fmt.Println("Polling for device changes every 2 seconds...")
	fmt.Println("Connect/disconnect the controller to test. Ctrl+C to exit.")

	lastIn := ""
	lastOut := ""

	for {
		ins, outs, ok := midi.ListPorts(3 * time.Second)
		if !ok {
			fmt.Println("port scan timed out")
			time.Sleep(2 * time.Second)
			continue
		}

		var inNames, outNames []string
		for _, p := range ins {
			inNames = append(inNames, p.String())
		}
		for _, p := range outs {
			outNames = append(outNames, p.String())
		}

		currentIn := strings.Join(inNames, ",")
		currentOut := strings.Join(outNames, ",")

		if currentIn != lastIn || currentOut != lastOut {
			fmt.Printf("\n[%s] Device change detected!\n", time.Now().Format("15:04:05"))
			fmt.Printf("  Inputs: %v\n", inNames)
			fmt.Printf("  Outputs: %v\n", outNames)

			for _, name := range inNames {
				if strings.Contains(strings.ToLower(name), midi.DefaultPortMatch) {
					fmt.Println("  -> APC mini mk2 detected!")
				}
			}

			lastIn = currentIn
			lastOut = currentOut
		}

		time.Sleep(2 * time.Second)
	}
}
