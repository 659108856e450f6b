// Command gorunner loads a raw binary image into a Cpu, sets the initial
// program counter, and loops on Step until a step budget or halt address
// is reached. It is deliberately dumb; all interesting behavior lives in
// package cpu.
package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"go6502/cpu"
)

func main() {
	app := &cli.App{
		Name:    "gorunner",
		Usage:   "load a 6502 program image and run it",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "path to a raw binary program image",
			},
			&cli.UintFlag{
				Name:    "offset",
				Aliases: []string{"o"},
				Usage:   "byte offset within memory to load the image at",
				Value:   0x0000,
			},
			&cli.UintFlag{
				Name:    "pc",
				Usage:   "initial program counter",
				Value:   0x0200,
			},
			&cli.UintFlag{
				Name:  "steps",
				Usage: "maximum number of instructions to execute (0 = unbounded)",
				Value: 0,
			},
			&cli.UintFlag{
				Name:  "halt",
				Usage: "stop once the program counter reaches this address",
				Value: 0,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print a disassembly-style line after every instruction",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "launch the interactive step debugger instead of running freely",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	imagePath := c.String("image")
	if imagePath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("an --image is required", 1)
	}

	machine := cpu.New()
	if err := machine.LoadImage(imagePath, uint16(c.Uint("offset"))); err != nil {
		return err
	}
	machine.SetPC(uint16(c.Uint("pc")))

	if c.Bool("debug") {
		return cpu.Debugger(machine, uint16(c.Uint("pc")))
	}

	if c.Bool("trace") {
		machine.Tracer = cpu.LineTracer{Out: os.Stdout}
	}

	halt := uint16(c.Uint("halt"))
	steps := c.Uint("steps")

	for n := uint(0); steps == 0 || n < steps; n++ {
		if halt != 0 && machine.ProgramCounter == halt {
			break
		}
		machine.Step()
	}

	return nil
}
