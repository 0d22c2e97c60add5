// This file is part of Gopherdmg.
//
// Gopherdmg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherdmg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherdmg.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/gopherdmg/gopherdmg/disassembly"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/modalflag"
	"github.com/gopherdmg/gopherdmg/performance"
	"github.com/gopherdmg/gopherdmg/script"
	"github.com/gopherdmg/gopherdmg/snapshot"
	"github.com/gopherdmg/gopherdmg/statsview"
	"github.com/gopherdmg/gopherdmg/tracer"
	"github.com/gopherdmg/gopherdmg/version"
)

// exit values
const (
	exitOK        = 0
	exitArguments = 10
	exitError     = 20
)

// errArguments is wrapped by any error caused by the command line rather than
// the emulation.
var errArguments = errors.New("arguments")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	var echo io.Writer = os.Stderr
	if term.IsTerminal(int(os.Stderr.Fd())) {
		echo = logger.NewColorizer(os.Stderr)
	}

	exitVal := launch(ctx, os.Stdout, echo, os.Args[1:])
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. output receives
// everything the mode writes and echo receives the log when the -log flag
// is set. The return value is the process exit value.
func launch(ctx context.Context, output io.Writer, echo io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TRACE", "SCRIPT", "PERFORMANCE", "DUMP")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	if *showVersion {
		fmt.Fprintln(output, version.Version())
		return exitOK
	}

	defer logger.SetEcho(nil, false)

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, echo)

	case "TRACE":
		err = trace(ctx, md, echo)

	case "SCRIPT":
		err = runScript(ctx, md, echo)

	case "PERFORMANCE":
		err = perform(md, echo)

	case "DUMP":
		err = dump(md, echo)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		if errors.Is(err, errArguments) {
			return exitArguments
		}
		return exitError
	}

	return exitOK
}

// commonFlags are the flags shared by every mode.
type commonFlags struct {
	prefs *string
	log   *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		prefs: md.AddString("prefs", "", "emulation preferences. eg. \"cpu.interrupts::service; timer.div::256\""),
		log:   md.AddBool("log", false, "echo debugging log"),
	}
}

// parse the arguments for the current mode. the boolean return is false if
// help was requested. the number of remaining arguments must be between minArgs
// and maxArgs inclusive.
func parse(md *modalflag.Modes, minArgs int, maxArgs int, usage string) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, fmt.Errorf("%w: %w", errArguments, err)
	}

	n := len(md.RemainingArgs())
	if n < minArgs {
		return false, fmt.Errorf("%w: %s required for %s mode", errArguments, usage, md)
	}
	if n > maxArgs {
		return false, fmt.Errorf("%w: too many arguments for %s mode", errArguments, md)
	}

	return true, nil
}

// newDMG creates the emulation from the common flags and loads the boot ROM
// at path.
func newDMG(flags commonFlags, echo io.Writer, path string) (*hardware.DMG, error) {
	if *flags.log {
		logger.SetEcho(echo, true)
	} else {
		logger.SetEcho(nil, false)
	}

	prefs, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	if *flags.prefs != "" {
		unused, err := prefs.ApplyPrefsString(*flags.prefs)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errArguments, err)
		}
		if strings.TrimSpace(unused) != "" {
			return nil, fmt.Errorf("%w: unrecognised preferences: %s", errArguments, unused)
		}
	}

	dmg, err := hardware.NewDMG(prefs)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errArguments, err)
	}
	defer f.Close()

	err = dmg.LoadBootROM(f)
	if err != nil {
		return nil, err
	}

	return dmg, nil
}

func launchStatsview(output io.Writer) {
	if statsview.Available() {
		statsview.Launch(output)
		return
	}
	fmt.Fprintln(output, "statsview not available in this build")
}

func run(ctx context.Context, md *modalflag.Modes, echo io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("The emulation runs until it faults or is interrupted.")

	flags := addCommonFlags(md)
	mem := md.AddString("snapshot", "", "write memory to file when the emulation stops")
	stats := md.AddBool("statsview", false, "launch statsview server (if available)")

	if ok, err := parse(md, 1, 1, "boot ROM"); !ok {
		return err
	}

	dmg, err := newDMG(flags, echo, md.GetArg(0))
	if err != nil {
		return err
	}

	if *stats {
		launchStatsview(md.Output)
	}

	runErr := dmg.Run(ctx, nil)

	fmt.Fprintln(md.Output, dmg)

	if *mem != "" {
		err = snapshot.WriteMemory(*mem, dmg.Mem)
		if err != nil {
			return errors.Join(runErr, err)
		}
	}

	return runErr
}

func trace(ctx context.Context, md *modalflag.Modes, echo io.Writer) error {
	md.NewMode()

	flags := addCommonFlags(md)
	limit := md.AddUint64("limit", 0, "number of instructions to trace. zero for no limit")
	writes := md.AddBool("writes", false, "include most recent memory write in each line")

	if ok, err := parse(md, 1, 1, "boot ROM"); !ok {
		return err
	}

	dmg, err := newDMG(flags, echo, md.GetArg(0))
	if err != nil {
		return err
	}

	trc := tracer.NewTracer(md.Output, dmg)
	trc.Writes = *writes

	return trc.Run(ctx, *limit)
}

func runScript(ctx context.Context, md *modalflag.Modes, echo io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Arguments are the boot ROM and the Lua script to run against it.")

	flags := addCommonFlags(md)

	if ok, err := parse(md, 2, 2, "boot ROM and script"); !ok {
		return err
	}

	source, err := os.ReadFile(md.GetArg(1))
	if err != nil {
		return fmt.Errorf("%w: %w", errArguments, err)
	}

	dmg, err := newDMG(flags, echo, md.GetArg(0))
	if err != nil {
		return err
	}

	return script.RunContext(ctx, dmg, string(source), md.Output)
}

func perform(md *modalflag.Modes, echo io.Writer) error {
	md.NewMode()

	flags := addCommonFlags(md)
	duration := md.AddDuration("duration", performance.DefaultDuration, "run duration")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	stats := md.AddBool("statsview", false, "launch statsview server (if available)")

	if ok, err := parse(md, 1, 1, "boot ROM"); !ok {
		return err
	}

	if *duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", errArguments)
	}

	dmg, err := newDMG(flags, echo, md.GetArg(0))
	if err != nil {
		return err
	}

	if *stats {
		launchStatsview(md.Output)
	}

	return performance.Check(md.Output, dmg, *duration, *profile)
}

func dump(md *modalflag.Modes, echo io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("The boot ROM is optionally run for a number of instructions before dumping.")

	flags := addCommonFlags(md)
	steps := md.AddUint64("steps", 0, "number of instructions to run before dumping")
	mem := md.AddString("memory", "", "write memory to file")
	graph := md.AddString("graph", "", "write graphviz description of emulation state to file")
	origin := md.AddAddress("origin", 0x0000, "disassembly origin")
	count := md.AddInt("disasm", 16, "number of instructions to disassemble")
	hex := md.AddInt("hex", 0, "number of bytes to show in hex from origin")

	if ok, err := parse(md, 1, 1, "boot ROM"); !ok {
		return err
	}

	dmg, err := newDMG(flags, echo, md.GetArg(0))
	if err != nil {
		return err
	}

	for i := uint64(0); i < *steps; i++ {
		if err := dmg.Step(); err != nil {
			return err
		}
	}

	if *mem != "" {
		err = snapshot.WriteMemory(*mem, dmg.Mem)
		if err != nil {
			return err
		}
	}

	if *graph != "" {
		b := &bytes.Buffer{}
		err = snapshot.WriteStateGraph(b, dmg)
		if err != nil {
			return err
		}
		err = os.WriteFile(*graph, b.Bytes(), 0o644)
		if err != nil {
			return fmt.Errorf("dump: %w", err)
		}
	}

	fmt.Fprintln(md.Output, dmg)

	if *hex > 0 {
		fmt.Fprintln(md.Output, dmg.Mem.HexDump(*origin, *hex))
	}

	if *count > 0 {
		entries := disassembly.Disassemble(dmg.Mem, *origin, *count)
		return disassembly.Write(md.Output, entries, disassembly.WriteAttr{ByteCode: true, Cycles: true})
	}

	return nil
}
