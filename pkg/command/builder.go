/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: builder.go
Description: Command builder for the Akaylee Miner. Derives the engine mode flag
from the run request and assembles the full argument vector for the external
mining engine. Never invokes anything and never builds a shell string: the argv
goes to the process invoker as-is, so labels and paths with spaces or shell
metacharacters cannot change the command shape.
*/

package command

import (
	"strconv"

	"github.com/kleascm/akaylee-miner/pkg/codec"
	"github.com/kleascm/akaylee-miner/pkg/interfaces"
)

// Engine option defaults, applied when the request leaves them unset.
const (
	DefaultMinConfidence  = 0.5
	DefaultMinItemsetSize = 1
)

// Invocation is the assembled engine call: the derived mode flag and the
// argument vector excluding the program path, which the invoker owns.
type Invocation struct {
	ModeFlag string
	Args     []string
	Kind     interfaces.ResultKind
}

// Build validates the request and derives the mode flag and argument vector.
//
// Mode flag shapes: rule mining is "<M>fRs", target-filtered frequency
// mining is "<M>fs", plain frequency mining is "<M>Rfs", where <M> is the
// mode letter. Supplying both a target and a rule item is a usage error,
// raised here before any file or process side effect.
//
// Option flags follow the engine conventions: rule mode takes -a/-A
// (max confidence replaces min confidence when both are set), -l, -u and
// -i with the encoded rule item; target mode takes -l and -u; plain
// frequency mode takes no option flags at all.
func Build(req *interfaces.RunRequest, c *codec.Codec, transactionFile, outputFile string) (*Invocation, error) {
	if req == nil {
		return nil, &interfaces.UsageError{Reason: "run request must not be nil"}
	}
	if !req.Mode.Valid() {
		return nil, &interfaces.UsageError{Reason: "unsupported mining mode " + strconv.Quote(string(req.Mode))}
	}
	if req.Target != "" && req.RuleForItem != "" {
		return nil, &interfaces.UsageError{Reason: "target and rule item are mutually exclusive"}
	}
	if req.MinSupport < 1 {
		return nil, &interfaces.UsageError{Reason: "minimum support must be at least 1"}
	}

	inv := &Invocation{Kind: interfaces.ResultFrequency}
	var optFlags []string

	switch {
	case req.RuleForItem != "":
		inv.ModeFlag = req.Mode.Letter() + "fRs"
		inv.Kind = interfaces.ResultRules
		optFlags = ruleOptionFlags(req.Options)

		code, err := c.EncodeLabel(req.RuleForItem)
		if err != nil {
			return nil, err
		}
		optFlags = append(optFlags, "-i", strconv.Itoa(code))

	case req.Target != "":
		inv.ModeFlag = req.Mode.Letter() + "fs"
		optFlags = sizeOptionFlags(req.Options)

	default:
		inv.ModeFlag = req.Mode.Letter() + "Rfs"
	}

	inv.Args = append(inv.Args, inv.ModeFlag)
	inv.Args = append(inv.Args, optFlags...)
	inv.Args = append(inv.Args, transactionFile, strconv.Itoa(req.MinSupport), outputFile)
	return inv, nil
}

// ruleOptionFlags assembles the confidence and itemset-size flags for rule
// mode. -A replaces -a when a max confidence is given (last-wins, not
// additive, matching the engine wrapper convention).
func ruleOptionFlags(opts interfaces.RunOptions) []string {
	var flags []string

	switch {
	case opts.MaxConfidence != nil:
		flags = append(flags, "-A", formatFloat(*opts.MaxConfidence))
	case opts.MinConfidence != nil:
		flags = append(flags, "-a", formatFloat(*opts.MinConfidence))
	default:
		flags = append(flags, "-a", formatFloat(DefaultMinConfidence))
	}

	return append(flags, sizeOptionFlags(opts)...)
}

// sizeOptionFlags assembles the -l/-u itemset size flags shared by rule and
// target modes.
func sizeOptionFlags(opts interfaces.RunOptions) []string {
	var flags []string
	if opts.MinItemsetSize != nil {
		flags = append(flags, "-l", strconv.Itoa(*opts.MinItemsetSize))
	} else {
		flags = append(flags, "-l", strconv.Itoa(DefaultMinItemsetSize))
	}
	if opts.MaxItemsetSize != nil {
		flags = append(flags, "-u", strconv.Itoa(*opts.MaxItemsetSize))
	}
	return flags
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
