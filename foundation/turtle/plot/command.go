// File: command.go
// Title: Plot Protocol Commands
// Description: The line protocol consumed by renderers: H, U, D, [, ],
//              "M <distance>" and "R <angle>".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package plot

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is the opcode of a protocol line
type Op string

const (
	OpHome    Op = "H"
	OpPenUp   Op = "U"
	OpPenDown Op = "D"
	OpPush    Op = "["
	OpPop     Op = "]"
	OpMove    Op = "M"
	OpRotate  Op = "R"
)

// HasArg reports whether the opcode carries a number
func (op Op) HasArg() bool {
	return op == OpMove || op == OpRotate
}

// Command is one protocol line
type Command struct {
	Op     Op
	Arg    float64
	HasArg bool
}

func Home() Command    { return Command{Op: OpHome} }
func PenUp() Command   { return Command{Op: OpPenUp} }
func PenDown() Command { return Command{Op: OpPenDown} }
func Push() Command    { return Command{Op: OpPush} }
func Pop() Command     { return Command{Op: OpPop} }

// Move moves forward by distance
func Move(distance float64) Command {
	return Command{Op: OpMove, Arg: distance, HasArg: true}
}

// Rotate turns by angle; positive is counter-clockwise (left)
func Rotate(angle float64) Command {
	return Command{Op: OpRotate, Arg: angle, HasArg: true}
}

// String renders the command as a protocol line without newline
func (c Command) String() string {
	if !c.HasArg {
		return string(c.Op)
	}
	return string(c.Op) + " " + FormatArg(c.Arg)
}

// FormatArg renders a number the way the protocol expects: the shortest
// representation that reads back exactly, e.g. 10, 0.5, 1e+21, NaN, +Inf
func FormatArg(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseCommand parses a single protocol line
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty protocol line")
	}

	op := Op(fields[0])
	switch op {
	case OpHome, OpPenUp, OpPenDown, OpPush, OpPop:
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%s takes no argument: %q", op, line)
		}
		return Command{Op: op}, nil
	case OpMove, OpRotate:
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("%s needs one argument: %q", op, line)
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Command{}, fmt.Errorf("invalid argument in %q: %w", line, err)
		}
		return Command{Op: op, Arg: v, HasArg: true}, nil
	default:
		return Command{}, fmt.Errorf("unknown opcode %q", fields[0])
	}
}
