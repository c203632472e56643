package quantum

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"qlct/internal/errors"
)

// Pre-compiled regexps for QASM parsing.
var (
	qregRegex       = regexp.MustCompile(`^qreg\s+(\w+)\[(\d+)\];?$`)
	singleGateRegex = regexp.MustCompile(`^(\w+)\s+(\w+)\[(\d+)\];?$`)
	multiGateRegex  = regexp.MustCompile(`^(\w+)\s+(\w+\[\d+\](?:\s*,\s*\w+\[\d+\])+);?$`)
	operandRegex    = regexp.MustCompile(`(\w+)\[(\d+)\]`)
)

// ToQASM renders the circuit as OpenQASM 2.0. Multi-controlled flips use
// cx/ccx when they have one or two controls and mcx otherwise.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", c.NumQubits)

	for _, g := range c.gates {
		switch g.kind {
		case Hadamard:
			fmt.Fprintf(&sb, "h q[%d];\n", g.target)
		case BitFlip:
			fmt.Fprintf(&sb, "x q[%d];\n", g.target)
		case MultiControlledBitFlip:
			var name string
			switch len(g.controls) {
			case 0:
				fmt.Fprintf(&sb, "x q[%d];\n", g.target)
				continue
			case 1:
				name = "cx"
			case 2:
				name = "ccx"
			default:
				name = "mcx"
			}
			sb.WriteString(name)
			sb.WriteString(" ")
			for _, ctrl := range g.controls {
				fmt.Fprintf(&sb, "q[%d], ", ctrl)
			}
			fmt.Fprintf(&sb, "q[%d];\n", g.target)
		}
	}

	return sb.String()
}

// ParseQASM builds a circuit from the OpenQASM subset ToQASM emits: one qreg,
// h, x, cx, ccx and mcx. Comments, creg, barrier and measure lines are skipped.
func ParseQASM(qasm string) (*Circuit, error) {
	var (
		c       *Circuit
		regName string
	)

	for lineNo, line := range strings.Split(qasm, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") ||
			strings.HasPrefix(line, "include") ||
			strings.HasPrefix(line, "creg") ||
			strings.HasPrefix(line, "barrier") ||
			strings.HasPrefix(line, "measure") {
			continue
		}

		if matches := qregRegex.FindStringSubmatch(line); matches != nil {
			if c != nil {
				return nil, errors.Newf("line %d: only one qreg is supported", lineNo+1)
			}
			n, _ := strconv.Atoi(matches[2])
			regName = matches[1]
			c = NewCircuit(n)
			continue
		}

		if c == nil {
			return nil, errors.Newf("line %d: gate before qreg declaration", lineNo+1)
		}

		if matches := singleGateRegex.FindStringSubmatch(line); matches != nil {
			if matches[2] != regName {
				return nil, errors.Newf("line %d: unknown register %q", lineNo+1, matches[2])
			}
			q, _ := strconv.Atoi(matches[3])
			switch strings.ToLower(matches[1]) {
			case "h":
				c.AddH(q)
			case "x":
				c.AddX(q)
			default:
				return nil, errors.Newf("line %d: unsupported gate %q", lineNo+1, matches[1])
			}
			continue
		}

		if matches := multiGateRegex.FindStringSubmatch(line); matches != nil {
			gateType := strings.ToLower(matches[1])
			var qubits []int
			for _, op := range operandRegex.FindAllStringSubmatch(matches[2], -1) {
				if op[1] != regName {
					return nil, errors.Newf("line %d: unknown register %q", lineNo+1, op[1])
				}
				q, _ := strconv.Atoi(op[2])
				qubits = append(qubits, q)
			}
			controls, target := qubits[:len(qubits)-1], qubits[len(qubits)-1]
			switch {
			case gateType == "cx" && len(controls) == 1,
				gateType == "ccx" && len(controls) == 2,
				gateType == "mcx":
				c.AddMCX(target, controls...)
			default:
				return nil, errors.Newf("line %d: unsupported gate %q with %d operands", lineNo+1, matches[1], len(qubits))
			}
			continue
		}

		return nil, errors.Newf("line %d: cannot parse %q", lineNo+1, line)
	}

	if c == nil {
		return nil, errors.New("no qreg declaration")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
