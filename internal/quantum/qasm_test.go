package quantum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToQASM(t *testing.T) {
	c := NewCircuit(4)
	c.AddH(0)
	c.AddX(1)
	c.AddMCX(3)
	c.AddMCX(1, 0)
	c.AddMCX(2, 0, 1)
	c.AddMCX(3, 0, 1, 2)

	want := `OPENQASM 2.0;
include "qelib1.inc";

qreg q[4];

h q[0];
x q[1];
x q[3];
cx q[0], q[1];
ccx q[0], q[1], q[2];
mcx q[0], q[1], q[2], q[3];
`
	assert.Equal(t, want, c.ToQASM())
}

func TestRoundTripQASM(t *testing.T) {
	c := NewCircuit(4)
	c.AddH(0, 1, 2, 3)
	c.AddX(0, 2)
	c.AddMCX(3, 0, 1, 2)
	c.AddMCX(1, 0)
	c.AddMCX(2, 3, 0)

	parsed, err := ParseQASM(c.ToQASM())
	require.NoError(t, err)
	assert.Equal(t, c.NumQubits, parsed.NumQubits)
	assert.Equal(t, c.Gates(), parsed.Gates())
	assert.Equal(t, c.ToQASM(), parsed.ToQASM())
}

func TestParseQASMSkipsNonGateLines(t *testing.T) {
	qasm := `OPENQASM 2.0;
include "qelib1.inc";
// bell-ish
qreg q[2];
creg c[2];

h q[0];
barrier q[0], q[1];
cx q[0], q[1];
measure q[0] -> c[0];
measure q[1] -> c[1];`

	c, err := ParseQASM(qasm)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	probs, err := Simulate(c)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, probs[0b00], eps)
	assert.InDelta(t, 0.5, probs[0b11], eps)
}

func TestParseQASMErrors(t *testing.T) {
	tests := []struct {
		name    string
		qasm    string
		wantErr string
	}{
		{"no register", "h q[0];", "before qreg"},
		{"empty", "OPENQASM 2.0;", "no qreg"},
		{"two registers", "qreg q[1];\nqreg r[1];", "only one qreg"},
		{"unknown single gate", "qreg q[1];\nt q[0];", "unsupported gate"},
		{"unknown register", "qreg q[1];\nh r[0];", "unknown register"},
		{"cx arity", "qreg q[3];\ncx q[0], q[1], q[2];", "unsupported gate"},
		{"qubit out of range", "qreg q[2];\nh q[2];", "outside"},
		{"garbage", "qreg q[2];\nfoo bar baz", "cannot parse"},
		{"register too wide", "OPENQASM 2.0;\nqreg q[64];\nh q[0];", "exceeds 30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQASM(tt.qasm)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), "error %q", err)
		})
	}
}
