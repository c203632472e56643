package quantum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qlct/internal/errors"
)

func TestCircuitBuilders(t *testing.T) {
	c := NewCircuit(3)
	c.AddH(0, 1, 2)
	c.AddX(1)
	c.AddMCX(2, 0, 1)

	require.Equal(t, 5, c.Len())
	assert.Equal(t, 8, c.Size())

	gates := c.Gates()
	assert.Equal(t, Hadamard, gates[0].Kind())
	assert.Equal(t, 2, gates[2].Target())
	assert.Equal(t, BitFlip, gates[3].Kind())
	assert.Equal(t, MultiControlledBitFlip, gates[4].Kind())
	assert.Equal(t, []int{0, 1}, gates[4].Controls())

	assert.Equal(t, map[Kind]int{Hadamard: 3, BitFlip: 1, MultiControlledBitFlip: 1}, c.Counts())
	assert.NoError(t, c.Validate())
}

func TestGateIsImmutable(t *testing.T) {
	ctrls := []int{0, 1}
	g := MCX(2, ctrls...)
	ctrls[0] = 5
	assert.Equal(t, []int{0, 1}, g.Controls())

	got := g.Controls()
	got[1] = 7
	assert.Equal(t, []int{0, 1}, g.Controls())

	c := NewCircuit(3)
	c.Append(g)
	gates := c.Gates()
	gates[0] = H(0)
	assert.Equal(t, MultiControlledBitFlip, c.Gates()[0].Kind())
}

func TestCircuitValidate(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Circuit
	}{
		{"zero qubits", func() *Circuit { return NewCircuit(0) }},
		{"register too wide", func() *Circuit { c := NewCircuit(MaxQubits + 1); c.AddH(0); return c }},
		{"register wraps index", func() *Circuit { c := NewCircuit(64); c.AddH(0); return c }},
		{"target out of range", func() *Circuit { c := NewCircuit(2); c.AddH(2); return c }},
		{"negative target", func() *Circuit { c := NewCircuit(2); c.AddX(-1); return c }},
		{"control out of range", func() *Circuit { c := NewCircuit(2); c.AddMCX(0, 3); return c }},
		{"negative control", func() *Circuit { c := NewCircuit(2); c.AddMCX(0, -1); return c }},
		{"control equals target", func() *Circuit { c := NewCircuit(2); c.AddMCX(1, 1); return c }},
		{"repeated control", func() *Circuit { c := NewCircuit(3); c.AddMCX(2, 0, 0); return c }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCircuit))
		})
	}
}

func TestGateString(t *testing.T) {
	assert.Equal(t, "H q[0]", H(0).String())
	assert.Equal(t, "X q[2]", X(2).String())
	assert.Equal(t, "MCX [q[0], q[1]] -> q[2]", MCX(2, 0, 1).String())
	assert.Equal(t, "MCX [] -> q[0]", MCX(0).String())
}
