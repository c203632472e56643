package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qlct/internal/crypto/kem"
	"qlct/internal/engine"
	"qlct/internal/errors"
	"qlct/internal/pipeline"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// execute runs args against a fresh root with all flags back at their defaults.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root := &cobra.Command{
		Use:           "qlct",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup("")
		},
	}
	for _, c := range []*cobra.Command{ScoreCmd, EstimateCmd, CircuitCmd, SimulateCmd, ProtectCmd, RestoreCmd, ConfigCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		root.AddCommand(c)
	}

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestScoreJSON(t *testing.T) {
	out, err := execute(t, nil, "score", "-n", "3", "-t", "5", "--json")
	require.NoError(t, err)

	var res scoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Qubits)
	assert.Equal(t, 5, res.Target)
	assert.Equal(t, 1, res.Iterations)
	assert.InDelta(t, 0.78125, res.Score, 1e-9)
}

func TestScoreDefaultsFromConfig(t *testing.T) {
	out, err := execute(t, nil, "score")
	require.NoError(t, err)
	assert.Contains(t, out, "5 |101⟩")
	assert.Contains(t, out, "0.781250")
}

func TestScoreOptimal(t *testing.T) {
	out, err := execute(t, nil, "score", "-n", "4", "-t", "11", "--optimal", "--json")
	require.NoError(t, err)

	var res scoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Iterations)
	assert.Greater(t, res.Score, 0.95)
}

func TestScoreRejectsOversizedRegister(t *testing.T) {
	_, err := execute(t, nil, "score", "-n", "20", "-t", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrInvalidConfig)
	assert.Contains(t, strings.Join(errors.GetAllHints(err), " "), "search.max_qubits")
}

func TestScoreIterationsAndOptimalExclusive(t *testing.T) {
	_, err := execute(t, nil, "score", "-k", "2", "--optimal")
	assert.Error(t, err)
}

func TestEstimateReproducibleWithSeed(t *testing.T) {
	first, err := execute(t, nil, "estimate", "-n", "3", "-t", "5", "--shots", "500", "--seed", "7")
	require.NoError(t, err)
	second, err := execute(t, nil, "estimate", "-n", "3", "-t", "5", "--shots", "500", "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "shots: 500")
	assert.Contains(t, first, "exact: 0.781250")
}

func TestEstimateRejectsZeroShots(t *testing.T) {
	_, err := execute(t, nil, "estimate", "--shots", "0")
	assert.ErrorIs(t, err, engine.ErrInvalidConfig)
}

func TestCircuitTable(t *testing.T) {
	out, err := execute(t, nil, "circuit", "-n", "2", "-t", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "MCX  q1 ← q0")
	assert.Contains(t, out, "gates: 16")
}

func TestCircuitQASMRoundTripsThroughSimulate(t *testing.T) {
	qasm, err := execute(t, nil, "circuit", "-n", "3", "-t", "5", "--qasm")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(qasm, "OPENQASM 2.0;"))

	out, err := execute(t, strings.NewReader(qasm), "simulate", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "5 |101⟩")
	assert.Contains(t, out, "probability: 0.781250")
}

func TestSimulateMissingFile(t *testing.T) {
	_, err := execute(t, nil, "simulate", "does-not-exist.qasm")
	assert.Error(t, err)
}

func TestProtectRestore(t *testing.T) {
	out, err := execute(t, nil, "protect", "--kem", kem.NameStub, `{"score":0.5}`)
	require.NoError(t, err)

	var env pipeline.Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, kem.NameStub, env.KEM)
	assert.Equal(t, pipeline.DefaultKeyLen, env.KeyLen)

	out, err = execute(t, nil, "restore", env.CiphertextHex, "--key", env.KeyHex)
	require.NoError(t, err)

	var payload map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, map[string]float64{"score": 0.5}, payload)
}

func TestProtectFromStdinWithMLKEM(t *testing.T) {
	out, err := execute(t, strings.NewReader(`[1,2,3]`), "protect", "-")
	require.NoError(t, err)

	var env pipeline.Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, kem.NameMLKEM768, env.KEM)
}

func TestProtectRejectsNonJSON(t *testing.T) {
	_, err := execute(t, nil, "protect", "not json")
	assert.Error(t, err)
}

func TestRestoreRequiresKey(t *testing.T) {
	_, err := execute(t, nil, "restore", "abcd")
	assert.ErrorIs(t, err, pipeline.ErrMissingKey)
}

func TestConfigFormats(t *testing.T) {
	out, err := execute(t, nil, "config", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"qubits": 3`)

	out, err = execute(t, nil, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "[crypto]")
	assert.Contains(t, out, "mlkem768")

	out, err = execute(t, nil, "config", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "shots: 2000")

	_, err = execute(t, nil, "config", "--format", "xml")
	assert.Error(t, err)
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("QLCT_SEARCH_QUBITS", "2")
	t.Setenv("QLCT_SEARCH_TARGET", "3")
	out, err := execute(t, nil, "score", "--json")
	require.NoError(t, err)

	var res scoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.Qubits)
	assert.InDelta(t, 1.0, res.Score, 1e-9)
}

func TestProtectRestoreKeepsLargeIntegers(t *testing.T) {
	const payload = `{"id":9007199254740993,"ids":[18446744073709551615,-9007199254740993],"score":0.78125}`
	out, err := execute(t, nil, "protect", "--kem", kem.NameStub, payload)
	require.NoError(t, err)

	var env pipeline.Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))

	out, err = execute(t, nil, "restore", env.CiphertextHex, "--key", env.KeyHex)
	require.NoError(t, err)
	assert.Contains(t, out, `"id": 9007199254740993`)
	assert.Contains(t, out, "18446744073709551615")
	assert.Contains(t, out, "-9007199254740993")

	var compact bytes.Buffer
	require.NoError(t, json.Compact(&compact, []byte(out)))
	assert.Equal(t, payload, compact.String())
}

func TestScoreOptimalRejectsOversizedRegister(t *testing.T) {
	_, err := execute(t, nil, "score", "-n", "70", "-t", "0", "--optimal")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrInvalidConfig)
}

func TestEstimateZeroSeedIsReproducible(t *testing.T) {
	first, err := execute(t, nil, "estimate", "-n", "4", "-t", "6", "--shots", "300", "--seed", "0")
	require.NoError(t, err)
	second, err := execute(t, nil, "estimate", "-n", "4", "-t", "6", "--shots", "300", "--seed", "0")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
