package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitgraph/builder"
	"github.com/katalvlaran/unitgraph/coords"
	"github.com/katalvlaran/unitgraph/runlog"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const triangleFile = `x, y
{0, 0}
{1, 0}
{1/2, Sqrt[3]/2}
`

func TestNewRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "unitgraph", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"build", "chromatic", "check", "compose", "critical", "minimal", "greedy"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
	for _, flag := range []string{"config", "log-level", "log-format", "tolerance", "timeout", "metrics-addr", "runlog-dir"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing flag %q", flag)
	}
}

func TestBuild(t *testing.T) {
	out, err := execute(t, "build", "gadget:moser")
	require.NoError(t, err)
	assert.Contains(t, out, "vertices:   7")
	assert.Contains(t, out, "edges:      11")
	assert.Contains(t, out, "components: 1")

	out, err = execute(t, "build", writeFile(t, "tri.txt", triangleFile))
	require.NoError(t, err)
	assert.Contains(t, out, "edges:      3")
}

func TestBuild_DIMACS(t *testing.T) {
	out, err := execute(t, "build", "--dimacs", "3", "gadget:triangle")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "c unitgraph 3-colorability"))
	assert.Contains(t, out, "p cnf 9 21\n")

	path := filepath.Join(t.TempDir(), "tri.cnf")
	out, err = execute(t, "build", "--dimacs", "2", "--out", path, "gadget:triangle")
	require.NoError(t, err)
	assert.Contains(t, out, "dimacs:")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "p cnf 6 12\n")
}

func TestBuild_InputErrors(t *testing.T) {
	bad := writeFile(t, "bad.txt", "{0, 0}\n{1, zero}\n{1/2, Sqrt[3]/2}\n")
	_, err := execute(t, "build", bad)
	assert.ErrorIs(t, err, coords.ErrNonNumericToken)

	out, err := execute(t, "--skip-invalid", "build", bad)
	require.NoError(t, err)
	assert.Contains(t, out, "vertices:   2")

	_, err = execute(t, "build", "gadget:dodecahedron")
	assert.ErrorIs(t, err, builder.ErrUnknownGadget)

	_, err = execute(t, "build", filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestChromatic(t *testing.T) {
	out, err := execute(t, "chromatic", "gadget:moser", "--show-coloring")
	require.NoError(t, err)
	assert.Contains(t, out, "Graph(V=7, E=11)\nχ = 4\n")
	assert.Contains(t, out, "k=3 unsat")
	assert.Contains(t, out, "coloring: [")

	out, err = execute(t, "chromatic", "--max-k", "3", "--workers", "2", "gadget:moser")
	require.NoError(t, err)
	assert.Contains(t, out, "χ > 3 (undetermined above cap)")
}

func TestChromatic_JSON(t *testing.T) {
	out, err := execute(t, "-o", "json", "chromatic", "gadget:triangle")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "determined", got["status"])
	assert.EqualValues(t, 3, got["chromatic"])
	assert.Len(t, got["certificates"], 3)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "-k", "3", "gadget:moser")
	require.NoError(t, err)
	assert.Contains(t, out, "UNSAT at k=3: χ > 3")

	out, err = execute(t, "check", "-k", "4", "gadget:moser")
	require.NoError(t, err)
	assert.Contains(t, out, "SAT at k=4")

	out, err = execute(t, "--max-variables", "10", "check", "-k", "3", "gadget:moser")
	require.NoError(t, err)
	assert.Contains(t, out, "undetermined at k=3")

	out, err = execute(t, "--max-clauses", "20", "check", "-k", "3", "gadget:moser")
	require.NoError(t, err)
	assert.Contains(t, out, "undetermined at k=3")
	assert.Contains(t, out, "clauses")

	_, err = execute(t, "check", "gadget:moser")
	assert.Error(t, err)
}

func TestCompose(t *testing.T) {
	out, err := execute(t, "compose", "gadget:moser", "--translate", "10, 0", "--chromatic")
	require.NoError(t, err)
	assert.Contains(t, out, "Composition(copies=2, V=14, within=22, cross=0)")
	assert.Contains(t, out, "non-informative")
	assert.Contains(t, out, "χ = 4")

	path := filepath.Join(t.TempDir(), "tri2.txt")
	out, err = execute(t, "compose", "gadget:triangle", "--translate", "1,0", "--rotate", "0", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "copies=3")
	assert.Contains(t, out, "points written to")

	out, err = execute(t, "build", path)
	require.NoError(t, err)
	assert.Contains(t, out, "vertices:   9")

	_, err = execute(t, "compose", "gadget:triangle", "--rotate", "1/0")
	assert.ErrorIs(t, err, coords.ErrDivisionByZero)
}

func TestCritical(t *testing.T) {
	out, err := execute(t, "critical", "-k", "3", "--workers", "2", "gadget:moser")
	require.NoError(t, err)
	assert.Contains(t, out, "critical at k=3 (V=7, E=11)")

	_, err = execute(t, "critical", "-k", "4", "gadget:moser")
	assert.Error(t, err)
}

func TestMinimal(t *testing.T) {
	out, err := execute(t, "minimal", "-k", "3", "--trials", "4", "--seed", "5", "gadget:moser")
	require.NoError(t, err)
	assert.Contains(t, out, "min non-3-colorable size ≈ 7 of 7")
	assert.Contains(t, out, "SIZE")
}

func TestGreedy(t *testing.T) {
	var sb strings.Builder
	for _, p := range builder.MoserSpindle()[:6] {
		sb.WriteString(coords.Format(p) + "\n")
	}
	seed := writeFile(t, "seed.txt", sb.String())
	final := filepath.Join(t.TempDir(), "final.txt")

	out, err := execute(t, "greedy", "--seed-file", seed, "--target", "4", "--out", final)
	require.NoError(t, err)
	assert.Contains(t, out, "χ = 4 (target-reached)")
	assert.Contains(t, out, "+ step 1")

	out, err = execute(t, "chromatic", final)
	require.NoError(t, err)
	assert.Contains(t, out, "χ = 4")
}

func TestRunlog(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "--runlog-dir", dir, "chromatic", "gadget:triangle")
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	rec, err := runlog.Read(files[0])
	require.NoError(t, err)
	assert.Equal(t, "chromatic", rec.Command)
	assert.Equal(t, "gadget:triangle", rec.Input)
	assert.Equal(t, 3, rec.Vertices)
	assert.Equal(t, "determined", rec.Result["status"])
	assert.Empty(t, rec.Error)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	cfg := writeFile(t, "unitgraph.yaml", "search:\n  max_k: 3\n")

	out, err := execute(t, "--config", cfg, "chromatic", "gadget:moser")
	require.NoError(t, err)
	assert.Contains(t, out, "χ > 3 (undetermined above cap)")

	out, err = execute(t, "--config", cfg, "chromatic", "--max-k", "5", "gadget:moser")
	require.NoError(t, err)
	assert.Contains(t, out, "χ = 4")
}

func TestGlobalFlagErrors(t *testing.T) {
	_, err := execute(t, "-o", "xml", "build", "gadget:moser")
	assert.Error(t, err)

	_, err = execute(t, "--tolerance", "0.7", "build", "gadget:moser")
	assert.Error(t, err)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "build", "gadget:moser")
	assert.Error(t, err)
}

func TestMetricsEndpoint(t *testing.T) {
	out, err := execute(t, "--metrics-addr", "127.0.0.1:0", "check", "-k", "2", "gadget:triangle")
	require.NoError(t, err)
	assert.Contains(t, out, "UNSAT at k=2")
}
