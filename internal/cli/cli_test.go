package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gradviz/config"
	"github.com/katalvlaran/gradviz/field"
)

const table = `# x y dx dy mag
0 0 1 0 1
1 1 0 1 2
2 0 -1 -1 1.5
3 2 0 0 0
`

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTable(t *testing.T) (dir, input string) {
	t.Helper()
	dir = t.TempDir()
	input = filepath.Join(dir, "grad_vectors.txt")
	require.NoError(t, os.WriteFile(input, []byte(table), 0o644))
	return dir, input
}

func TestRoot_RendersImage(t *testing.T) {
	dir, input := writeTable(t)
	cfgPath := filepath.Join(dir, "gradviz.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("figure:\n  width: 4\n  height: 3\n  dpi: 20\n"), 0o644))
	output := filepath.Join(dir, "out.png")

	stdout, stderr, err := run(t, "-c", cfgPath, "-i", input, "-o", output, "--bins", "8")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+output+" (4 samples,")
	assert.Contains(t, stderr, `"msg":"pipeline.saved"`)

	st, err := os.Stat(output)
	require.NoError(t, err)
	assert.Positive(t, st.Size())
}

func TestRoot_BadInputFails(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(input, []byte("1 2 x 4 5\n"), 0o644))

	_, stderr, err := run(t, "-i", input, "-o", filepath.Join(dir, "out.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.Equal(t, 1, strings.Count(stderr, "line 1"), "error reported once: %s", stderr)
	assert.NotContains(t, stderr, "pipeline.failed")

	logFile := filepath.Join(dir, "gradviz.log")
	_, stderr, err = run(t, "-i", input, "-o", filepath.Join(dir, "out.png"), "--log-file", logFile)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(stderr, "line 1"))
	logged, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), `"msg":"pipeline.failed"`)
}

func TestStats(t *testing.T) {
	_, input := writeTable(t)

	stdout, _, err := run(t, "stats", "-i", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "samples:        4")
	assert.Contains(t, stdout, "x range:        [0, 3]")
	assert.Contains(t, stdout, "zero gradients: 1")
	assert.NotContains(t, stdout, "density")
}

// TestStats_Grid prints coarse counts with y increasing upwards.
func TestStats_Grid(t *testing.T) {
	_, input := writeTable(t)

	stdout, _, err := run(t, "stats", "-i", input, "--grid", "3")
	require.NoError(t, err)
	// points (0,0) (1,1) (2,0) (3,2) over x=[0,3], y=[0,2]
	assert.Contains(t, stdout, "density (3×3 bins, y up):\n[0, 0, 1]\n[0, 1, 0]\n[1, 0, 1]\n")
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "gradviz dev"))
}

func TestResolveConfig_FlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gradviz.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("bins: 50\ninput: from-yaml.txt\nfigure:\n  dpi: 72\n"), 0o644))

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-c", cfgPath, "--dpi", "96"}))

	fl := flags{configPath: cfgPath, dpi: 96}
	cfg, err := resolveConfig(cmd, fl)
	require.NoError(t, err)
	assert.Equal(t, "from-yaml.txt", cfg.Input, "unset flag keeps YAML value")
	assert.Equal(t, 50, cfg.Bins)
	assert.Equal(t, 96, cfg.Figure.DPI, "explicit flag wins")
	assert.Equal(t, config.DefaultOutput, cfg.Output)
}

func TestResolveConfig_Invalid(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--bins", "0"}))

	_, err := resolveConfig(cmd, flags{bins: 0})
	require.Error(t, err)
	assert.True(t, config.IsKind(err, config.KindInvalidConfig))
}

// TestSynth_ThenRender generates a table and feeds it back through the root command.
func TestSynth_ThenRender(t *testing.T) {
	dir := t.TempDir()
	table := filepath.Join(dir, "grad_vectors.txt")

	stdout, _, err := run(t, "synth", "-o", table, "--modules", "300", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(300 samples)")

	cfgPath := filepath.Join(dir, "gradviz.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("figure:\n  width: 4\n  height: 3\n  dpi: 20\n"), 0o644))
	out := filepath.Join(dir, "full_visualization.svg")
	_, _, err = run(t, "-c", cfgPath, "-i", table, "-o", out, "-b", "20")
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")

	f, err := field.Load(table)
	require.NoError(t, err)
	var moving int
	for _, m := range f.Mag {
		if m > 0 {
			moving++
		}
	}
	assert.Greater(t, moving, f.Len()/2, "synthetic gradients feed the quiver")
}
