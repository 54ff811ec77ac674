package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagsoup/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestIntegration_ParseJSON(t *testing.T) {
	tmpDir := t.TempDir()
	htmlFile := writeTestFile(t, tmpDir, "page.html", "<div class='a'>hi</div>")

	stdout, _, err := runCommand(t, "parse", htmlFile)
	require.NoError(t, err)

	var nodes []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &nodes))
	require.Len(t, nodes, 1)

	assert.Equal(t, "element", nodes[0]["type"])
	assert.Equal(t, "div", nodes[0]["tagName"])
}

func TestIntegration_ParseCompactJSON(t *testing.T) {
	tmpDir := t.TempDir()
	htmlFile := writeTestFile(t, tmpDir, "page.html", "<b>x</b>")

	stdout, _, err := runCommand(t, "parse", "--compact", htmlFile)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(strings.TrimRight(stdout, "\n"), "\n")+1,
		"compact output should be a single line")
}

func TestIntegration_ParseTreeFormat(t *testing.T) {
	tmpDir := t.TempDir()
	htmlFile := writeTestFile(t, tmpDir, "page.html", "<ul><li>a</li></ul>")

	stdout, _, err := runCommand(t, "parse", "--format", "tree", "--color", "never", htmlFile)
	require.NoError(t, err)

	assert.Contains(t, stdout, "<ul>")
	assert.Contains(t, stdout, "  <li>")
	assert.Contains(t, stdout, `    "a"`)
}

func TestIntegration_ParsePositions(t *testing.T) {
	tmpDir := t.TempDir()
	htmlFile := writeTestFile(t, tmpDir, "page.html", "<b>x</b>")

	stdout, _, err := runCommand(t, "parse", "--positions", htmlFile)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"position"`)

	stdout, _, err = runCommand(t, "parse", htmlFile)
	require.NoError(t, err)
	assert.NotContains(t, stdout, `"position"`)
}

func TestIntegration_ParseMarkdownFile(t *testing.T) {
	tmpDir := t.TempDir()
	mdFile := writeTestFile(t, tmpDir, "README.md", "# Title\n\n- one\n- two\n")

	stdout, _, err := runCommand(t, "parse", mdFile)
	require.NoError(t, err)

	assert.Contains(t, stdout, `"h1"`)
	assert.Contains(t, stdout, `"ul"`)
}

func TestIntegration_ParseMalformedInputSucceeds(t *testing.T) {
	tmpDir := t.TempDir()
	htmlFile := writeTestFile(t, tmpDir, "bad.html", "</b><div><span>unclosed<!--")

	_, _, err := runCommand(t, "parse", htmlFile)
	assert.NoError(t, err, "malformed input must not fail the command")
}

func TestIntegration_ParseMissingFile(t *testing.T) {
	_, _, err := runCommand(t, "parse", filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
}

func TestIntegration_FormatNormalizes(t *testing.T) {
	tmpDir := t.TempDir()
	htmlFile := writeTestFile(t, tmpDir, "messy.html", `<DIV class="a">x<p>A<p>B</DIV>`)

	stdout, _, err := runCommand(t, "format", htmlFile)
	require.NoError(t, err)

	assert.Equal(t, "<div class='a'>x<p>A</p><p>B</p></div>\n", stdout)
}

func TestIntegration_OutputFile(t *testing.T) {
	tmpDir := t.TempDir()
	htmlFile := writeTestFile(t, tmpDir, "page.html", "<b>x</b>")
	outFile := filepath.Join(tmpDir, "out.html")

	_, _, err := runCommand(t, "format", "-o", outFile, htmlFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "<b>x</b>\n", string(data))
}

func TestIntegration_StatsFlag(t *testing.T) {
	tmpDir := t.TempDir()
	htmlFile := writeTestFile(t, tmpDir, "page.html", "<div><b>hi</b></div>")

	_, stderr, err := runCommand(t, "parse", "--stats", "--color", "never", htmlFile)
	require.NoError(t, err)
	assert.Contains(t, stderr, "nodes")
}

func TestIntegration_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	htmlFile := writeTestFile(t, tmpDir, "page.html", "<b>x</b>")
	cfgFile := writeTestFile(t, tmpDir, "conf.yml", "format: html\n")

	stdout, _, err := runCommand(t, "parse", "--config", cfgFile, htmlFile)
	require.NoError(t, err)
	assert.Equal(t, "<b>x</b>\n", stdout)
}

func TestIntegration_InitCreatesConfig(t *testing.T) {
	tmpDir := t.TempDir()
	outFile := filepath.Join(tmpDir, ".tagsoup.yml")

	_, _, err := runCommand(t, "init", "-o", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "input: auto")

	// Without --force a second init must refuse to overwrite.
	_, _, err = runCommand(t, "init", "-o", outFile)
	require.Error(t, err)

	_, _, err = runCommand(t, "init", "-o", outFile, "--force")
	require.NoError(t, err)
}
