package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ccu3/archdiagram/pkg/buildinfo"
	dio "github.com/ccu3/archdiagram/pkg/io"
	"github.com/ccu3/archdiagram/pkg/observability"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(observability.Reset)
	captureStdout(t)

	c := New(&bytes.Buffer{}, log.InfoLevel)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandStructure(t *testing.T) {
	root := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()

	assert.Equal(t, appName, root.Use)
	assert.Equal(t, buildinfo.Version, root.Version)

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Subset(t, names, []string{"render", "inspect", "kinds", "completion"})
}

func TestRootCommandRendersIntoWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := execute(t)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "architecture.svg"))
	require.NoError(t, err)
	svg := string(data)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "CCU3 awsconnect")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the image should be written")
}

func TestRootCommandRejectsArgs(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestRenderCommandFlags(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "render", "--output-dir", dir, "--format", "dot", "--direction", "LR")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "architecture.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `rankdir="LR"`)
}

func TestRenderCommandInvalidFormat(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "render", "--output-dir", dir, "--format", "pdf")
	require.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestInspectJSON(t *testing.T) {
	out, err := execute(t, "inspect")
	require.NoError(t, err)

	var snap dio.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, "CC3 AWS Connect High Level Architecture", snap.Title)
	assert.Len(t, snap.Nodes, 21)
	assert.Len(t, snap.Clusters, 5)
	assert.Len(t, snap.Edges, 36)
}

func TestInspectYAML(t *testing.T) {
	out, err := execute(t, "inspect", "-f", "yaml")
	require.NoError(t, err)

	var snap dio.Snapshot
	require.NoError(t, yaml.Unmarshal([]byte(out), &snap))
	assert.Equal(t, "BT", snap.Direction)
	assert.Len(t, snap.Edges, 36)
}

func TestInspectDOT(t *testing.T) {
	out, err := execute(t, "inspect", "--format", "dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph "))
	assert.Contains(t, out, `label="Agent\nConfirm\nPrompt"`)
}

func TestInspectToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	out, err := execute(t, "inspect", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title"`)
}

func TestInspectInvalidFormat(t *testing.T) {
	_, err := execute(t, "inspect", "-f", "xml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestInspectInvalidFormatWritesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	_, err := execute(t, "inspect", "-f", "bogus", "-o", path)
	require.ErrorContains(t, err, "invalid format")
	assert.NoFileExists(t, path)
}

func TestInspectToFileFormats(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "snapshot.yaml")
	_, err := execute(t, "inspect", "-f", "yaml", "-o", yamlPath)
	require.NoError(t, err)
	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var snap dio.Snapshot
	require.NoError(t, yaml.Unmarshal(data, &snap))
	assert.Len(t, snap.Nodes, 21)

	dotPath := filepath.Join(dir, "snapshot.dot")
	_, err = execute(t, "inspect", "-f", "dot", "-o", dotPath)
	require.NoError(t, err)
	data, err = os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph "))
}

func TestKindsCommand(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)

	assert.Contains(t, out, "aws/compute/Lambda")
	assert.Contains(t, out, "onprem/client/Users")
	assert.Contains(t, out, "programming/framework/Django")
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, appName)
		})
	}

	_, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "version "+buildinfo.Version)
}
