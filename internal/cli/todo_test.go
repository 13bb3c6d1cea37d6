package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/ui"
)

type result struct {
	code           int
	stdout, stderr string
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{"TADA_FILE", "TADA_THEME", "TADA_STRICT", "TADA_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	t.Cleanup(func() { ui.SetTheme("classic") })
	return filepath.Join(t.TempDir(), "todos.json")
}

func runTodo(t *testing.T, file string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--theme", "mono", "--file", file}, args...)
	code := ExecuteTodo(full, &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func TestTodoScenario(t *testing.T) {
	file := isolate(t)

	r := runTodo(t, file, "add", "buy", "milk")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Equal(t, "ok: Todo added!\n", r.stdout)

	r = runTodo(t, file, "list")
	require.Equal(t, ExitOK, r.code)
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "1 [ ] buy milk ("), lines[0])

	r = runTodo(t, file, "done", "1")
	require.Equal(t, ExitOK, r.code)
	assert.Equal(t, "ok: Todo marked as done!\n", r.stdout)

	r = runTodo(t, file, "ls")
	assert.True(t, strings.HasPrefix(r.stdout, "1 [x] buy milk ("), r.stdout)

	r = runTodo(t, file, "remove", "1")
	require.Equal(t, ExitOK, r.code)
	assert.Equal(t, "ok: Todo removed!\n", r.stdout)

	r = runTodo(t, file, "list")
	assert.Equal(t, ui.EmptyMessage+"\n", r.stdout)
}

func TestTodoAddStoresDescriptionVerbatim(t *testing.T) {
	file := isolate(t)

	for _, args := range [][]string{{"add", "  padded  "}, {"add", ""}, {"add", "   "}} {
		r := runTodo(t, file, args...)
		require.Equal(t, ExitOK, r.code, "%q: %s", args, r.stderr)
		assert.Equal(t, "ok: Todo added!\n", r.stdout)
	}

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	var stored []struct {
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(b, &stored))
	require.Len(t, stored, 3)
	assert.Equal(t, "  padded  ", stored[0].Description)
	assert.Equal(t, "", stored[1].Description)
	assert.Equal(t, "   ", stored[2].Description)
}

func TestTodoNotFoundExitsZero(t *testing.T) {
	file := isolate(t)
	require.Equal(t, ExitOK, runTodo(t, file, "add", "a").code)
	before, err := os.ReadFile(file)
	require.NoError(t, err)

	for _, args := range [][]string{
		{"done", "0"},
		{"done", "2"},
		{"remove", "0"},
		{"rm", "5"},
		{"done", "ffffffff"},
		{"done", "3000000000"},
		{"remove", "99999999999999999999"},
	} {
		r := runTodo(t, file, args...)
		assert.Equal(t, ExitOK, r.code, "%v", args)
		assert.Contains(t, r.stdout, "Todo not found!", "%v", args)
	}

	after, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestTodoUsageErrors(t *testing.T) {
	file := isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "add without description", args: []string{"add"}},
		{name: "done without index", args: []string{"done"}},
		{name: "done with two args", args: []string{"done", "1", "2"}},
		{name: "non numeric index", args: []string{"done", "abc"}},
		{name: "negative index", args: []string{"remove", "-1"}},
		{name: "list with args", args: []string{"list", "extra"}},
		{name: "unknown command", args: []string{"frobnicate"}},
		{name: "unknown flag", args: []string{"list", "--nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runTodo(t, file, tt.args...)
			assert.Equal(t, ExitUsage, r.code)
			assert.Contains(t, r.stderr, "Usage:")
		})
	}

	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err), "usage errors never write the file")
}

func TestTodoByID(t *testing.T) {
	file := isolate(t)
	runTodo(t, file, "add", "a")
	runTodo(t, file, "add", "b")

	r := runTodo(t, file, "list", "--ids")
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	require.Len(t, lines, 2)
	fields := strings.Fields(lines[1])
	shortID := fields[len(fields)-1]
	require.Len(t, shortID, 8)

	r = runTodo(t, file, "done", shortID)
	require.Equal(t, ExitOK, r.code)
	assert.Contains(t, r.stdout, "Todo marked as done!")

	r = runTodo(t, file, "list")
	assert.Contains(t, r.stdout, "2 [x] b (")
	assert.Contains(t, r.stdout, "1 [ ] a (")
}

func TestTodoListGroupAndPanel(t *testing.T) {
	file := isolate(t)
	runTodo(t, file, "add", "a")
	runTodo(t, file, "add", "b")
	runTodo(t, file, "done", "1")

	r := runTodo(t, file, "list", "--group")
	assert.Contains(t, r.stdout, "Pending\n2 [ ] b")
	assert.Contains(t, r.stdout, "Done\n1 [x] a")

	r = runTodo(t, file, "list", "--panel")
	assert.Contains(t, r.stdout, "Total 2")
}

func TestTodoClear(t *testing.T) {
	file := isolate(t)
	runTodo(t, file, "add", "a")
	runTodo(t, file, "add", "b")

	r := runTodo(t, file, "clear")
	assert.Equal(t, ExitOK, r.code)
	assert.Contains(t, r.stdout, "No completed todos")

	runTodo(t, file, "done", "2")
	r = runTodo(t, file, "clear")
	assert.Contains(t, r.stdout, "Cleared 1 completed todo(s)!")

	r = runTodo(t, file, "list")
	assert.Equal(t, 1, strings.Count(r.stdout, "\n"))
}

func TestTodoCorruptFile(t *testing.T) {
	file := isolate(t)
	require.NoError(t, os.WriteFile(file, []byte("{oops"), 0o644))

	r := runTodo(t, file, "list")
	assert.Equal(t, ExitOK, r.code)
	assert.Equal(t, ui.EmptyMessage+"\n", r.stdout)
	assert.Contains(t, r.stderr, "unreadable todo file")

	r = runTodo(t, file, "--strict", "add", "x")
	assert.Equal(t, ExitFailure, r.code)
	assert.Contains(t, r.stderr, "corrupt todo file")
	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "{oops", string(b))

	t.Setenv("TADA_STRICT", "1")
	r = runTodo(t, file, "list")
	assert.Equal(t, ExitFailure, r.code)
}

func TestTodoSaveFailure(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "missing-dir", "todos.json")

	r := runTodo(t, file, "add", "x")
	assert.Equal(t, ExitFailure, r.code)
	assert.Contains(t, r.stderr, "save:")
	assert.Contains(t, r.stderr, "nothing was added")
	assert.NotContains(t, r.stderr, "Usage:")
}

func TestTodoConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "from-config.json")
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("file = \""+filepath.ToSlash(file)+"\"\ntheme = \"mono\"\n"), 0o644))

	var out, errOut bytes.Buffer
	code := ExecuteTodo([]string{"--config", cfgPath, "add", "from config"}, &out, &errOut)
	require.Equal(t, ExitOK, code, errOut.String())

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"description": "from config"`)
}

func TestTodoVerboseLogsToStderr(t *testing.T) {
	file := isolate(t)

	r := runTodo(t, file, "-v", "add", "x")
	require.Equal(t, ExitOK, r.code)
	assert.Contains(t, r.stderr, "using todo file")
	assert.NotContains(t, r.stdout, "using todo file")
}
