package cmd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/backwell/horario/internal/iotesting"
	"github.com/backwell/horario/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCmds_Flags(t *testing.T) {
	tests := []struct {
		name  string
		use   string
		flags []string
	}{
		{"import", "import FILE",
			[]string{"sheet", "header-row", "mode", "instructor-key"}},
		{"conflicts", "conflicts",
			[]string{"subject", "instructor", "room", "cycle", "session",
				"by-room", "by-instructor", "format", "output"}},
		{"timetable", "timetable",
			[]string{"subject", "instructor", "room", "cycle", "session",
				"from", "weeks", "format", "output"}},
		{"plan", "plan SUBJECT [SUBJECT...]",
			[]string{"cycle", "session", "min-size", "format", "output"}},
	}

	cmds := make(map[string]string)
	root := getRootCmd()
	for _, c := range root.Commands() {
		cmds[c.Name()] = c.Use
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, err := root.Find([]string{tt.name})
			require.NoError(t, err)
			assert.Equal(t, tt.use, cmds[tt.name])
			assert.Contains(t, c.Long, "Examples:")
			for _, f := range tt.flags {
				assert.NotNil(t, c.Flags().Lookup(f), f)
			}
		})
	}
}

func TestImportCmd_Defaults(t *testing.T) {
	c := getImportCmd()
	def := config.New().Import
	assert.Equal(t, "9", c.Flags().Lookup("header-row").DefValue)
	assert.Equal(t, def.Mode, c.Flags().Lookup("mode").DefValue)
	assert.Equal(t, def.InstructorKey,
		c.Flags().Lookup("instructor-key").DefValue)
	assert.Error(t, c.Args(c, nil), "file argument is required")
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = parseDate("2025-08-04")
	require.NoError(t, err)
	assert.Equal(t, 4, d.Day())

	_, err = parseDate("04/08/2025")
	assert.Error(t, err)
}

// TestCommands_SQLite runs create, import and the reports against a
// SQLite database in a temporary home directory.
func TestCommands_SQLite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping command run in short mode")
	}
	orig := slog.Default()
	defer slog.SetDefault(orig)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HORARIO_DATABASE_DRIVER", "sqlite")
	t.Setenv("HORARIO_LOG_DESTINATION", "stderr")

	run := func(args ...string) error {
		root := getRootCmd()
		root.SetOut(new(bytes.Buffer))
		root.SetArgs(args)
		return root.Execute()
	}

	t.Run("reports need a schema", func(t *testing.T) {
		out := filepath.Join(home, "none.json")
		require.NoError(t, run("conflicts", "-f", "json", "-o", out))
		_, err := os.Stat(out)
		assert.True(t, os.IsNotExist(err))
	})

	require.NoError(t, run("create", "--force"))
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	_, err := os.Stat(config.DBFilePath(home))
	require.NoError(t, err)

	catalog := iotesting.WriteCatalogCSV(t, []map[string]string{
		iotesting.Row("1001", "", "Algebra", "Ana Pérez", "Titular",
			"07:00", "09:00", "A-101", "Lunes"),
		iotesting.Row("1002", "", "Fisica", "Luis Gómez", "Titular",
			"08:00", "10:00", "B-2", "Lunes"),
		iotesting.Row("1003", "", "Quimica", "Eva Ruiz", "Titular",
			"09:00", "11:00", "B-2", "Martes"),
	})
	require.NoError(t, run("import", catalog))
	assert.Equal(t, catalog, cfg.Import.File)

	readJSON := func(t *testing.T, path string, v any) {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, v))
	}

	t.Run("conflicts", func(t *testing.T) {
		out := filepath.Join(home, "conflicts.json")
		require.NoError(t, run("conflicts", "-f", "json", "-o", out))
		var res []map[string]string
		readJSON(t, out, &res)
		require.Len(t, res, 1)
		assert.Equal(t, "Algebra (Ana Pérez)", res[0]["labelA"])
		assert.Equal(t, "Fisica (Luis Gómez)", res[0]["labelB"])

		require.NoError(t, run("conflicts", "--by-room", "-f", "json", "-o", out))
		readJSON(t, out, &res)
		assert.Empty(t, res)
	})

	t.Run("timetable", func(t *testing.T) {
		out := filepath.Join(home, "algebra.ics")
		require.NoError(t, run("timetable", "--subject", "álgebra",
			"-f", "ics", "--from", "2025-08-04", "-o", out))
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "DTSTART:20250804T070000")
		assert.NotContains(t, string(data), "Fisica")
	})

	t.Run("plan", func(t *testing.T) {
		out := filepath.Join(home, "plans.json")
		require.NoError(t, run("plan", "algebra", "fisica", "quimica",
			"--min-size", "2", "-f", "json", "-o", out))
		var res []struct {
			Number  int `json:"number"`
			Options []struct {
				Subject string `json:"subject"`
			} `json:"options"`
		}
		readJSON(t, out, &res)
		require.Len(t, res, 2)
		assert.Len(t, res[0].Options, 2)

		assert.Error(t, run("plan", "historia"))
	})
}
