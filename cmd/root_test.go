package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRootCmd_Exists verifies getRootCmd returns
// a valid command.
func TestGetRootCmd_Exists(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")
	assert.Equal(t, "horario", cmd.Use,
		"Command name should be horario")
	assert.NotNil(t, cmd.PersistentPreRunE,
		"PersistentPreRunE should be set for bootstrap")
	assert.NotNil(t, cmd.RunE)
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)
}

// TestGetRootCmd_Version verifies both version flags and the
// version template.
func TestGetRootCmd_Version(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		t.Run(flag, func(t *testing.T) {
			cmd := getRootCmd()
			cmd.Version = "version: v1.2.3\nbuild:   abc123"

			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetArgs([]string{flag})

			require.NoError(t, cmd.Execute())
			output := buf.String()
			assert.Contains(t, output, "v1.2.3")
			assert.Contains(t, output, "abc123")
			assert.NotContains(t, output, "horario version")
		})
	}
}

// TestGetRootCmd_Subcommands verifies every subcommand is registered.
func TestGetRootCmd_Subcommands(t *testing.T) {
	cmd := getRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{
		"create", "migrate", "import", "conflicts", "timetable", "plan",
	} {
		assert.Contains(t, names, want)
	}
}

// TestGetRootCmd_HelpText verifies help text content.
func TestGetRootCmd_HelpText(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	helpText := buf.String()
	assert.Contains(t, helpText, "horario")
	assert.Contains(t, helpText, "PostgreSQL")
	assert.Contains(t, helpText, "SQLite")
	assert.Contains(t, helpText, "HORARIO_DATABASE_DRIVER")
}

// TestGetRootCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetRootCmd_IndependentInstances(t *testing.T) {
	cmd1 := getRootCmd()
	cmd2 := getRootCmd()

	assert.NotSame(t, cmd1, cmd2,
		"Each getRootCmd call should return new instance")

	cmd1.Version = "version1"
	cmd2.Version = "version2"

	assert.Equal(t, "version1", cmd1.Version)
	assert.Equal(t, "version2", cmd2.Version)
}

// TestGetRootCmd_InvalidCommand verifies error on
// invalid command.
func TestGetRootCmd_InvalidCommand(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"nonexistent-command"})

	err := cmd.Execute()

	require.Error(t, err, "Should error on invalid command")
	assert.True(t,
		strings.Contains(buf.String(), "unknown") ||
			strings.Contains(err.Error(), "unknown"),
		"Error should indicate unknown command")
}

func TestEnvKeys(t *testing.T) {
	assert.Equal(t, 16, len(envKeys), "every persistent config field has a variable")
	for _, k := range envKeys {
		assert.Equal(t, strings.ToLower(k), k)
		assert.Contains(t, k, ".")
	}
}
