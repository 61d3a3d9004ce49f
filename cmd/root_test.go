package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"render", "counties", "export", "serve"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "wamap", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRenderCommand_Flags(t *testing.T) {
	flag := renderCmd.Flags().Lookup("output")
	require.NotNil(t, flag, "render command should have --output flag")
	assert.Equal(t, "", flag.DefValue)

	shpFlag := renderCmd.Flags().Lookup("shapefile")
	require.NotNil(t, shpFlag, "render command should have --shapefile flag")
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestExportCommand_Flags(t *testing.T) {
	flag := exportCmd.Flags().Lookup("format")
	require.NotNil(t, flag, "export command should have --format flag")
	assert.Equal(t, "xlsx", flag.DefValue)
}
