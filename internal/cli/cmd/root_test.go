package cmd

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	tests := []struct {
		path []string
		want *cobra.Command
	}{
		{path: []string{"links", "web"}, want: linksCmd},
		{path: []string{"pick"}, want: pickCmd},
		{path: []string{"containers", "list"}, want: containersListCmd},
		{path: []string{"ps", "import", "a.json"}, want: containersImportCmd},
		{path: []string{"containers", "show", "web"}, want: containersShowCmd},
		{path: []string{"config", "path"}, want: configPathCmd},
		{path: []string{"config", "show"}, want: configShowCmd},
		{path: []string{"config", "schema"}, want: configSchemaCmd},
		{path: []string{"version"}, want: versionCmd},
		{path: []string{"gen-docs"}, want: genDocsCmd},
	}

	for _, tt := range tests {
		got, _, err := rootCmd.Find(tt.path)
		require.NoError(t, err, tt.path)
		assert.Same(t, tt.want, got, tt.path)
	}
}

func TestIsInteractive(t *testing.T) {
	assert.True(t, isInteractive(linksCmd))
	assert.True(t, isInteractive(pickCmd))
	assert.False(t, isInteractive(containersListCmd))
	assert.False(t, isInteractive(versionCmd))
}

func TestReportMarksError(t *testing.T) {
	cause := errors.New("boom")

	err := report("rendered", cause)

	assert.ErrorIs(t, err, errReported)
	assert.ErrorIs(t, err, cause)
}

func TestArgsValidation(t *testing.T) {
	assert.Error(t, linksCmd.Args(linksCmd, nil))
	assert.NoError(t, linksCmd.Args(linksCmd, []string{"web"}))
	assert.Error(t, containersImportCmd.Args(containersImportCmd, nil))
	assert.Error(t, pickCmd.Args(pickCmd, []string{"a", "b"}))
}
