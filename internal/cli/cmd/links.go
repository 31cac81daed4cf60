package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bessdsv/kitematic/internal/cli/model"
	"github.com/bessdsv/kitematic/internal/infrastructure/config"
	"github.com/bessdsv/kitematic/internal/logging"
)

var linksCmd = &cobra.Command{
	Use:   "links <container>",
	Short: "Edit the links of a container",
	Long: `Open the links panel for a stored container.

Each row pairs a linked container with the alias it is reachable under.
The container field is a typeahead over the stored containers: type to
filter, up/down to move, enter to pick, right arrow to accept the hint.

Keys:
  tab / shift+tab   move between fields (once the suggestions are closed)
  enter             add or remove a row from the action column
  ctrl+s            save the links
  q / ctrl+c        quit

Examples:
  kitematic links web`,
	Args: cobra.ExactArgs(1),
	RunE: runLinks,
}

func init() {
	rootCmd.AddCommand(linksCmd)
}

func runLinks(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	m := model.NewLinksModel(app.Ctx(), app.Theme, model.LinksModelConfig{
		LinksUC:   app.LinksUC,
		Container: args[0],
		Typeahead: app.Config.Typeahead,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Live reload: restyle the panel when the config file changes
	if mgr := app.ConfigManager; mgr != nil {
		mgr.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigChangedMsg{Config: cfg})
		})
		if err := mgr.Watch(); err != nil {
			logging.FromContext(app.Ctx()).Warn().Err(err).Msg("config watch unavailable")
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run links panel: %w", err)
	}
	return nil
}
