package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bessdsv/kitematic/internal/cli/model"
)

var (
	pickLabelKey    string
	pickPlaceholder string
	pickPrompt      string
)

var pickCmd = &cobra.Command{
	Use:   "pick [file]",
	Short: "Pick one line from a list with a typeahead",
	Long: `Read one option per line from a file or stdin and pick one with the
typeahead. The picked line is printed to stdout; the picker itself draws
on stderr so it can sit in a pipeline.

Lines holding a JSON object are matched on the field named by
--label-key; any other line matches on its own text.

Exits with status 1 when cancelled.

Examples:
  docker ps --format '{{.Names}}' | kitematic pick
  docker ps --format '{{json .}}' | kitematic pick --label-key Names`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().StringVar(&pickLabelKey, "label-key", "", "JSON field to match on (default from config)")
	pickCmd.Flags().StringVar(&pickPlaceholder, "placeholder", "", "text shown while the field is empty")
	pickCmd.Flags().StringVarP(&pickPrompt, "prompt", "p", "", "title shown above the field")
}

func runPick(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open options: %w", err)
		}
		defer f.Close()
		in = f
	}

	items, err := model.ReadPickItems(in)
	if err != nil {
		return err
	}

	opts := app.Config.Typeahead
	if pickLabelKey != "" {
		opts.LabelKey = pickLabelKey
	}
	if pickPlaceholder != "" {
		opts.Placeholder = pickPlaceholder
	}

	m, err := model.NewPickModel(app.Ctx(), app.Theme, model.PickModelConfig{
		Items:     items,
		Prompt:    pickPrompt,
		Typeahead: opts,
	})
	if err != nil {
		return err
	}

	// stdin carries the options, so keys come from the terminal
	p := tea.NewProgram(m,
		tea.WithInputTTY(),
		tea.WithOutput(os.Stderr),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	line, ok := m.Selection()
	if !ok {
		return errReported
	}
	fmt.Println(line)
	return nil
}
