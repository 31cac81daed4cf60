package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bessdsv/kitematic/internal/application/usecase"
	"github.com/bessdsv/kitematic/internal/cli/styles"
)

var containersCmd = &cobra.Command{
	Use:     "containers",
	Aliases: []string{"ps"},
	Short:   "Manage the container store",
	Long:    `List, import and inspect the containers kitematic knows about.`,
}

var containersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored containers",
	Args:  cobra.NoArgs,
	RunE:  runContainersList,
}

var containersImportCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import containers from docker inspect output",
	Long: `Import containers from files holding 'docker inspect' output.

A file may hold a single inspect object or an array of them. Containers
already stored under the same name are replaced.

Examples:
  docker inspect $(docker ps -aq) > all.json
  kitematic containers import all.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runContainersImport,
}

var containersShowCmd = &cobra.Command{
	Use:   "show <container>",
	Short: "Show mode, environment, links and ports of a container",
	Args:  cobra.ExactArgs(1),
	RunE:  runContainersShow,
}

func init() {
	rootCmd.AddCommand(containersCmd)
	containersCmd.AddCommand(containersListCmd)
	containersCmd.AddCommand(containersImportCmd)
	containersCmd.AddCommand(containersShowCmd)
}

func runContainersList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewContainersRenderer(app.Theme)
	containers, err := app.InspectUC.List(app.Ctx())
	if err != nil {
		return report(renderer.RenderError(err), err)
	}

	fmt.Println(renderer.RenderList(containers))
	return nil
}

func runContainersImport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewContainersRenderer(app.Theme)
	out, err := app.ImportUC.Execute(app.Ctx(), usecase.ImportContainersInput{Paths: args})
	if err != nil {
		return report(renderer.RenderError(err), err)
	}

	fmt.Println(renderer.RenderImported(out.Names))
	return nil
}

func runContainersShow(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewContainersRenderer(app.Theme)
	details, err := app.InspectUC.Execute(app.Ctx(), args[0])
	if err != nil {
		return report(renderer.RenderError(err), err)
	}

	fmt.Println(renderer.RenderDetails(details))
	return nil
}
