package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bessdsv/kitematic/internal/cli/styles"
	"github.com/bessdsv/kitematic/internal/infrastructure/config"
)

var schemaStdout bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where configuration and data live, print the effective settings, and write the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file and database locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults and KITEMATIC_* environment overrides are applied.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the config JSON schema",
	Long: `Write config.schema.json next to the config file so editors can
validate and complete it. Use --stdout to print it instead.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&schemaStdout, "stdout", false, "print the schema instead of writing it")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, err := resolveConfigFile()
	if err != nil {
		return report(renderer.RenderError(err), err)
	}
	dbFile := app.Config.Database.Path
	if dbFile == "" {
		if dbFile, err = config.GetDatabaseFile(); err != nil {
			return report(renderer.RenderError(err), err)
		}
	}

	fmt.Println(renderer.RenderConfigInfo(configFile, dbFile))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := config.EncodeTOML(app.Config)
	if err != nil {
		renderer := styles.NewConfigRenderer(app.Theme)
		return report(renderer.RenderError(err), err)
	}
	fmt.Print(out)
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)

	if schemaStdout {
		data, err := config.GenerateSchema()
		if err != nil {
			return report(renderer.RenderError(err), err)
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		return report(renderer.RenderError(err), err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return report(renderer.RenderError(err), err)
	}
	if err := config.WriteSchemaFile(dir); err != nil {
		return report(renderer.RenderError(err), err)
	}

	fmt.Println(renderer.RenderSchemaWritten(config.SchemaFile(dir)))
	return nil
}

// resolveConfigFile prefers the file the manager actually read.
func resolveConfigFile() (string, error) {
	if app.ConfigManager != nil {
		return app.ConfigManager.GetConfigFile(), nil
	}
	return config.GetConfigFile()
}
