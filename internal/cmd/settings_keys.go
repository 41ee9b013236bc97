package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/mama/internal/config"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., pause, abandon, quit)"`
	Value string `arg:"" help:"Key binding (e.g., p, ctrl+s, or comma-separated for multiple: p,space)"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var customKeys config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		customKeys = cli.settings.Keys
	}

	if s.Format == "json" {
		result := make(map[string]map[string]any)
		for _, def := range ui.AllKeyDefinitions {
			entry := map[string]any{
				"default": def.Defaults,
				"help":    def.Help,
			}
			if custom, ok := customKeys[def.Name]; ok && len(custom) > 0 {
				entry["custom"] = custom
			}
			result[def.Name] = entry
		}
		return printJSON(result)
	}

	fmt.Printf("Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom\tAction")
	fmt.Fprintln(w, "────\t───────\t──────\t──────")

	for _, name := range ui.GetValidKeyNames() {
		def := ui.GetKeyDefinition(name)
		customStr := "-"
		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			customStr = displayKeys(custom)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, displayKeys(def.Defaults), customStr, def.Help)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'mama settings keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run() error {
	if ui.GetKeyDefinition(s.Key) == nil {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	settings.Keys[s.Key] = values

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, displayKeys(values))
	return nil
}

// parseKeyValues parses comma-separated key values. The word "space"
// stands for the space bar.
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		switch trimmed {
		case "":
			continue
		case "space":
			trimmed = " "
		}
		result = append(result, trimmed)
	}
	return result
}

func displayKeys(keys []string) string {
	shown := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		shown[i] = k
	}
	return strings.Join(shown, ", ")
}
