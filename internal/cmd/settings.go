package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/mama/internal/config"
	"github.com/renato0307/mama/internal/domain"
)

// SettingsCmd manages timer preferences and app settings
type SettingsCmd struct {
	Export SettingsExportCmd `cmd:"export" help:"Export timer preferences to a YAML file"`
	Import SettingsImportCmd `cmd:"import" help:"Import timer preferences from a YAML file"`
	Keys   SettingsKeysCmd   `cmd:"keys" help:"Manage keyboard shortcuts"`
	Meta   SettingsMetaCmd   `cmd:"meta" help:"Show settings file location and available options"`
	Set    SettingsSetCmd    `cmd:"set" help:"Set a timer preference"`
	Show   SettingsShowCmd   `cmd:"show" help:"Show timer preferences" default:"1"`
}

// SettingsShowCmd displays the timer preferences
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(container *Container) error {
	prefs, err := container.PreferencesService.Load(context.Background())
	if err != nil {
		return err
	}
	return printPreferences(prefs, s.Format)
}

// SettingsSetCmd updates one timer preference
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Preference key (e.g. work_duration, mom_mode, alarm_sound)"`
	Value string `arg:"" help:"New value; durations are in seconds"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(container *Container) error {
	if _, err := container.PreferencesService.Update(context.Background(), s.Key, s.Value); err != nil {
		return err
	}
	fmt.Printf("Set '%s' to: %s\n", s.Key, s.Value)
	return nil
}

// SettingsExportCmd writes the timer preferences to YAML
type SettingsExportCmd struct {
	Path string `arg:"" help:"Destination file" type:"path"`
}

// Run executes the export command
func (s *SettingsExportCmd) Run(container *Container) error {
	if err := container.PreferencesService.Export(context.Background(), s.Path); err != nil {
		return err
	}
	fmt.Printf("Preferences exported to %s\n", s.Path)
	return nil
}

// SettingsImportCmd reads the timer preferences from YAML
type SettingsImportCmd struct {
	Path string `arg:"" help:"Source file" type:"existingfile"`
}

// Run executes the import command
func (s *SettingsImportCmd) Run(container *Container) error {
	prefs, err := container.PreferencesService.Import(context.Background(), s.Path)
	if err != nil {
		return err
	}
	fmt.Printf("Preferences imported from %s\n\n", s.Path)
	return printPreferences(prefs, "table")
}

func printPreferences(prefs domain.Preferences, format string) error {
	values := make(map[string]string)
	for _, key := range domain.PreferenceKeys() {
		value, err := prefs.Get(key)
		if err != nil {
			return err
		}
		values[key] = value
	}

	if format == "json" {
		return printJSON(values)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range domain.PreferenceKeys() {
		fmt.Fprintf(w, "%s\t%s\n", key, values[key])
	}
	return w.Flush()
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run() error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			valueStr = v
		case []string, map[string]any:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure mama.")
	fmt.Println("All settings are optional and have sensible defaults.")
	fmt.Println("Timer preferences live in the database: see 'mama settings show'.")

	return nil
}
