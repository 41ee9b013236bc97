package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"pause":   "p",
			"abandon": []string{"x", "ctrl+x"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName != "debug"
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "max_log_files":
				return 1000
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		if fieldName == "ssh_address" {
			return DefaultSSHAddress
		}
		return "example"
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			if fieldName == "progress_colors" {
				return []string{"#FF6347", "#FFD700"}
			}
			return []string{"example1", "example2"}
		}
	}

	return nil
}
