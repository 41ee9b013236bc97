package ui

import (
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/mama/internal/config"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?", "h"}, Help: "toggle help"},
	{Name: "quit", Defaults: []string{"q"}, Help: "quit (abandons a running pomodoro)"},

	// Timer keys
	{Name: "abandon", Defaults: []string{"x"}, Help: "abandon pomodoro"},
	{Name: "pause", Defaults: []string{"p", " "}, Help: "pause/resume"},
	{Name: "retry", Defaults: []string{"r"}, Help: "retry saving completion"},
	{Name: "start", Defaults: []string{"s", "enter"}, Help: "start pomodoro"},

	// Task keys
	{Name: "new_task", Defaults: []string{"n"}, Help: "add task"},
	{Name: "select_task", Defaults: []string{"t"}, Help: "pick task"},
}

var (
	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// TimerKeys defines key bindings that drive the countdown
type TimerKeys struct {
	Abandon key.Binding
	Pause   key.Binding
	Retry   key.Binding
	Start   key.Binding
}

// TaskKeys defines key bindings for task selection
type TaskKeys struct {
	New    key.Binding
	Select key.Binding
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Tasks       TaskKeys
	Timer       TimerKeys
}

// NewKeyMap creates a KeyMap. Pass nil to use the default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit: buildBinding("force_quit", customKeys),
			Help:      buildBinding("help", customKeys),
			Quit:      buildBinding("quit", customKeys),
		},
		Tasks: TaskKeys{
			New:    buildBinding("new_task", customKeys),
			Select: buildBinding("select_task", customKeys),
		},
		Timer: TimerKeys{
			Abandon: buildBinding("abandon", customKeys),
			Pause:   buildBinding("pause", customKeys),
			Retry:   buildBinding("retry", customKeys),
			Start:   buildBinding("start", customKeys),
		},
	}
}

// ShortHelp returns the bindings shown in the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Timer.Start,
		k.Timer.Pause,
		k.Timer.Abandon,
		k.Tasks.Select,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp returns every binding grouped in columns
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Timer.Start, k.Timer.Pause, k.Timer.Abandon, k.Timer.Retry},
		{k.Tasks.Select, k.Tasks.New},
		{k.Application.Help, k.Application.Quit, k.Application.ForceQuit},
	}
}

// buildBinding creates a binding from the key definition, using custom keys if provided.
func buildBinding(name string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := def.Defaults
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	helpKeys := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		helpKeys[i] = k
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(helpKeys, "/"), def.Help),
	)
}
