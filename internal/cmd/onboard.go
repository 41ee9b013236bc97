package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/ui"
)

// OnboardCmd asks for the first preferences
type OnboardCmd struct {
	MomMode      string `help:"Skip the form: mom mode (gentle, standard, strict)"`
	WorkDuration int    `help:"Skip the form: work duration in minutes"`
}

// Run executes the onboard command
func (o *OnboardCmd) Run(container *Container) error {
	ctx := context.Background()

	if o.WorkDuration > 0 || o.MomMode != "" {
		return o.runNonInteractive(ctx, container)
	}

	prefs, err := ui.RunOnboarding(ctx, container.PreferencesService)
	if err != nil {
		if errors.Is(err, ui.ErrOnboardingAborted) {
			fmt.Println("Onboarding cancelled")
			return nil
		}
		return err
	}

	printOnboarded(prefs)
	return nil
}

func (o *OnboardCmd) runNonInteractive(ctx context.Context, container *Container) error {
	workDuration := domain.DefaultWorkDuration
	if o.WorkDuration > 0 {
		workDuration = o.WorkDuration * 60
	}

	mode := domain.MomModeStandard
	if o.MomMode != "" {
		parsed, err := domain.ParseMomMode(o.MomMode)
		if err != nil {
			return err
		}
		mode = parsed
	}

	prefs, err := container.PreferencesService.CreateDefaults(ctx, workDuration, mode)
	if err != nil {
		return err
	}

	printOnboarded(prefs)
	return nil
}

func printOnboarded(prefs domain.Preferences) {
	fmt.Printf("All set: %s pomodoros in %s mode\n", ui.FormatMinutes(prefs.WorkDuration), prefs.MomMode)
}
