package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/services"
	"github.com/renato0307/mama/internal/theme"
)

// ErrOnboardingAborted is returned when the user leaves onboarding early
var ErrOnboardingAborted = errors.New("onboarding aborted")

// OnboardingChoices holds what the user picked during onboarding
type OnboardingChoices struct {
	MomMode      domain.MomMode
	WorkDuration int
}

// NewOnboardingForm builds the first-run form writing into choices
func NewOnboardingForm(choices *OnboardingChoices) *huh.Form {
	if choices.WorkDuration == 0 {
		choices.WorkDuration = domain.DefaultWorkDuration
	}
	if choices.MomMode == "" {
		choices.MomMode = domain.MomModeStandard
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(theme.AppNameStyle.Render("mama")).
				Description("A focus timer that keeps you honest.\nLet's set up your first pomodoro."),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How long should a focus session last?").
				Options(
					huh.NewOption("15 minutes", 15*60),
					huh.NewOption("25 minutes (classic)", 25*60),
					huh.NewOption("50 minutes", 50*60),
				).
				Value(&choices.WorkDuration),
			huh.NewSelect[domain.MomMode]().
				Title("How strict should mama be?").
				Options(
					huh.NewOption("Gentle - quiet halfway mark", domain.MomModeGentle),
					huh.NewOption("Standard - a friendly nudge", domain.MomModeStandard),
					huh.NewOption("Strict - you will hear about it", domain.MomModeStrict),
				).
				Value(&choices.MomMode),
		),
	)
}

// RunOnboarding asks for the first preferences and stores them
func RunOnboarding(ctx context.Context, prefs *services.PreferencesService) (domain.Preferences, error) {
	var choices OnboardingChoices
	if err := NewOnboardingForm(&choices).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.Preferences{}, ErrOnboardingAborted
		}
		return domain.Preferences{}, err
	}

	return prefs.CreateDefaults(ctx, choices.WorkDuration, choices.MomMode)
}
