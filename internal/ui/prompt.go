package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var errEmptyFolder = errors.New("Folder cannot be empty")

func PromptTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

func ValidateFolder(path string) error {
	if strings.TrimSpace(path) == "" {
		return errEmptyFolder
	}
	return nil
}

// AskFolder prompts for the directory to organize. Returns
// huh.ErrUserAborted when the user cancels.
func AskFolder(defaultPath string) (string, error) {
	path := defaultPath

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Folder to organize").
				Description("Files in this folder move into Organized_Files category subfolders").
				Value(&path).
				Validate(ValidateFolder),
		),
	).WithTheme(PromptTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}
