package commands

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
	"github.com/minepkg/mcassets/internals/merrors"
)

// CliError is an error that might get displayed to the user
type CliError struct {
	Text        string
	Code        string
	Suggestions []string
	Help        string
	Err         error
}

func (e *CliError) Error() string {
	return e.Text
}

func (e *CliError) Unwrap() error {
	return e.Err
}

func (e *CliError) RichError() string {
	rendered := ErrorBox(e.Text, e.Help)
	if len(e.Suggestions) != 0 {
		suggestionText := "Suggestion:\n"
		if len(e.Suggestions) > 1 {
			suggestionText = "Suggestions:\n"
		}
		suggestionText = Emoji("📎 ") + suggestionText
		for _, s := range e.Suggestions {
			suggestionText += " ⦁ " + s + "\n"
		}
		rendered = lipgloss.JoinVertical(lipgloss.Left, rendered, styleHelpBox.Render(suggestionText))
	}
	return rendered
}

// Explain turns extraction errors into a CliError with some help for the user.
// Other errors are returned unchanged
func Explain(err error) error {
	var cliErr *CliError
	if errors.As(err, &cliErr) {
		return err
	}

	var mErr *merrors.Error
	if err == nil || !errors.As(err, &mErr) {
		return err
	}

	cliErr = &CliError{Text: err.Error(), Code: mErr.Kind.String(), Err: err}
	switch mErr.Kind {
	case merrors.KindEnv:
		cliErr.Help = "The Minecraft directory is located with the " + mErr.Path + " environment variable."
		cliErr.Suggestions = []string{
			"Set " + mErr.Path + " to your home directory",
			"Set the root directly with --root or \"mcassets config set root <dir>\"",
		}
	case merrors.KindIO:
		cliErr.Help = "A file could not be read or written."
		cliErr.Suggestions = []string{
			"Launch the version once with the official launcher so its jar gets downloaded",
			"Run \"mcassets versions\" to see the installed versions",
		}
	case merrors.KindFormat:
		cliErr.Help = "The version jar is damaged or not a zip file."
		cliErr.Suggestions = []string{"Delete the version folder and let the launcher download it again"}
	case merrors.KindMalformedName:
		cliErr.Help = "The archive contains an entry that can not be written safely. Nothing after it was extracted."
	}
	return cliErr
}
