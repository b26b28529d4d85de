package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/core"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	"github.com/devbush/clipcast/internal/adapters/cli/tui"
	"github.com/devbush/clipcast/internal/ports"
)

// TUISelector picks from a list with the bubbletea picker.
type TUISelector struct{}

func (s *TUISelector) Select(title string, options []string) (int, bool, error) {
	items := make([]tui.PickerItem, len(options))
	for i, opt := range options {
		items[i] = tui.PickerItem{Label: opt}
	}
	return tui.RunPicker(title, items)
}

// SurveySelector picks from a list with a plain line-based survey
// prompt, for terminals where the full-screen picker misbehaves.
type SurveySelector struct{}

func (s *SurveySelector) Select(title string, options []string) (int, bool, error) {
	prompt := &survey.Select{
		Message:  title,
		Options:  options,
		PageSize: 15,
	}

	var answer core.OptionAnswer
	if err := survey.AskOne(prompt, &answer); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return answer.Index, true, nil
}

// NonInteractiveSelector refuses to prompt. Used when stdin or stdout
// is not a terminal, where any interactive prompt would hang or emit
// control sequences into a pipe.
type NonInteractiveSelector struct{}

func (s *NonInteractiveSelector) Select(title string, options []string) (int, bool, error) {
	return 0, false, fmt.Errorf("%q needs a terminal; use --episode or --list to choose non-interactively", title)
}

// NewSelector returns the selector appropriate for the current
// terminal: the full-screen picker on a real terminal, the line-based
// prompt on dumb terminals, and a hard error when there is no terminal
// at all.
func NewSelector() ports.Selector {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return &NonInteractiveSelector{}
	}
	if os.Getenv("TERM") == "dumb" {
		return &SurveySelector{}
	}
	return &TUISelector{}
}

var (
	_ ports.Selector = (*TUISelector)(nil)
	_ ports.Selector = (*SurveySelector)(nil)
	_ ports.Selector = (*NonInteractiveSelector)(nil)
)
