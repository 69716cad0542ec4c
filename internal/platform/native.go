//go:build !js

package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/vnc/internal/log"
)

// Info shows a message box.
func Info(msg string) error {
	return zenity.Info(msg, zenity.Title(appTitle), zenity.InfoIcon)
}

// Error shows an error box.
func Error(msg string) error {
	return zenity.Error(msg, zenity.Title(appTitle), zenity.ErrorIcon)
}

// SaveFile asks where to save data and writes it there. It returns the
// chosen path, or "" if the user canceled.
func SaveFile(name string, data []byte, _ string) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Contact"),
		zenity.Filename(name),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "vCard",
			Patterns: []string{"*" + filepath.Ext(name)},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// clipboardTool is a command that takes the new clipboard contents on stdin.
type clipboardTool struct {
	name string
	args []string
}

// Tried in order; the first one installed wins.
var clipboardTools = []clipboardTool{
	{name: "wl-copy"},
	{name: "xclip", args: []string{"-selection", "clipboard"}},
	{name: "xsel", args: []string{"--clipboard", "--input"}},
	{name: "pbcopy"},
	{name: "clip"},
}

// runTool is swapped out in tests.
var runTool = func(t clipboardTool, s string) error {
	cmd := exec.Command(t.name, t.args...)
	cmd.Stdin = strings.NewReader(s)
	return cmd.Run()
}

// CopyText writes s to the clipboard with the first tool that works. It
// returns ErrUnavailable when none does.
func CopyText(s string) error {
	var errs []error
	for _, t := range clipboardTools {
		err := runTool(t, s)
		if err == nil {
			log.Debug("clipboard written", "tool", t.name)
			return nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", t.name, err))
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(errs...))
}
