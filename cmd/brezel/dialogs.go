package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/erikgeiser/promptkit"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/erikgeiser/promptkit/textinput"

	"github.com/aretw0/brezel/pkg/core"
)

// terminalDialogs implements core.Dialogs with interactive prompts.
// Preset answers skip the prompts for scripted use.
type terminalDialogs struct {
	out       io.Writer
	assumeYes bool
	savePath  string

	// Overridable for tests.
	promptPath    func(req core.SaveFileRequest) (string, error)
	promptConfirm func(req core.ConfirmRequest) (bool, error)
}

func newTerminalDialogs(out io.Writer, assumeYes bool, savePath string) *terminalDialogs {
	return &terminalDialogs{
		out:           out,
		assumeYes:     assumeYes,
		savePath:      savePath,
		promptPath:    promptPath,
		promptConfirm: promptConfirm,
	}
}

func (d *terminalDialogs) SaveFile(ctx context.Context, req core.SaveFileRequest) (string, bool, error) {
	if d.savePath != "" {
		return d.savePath, true, nil
	}

	path, err := d.promptPath(req)
	if errors.Is(err, promptkit.ErrAborted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return path, path != "", nil
}

func (d *terminalDialogs) Confirm(ctx context.Context, req core.ConfirmRequest) (bool, error) {
	if d.assumeYes {
		return true, nil
	}

	yes, err := d.promptConfirm(req)
	if errors.Is(err, promptkit.ErrAborted) {
		return false, nil
	}
	return yes, err
}

func (d *terminalDialogs) ShowMessage(ctx context.Context, msg core.Message) error {
	_, err := fmt.Fprintf(d.out, "%s: %s\n", msg.Title, msg.Message)
	return err
}

func promptPath(req core.SaveFileRequest) (string, error) {
	input := textinput.New(fmt.Sprintf("%s (%s):", req.Title, req.ButtonLabel))
	input.InitialValue = req.DefaultPath
	input.Placeholder = req.DefaultPath
	return input.RunPrompt()
}

func promptConfirm(req core.ConfirmRequest) (bool, error) {
	input := confirmation.New(req.Message, confirmation.No)
	return input.RunPrompt()
}

var _ core.Dialogs = (*terminalDialogs)(nil)
