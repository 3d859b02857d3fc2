package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

var errCancelled = errors.New("cancelled")

// resolveCredentials prompts for whichever of username and password is empty.
func resolveCredentials(username, password string) (string, string, error) {
	var err error
	if username == "" {
		username, err = prompt("Bitbucket username", 0)
		if err != nil {
			return "", "", fmt.Errorf("username: %w", err)
		}
	}
	if password == "" {
		password, err = prompt("Bitbucket password", '*')
		if err != nil {
			return "", "", fmt.Errorf("password: %w", err)
		}
	}
	return username, password, nil
}

// prompt reads a single non-empty value from the terminal. A non-zero mask
// hides the input.
func prompt(label string, mask rune) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no terminal available for interactive prompt (use flags or BBDIST_BITBUCKET_* env vars)")
	}

	p := promptui.Prompt{
		Label: label,
		Mask:  mask,
		Validate: func(input string) error {
			if input == "" {
				return errors.New("value is required")
			}
			return nil
		},
	}

	value, err := p.Run()
	if err != nil {
		return "", handlePromptError(err)
	}
	return value, nil
}

// handlePromptError handles promptui errors.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrEOF) {
		return errCancelled
	}
	return err
}
