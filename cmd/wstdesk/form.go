package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/wstdesk/wstdesk/internal/profile"
)

// promptProfileForm edits p in place through an interactive form. The
// server address is flattened to its URL form for editing and parsed back
// on submit.
func promptProfileForm(p *profile.Profile) error {
	server := p.ServerAddr.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Profile name").
				Placeholder("e.g. home, office").
				Validate(notEmpty("name")).
				Value(&p.Name),
			huh.NewInput().
				Title("Listen address").
				Placeholder("127.0.0.1:8080").
				Validate(notEmpty("listen address")).
				Value(&p.ListenAddr),
			huh.NewInput().
				Title("Server address").
				Placeholder("wss://tunnel.example.com").
				Validate(validServer).
				Value(&server),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt cancelled: %w", err)
	}

	addr, err := profile.ParseServerAddr(server)
	if err != nil {
		return err
	}
	p.Name = strings.TrimSpace(p.Name)
	p.ListenAddr = strings.TrimSpace(p.ListenAddr)
	p.ServerAddr = addr
	return nil
}

// confirmPrompt asks a yes/no question, defaulting to no.
func confirmPrompt(title string) (bool, error) {
	var confirmed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&confirmed),
		),
	).Run()
	if err != nil {
		return false, fmt.Errorf("prompt cancelled: %w", err)
	}
	return confirmed, nil
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validServer(s string) error {
	_, err := profile.ParseServerAddr(s)
	return err
}
