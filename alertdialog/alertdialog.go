// Package alertdialog is a modal that interrupts the user to confirm an
// action. It differs from a plain modal only in its role and in focusing the
// least destructive action on open.
package alertdialog

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tabkit/modal"
	"github.com/jask/tabkit/theme"
)

const RoleAlertDialog = "alertdialog"

var ErrLeastDestructive = errors.New("alertdialog: least destructive action not found")

type Config struct {
	ID      string
	Title   string
	Body    string
	Actions []modal.Action
	// LeastDestructive is the ID of the action that receives focus on open.
	LeastDestructive string
	ReturnFocus      string
	EscapeDisabled   bool
	OnClose          func()
	Focus            modal.Focuser
	Styles           theme.ModalStyles
}

type Dialog struct {
	*modal.Modal
	leastDestructive string
}

func New(cfg Config) (*Dialog, error) {
	found := false
	for _, a := range cfg.Actions {
		if a.ID == cfg.LeastDestructive {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrLeastDestructive, cfg.LeastDestructive)
	}
	m := modal.New(modal.Config{
		ID:             cfg.ID,
		Title:          cfg.Title,
		Body:           cfg.Body,
		Actions:        cfg.Actions,
		InitialFocus:   cfg.LeastDestructive,
		ReturnFocus:    cfg.ReturnFocus,
		EscapeDisabled: cfg.EscapeDisabled,
		Role:           RoleAlertDialog,
		OnClose:        cfg.OnClose,
		Focus:          cfg.Focus,
		Styles:         cfg.Styles,
	})
	return &Dialog{Modal: m, leastDestructive: cfg.LeastDestructive}, nil
}

func MustNew(cfg Config) *Dialog {
	d, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Dialog) LeastDestructive() string { return d.leastDestructive }

// ConfirmConfig describes the common cancel/confirm alert.
type ConfirmConfig struct {
	ID           string
	Title        string
	Body         string
	ConfirmLabel string
	CancelLabel  string
	OnConfirm    func() tea.Cmd
	Focus        modal.Focuser
	Styles       theme.ModalStyles
}

// NewConfirm builds a two-action alert with Cancel as the least destructive
// action and the confirm button drawn as dangerous.
func NewConfirm(cfg ConfirmConfig) *Dialog {
	if cfg.ConfirmLabel == "" {
		cfg.ConfirmLabel = "Confirm"
	}
	if cfg.CancelLabel == "" {
		cfg.CancelLabel = "Cancel"
	}
	return MustNew(Config{
		ID:    cfg.ID,
		Title: cfg.Title,
		Body:  cfg.Body,
		Actions: []modal.Action{
			{ID: "cancel", Label: cfg.CancelLabel},
			{ID: "confirm", Label: cfg.ConfirmLabel, Danger: true, Run: cfg.OnConfirm},
		},
		LeastDestructive: "cancel",
		Focus:            cfg.Focus,
		Styles:           cfg.Styles,
	})
}
