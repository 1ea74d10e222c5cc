// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{email, password}}
}

func (m loginModel) credentials() (email, password string, err error) {
	email = strings.TrimSpace(m.inputs[0].Value())
	password = m.inputs[1].Value()
	if email == "" || password == "" {
		return "", "", errEmptyCredentials
	}
	return email, password, nil
}

func (m loginModel) moveFocus(delta int) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

// reset clears the password and keeps the email for the next attempt.
func (m loginModel) reset() loginModel {
	m.submitting = false
	m.inputs[1].SetValue("")
	m.inputs[1].Blur()
	m.focus = 0
	m.inputs[0].Focus()
	return m
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Email     │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Password  │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]")
	} else {
		b.WriteString("\n[Sign in]")
	}
	return b.String()
}
