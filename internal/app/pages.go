package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interviewfun/authtui/internal/ui/home"
	"github.com/interviewfun/authtui/internal/ui/legal"
	"github.com/interviewfun/authtui/internal/ui/signin"
	"github.com/interviewfun/authtui/internal/ui/signup"
)

// page is a mounted route. Each view keeps its own concrete Update
// signature; the wrappers below adapt them.
type page interface {
	Init() tea.Cmd
	View() string
	Close()
	update(msg tea.Msg) (page, tea.Cmd)
	resize(width, height int) page
}

type signupPage struct{ signup.Model }

func (p signupPage) update(msg tea.Msg) (page, tea.Cmd) {
	m, cmd := p.Model.Update(msg)
	return signupPage{m}, cmd
}

func (p signupPage) resize(w, h int) page { return signupPage{p.SetSize(w, h)} }

type signinPage struct{ signin.Model }

func (p signinPage) update(msg tea.Msg) (page, tea.Cmd) {
	m, cmd := p.Model.Update(msg)
	return signinPage{m}, cmd
}

func (p signinPage) resize(w, h int) page { return signinPage{p.SetSize(w, h)} }

type legalPage struct{ legal.Model }

func (p legalPage) update(msg tea.Msg) (page, tea.Cmd) {
	m, cmd := p.Model.Update(msg)
	return legalPage{m}, cmd
}

func (p legalPage) resize(w, h int) page { return legalPage{p.SetSize(w, h)} }

type homePage struct{ home.Model }

func (p homePage) update(msg tea.Msg) (page, tea.Cmd) {
	m, cmd := p.Model.Update(msg)
	return homePage{m}, cmd
}

func (p homePage) resize(w, h int) page { return homePage{p.SetSize(w, h)} }
