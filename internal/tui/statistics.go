// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"golang.org/x/sync/errgroup"
)

const maxIncompleteShown = 10

// statistics is one load of the four statistics endpoints.
type statistics struct {
	completion models.ProjectCompletion
	users      models.UserStats
	incomplete models.IncompleteProjects
	managers   models.ProductManagerStats
	fetchedAt  time.Time
	stale      bool
}

// loadStatistics queries the endpoints concurrently. Values served stale
// after a failed refresh are kept.
func loadStatistics(ctx context.Context, svc service.ClientStatisticsService, r models.DateRange) (statistics, error) {
	var (
		out   statistics
		stale [4]bool
		g     errgroup.Group
	)

	g.Go(func() error {
		e, err := svc.ProjectCompletion(ctx, r)
		out.completion, stale[0] = e.Value, e.Stale
		return err
	})
	g.Go(func() error {
		e, err := svc.Users(ctx, r)
		out.users, stale[1] = e.Value, e.Stale
		return err
	})
	g.Go(func() error {
		e, err := svc.IncompleteProjects(ctx, r)
		out.incomplete, stale[2] = e.Value, e.Stale
		return err
	})
	g.Go(func() error {
		e, err := svc.ProductManager(ctx, r)
		out.managers, stale[3] = e.Value, e.Stale
		return err
	})
	err := g.Wait()

	out.stale = slices.Contains(stale[:], true)
	out.fetchedAt = time.Now()
	return out, err
}

type statisticsModel struct {
	rng     models.DateRange
	inputs  []textinput.Model
	focus   int
	editing bool
	loading bool
	loaded  bool
	spinner spinner.Model
	stats   statistics
}

func newStatisticsModel() statisticsModel {
	start := textinput.New()
	start.Placeholder = models.DateLayout
	start.CharLimit = len(models.DateLayout)
	start.Width = 12

	end := textinput.New()
	end.Placeholder = models.DateLayout
	end.CharLimit = len(models.DateLayout)
	end.Width = 12

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return statisticsModel{inputs: []textinput.Model{start, end}, spinner: s}
}

func (m statisticsModel) startEditing() statisticsModel {
	m.editing = true
	m.focus = 0
	m.inputs[0].SetValue(m.rng.StartString())
	m.inputs[1].SetValue(m.rng.EndString())
	m.inputs[0].Focus()
	m.inputs[1].Blur()
	return m
}

func (m statisticsModel) stopEditing() statisticsModel {
	m.editing = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m
}

func (m statisticsModel) moveFocus(delta int) statisticsModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

// parseRange reads the date inputs. An empty input leaves that bound open.
func (m statisticsModel) parseRange() (models.DateRange, error) {
	var (
		r   models.DateRange
		err error
	)
	if v := strings.TrimSpace(m.inputs[0].Value()); v != "" {
		if r.Start, err = time.Parse(models.DateLayout, v); err != nil {
			return r, errInvalidDate
		}
	}
	if v := strings.TrimSpace(m.inputs[1].Value()); v != "" {
		if r.End, err = time.Parse(models.DateLayout, v); err != nil {
			return r, errInvalidDate
		}
	}
	if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		return r, errInvalidDate
	}
	return r, nil
}

func (m statisticsModel) View() string {
	var b strings.Builder

	b.WriteString("Range: ")
	if m.editing {
		b.WriteString(m.inputs[0].View())
		b.WriteString(" .. ")
		b.WriteString(m.inputs[1].View())
	} else {
		b.WriteString(orDash(m.rng.StartString()))
		b.WriteString(" .. ")
		b.WriteString(orDash(m.rng.EndString()))
	}
	if m.loading {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n\n")

	if !m.loaded {
		if m.loading {
			b.WriteString("Loading...")
		}
		return b.String()
	}

	c := m.stats.completion
	b.WriteString(sectionStyle.Render(fmt.Sprintf(
		"Project completion\n%.2f%% completed · %d total · %d completed · %d in progress · %d pending",
		c.CompletionRate, c.Total, c.Completed, c.InProgress, c.Pending)))
	b.WriteString("\n")

	u := m.stats.users
	roles := make([]string, 0, len(u.ByRole))
	for _, role := range slices.Sorted(maps.Keys(u.ByRole)) {
		roles = append(roles, fmt.Sprintf("%s %d", clean(role), u.ByRole[role]))
	}
	b.WriteString(sectionStyle.Render(fmt.Sprintf(
		"Users\n%d total · %d active · %d inactive\n%s",
		u.Total, u.Active, u.Inactive, orDash(strings.Join(roles, " · ")))))
	b.WriteString("\n")

	var incomplete strings.Builder
	incomplete.WriteString(fmt.Sprintf("Incomplete projects (%d)", len(m.stats.incomplete.Projects)))
	for i, p := range m.stats.incomplete.Projects {
		if i == maxIncompleteShown {
			incomplete.WriteString("\n...")
			break
		}
		incomplete.WriteString(fmt.Sprintf("\n%s [%s] due %s", fitText(clean(p.Name), 40), orDash(string(p.Status)), formatDatePtr(p.EndDate)))
	}
	b.WriteString(sectionStyle.Render(incomplete.String()))
	b.WriteString("\n")

	var managers strings.Builder
	managers.WriteString("Products per manager")
	for _, mgr := range m.stats.managers.Managers {
		managers.WriteString(fmt.Sprintf("\n%-24s %4d products · %6d items",
			fitText(orDash(clean(mgr.ManagerName)), 24), mgr.Products, mgr.Quantity))
	}
	if len(m.stats.managers.Managers) == 0 {
		managers.WriteString("\n-")
	}
	b.WriteString(sectionStyle.Render(managers.String()))
	b.WriteString("\n")

	b.WriteString("fetched " + m.stats.fetchedAt.Format(time.TimeOnly))
	if m.stats.stale {
		b.WriteString("  " + staleStyle.Render("(stale)"))
	}
	return b.String()
}
