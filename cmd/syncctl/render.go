package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/connector-sync/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	inSyncStyle  = cellStyle.Foreground(lipgloss.Color("42"))
	driftStyle   = cellStyle.Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	inSyncLabel  = "in sync"
	driftLabel   = "out of sync"
	emptyMessage = "nothing to show"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

func renderEndpoints(w io.Writer, endpoints []models.Endpoint) error {
	if len(endpoints) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render(emptyMessage))
		return err
	}

	t := newTable("ID", "MANAGEMENT URL", "VERSION", "DESCRIPTION").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, e := range endpoints {
		t.Row(strconv.FormatInt(e.ID, 10), e.ManagementURL, e.ProtocolVersion, e.Description)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func renderDriftReport(w io.Writer, report models.DriftReport) error {
	status := inSyncStyle.Render(inSyncLabel)
	if !report.InSync() {
		status = driftStyle.Render(driftLabel)
	}
	title := titleStyle.Render(fmt.Sprintf("Endpoint %d: %s", report.EndpointID, status))

	kinds := report.Kinds
	t := newTable("KIND", "TOTAL", "OUT OF SYNC", "IDS").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2 && kinds[row].OutOfSync > 0:
				return driftStyle
			case col == 2:
				return inSyncStyle
			}
			return cellStyle
		})
	for _, k := range kinds {
		t.Row(k.Kind, strconv.Itoa(k.Total), strconv.Itoa(k.OutOfSync), joinIDs(k.OutOfSyncIDs))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, title, t.Render()))
	return err
}

func renderEntities(w io.Writer, kind string, rows []entityRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render(kind+": "+emptyMessage))
		return err
	}

	t := newTable("ID", "REMOTE ID", "STATE").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2 && rows[row].OutOfSync:
				return driftStyle
			case col == 2:
				return inSyncStyle
			}
			return cellStyle
		})
	for _, r := range rows {
		state := inSyncLabel
		if r.OutOfSync {
			state = driftLabel
		}
		t.Row(strconv.FormatInt(r.ID, 10), r.RemoteID, state)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func joinIDs(ids []int64) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
