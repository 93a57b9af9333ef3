// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package listview

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/urban-services/document"
	"github.com/danielhkuo/urban-services/models"
)

// ANSI chip colors
const (
	ansiReset  = "\033[0m"
	ansiYellow = "\033[33m"
	ansiGreen  = "\033[32m"
)

// Renderer writes the fetched list as text. Colors should be enabled
// only when stdout is a terminal that wants them.
type Renderer struct {
	Out    io.Writer
	Colors bool

	// Now is stubbed in tests; zero value means time.Now.
	Now func() time.Time
}

// Render prints every request. Authenticated sessions additionally see
// the status-change affordance on every item (the current status
// marked as such, not hidden) and the delete affordance on pending
// items only.
func (r *Renderer) Render(requests []models.ServiceRequest, authenticated bool) {
	if len(requests) == 0 {
		fmt.Fprintln(r.Out, "Nenhuma solicitação encontrada")
		return
	}

	for i, req := range requests {
		if i > 0 {
			fmt.Fprintln(r.Out)
		}
		r.renderOne(req, authenticated)
	}
}

func (r *Renderer) renderOne(req models.ServiceRequest, authenticated bool) {
	typeLabel := models.ServiceTypeLabels[req.Type]
	if typeLabel == "" {
		typeLabel = req.Type
	}

	fmt.Fprintf(r.Out, "#%d  %s  %s\n", req.ID, typeLabel, r.chip(req.Status))
	fmt.Fprintf(r.Out, "    %s\n", req.Description)
	fmt.Fprintf(r.Out, "    Solicitante: %s\n", req.RequesterName)
	fmt.Fprintf(r.Out, "    Endereço: %s\n", req.Address)
	fmt.Fprintf(r.Out, "    Documento: %s\n", document.Format(req.Document))
	fmt.Fprintf(r.Out, "    Criada %s\n", r.relTime(req.CreatedAt))

	if !authenticated {
		return
	}

	fmt.Fprintf(r.Out, "    Alterar status:")
	for _, status := range models.RequestStatuses {
		if status == req.Status {
			fmt.Fprintf(r.Out, " [%s (atual)]", models.RequestStatusLabels[status])
		} else {
			fmt.Fprintf(r.Out, " [%s]", models.RequestStatusLabels[status])
		}
	}
	fmt.Fprintln(r.Out)

	if req.Status == models.StatusPending {
		fmt.Fprintf(r.Out, "    Excluir: urban-services delete %d\n", req.ID)
	}
}

// chip renders the colored status label: pending neutral, in-progress
// warning, completed success.
func (r *Renderer) chip(status string) string {
	label := models.RequestStatusLabels[status]
	if label == "" {
		label = status
	}
	if !r.Colors {
		return "[" + label + "]"
	}

	switch models.StatusChipColor(status) {
	case models.ColorWarning:
		return ansiYellow + "[" + label + "]" + ansiReset
	case models.ColorSuccess:
		return ansiGreen + "[" + label + "]" + ansiReset
	}
	return "[" + label + "]"
}

func (r *Renderer) relTime(t time.Time) string {
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}
	return humanize.CustomRelTime(t, now, "atrás", "a partir de agora", ptMagnitudes)
}

// ptMagnitudes mirrors humanize's default relative-time table with
// pt-BR wording.
var ptMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "agora", DivBy: time.Second},
	{D: 2 * time.Second, Format: "1 segundo %s", DivBy: 1},
	{D: time.Minute, Format: "%d segundos %s", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minuto %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutos %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hora %s", DivBy: 1},
	{D: humanize.Day, Format: "%d horas %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 dia %s", DivBy: 1},
	{D: humanize.Week, Format: "%d dias %s", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "1 semana %s", DivBy: 1},
	{D: humanize.Month, Format: "%d semanas %s", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "1 mês %s", DivBy: 1},
	{D: humanize.Year, Format: "%d meses %s", DivBy: humanize.Month},
	{D: 18 * humanize.Month, Format: "1 ano %s", DivBy: 1},
	{D: 2 * humanize.Year, Format: "2 anos %s", DivBy: 1},
	{D: humanize.LongTime, Format: "%d anos %s", DivBy: humanize.Year},
	{D: math.MaxInt64, Format: "muito tempo %s", DivBy: 1},
}
