package resultados

import (
	"strings"
	"time"

	"github.com/louisbranch/renegocia/internal/services/web/submission"
	"github.com/louisbranch/renegocia/internal/services/web/templates"
)

// createdAtLayout matches the pt-BR browser rendering "DD/MM/YYYY, HH:MM:SS".
const createdAtLayout = "02/01/2006, 15:04:05"

// FormatBirthDate reorders "YYYY-MM-DD" into "DD/MM/YYYY" without calendar
// checks, so "0000-13-99" becomes "99/13/0000". Values that do not split into
// exactly three parts are returned as stored.
func FormatBirthDate(raw string) string {
	parts := strings.Split(raw, "-")
	if len(parts) != 3 {
		return raw
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// FormatStoredAmount renders a stored amount string with two decimals.
// Text without a leading number renders "NaN".
func FormatStoredAmount(raw string) string {
	return submission.FormatFixed2(submission.ParseNumberPrefix(raw))
}

// FormatCreatedAt renders t in loc as "DD/MM/YYYY, HH:MM:SS".
func FormatCreatedAt(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(createdAtLayout)
}

// Rows formats every submission for display, in log order.
func Rows(entries submission.Log, loc *time.Location) []templates.ResultRow {
	rows := make([]templates.ResultRow, 0, len(entries))
	for _, s := range entries {
		rows = append(rows, templates.ResultRow{
			Nome:           s.Nome,
			Email:          s.Email,
			Telefone:       s.Telefone,
			DataNascimento: FormatBirthDate(s.DataNascimento),
			ValorDivida:    FormatStoredAmount(s.ValorDivida),
			ValorParcela:   FormatStoredAmount(s.ValorParcela),
			TotalParcelas:  s.TotalParcelas,
			ParcelasPagas:  s.ParcelasPagas,
			NovaParcela:    submission.FormatFixed2(s.NovaParcela),
			CreatedAt:      FormatCreatedAt(s.CreatedAt, loc),
		})
	}
	return rows
}
