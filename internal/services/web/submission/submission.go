package submission

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// createdAtLayout is ISO-8601 in UTC with millisecond precision.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrCorruptLog reports a stored log that is not a well-formed submission
// array.
var ErrCorruptLog = errors.New("corrupt submission log")

// Submission is an immutable snapshot of a draft taken at a successful
// submit.
type Submission struct {
	Draft
	NovaParcela float64
	CreatedAt   time.Time
}

// New snapshots d with its derived installment at now.
func New(d Draft, novaParcela float64, now time.Time) Submission {
	return Submission{
		Draft:       d,
		NovaParcela: novaParcela,
		CreatedAt:   now.UTC().Truncate(time.Millisecond),
	}
}

// Log is the ordered, append-only submission sequence.
type Log []Submission

// Append returns a new log with s at the end; l is never modified.
func (l Log) Append(s Submission) Log {
	out := make(Log, len(l), len(l)+1)
	copy(out, l)
	return append(out, s)
}

// wireSubmission mirrors the stored JSON object. Pointers distinguish a
// missing key from an empty value.
type wireSubmission struct {
	Nome           *string  `json:"nome"`
	Email          *string  `json:"email"`
	Telefone       *string  `json:"telefone"`
	DataNascimento *string  `json:"dataNascimento"`
	ValorDivida    *string  `json:"valorDivida"`
	ValorParcela   *string  `json:"valorParcela"`
	TotalParcelas  *string  `json:"totalParcelas"`
	ParcelasPagas  *string  `json:"parcelasPagas"`
	NovaParcela    *float64 `json:"novaParcela"`
	CreatedAt      *string  `json:"createdAt"`
}

// Encode serializes the log as a JSON array. An empty log encodes as "[]".
func Encode(l Log) ([]byte, error) {
	wire := make([]wireSubmission, 0, len(l))
	for _, s := range l {
		createdAt := s.CreatedAt.UTC().Format(createdAtLayout)
		novaParcela := s.NovaParcela
		wire = append(wire, wireSubmission{
			Nome:           ptr(s.Nome),
			Email:          ptr(s.Email),
			Telefone:       ptr(s.Telefone),
			DataNascimento: ptr(s.DataNascimento),
			ValorDivida:    ptr(s.ValorDivida),
			ValorParcela:   ptr(s.ValorParcela),
			TotalParcelas:  ptr(s.TotalParcelas),
			ParcelasPagas:  ptr(s.ParcelasPagas),
			NovaParcela:    &novaParcela,
			CreatedAt:      &createdAt,
		})
	}
	payload, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("encode submission log: %w", err)
	}
	return payload, nil
}

// Decode parses a stored payload. Anything other than an array of objects
// carrying every field with the right JSON type and a parseable createdAt
// fails with ErrCorruptLog.
func Decode(payload []byte) (Log, error) {
	trimmed := strings.TrimSpace(string(payload))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, fmt.Errorf("%w: payload is not an array", ErrCorruptLog)
	}
	var wire []wireSubmission
	if err := json.Unmarshal([]byte(trimmed), &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLog, err)
	}

	out := make(Log, 0, len(wire))
	for idx, w := range wire {
		s, err := w.submission()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrCorruptLog, idx, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (w wireSubmission) submission() (Submission, error) {
	fields := []struct {
		field Field
		value *string
	}{
		{FieldNome, w.Nome},
		{FieldEmail, w.Email},
		{FieldTelefone, w.Telefone},
		{FieldDataNascimento, w.DataNascimento},
		{FieldValorDivida, w.ValorDivida},
		{FieldValorParcela, w.ValorParcela},
		{FieldTotalParcelas, w.TotalParcelas},
		{FieldParcelasPagas, w.ParcelasPagas},
	}
	var d Draft
	for _, entry := range fields {
		if entry.value == nil {
			return Submission{}, fmt.Errorf("missing %s", entry.field)
		}
		d.Set(entry.field, *entry.value)
	}
	if w.NovaParcela == nil {
		return Submission{}, fmt.Errorf("missing novaParcela")
	}
	if w.CreatedAt == nil {
		return Submission{}, fmt.Errorf("missing createdAt")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, *w.CreatedAt)
	if err != nil {
		return Submission{}, fmt.Errorf("createdAt: %w", err)
	}
	return Submission{Draft: d, NovaParcela: *w.NovaParcela, CreatedAt: createdAt}, nil
}

func ptr(s string) *string {
	return &s
}
