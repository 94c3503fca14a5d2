package csvio

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/mlanger/zeiterfassung/internal/domain"
	"github.com/mlanger/zeiterfassung/internal/timeconv"
)

// Decode parses CSV text into sessions. The first line is taken as the
// header and discarded. Rows with fewer than three fields or an unparsable
// instant are skipped and counted, never fatal, so a partially damaged file
// still yields every well-formed row. Empty ids are regenerated.
func Decode(text string) (sessions []domain.Session, skipped int) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	first := true
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if first {
			first = false
			continue
		}

		s, ok := decodeRow(fields)
		if !ok {
			skipped++
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, skipped
}

func decodeRow(fields []string) (domain.Session, bool) {
	if len(fields) < 3 {
		return domain.Session{}, false
	}

	start, ok := timeconv.ParseInstant(strings.TrimSpace(fields[1]))
	if !ok {
		return domain.Session{}, false
	}

	s := domain.Session{
		ID:       strings.TrimSpace(fields[0]),
		StartUTC: start,
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	if raw := strings.TrimSpace(fields[2]); raw != "" {
		end, ok := timeconv.ParseInstant(raw)
		if !ok {
			return domain.Session{}, false
		}
		s.EndUTC = &end
	}
	if len(fields) > 3 {
		s.Notes = fields[3]
	}
	return s, true
}
