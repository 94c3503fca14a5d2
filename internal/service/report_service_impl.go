package service

import (
	"context"
	"time"

	"github.com/mlanger/zeiterfassung/internal/aggregate"
	"github.com/mlanger/zeiterfassung/internal/ledger"
	"github.com/mlanger/zeiterfassung/internal/timeconv"
)

// Timesheet is everything the print renderer needs for one month. The
// renderer consumes these rows as-is and never recomputes aggregation.
type Timesheet struct {
	UserName   string
	MonthLabel string
	Days       []TimesheetDay
	Total      string
}

// TimesheetDay is one calendar day of the month, newest first, present even
// when empty.
type TimesheetDay struct {
	Date    string
	Rows    []TimesheetRow
	Total   string
	HasWork bool
}

// TimesheetRow is one session rendered for print: local clock strings and a
// duration label, "incomplete" for open sessions.
type TimesheetRow struct {
	Start    string
	End      string
	Duration string
	Notes    string
}

type reportService struct {
	ledger *ledger.Ledger
	loc    *time.Location
}

func NewReportService(l *ledger.Ledger, loc *time.Location) ReportService {
	return &reportService{ledger: l, loc: loc}
}

func (s *reportService) MonthlyTimesheet(ctx context.Context, year int, month time.Month) (*Timesheet, error) {
	sessions, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}
	userName, err := s.ledger.UserName(ctx)
	if err != nil {
		return nil, err
	}

	sheet := &Timesheet{
		UserName:   userName,
		MonthLabel: time.Date(year, month, 1, 0, 0, 0, 0, s.loc).Format("January 2006"),
		Total:      aggregate.FormatDuration(aggregate.MonthlyTotal(sessions, year, month, s.loc)),
	}

	for _, bucket := range aggregate.GroupByMonth(sessions, year, month, s.loc) {
		day := TimesheetDay{Date: bucket.Date, HasWork: len(bucket.Sessions) > 0}

		var dayTotal time.Duration
		for _, sess := range bucket.Sessions {
			row := TimesheetRow{
				Start: timeconv.LocalClock(sess.StartUTC, s.loc),
				Notes: sess.Notes,
			}
			if sess.Complete() {
				row.End = timeconv.LocalClock(*sess.EndUTC, s.loc)
				row.Duration = aggregate.FormatDuration(sess.Span())
				dayTotal += sess.Span()
			} else {
				row.Duration = "incomplete"
			}
			day.Rows = append(day.Rows, row)
		}
		day.Total = aggregate.FormatDuration(dayTotal)
		sheet.Days = append(sheet.Days, day)
	}
	return sheet, nil
}
