package database

import (
	"fmt"
	"planboard/model"

	"github.com/jmoiron/sqlx"
)

func GetAllCalendarWeeks(db *sqlx.DB) ([]model.CalendarWeek, error) {
	var weeks []model.CalendarWeek
	err := db.Select(&weeks, "SELECT calendar_id, week, week_label, month, month_label FROM calendar ORDER BY calendar_id")
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar weeks: %w", err)
	}
	return weeks, nil
}

func UpsertCalendarWeekInTx(tx *sqlx.Tx, w model.CalendarWeek) error {
	const q = `
		INSERT INTO calendar (calendar_id, week, week_label, month, month_label)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(calendar_id) DO UPDATE SET
			week        = excluded.week,
			week_label  = excluded.week_label,
			month       = excluded.month,
			month_label = excluded.month_label
	`
	_, err := tx.Exec(q, w.CalendarID, w.Week, w.WeekLabel, w.Month, w.MonthLabel)
	if err != nil {
		return fmt.Errorf("UpsertCalendarWeekInTx (ID: %d) failed: %w", w.CalendarID, err)
	}
	return nil
}
