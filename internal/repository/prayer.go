package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/nzoschke/productivity/internal/model"
)

// PrayerRepository has no partial update: the caller always computes the
// full day record and upserts it by date.
type PrayerRepository interface {
	All(ctx context.Context) ([]model.PrayerDay, error)
	Upsert(ctx context.Context, day model.PrayerDay) error
}

type prayerRow struct {
	ID      string `db:"id"`
	Date    string `db:"date"`
	Fajr    bool   `db:"fajr"`
	Dhuhr   bool   `db:"dhuhr"`
	Asr     bool   `db:"asr"`
	Maghrib bool   `db:"maghrib"`
	Isha    bool   `db:"isha"`
}

type prayerRepository struct {
	table
}

func NewPrayerRepository(db *sqlx.DB) PrayerRepository {
	return &prayerRepository{table{db: db, name: "prayers"}}
}

func (r *prayerRepository) All(ctx context.Context) ([]model.PrayerDay, error) {
	var rows []prayerRow
	query := `SELECT id, date, fajr, dhuhr, asr, maghrib, isha FROM prayers ORDER BY date ASC`

	err := r.selectAll(ctx, &rows, query)
	if err != nil {
		return nil, err
	}

	days := make([]model.PrayerDay, len(rows))
	for i, row := range rows {
		days[i] = model.PrayerDay(row)
	}
	return days, nil
}

func (r *prayerRepository) Upsert(ctx context.Context, day model.PrayerDay) error {
	db, err := r.conn()
	if err != nil {
		return err
	}

	query := `INSERT INTO prayers (id, date, fajr, dhuhr, asr, maghrib, isha)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (id) DO UPDATE SET
	              date = excluded.date,
	              fajr = excluded.fajr,
	              dhuhr = excluded.dhuhr,
	              asr = excluded.asr,
	              maghrib = excluded.maghrib,
	              isha = excluded.isha`

	_, err = db.ExecContext(ctx, query,
		day.Date,
		day.Date,
		day.Fajr,
		day.Dhuhr,
		day.Asr,
		day.Maghrib,
		day.Isha,
	)
	return r.fail("upsert", err)
}
