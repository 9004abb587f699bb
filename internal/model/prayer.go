package model

import (
	"fmt"
)

type Prayer string

const (
	Fajr    Prayer = "fajr"
	Dhuhr   Prayer = "dhuhr"
	Asr     Prayer = "asr"
	Maghrib Prayer = "maghrib"
	Isha    Prayer = "isha"
)

// Prayers lists the five daily prayers in order.
var Prayers = []Prayer{Fajr, Dhuhr, Asr, Maghrib, Isha}

func ParsePrayer(s string) (Prayer, error) {
	for _, p := range Prayers {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown prayer: %q", s)
}

// PrayerDay is keyed by its date: ID always equals Date.
type PrayerDay struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Fajr    bool   `json:"fajr"`
	Dhuhr   bool   `json:"dhuhr"`
	Asr     bool   `json:"asr"`
	Maghrib bool   `json:"maghrib"`
	Isha    bool   `json:"isha"`
}

func (d PrayerDay) Key() string { return d.Date }

// NewPrayerDay is the record for a date without any stored row.
func NewPrayerDay(date string) PrayerDay {
	return PrayerDay{ID: date, Date: date}
}

func (d PrayerDay) Done(p Prayer) bool {
	switch p {
	case Fajr:
		return d.Fajr
	case Dhuhr:
		return d.Dhuhr
	case Asr:
		return d.Asr
	case Maghrib:
		return d.Maghrib
	case Isha:
		return d.Isha
	}
	return false
}

func (d *PrayerDay) Set(p Prayer, done bool) {
	switch p {
	case Fajr:
		d.Fajr = done
	case Dhuhr:
		d.Dhuhr = done
	case Asr:
		d.Asr = done
	case Maghrib:
		d.Maghrib = done
	case Isha:
		d.Isha = done
	}
}

// Count returns how many of the five prayers are marked (0-5).
func (d PrayerDay) Count() int {
	n := 0
	for _, p := range Prayers {
		if d.Done(p) {
			n++
		}
	}
	return n
}
