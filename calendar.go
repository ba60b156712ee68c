package ntpts

import "time"

// Fields is a broken down calendar time.
type Fields struct {
	Day   int
	Month string
	Year  int

	Hour, Min, Sec int

	Zone string
}

func (l *Locale) UTC(sec int64) Fields {
	return l.fields(time.Unix(sec, 0).UTC())
}

func (l *Locale) Local(sec int64) Fields {
	return l.fields(time.Unix(sec, 0).In(l.Location))
}

func (l *Locale) fields(t time.Time) (f Fields) {
	f.Year = t.Year()
	f.Month = l.Months[t.Month()-1]
	f.Day = t.Day()
	f.Hour, f.Min, f.Sec = t.Clock()
	f.Zone, _ = t.Zone()
	return
}
