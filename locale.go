package ntpts

import (
	"strings"
	"time"

	"github.com/juju/errors"
	"golang.org/x/text/language"
)

// abbreviated month names as the C library ships them (ABMON_1..ABMON_12)
var monthTables = []struct {
	tag    language.Tag
	months [12]string
}{
	{language.English, [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}},
	{language.German, [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}},
	{language.French, [12]string{"janv.", "févr.", "mars", "avril", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."}},
	{language.Spanish, [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}},
	{language.Italian, [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"}},
	{language.Dutch, [12]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"}},
	{language.Portuguese, [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}},
	{language.Swedish, [12]string{"jan", "feb", "mar", "apr", "maj", "jun", "jul", "aug", "sep", "okt", "nov", "dec"}},
}

var monthMatcher language.Matcher

func init() {
	tags := make([]language.Tag, len(monthTables))
	for i, t := range monthTables {
		tags[i] = t.tag
	}
	monthMatcher = language.NewMatcher(tags)
}

// Locale is the process wide calendar setup, resolved once at startup.
type Locale struct {
	Tag      language.Tag
	Months   [12]string
	Location *time.Location
}

// LocaleFromEnv picks the time locale the way setlocale(LC_ALL, "") does.
func LocaleFromEnv(lookup func(string) (string, bool)) string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
	}
	return ""
}

// NewLocale resolves a POSIX locale name such as "de_DE.UTF-8" and an IANA
// zone name. Unknown locales fall back to English, an empty zone means the
// process local zone.
func NewLocale(name, zone string) (l *Locale, err error) {
	l = &Locale{
		Tag:      language.English,
		Months:   monthTables[0].months,
		Location: time.Local,
	}

	if zone != "" {
		l.Location, err = time.LoadLocation(zone)
		if err != nil {
			return nil, errors.Annotatef(err, "load zone: %s", zone)
		}
	}

	name = posixToBCP47(name)
	if name == "" {
		return
	}
	tag, err := language.Parse(name)
	if err != nil {
		Warn.Printf("unknown locale %q: %s", name, err)
		return l, nil
	}
	_, i, conf := monthMatcher.Match(tag)
	if conf == language.No {
		return
	}
	l.Tag = tag
	l.Months = monthTables[i].months
	return
}

// posixToBCP47 turns "de_DE.UTF-8@euro" into "de-DE".
// "C" and "POSIX" become empty.
func posixToBCP47(name string) string {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "C", "POSIX":
		return ""
	}
	return strings.Replace(name, "_", "-", -1)
}
