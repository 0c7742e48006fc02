// Package dailyfmt turns a daily-note name template such as "{YYYY}-{MM}-{DD}"
// into a concrete file name for a given moment.
package dailyfmt

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Locale selects whether English weekday names are localized after rendering.
type Locale string

const (
	// LocaleZH replaces English weekday names with Chinese ones.
	LocaleZH Locale = "zh"
	// LocaleNone leaves weekday names in English.
	LocaleNone Locale = "none"
)

// ErrUnknownLocale is returned by ParseLocale for unsupported values.
var ErrUnknownLocale = errors.New("unknown locale")

// ParseLocale maps user input to a Locale. Empty input selects LocaleZH.
func ParseLocale(value string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "zh":
		return LocaleZH, nil
	case "none", "en":
		return LocaleNone, nil
	default:
		return "", fmt.Errorf("%w %q (expected zh|none)", ErrUnknownLocale, value)
	}
}

// Token is a bracketed placeholder recognized in a template.
type Token struct {
	Text        string
	Directive   string
	Description string
}

// Processing order matters: every token is substituted and rendered before
// the next one is looked at.
var tokens = []Token{
	{Text: "{YYYY}", Directive: "%Y", Description: "4-digit year"},
	{Text: "{YY}", Directive: "%y", Description: "2-digit year"},
	{Text: "{MM}", Directive: "%m", Description: "2-digit month"},
	{Text: "{DDDD}", Directive: "%j", Description: "3-digit day of year"},
	{Text: "{DD}", Directive: "%d", Description: "2-digit day of month"},
	{Text: "{dddd}", Directive: "%A", Description: "full weekday name"},
	{Text: "{ddd}", Directive: "%a", Description: "abbreviated weekday name"},
	{Text: "{dd}", Directive: "%d", Description: "2-digit day of month (alias)"},
	{Text: "{d}", Directive: "%w", Description: "weekday number, 0 is Sunday"},
	{Text: "{HH}", Directive: "%H", Description: "hour, 24-hour clock"},
	{Text: "{hh}", Directive: "%I", Description: "hour, 12-hour clock"},
	{Text: "{mm}", Directive: "%M", Description: "minute"},
	{Text: "{ss}", Directive: "%S", Description: "second"},
}

// Tokens returns a copy of the token table in processing order.
func Tokens() []Token {
	return append([]Token(nil), tokens...)
}

var zhWeekdays = [][2]string{
	{"Monday", "星期一"},
	{"Tuesday", "星期二"},
	{"Wednesday", "星期三"},
	{"Thursday", "星期四"},
	{"Friday", "星期五"},
	{"Saturday", "星期六"},
	{"Sunday", "星期日"},
	{"Mon", "周一"},
	{"Tue", "周二"},
	{"Wed", "周三"},
	{"Thu", "周四"},
	{"Fri", "周五"},
	{"Sat", "周六"},
	{"Sun", "周日"},
	{"Mo", "一"},
	{"Tu", "二"},
	{"We", "三"},
	{"Th", "四"},
	{"Fr", "五"},
	{"Sa", "六"},
	{"Su", "日"},
}

// Resolve renders template against at. Each token class is replaced by its
// strftime directive and the whole string is re-rendered before the next
// class, so a literal '%' in the template is read as a directive introducer.
// With LocaleZH the weekday table is applied to the entire string after every
// render, including literal text ("Mood" becomes "一od").
func Resolve(template string, at time.Time, locale Locale) string {
	out := template
	for _, tok := range tokens {
		out = strings.ReplaceAll(out, tok.Text, tok.Directive)
		out = strftime(out, at)
		if locale == LocaleZH {
			out = localizeWeekdays(out)
		}
	}
	return out
}

func localizeWeekdays(s string) string {
	for _, pair := range zhWeekdays {
		s = strings.ReplaceAll(s, pair[0], pair[1])
	}
	return s
}
