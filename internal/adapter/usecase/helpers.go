package usecase

import (
	"strings"

	"adpilot/internal/core/domain"
)

const (
	defaultAgeFrom = 21
	defaultAgeTo   = 50

	scheduleFromHour = 8
	scheduleToHour   = 23

	urlListPageSize   = 100
	reconcilePageSize = 20
)

// ctaTable maps requested call-to-action keys to platform CTA codes. Lookups
// for unknown keys fall back to ctaDefault, never an error.
var ctaTable = map[string]string{
	"install":  "install",
	"download": "download",
	"play":     "play",
	"open":     "open",
	"buy":      "buy",
	"order":    "order",
	"signup":   "signUp",
	"more":     "learnMore",
	"visit":    "visitSite",
}

const ctaDefault = "install"

func resolveCTA(name string) string {
	if cta, ok := ctaTable[strings.ToLower(name)]; ok {
		return cta
	}
	return ctaDefault
}

// ageList enumerates every integer age in [from, to]. The platform accepts
// only explicit age lists, not range descriptors.
func ageList(from, to int) []int {
	if to < from {
		return nil
	}
	ages := make([]int, 0, to-from+1)
	for age := from; age <= to; age++ {
		ages = append(ages, age)
	}
	return ages
}

// fulltime builds a weekly display schedule with the same hour list
// [from, to] on all seven weekdays and both display flags set.
func fulltime(from, to int) domain.Fulltime {
	hours := make([]int, 0, to-from+1)
	for h := from; h <= to; h++ {
		hours = append(hours, h)
	}
	return domain.Fulltime{
		Mon:   hours,
		Tue:   hours,
		Wed:   hours,
		Thu:   hours,
		Fri:   hours,
		Sat:   hours,
		Sun:   hours,
		Flags: []string{"cross_timezone", "use_holidays_moving"},
	}
}

// truncate cuts s to at most limit characters, counting runes so that
// multibyte text is never split mid-character.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// aboutCompany joins the advertiser name and tax id into the about-company
// textblock. Empty parts are skipped.
func aboutCompany(name, inn string) string {
	parts := make([]string, 0, 2)
	if name != "" {
		parts = append(parts, name)
	}
	if inn != "" {
		parts = append(parts, "INN "+inn)
	}
	return strings.Join(parts, "\n")
}
