package usecase

import (
	"strings"
	"testing"
)

func TestAgeList(t *testing.T) {
	ages := ageList(21, 25)
	want := []int{21, 22, 23, 24, 25}
	if len(ages) != len(want) {
		t.Fatalf("unexpected length: got %d, want %d", len(ages), len(want))
	}
	for i := range want {
		if ages[i] != want[i] {
			t.Fatalf("ageList[%d]: got %d, want %d", i, ages[i], want[i])
		}
	}

	if got := ageList(30, 30); len(got) != 1 || got[0] != 30 {
		t.Fatalf("single age: got %v", got)
	}
	if got := ageList(30, 20); got != nil {
		t.Fatalf("inverted range should yield nil, got %v", got)
	}
}

func TestFulltimeSchedule(t *testing.T) {
	ft := fulltime(8, 23)

	// один и тот же список часов на все семь дней
	days := [][]int{ft.Mon, ft.Tue, ft.Wed, ft.Thu, ft.Fri, ft.Sat, ft.Sun}
	for d, hours := range days {
		if len(hours) != 16 {
			t.Fatalf("day %d: got %d hours, want 16", d, len(hours))
		}
		if hours[0] != 8 || hours[len(hours)-1] != 23 {
			t.Fatalf("day %d: hours span %d..%d, want 8..23", d, hours[0], hours[len(hours)-1])
		}
	}

	if len(ft.Flags) != 2 {
		t.Fatalf("unexpected flags: %v", ft.Flags)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 25); got != "short" {
		t.Errorf("short string must pass unmodified, got %q", got)
	}

	long := strings.Repeat("a", 30)
	if got := truncate(long, 25); len([]rune(got)) != 25 {
		t.Errorf("expected 25 runes, got %d", len([]rune(got)))
	}

	// многобайтовый текст режется по рунам, не по байтам
	ru := "Очень длинное название приложения"
	got := truncate(ru, 25)
	if len([]rune(got)) != 25 {
		t.Errorf("expected 25 runes, got %d", len([]rune(got)))
	}
	if !strings.HasPrefix(ru, got) {
		t.Errorf("truncated text is not a prefix of the original: %q", got)
	}

	// truncate is idempotent
	if again := truncate(got, 25); again != got {
		t.Errorf("second truncation changed the value: %q -> %q", got, again)
	}
}

func TestResolveCTA(t *testing.T) {
	cases := map[string]string{
		"install":  "install",
		"Install":  "install",
		"signup":   "signUp",
		"SIGNUP":   "signUp",
		"more":     "learnMore",
		"visit":    "visitSite",
		"buy":      "buy",
		"":         "install",
		"whatever": "install",
	}
	for in, want := range cases {
		if got := resolveCTA(in); got != want {
			t.Errorf("resolveCTA(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestGroupName(t *testing.T) {
	if got := groupName("", 0, 1); got != "группа 1" {
		t.Errorf("single group default: got %q", got)
	}
	if got := groupName("", 2, 3); got != "группа 3" {
		t.Errorf("multi group default: got %q", got)
	}
	if got := groupName("promo", 0, 1); got != "promo" {
		t.Errorf("single group template: got %q", got)
	}
	if got := groupName("promo", 1, 3); got != "promo 2" {
		t.Errorf("multi group template: got %q", got)
	}
}

func TestAboutCompany(t *testing.T) {
	if got := aboutCompany("ACME LLC", "7701234567"); got != "ACME LLC\nINN 7701234567" {
		t.Errorf("got %q", got)
	}
	if got := aboutCompany("ACME LLC", ""); got != "ACME LLC" {
		t.Errorf("got %q", got)
	}
	if got := aboutCompany("", "7701234567"); got != "INN 7701234567" {
		t.Errorf("got %q", got)
	}
	if got := aboutCompany("", ""); got != "" {
		t.Errorf("got %q", got)
	}
}
