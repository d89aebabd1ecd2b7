package contact

import (
	"strings"
	"testing"
)

func TestNormalizePhone_Variants(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"8 (999) 123-45-67", "79991234567"},
		{"+7 999 123 45 67", "79991234567"},
		{"79991234567", "79991234567"},
		{"9991234567", "79991234567"},
		{"8-912-000-11-22", "79120001122"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		got, err := NormalizePhone(tc.raw)
		if err != nil {
			t.Fatalf("NormalizePhone(%q): unexpected error %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizePhone_Rejects(t *testing.T) {
	for _, raw := range []string{"12345", "абв", "+1 202 555 0100", "8 999 123"} {
		if _, err := NormalizePhone(raw); err == nil {
			t.Fatalf("NormalizePhone(%q): expected error", raw)
		}
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	canonical, err := NormalizePhone("8 (999) 123-45-67")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, err := NormalizePhone(canonical)
	if err != nil {
		t.Fatalf("second normalize failed: %v", err)
	}
	if again != canonical {
		t.Fatalf("normalize is not idempotent: %q -> %q", canonical, again)
	}
}

func TestFormatPhone_RoundTrip(t *testing.T) {
	canonical, err := NormalizePhone("+7 999 123 45 67")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	display := FormatPhone(canonical)
	if display != "+7 999 123-45-67" {
		t.Fatalf("FormatPhone = %q", display)
	}

	// Цифры отображаемой формы совпадают с каноническими
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, display)
	if digits != canonical {
		t.Fatalf("display digits %q != canonical %q", digits, canonical)
	}
}

func TestPhoneLink(t *testing.T) {
	if got := PhoneLink("79991234567"); got != "tel:+79991234567" {
		t.Fatalf("PhoneLink = %q", got)
	}
	if got := PhoneLink(""); got != "" {
		t.Fatalf("PhoneLink(\"\") = %q, want empty", got)
	}
}

func TestNormalizeVK(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"https://vk.com/id123456", "id123456"},
		{"http://vk.com/durov", "durov"},
		{"vk.com/durov", "durov"},
		{"m.vk.com/durov", "durov"},
		{"123456", "id123456"},
		{"id123456", "id123456"},
		{"durov", "durov"},
		{"", ""},
	}

	for _, tc := range cases {
		got, err := NormalizeVK(tc.raw)
		if err != nil {
			t.Fatalf("NormalizeVK(%q): unexpected error %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeVK(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeVK_IdempotentAndLink(t *testing.T) {
	canonical, err := NormalizeVK("https://vk.com/123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if canonical != "id123456" {
		t.Fatalf("canonical = %q", canonical)
	}

	again, err := NormalizeVK(canonical)
	if err != nil || again != canonical {
		t.Fatalf("re-normalize changed value: %q -> %q (err %v)", canonical, again, err)
	}

	if link := VKLink(canonical); link != "https://vk.com/id123456" {
		t.Fatalf("VKLink = %q", link)
	}
	if link := VKLink("durov"); link != "https://vk.com/durov" {
		t.Fatalf("VKLink = %q", link)
	}
}

func TestNormalizeVK_Rejects(t *testing.T) {
	for _, raw := range []string{"vk.com/", "имя с пробелом", "bad name"} {
		if _, err := NormalizeVK(raw); err == nil {
			t.Fatalf("NormalizeVK(%q): expected error", raw)
		}
	}
}

func TestNormalizeTelegram(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"@username", "username"},
		{"t.me/username", "username"},
		{"https://t.me/username", "username"},
		{"telegram.me/username", "username"},
		{"username", "username"},
		{"", ""},
	}

	for _, tc := range cases {
		got, err := NormalizeTelegram(tc.raw)
		if err != nil {
			t.Fatalf("NormalizeTelegram(%q): unexpected error %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeTelegram(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeTelegram_IdempotentAndLink(t *testing.T) {
	canonical, err := NormalizeTelegram("@studio_admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, err := NormalizeTelegram(canonical)
	if err != nil || again != canonical {
		t.Fatalf("re-normalize changed value: %q -> %q (err %v)", canonical, again, err)
	}

	if link := TelegramLink(canonical); link != "https://t.me/studio_admin" {
		t.Fatalf("TelegramLink = %q", link)
	}
}

func TestNormalizeTelegram_Rejects(t *testing.T) {
	// Короче 5 символов, недопустимые символы
	for _, raw := range []string{"@abc", "user name", "ник"} {
		if _, err := NormalizeTelegram(raw); err == nil {
			t.Fatalf("NormalizeTelegram(%q): expected error", raw)
		}
	}
}
