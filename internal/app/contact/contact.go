package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Нормализация контактных полей клиента. Все функции чистые: в БД попадает
// только каноническая форма, отображаемая форма строится заново при выводе.

var (
	ErrBadPhone    = errors.New("неверный формат телефона, ожидается российский номер из 11 цифр")
	ErrBadVK       = errors.New("неверный формат VK: допустимы id, короткое имя или ссылка vk.com")
	ErrBadTelegram = errors.New("неверный формат Telegram: допустим ник из 5-32 символов (буквы, цифры, _)")
)

var (
	digitsRe   = regexp.MustCompile(`\D+`)
	numericRe  = regexp.MustCompile(`^[0-9]+$`)
	vkHandleRe = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)
	tgHandleRe = regexp.MustCompile(`^[A-Za-z0-9_]{5,32}$`)
)

// NormalizePhone приводит телефон к канонической форме: строка из 11 цифр,
// начинающаяся с 7 (например 79991234567). Пустой ввод допустим - поле
// необязательное. Всё остальное отклоняется.
func NormalizePhone(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	digits := digitsRe.ReplaceAllString(raw, "")

	switch {
	case len(digits) == 11 && digits[0] == '8':
		// Национальный префикс 8 заменяем на код страны
		digits = "7" + digits[1:]
	case len(digits) == 10:
		// Номер без кода страны
		digits = "7" + digits
	}

	if len(digits) != 11 || digits[0] != '7' {
		return "", ErrBadPhone
	}
	return digits, nil
}

// FormatPhone строит отображаемую форму +7 999 123-45-67 из канонической.
// Неканоническое значение возвращается как есть.
func FormatPhone(canonical string) string {
	if len(canonical) != 11 || canonical[0] != '7' {
		return canonical
	}
	return fmt.Sprintf("+7 %s %s-%s-%s",
		canonical[1:4], canonical[4:7], canonical[7:9], canonical[9:11])
}

// PhoneLink строит ссылку tel:+7... из канонической формы
func PhoneLink(canonical string) string {
	if canonical == "" {
		return ""
	}
	return "tel:+" + canonical
}

// NormalizeVK приводит VK к канонической форме: id123456 для числовых
// идентификаторов, короткое имя для остальных. Принимает и голое значение,
// и ссылку на профиль.
func NormalizeVK(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", nil
	}

	for _, prefix := range []string{"https://", "http://", "m.vk.com/", "vk.com/", "@"} {
		v = strings.TrimPrefix(v, prefix)
	}
	v = strings.TrimSuffix(v, "/")

	if v == "" {
		return "", ErrBadVK
	}

	// Чисто числовое значение - это сырой id
	if numericRe.MatchString(v) {
		return "id" + v, nil
	}

	if !vkHandleRe.MatchString(v) {
		return "", ErrBadVK
	}
	return v, nil
}

// VKLink строит ссылку на профиль из канонической формы
func VKLink(canonical string) string {
	if canonical == "" {
		return ""
	}
	return "https://vk.com/" + canonical
}

// NormalizeTelegram приводит Telegram к канонической форме: голый ник без @.
// Принимает @ник, t.me/ник и полную ссылку.
func NormalizeTelegram(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", nil
	}

	for _, prefix := range []string{"https://", "http://", "t.me/", "telegram.me/", "@"} {
		v = strings.TrimPrefix(v, prefix)
	}
	v = strings.TrimSuffix(v, "/")

	if !tgHandleRe.MatchString(v) {
		return "", ErrBadTelegram
	}
	return v, nil
}

// TelegramLink строит ссылку t.me из канонической формы
func TelegramLink(canonical string) string {
	if canonical == "" {
		return ""
	}
	return "https://t.me/" + canonical
}
