package domain

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ruPrinter = message.NewPrinter(language.Russian)

// FormatNumber группирует число по тысячам в русской локали: 10 000 000.
func FormatNumber(n int64) string {
	s := ruPrinter.Sprintf("%d", n)
	// printer разделяет группы неразрывными пробелами, для отображения
	// приводим их к обычным
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\u202f", " ")
	return s
}

// ParseNumber извлекает целое из пользовательской строки вида "10 000 000 ₽".
// Все нецифровые символы отбрасываются; пустой ввод дает 0.
func ParseNumber(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// leadingNumber возвращает число из начала метки ("3к" -> 3).
func leadingNumber(label string) (int, bool) {
	i := 0
	for i < len(label) && label[i] >= '0' && label[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(label[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatRoomsLabel сворачивает список меток комнатности в компактную строку.
// Последовательные числовые метки длиной больше двух схлопываются в диапазон:
// ["1к","2к","3к"] -> "1к-3к". Студии в диапазоны не попадают и всегда
// перечисляются отдельно: ["Студия","3к"] -> "Студия, 3к".
func FormatRoomsLabel(labels []string) string {
	type numbered struct {
		n     int
		label string
	}

	var studios []string
	var nums []numbered
	for _, label := range labels {
		if n, ok := leadingNumber(label); ok {
			nums = append(nums, numbered{n: n, label: label})
		} else if label != "" {
			studios = append(studios, label)
		}
	}

	parts := make([]string, 0, len(labels))
	parts = append(parts, studios...)

	i := 0
	for i < len(nums) {
		j := i
		for j+1 < len(nums) && nums[j+1].n == nums[j].n+1 {
			j++
		}
		if j-i+1 > 2 {
			parts = append(parts, nums[i].label+"-"+nums[j].label)
		} else {
			for k := i; k <= j; k++ {
				parts = append(parts, nums[k].label)
			}
		}
		i = j + 1
	}

	return strings.Join(parts, ", ")
}

// FormatPhone приводит номер к виду +X (XXX) XXX-XX-XX по мере ввода.
func FormatPhone(raw string) string {
	digits := onlyDigits(raw)
	switch {
	case len(digits) == 0:
		return ""
	case len(digits) <= 1:
		return "+" + digits
	case len(digits) <= 4:
		return "+" + digits[:1] + " (" + digits[1:]
	case len(digits) <= 7:
		return "+" + digits[:1] + " (" + digits[1:4] + ") " + digits[4:]
	case len(digits) <= 9:
		return "+" + digits[:1] + " (" + digits[1:4] + ") " + digits[4:7] + "-" + digits[7:]
	default:
		if len(digits) > 11 {
			digits = digits[:11]
		}
		formatted := "+" + digits[:1] + " (" + digits[1:4] + ") " + digits[4:7] + "-" + digits[7:9]
		if len(digits) > 9 {
			formatted += "-" + digits[9:]
		}
		return formatted
	}
}

// ValidPhone проверяет, что номер содержит от 10 до 15 цифр.
func ValidPhone(phone string) bool {
	n := len(onlyDigits(phone))
	return n >= 10 && n <= 15
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var (
	areaMinRe = regexp.MustCompile(`от\s+(\d+)`)
	areaMaxRe = regexp.MustCompile(`до\s+(\d+)`)
)

// ParseAreaRange разбирает строку вида "от 35 до 120 м²".
// Отсутствующая нижняя граница дает 0, отсутствующая верхняя - 0 c ok=false.
func ParseAreaRange(area string) (min int, max int, ok bool) {
	if m := areaMinRe.FindStringSubmatch(area); m != nil {
		min, _ = strconv.Atoi(m[1])
		ok = true
	}
	if m := areaMaxRe.FindStringSubmatch(area); m != nil {
		max, _ = strconv.Atoi(m[1])
		ok = true
	}
	return min, max, ok
}

// HousingClassForPrice определяет класс жилья по цене за м²,
// когда backend не прислал housing_class явно.
func HousingClassForPrice(price string) string {
	n := ParseNumber(price)
	switch {
	case n >= 400_000:
		return "Премиум"
	case n >= 320_000:
		return "Комфорт +"
	case n >= 250_000:
		return "Комфорт"
	default:
		return "Эконом"
	}
}
