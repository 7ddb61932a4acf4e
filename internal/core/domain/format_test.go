package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"ноль", 0, "0"},
		{"без группировки", 999, "999"},
		{"тысячи", 10000, "10 000"},
		{"миллионы", 10000000, "10 000 000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{"чистое число", "12345", 12345},
		{"с пробелами и валютой", "10 000 000 ₽", 10000000},
		{"цена за метр", "от 250 000 ₽/м²", 250000},
		{"пустая строка", "", 0},
		{"без цифр", "договорная", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.in))
		})
	}
}

func TestFormatRoomsLabel(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   string
	}{
		{"пусто", nil, ""},
		{"одна метка", []string{"2к"}, "2к"},
		{"две последовательные не схлопываются", []string{"1к", "2к"}, "1к, 2к"},
		{"три последовательные дают диапазон", []string{"1к", "2к", "3к"}, "1к-3к"},
		{"студия отдельно от диапазона", []string{"Студия", "1к", "2к", "3к"}, "Студия, 1к-3к"},
		{"студия и одиночная метка", []string{"Студия", "3к"}, "Студия, 3к"},
		{"разрыв ломает диапазон", []string{"1к", "2к", "4к"}, "1к, 2к, 4к"},
		{"длинный хвост после разрыва", []string{"1к", "3к", "4к", "5к"}, "1к, 3к-5к"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRoomsLabel(tt.labels))
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"пусто", "", ""},
		{"одна цифра", "7", "+7"},
		{"код города не закрыт", "7912", "+7 (912"},
		{"середина номера", "7912345", "+7 (912) 345"},
		{"почти полный", "791234567", "+7 (912) 345-67"},
		{"полный номер", "79123456789", "+7 (912) 345-67-89"},
		{"лишние цифры отбрасываются", "791234567890123", "+7 (912) 345-67-89"},
		{"нецифровые символы игнорируются", "+7 (912) 345-67-89", "+7 (912) 345-67-89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.in))
		})
	}
}

func TestValidPhone(t *testing.T) {
	assert.False(t, ValidPhone(""))
	assert.False(t, ValidPhone("12345"))
	assert.True(t, ValidPhone("7912345678"))
	assert.True(t, ValidPhone("+7 (912) 345-67-89"))
	assert.True(t, ValidPhone("123456789012345"))
	assert.False(t, ValidPhone("1234567890123456"))
}

func TestParseAreaRange(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantMin int
		wantMax int
		wantOK  bool
	}{
		{"полный диапазон", "от 35 до 120 м²", 35, 120, true},
		{"только нижняя граница", "от 42 м²", 42, 0, true},
		{"только верхняя граница", "до 90 м²", 0, 90, true},
		{"не диапазон", "просторные квартиры", 0, 0, false},
		{"пусто", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, ok := ParseAreaRange(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMin, min)
			assert.Equal(t, tt.wantMax, max)
		})
	}
}

func TestHousingClassForPrice(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{"от 450 000 ₽/м²", "Премиум"},
		{"400 000", "Премиум"},
		{"399 999", "Комфорт +"},
		{"320 000", "Комфорт +"},
		{"250 000", "Комфорт"},
		{"180 000", "Эконом"},
		{"", "Эконом"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.want, HousingClassForPrice(tt.price))
		})
	}
}
