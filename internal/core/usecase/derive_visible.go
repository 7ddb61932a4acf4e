package usecase

import (
	"catalog-frontend-service/internal/constants"
	"catalog-frontend-service/internal/core/domain"
	"strings"
)

// ApplyClientFilters - чистая функция: из загруженного списка выводит
// видимое подмножество по клиентским предикатам (тип жилья, вид оплаты,
// отделка). Порядок выживших элементов сохраняется, входной срез
// не изменяется.
func ApplyClientFilters(projects []domain.Project, criteria domain.FilterCriteria) []domain.Project {
	visible := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if criteria.HousingType != "" && !matchesHousingType(p.Rooms, criteria.HousingType) {
			continue
		}
		if criteria.PaymentType != "" && !containsLabel(p.PaymentTypes, criteria.PaymentType) {
			continue
		}
		if criteria.FinishType != "" && !containsLabel(p.FinishTypes, criteria.FinishType) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

// matchesHousingType проверяет попадание проекта в корзину комнатности.
// Сопоставление нарочно нестрогое, по вхождению подстроки: метка "10к"
// тоже попадает в корзину "1 спальня". Так ведет себя исходный каталог.
func matchesHousingType(rooms []string, housingType string) bool {
	joined := strings.Join(rooms, ", ")
	switch housingType {
	case constants.HousingTypeStudio:
		return strings.Contains(joined, "Студия")
	case constants.HousingTypeOneRoom:
		return strings.Contains(joined, "1")
	case constants.HousingTypeTwoRooms:
		return strings.Contains(joined, "2")
	case constants.HousingTypeThreeRooms:
		return strings.Contains(joined, "3")
	case constants.HousingTypeFourPlus:
		return strings.Contains(joined, "4") || strings.Contains(joined, "5")
	default:
		return true
	}
}

func containsLabel(labels []string, want string) bool {
	for _, label := range labels {
		if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}
