package usecase

import (
	"catalog-frontend-service/internal/constants"
	"catalog-frontend-service/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyClientFilters(t *testing.T) {
	projects := []domain.Project{
		{ID: "1", Rooms: []string{"Студия", "1 спальня"}, PaymentTypes: []string{"ипотека"}, FinishTypes: []string{"чистовая"}},
		{ID: "2", Rooms: []string{"2 спальни", "3 спальни"}, PaymentTypes: []string{"наличные"}, FinishTypes: []string{"без отделки"}},
		{ID: "3", Rooms: []string{"Более 4 спален"}, PaymentTypes: []string{"ипотека", "рассрочка"}, FinishTypes: []string{"с мебелью"}},
	}

	t.Run("без фильтров все видимы", func(t *testing.T) {
		visible := ApplyClientFilters(projects, domain.FilterCriteria{})
		assert.Len(t, visible, 3)
	})

	t.Run("фильтр по типу жилья", func(t *testing.T) {
		visible := ApplyClientFilters(projects, domain.FilterCriteria{HousingType: constants.HousingTypeStudio})
		require.Len(t, visible, 1)
		assert.Equal(t, "1", visible[0].ID)
	})

	t.Run("фильтр по виду оплаты", func(t *testing.T) {
		visible := ApplyClientFilters(projects, domain.FilterCriteria{PaymentType: "ипотека"})
		require.Len(t, visible, 2)
		assert.Equal(t, "1", visible[0].ID)
		assert.Equal(t, "3", visible[1].ID)
	})

	t.Run("фильтр по отделке", func(t *testing.T) {
		visible := ApplyClientFilters(projects, domain.FilterCriteria{FinishType: "без отделки"})
		require.Len(t, visible, 1)
		assert.Equal(t, "2", visible[0].ID)
	})

	t.Run("фильтры комбинируются по И", func(t *testing.T) {
		visible := ApplyClientFilters(projects, domain.FilterCriteria{
			HousingType: constants.HousingTypeOneRoom,
			PaymentType: "наличные",
		})
		assert.Empty(t, visible)
	})

	t.Run("входной срез не изменяется", func(t *testing.T) {
		ApplyClientFilters(projects, domain.FilterCriteria{PaymentType: "ипотека"})
		assert.Equal(t, "1", projects[0].ID)
		assert.Equal(t, "2", projects[1].ID)
		assert.Equal(t, "3", projects[2].ID)
	})
}

func TestMatchesHousingTypeLooseMatching(t *testing.T) {
	t.Run("метка 10к попадает в корзину одной спальни", func(t *testing.T) {
		// Сопоставление по подстроке, как в исходном каталоге
		assert.True(t, matchesHousingType([]string{"10к"}, constants.HousingTypeOneRoom))
	})

	t.Run("более 4 спален покрывает 4 и 5", func(t *testing.T) {
		assert.True(t, matchesHousingType([]string{"4к"}, constants.HousingTypeFourPlus))
		assert.True(t, matchesHousingType([]string{"5 спален"}, constants.HousingTypeFourPlus))
		assert.False(t, matchesHousingType([]string{"3к"}, constants.HousingTypeFourPlus))
	})

	t.Run("неизвестный тип не фильтрует", func(t *testing.T) {
		assert.True(t, matchesHousingType([]string{"2к"}, "пентхаус"))
	})

	t.Run("пустой список комнат не совпадает", func(t *testing.T) {
		assert.False(t, matchesHousingType(nil, constants.HousingTypeStudio))
	})
}

func TestContainsLabel(t *testing.T) {
	labels := []string{" Ипотека ", "рассрочка"}
	assert.True(t, containsLabel(labels, "ипотека"))
	assert.True(t, containsLabel(labels, "Рассрочка "))
	assert.False(t, containsLabel(labels, "наличные"))
	assert.False(t, containsLabel(nil, "ипотека"))
}
