package constructor

import (
	"github.com/magabrotheeeer/giftoutfit/internal/lib/giftcdn"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// DrawerItem — вариант значения поля в списке выбора.
type DrawerItem struct {
	ID         int64            `json:"id"`
	Title      string           `json:"title"`
	Image      string           `json:"image,omitempty"`
	Background *models.Backdrop `json:"background,omitempty"`
	Pattern    string           `json:"pattern,omitempty"`
	URL        string           `json:"url,omitempty"`
	GiftNumber int64            `json:"gift_number,omitempty"`
}

// Sources — данные, из которых собираются варианты.
type Sources struct {
	// Gifts — названия коллекций.
	Gifts []string
	// Models — модели выбранной коллекции.
	Models []string
	// Backdrops — названия фонов, доступных для выбора.
	Backdrops []string
	// Symbols — символы, доступные для выбора.
	Symbols []Symbol
	// Palettes — палитры фонов из каталога.
	Palettes []models.Backdrop
}

// BuildOptions собирает варианты для поля. Если не выбраны
// предыдущие в каскаде атрибуты, возвращается пустой список.
// В свободном режиме у символов нет конкретного подарка, поэтому ID = 0.
func BuildOptions(field Field, mode Mode, sel Selection, src Sources, urls *giftcdn.Builder) []DrawerItem {
	items := make([]DrawerItem, 0)

	if field == FieldGifts {
		for i, name := range src.Gifts {
			items = append(items, DrawerItem{
				ID:    int64(i),
				Title: name,
				Image: urls.ModelImage(name, "Original"),
			})
		}
		return items
	}

	if sel.Collection == "" {
		return items
	}

	switch field {
	case FieldModel:
		for i, m := range src.Models {
			items = append(items, DrawerItem{
				ID:    int64(i),
				Title: m,
				Image: urls.ModelImage(sel.Collection, m),
			})
		}
	case FieldBackground:
		for i, b := range src.Backdrops {
			items = append(items, DrawerItem{
				ID:         int64(i),
				Title:      b,
				Background: findPalette(src.Palettes, b),
			})
		}
	case FieldPattern:
		for _, s := range src.Symbols {
			if s.Symbol == "" {
				continue
			}
			id := s.GiftNumber
			if mode == ModeFreeform {
				id = 0
			}
			items = append(items, DrawerItem{
				ID:         id,
				Title:      s.Symbol,
				URL:        s.URL,
				GiftNumber: s.GiftNumber,
				Pattern:    urls.PatternImage(sel.Collection, s.Symbol),
			})
		}
	}
	return items
}

func findPalette(palettes []models.Backdrop, name string) *models.Backdrop {
	for i := range palettes {
		if palettes[i].Name == name {
			bg := palettes[i]
			return &bg
		}
	}
	return nil
}
