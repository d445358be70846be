package constructor

import "github.com/magabrotheeeer/giftoutfit/internal/models"

// Symbol — вариант символа для пары модель/фон.
type Symbol struct {
	Symbol     string `json:"symbol"`
	GiftNumber int64  `json:"gift_number"`
	URL        string `json:"url"`
}

// Tree — дерево model → backdrop → []Symbol. Порядок ключей совпадает
// с порядком первого появления в исходном списке подарков.
type Tree struct {
	models    []string
	backdrops map[string][]string
	symbols   map[string]map[string][]Symbol
}

// BuildTree строит дерево по всем подаркам коллекции.
func BuildTree(gifts []models.ConstructorGift) *Tree {
	t := &Tree{
		backdrops: make(map[string][]string),
		symbols:   make(map[string]map[string][]Symbol),
	}
	for _, g := range gifts {
		byBackdrop, ok := t.symbols[g.Model]
		if !ok {
			byBackdrop = make(map[string][]Symbol)
			t.symbols[g.Model] = byBackdrop
			t.models = append(t.models, g.Model)
		}
		if _, ok := byBackdrop[g.Backdrop]; !ok {
			t.backdrops[g.Model] = append(t.backdrops[g.Model], g.Backdrop)
		}
		byBackdrop[g.Backdrop] = append(byBackdrop[g.Backdrop], Symbol{
			Symbol:     g.Symbol,
			GiftNumber: g.GiftNumber,
			URL:        g.URL,
		})
	}
	return t
}

// Models возвращает модели дерева.
func (t *Tree) Models() []string {
	return t.models
}

// Backdrops возвращает фоны модели.
func (t *Tree) Backdrops(model string) []string {
	return t.backdrops[model]
}

// Symbols возвращает символы для модели и фона.
func (t *Tree) Symbols(model, backdrop string) []Symbol {
	return t.symbols[model][backdrop]
}

// AllSymbols возвращает уникальные по имени символы всего дерева.
// При повторе остаётся первое вхождение.
func (t *Tree) AllSymbols() []Symbol {
	seen := make(map[string]struct{})
	var out []Symbol
	for _, m := range t.models {
		for _, b := range t.backdrops[m] {
			for _, s := range t.symbols[m][b] {
				if _, ok := seen[s.Symbol]; ok {
					continue
				}
				seen[s.Symbol] = struct{}{}
				out = append(out, s)
			}
		}
	}
	return out
}

// Lookup ищет символ по полному пути в дереве.
func (t *Tree) Lookup(model, backdrop, symbol string) (Symbol, bool) {
	for _, s := range t.symbols[model][backdrop] {
		if s.Symbol == symbol {
			return s, true
		}
	}
	return Symbol{}, false
}
