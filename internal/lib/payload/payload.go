// Package payload нормализует нестрогие ответы REST-бэкенда.
//
// Бэкенд отдаёт некоторые ресурсы в нескольких формах: списки конструктора —
// либо массивом, либо объектом {"<key>": [...]}, ячейки альбома — null,
// объектом {gift, pinned, pinned_position} или «плоским» подарком с полями
// pinned/pinned_position. Пакет приводит всё к моделям из internal/models.
package payload

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// StringList возвращает список строк из массива или из поля key объекта.
// Для любой другой формы возвращается пустой список.
func StringList(data []byte, key string) []string {
	res := gjson.ParseBytes(data)
	if res.IsObject() {
		res = res.Get(gjson.Escape(key))
	}
	if !res.IsArray() {
		return []string{}
	}
	out := make([]string, 0, len(res.Array()))
	for _, item := range res.Array() {
		if item.Type == gjson.String {
			out = append(out, item.String())
		}
	}
	return out
}

// Grids разбирает список альбомов и нормализует каждую ячейку.
func Grids(data []byte) ([]models.Grid, error) {
	const op = "payload.Grids"
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: invalid json", op)
	}
	res := gjson.ParseBytes(data)
	if !res.IsArray() {
		return nil, fmt.Errorf("%s: expected array of grids", op)
	}

	grids := make([]models.Grid, 0, len(res.Array()))
	for _, g := range res.Array() {
		grid := models.Grid{
			ID:   g.Get("id").Int(),
			Name: g.Get("name").String(),
			Rows: []models.GridRow{},
		}
		for _, r := range g.Get("rows").Array() {
			row := models.GridRow{RowIndex: int(r.Get("row_index").Int())}
			for _, c := range r.Get("cells").Array() {
				cell, err := Cell(c)
				if err != nil {
					return nil, fmt.Errorf("%s: grid %d row %d: %w", op, grid.ID, row.RowIndex, err)
				}
				row.Cells = append(row.Cells, cell)
			}
			row.Cells = padRow(row.Cells)
			grid.Rows = append(grid.Rows, row)
		}
		grids = append(grids, grid)
	}
	return grids, nil
}

// Cell приводит одну ячейку к models.Cell.
func Cell(c gjson.Result) (models.Cell, error) {
	if !c.Exists() || c.Type == gjson.Null || !c.IsObject() {
		return models.Cell{}, nil
	}

	cell := models.Cell{Pinned: c.Get("pinned").Type == gjson.True}
	if pos := c.Get("pinned_position"); pos.Type == gjson.Number {
		p := int(pos.Int())
		cell.PinnedPosition = &p
	}

	giftRaw := c
	if c.Get("gift").Exists() {
		giftRaw = c.Get("gift")
		if giftRaw.Type == gjson.Null || !giftRaw.IsObject() {
			return cell, nil
		}
	}

	var gift models.Gift
	if err := json.Unmarshal([]byte(giftRaw.Raw), &gift); err != nil {
		return models.Cell{}, err
	}
	cell.Gift = &gift
	return cell, nil
}

// padRow дополняет строку пустыми ячейками или обрезает её до models.GridWidth.
func padRow(cells []models.Cell) []models.Cell {
	if len(cells) > models.GridWidth {
		return cells[:models.GridWidth]
	}
	for len(cells) < models.GridWidth {
		cells = append(cells, models.Cell{})
	}
	return cells
}
