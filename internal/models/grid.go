package models

// GridWidth — фиксированное количество ячеек в строке альбома.
const GridWidth = 3

// Cell — слот альбома. Может быть пустым, занятым и/или закреплённым.
// Закреплённые ячейки не участвуют в перестановках и показываются в профиле.
type Cell struct {
	Gift           *Gift `json:"gift"`
	Pinned         bool  `json:"pinned"`
	PinnedPosition *int  `json:"pinned_position"`
}

// GridRow — строка альбома из GridWidth ячеек.
type GridRow struct {
	RowIndex int    `json:"row_index"`
	Cells    []Cell `json:"cells"`
}

// Grid — альбом пользователя.
type Grid struct {
	ID   int64     `json:"id"`
	Name string    `json:"name"`
	Rows []GridRow `json:"rows"`
}

// CellPosition адресует ячейку внутри альбома.
type CellPosition struct {
	RowIndex  int `json:"row_index" validate:"min=0"`
	CellIndex int `json:"cell_index" validate:"min=0,max=2"`
}

// PinnedGift — закреплённый подарок вместе с его положением в альбоме.
type PinnedGift struct {
	GridID   int64        `json:"grid_id"`
	Position CellPosition `json:"position"`
	Order    int          `json:"pinned_position"`
	Gift     Gift         `json:"gift"`
	Media    GiftMedia    `json:"media"`
}

// Cell возвращает указатель на ячейку по позиции или nil, если её нет.
func (g *Grid) Cell(pos CellPosition) *Cell {
	for i := range g.Rows {
		if g.Rows[i].RowIndex != pos.RowIndex {
			continue
		}
		if pos.CellIndex < 0 || pos.CellIndex >= len(g.Rows[i].Cells) {
			return nil
		}
		return &g.Rows[i].Cells[pos.CellIndex]
	}
	return nil
}

// Clone возвращает глубокую копию альбома.
func (g Grid) Clone() Grid {
	out := Grid{ID: g.ID, Name: g.Name, Rows: make([]GridRow, len(g.Rows))}
	for i, row := range g.Rows {
		cells := make([]Cell, len(row.Cells))
		for j, c := range row.Cells {
			cells[j] = c.Clone()
		}
		out.Rows[i] = GridRow{RowIndex: row.RowIndex, Cells: cells}
	}
	return out
}

// Clone возвращает глубокую копию ячейки.
func (c Cell) Clone() Cell {
	out := Cell{Pinned: c.Pinned}
	if c.Gift != nil {
		g := *c.Gift
		if c.Gift.Background != nil {
			bg := *c.Gift.Background
			g.Background = &bg
		}
		out.Gift = &g
	}
	if c.PinnedPosition != nil {
		p := *c.PinnedPosition
		out.PinnedPosition = &p
	}
	return out
}

// CloneGrids копирует список альбомов целиком.
func CloneGrids(grids []Grid) []Grid {
	if grids == nil {
		return nil
	}
	out := make([]Grid, len(grids))
	for i := range grids {
		out[i] = grids[i].Clone()
	}
	return out
}
