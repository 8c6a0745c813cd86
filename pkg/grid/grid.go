// pkg/grid/grid.go
package grid

// Cell — координата ячейки поля.
type Cell struct {
	Col, Row int
}

// Tile хранит состояние одной ячейки.
type Tile struct {
	Lane     bool // ячейка принадлежит дорожке врагов, строить нельзя
	Occupied bool // ячейка занята башней
}

// Map — прямоугольное поле из квадратных ячеек с горизонтальными дорожками.
// Враги появляются у левого края дорожки и движутся вправо до терминальной
// границы поля.
type Map struct {
	Cols, Rows int
	CellSize   float64
	LaneRows   []int
	Tiles      map[Cell]Tile
}

// NewMap создаёт поле cols x rows. laneRows — номера рядов, по которым идут враги.
func NewMap(cols, rows int, cellSize float64, laneRows []int) *Map {
	m := &Map{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		LaneRows: laneRows,
		Tiles:    make(map[Cell]Tile, cols*rows),
	}
	laneSet := make(map[int]bool, len(laneRows))
	for _, r := range laneRows {
		laneSet[r] = true
	}
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			m.Tiles[Cell{col, row}] = Tile{Lane: laneSet[row]}
		}
	}
	return m
}

// Contains сообщает, лежит ли ячейка в границах поля.
func (m *Map) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < m.Cols && c.Row >= 0 && c.Row < m.Rows
}

// IsLane сообщает, является ли ячейка частью дорожки.
func (m *Map) IsLane(c Cell) bool {
	return m.Tiles[c].Lane
}

// IsOccupied сообщает, занята ли ячейка башней.
func (m *Map) IsOccupied(c Cell) bool {
	return m.Tiles[c].Occupied
}

// CanPlace проверяет пригодность ячейки: в границах, не дорожка, не занята.
func (m *Map) CanPlace(c Cell) bool {
	if !m.Contains(c) {
		return false
	}
	tile := m.Tiles[c]
	return !tile.Lane && !tile.Occupied
}

// SetOccupied помечает ячейку занятой или свободной.
func (m *Map) SetOccupied(c Cell, occupied bool) {
	if tile, ok := m.Tiles[c]; ok {
		tile.Occupied = occupied
		m.Tiles[c] = tile
	}
}

// CellToPixel возвращает пиксельные координаты центра ячейки.
func (m *Map) CellToPixel(c Cell) (float64, float64) {
	x := (float64(c.Col) + 0.5) * m.CellSize
	y := (float64(c.Row) + 0.5) * m.CellSize
	return x, y
}

// PixelToCell возвращает ячейку, содержащую точку (x, y).
func (m *Map) PixelToCell(x, y float64) Cell {
	return Cell{Col: int(x / m.CellSize), Row: int(y / m.CellSize)}
}

// SpawnX — x-координата появления врагов (левая граница поля).
func (m *Map) SpawnX() float64 {
	return 0
}

// PathEndX — терминальная x-координата пути. Враг, дошедший сюда, покидает поле.
func (m *Map) PathEndX() float64 {
	return float64(m.Cols) * m.CellSize
}

// LaneY возвращает y-координату центра дорожки с индексом i (по модулю числа дорожек).
func (m *Map) LaneY(i int) float64 {
	if len(m.LaneRows) == 0 {
		return 0
	}
	row := m.LaneRows[i%len(m.LaneRows)]
	return (float64(row) + 0.5) * m.CellSize
}
