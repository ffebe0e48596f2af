package engine

import (
	"othello/game"

	"golang.org/x/exp/slices"
)

// The driver keeps its own rules on the raw grid rather than trusting the game package
// the bots are built on. A bot whose move fails this check forfeits.

var directions = [8][2]int{{-1, -1}, {-1, 0}, {0, -1}, {1, -1}, {-1, 1}, {0, 1}, {1, 0}, {1, 1}}

func inside(row, col int) bool {
	return row >= 0 && row < game.Size && col >= 0 && col < game.Size
}

// colorFields returns the cells holding color.
func colorFields(grid game.Grid, color game.Color) []game.Coord {
	var result []game.Coord
	for i := 0; i < game.Size; i++ {
		for j := 0; j < game.Size; j++ {
			if grid[i][j] == color {
				result = append(result, game.Coord{Row: i, Col: j})
			}
		}
	}
	return result
}

// availableFields returns the cells where color may place a disc.
func availableFields(grid game.Grid, color game.Color) []game.Coord {
	var result []game.Coord
	enemy := color.Opponent()
	for _, field := range colorFields(grid, color) {
		for _, d := range directions {
			row, col := field.Row+d[0], field.Col+d[1]
			steps := 0
			for inside(row, col) && grid[row][col] == enemy {
				row, col = row+d[0], col+d[1]
				steps++
			}
			if steps == 0 || !inside(row, col) || grid[row][col] != game.Empty {
				continue
			}
			c := game.Coord{Row: row, Col: col}
			if !slices.Contains(result, c) {
				result = append(result, c)
			}
		}
	}
	return result
}

// redraw places color on field and flips the enclosed enemy lines. It returns the flipped cells.
func redraw(grid *game.Grid, field game.Coord, color game.Color) []game.Coord {
	var redrawn []game.Coord
	enemy := color.Opponent()
	grid[field.Row][field.Col] = color
	for _, d := range directions {
		row, col := field.Row+d[0], field.Col+d[1]
		for inside(row, col) && grid[row][col] == enemy {
			row, col = row+d[0], col+d[1]
		}
		if !inside(row, col) || grid[row][col] != color {
			continue
		}
		for r, c := field.Row+d[0], field.Col+d[1]; r != row || c != col; r, c = r+d[0], c+d[1] {
			grid[r][c] = color
			redrawn = append(redrawn, game.Coord{Row: r, Col: c})
		}
	}
	return redrawn
}

func countFields(grid game.Grid) map[game.Color]int {
	result := map[game.Color]int{
		game.Black: 0,
		game.White: 0,
		game.Empty: 0,
	}
	for i := 0; i < game.Size; i++ {
		for j := 0; j < game.Size; j++ {
			result[grid[i][j]]++
		}
	}
	return result
}
