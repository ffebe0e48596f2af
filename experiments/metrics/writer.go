package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID      int
	Matchup int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped folder for the experiment under dir.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteSetup stores any JSON-encodable experiment description as setup.json.
func (w *Writer) WriteSetup(setup any) error {
	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "matchup", "black", "white", "winner", "outcome", "black_discs", "white_discs", "forfeit", "moves", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Matchup),
			record.Black,
			record.White,
			record.Winner,
			record.Outcome.String(),
			strconv.Itoa(record.BlackDiscs),
			strconv.Itoa(record.WhiteDiscs),
			strconv.FormatBool(record.Forfeit),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"game", "step", "player", "row", "col", "position", "depth", "score", "nodes", "leaves", "passes", "cutoff", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Move.Row),
			strconv.Itoa(record.Move.Col),
			strconv.FormatUint(uint64(record.Position), 16),
			strconv.Itoa(record.Depth),
			strconv.FormatFloat(record.Score, 'f', 3, 64),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Passes),
			strconv.FormatBool(record.Cutoff),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
