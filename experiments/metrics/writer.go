package metrics

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
)

type AgentConfig struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"` // player.Kind
}

type GameRecord struct {
	ID     int `json:"game"`
	Agent1 int `json:"agent1"` // AgentConfig.ID
	Agent2 int `json:"agent2"` // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int `json:"game"` // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the files of one run.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
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

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := [][]string{}
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
		})
	}
	return w.writeCSV("agent_configs.csv", []string{"id", "kind"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "game_id", "agent1", "agent2", "board_size", "penalties", "score1", "score2",
		"result", "winner", "total_moves", "penalty_moves", "start_time", "end_time", "duration"}
	rows := [][]string{}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.GameMetric.ID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.BoardSize),
			strconv.FormatBool(record.Penalties),
			strconv.Itoa(record.Score1),
			strconv.Itoa(record.Score2),
			strconv.Itoa(record.Result),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.PenaltyMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "value", "nodes", "leaves", "cutoffs", "duration"}
	rows := [][]string{}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Move),
			strconv.Itoa(record.Value),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			record.Duration.String(),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

// WriteGameRecordsJSON writes one JSON object per line.
func (w *Writer) WriteGameRecordsJSON(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.jsonl")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	for _, record := range records {
		line, err := sonic.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to encode game record %d: %w", record.ID, err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
