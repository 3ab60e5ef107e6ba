package gamemaster

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// ScoreBook is the high-score file: one "<name>, <score>" line per recorded win.
type ScoreBook struct {
	path string
}

func NewScoreBook(path string) *ScoreBook {
	return &ScoreBook{path: path}
}

// Load returns the recorded lines. A missing file is an empty book.
func (s *ScoreBook) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// Record adds a win to the book and rewrites the file.
func (s *ScoreBook) Record(name string, score int) error {
	lines, err := s.Load()
	if err != nil {
		return err
	}

	lines = insertScore(lines, name, score)
	err = os.WriteFile(s.path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
	if err != nil {
		return fmt.Errorf("failed to write scores: %w", err)
	}
	return nil
}

// insertScore puts a new high score first and anything else last.
func insertScore(lines []string, name string, score int) []string {
	line := fmt.Sprintf("%s, %d", name, score)
	if len(lines) == 0 {
		return []string{line}
	}

	top, ok := parseScore(lines[0])
	if !ok || top < score {
		return slices.Insert(lines, 0, line)
	}
	return append(lines, line)
}

func parseScore(line string) (int, bool) {
	i := strings.LastIndex(line, ",")
	if i < 0 {
		return 0, false
	}
	score, err := strconv.Atoi(strings.TrimSpace(line[i+1:]))
	if err != nil {
		return 0, false
	}
	return score, true
}
