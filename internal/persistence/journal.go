package persistence

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/suderio/ascension/internal/engine"
)

// Record wraps one outcome with the moment it was journaled.
type Record struct {
	Type    engine.OutcomeKind `json:"type"`
	At      time.Time          `json:"at"`
	Outcome engine.Outcome     `json:"data"`
}

// Journal handles append-only storing of a battle's outcomes.
type Journal struct {
	file *os.File
	now  func() time.Time
}

// NewJournal opens or creates the file at path for appending lines
func NewJournal(path string) (*Journal, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal file: %w", err)
	}
	return &Journal{file: file, now: time.Now}, nil
}

// Append marshals the outcomes to the jsonl log and syncs once.
func (j *Journal) Append(outcomes ...engine.Outcome) error {
	if len(outcomes) == 0 {
		return nil
	}
	at := j.now().UTC()
	var buf []byte
	for _, o := range outcomes {
		line, err := json.Marshal(Record{Type: o.Type(), At: at, Outcome: o})
		if err != nil {
			return fmt.Errorf("failed to encode outcome: %w", err)
		}
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	if _, err := j.file.Write(buf); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}
	return j.file.Sync()
}

// Load replays all jsonl lines into outcomes.
func (j *Journal) Load() ([]engine.Outcome, error) {
	records, err := j.Records()
	if err != nil {
		return nil, err
	}
	out := make([]engine.Outcome, 0, len(records))
	for _, r := range records {
		out = append(out, r.Outcome)
	}
	return out, nil
}

// Records replays all jsonl lines with their timestamps.
func (j *Journal) Records() ([]Record, error) {
	if _, err := j.file.Seek(0, 0); err != nil {
		return nil, err
	}

	var records []Record
	scanner := bufio.NewScanner(j.file)
	for scanner.Scan() {
		var r Record
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			return nil, fmt.Errorf("failed to decode record: %w", err)
		}
		if r.Type != r.Outcome.Kind {
			return nil, fmt.Errorf("record type %s does not match outcome %s", r.Type, r.Outcome.Kind)
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Close handles safe shutdown.
func (j *Journal) Close() error {
	return j.file.Close()
}
