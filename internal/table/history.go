package table

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lox/showdown/internal/fileutil"
)

// SeatRecord is the serialised form of a Seat.
type SeatRecord struct {
	Player      string `json:"player"`
	Hole        string `json:"hole"`
	Preflop     string `json:"preflop"`
	Combination string `json:"combination"`
	Category    string `json:"category"`
}

// HandRecord is the serialised form of a HandResult written to hand
// history files.
type HandRecord struct {
	ID      string       `json:"id"`
	Number  int          `json:"number"`
	Time    time.Time    `json:"time"`
	Seed    int64        `json:"seed"`
	Button  string       `json:"button"`
	Board   string       `json:"board"`
	Seats   []SeatRecord `json:"seats"`
	Winners []string     `json:"winners"`
}

// Record converts r for writing. Seed is the seed the table was dealt from.
func (r *HandResult) Record(seed int64) HandRecord {
	rec := HandRecord{
		ID:      r.ID,
		Number:  r.Number,
		Time:    r.Time.UTC(),
		Seed:    seed,
		Button:  r.Button,
		Board:   r.Board.String(),
		Seats:   make([]SeatRecord, len(r.Seats)),
		Winners: r.Winners,
	}
	for i, s := range r.Seats {
		rec.Seats[i] = SeatRecord{
			Player:      s.Player,
			Hole:        s.Hole.String(),
			Preflop:     string(s.Hole.Category()),
			Combination: s.Combination.String(),
			Category:    s.Combination.Category.String(),
		}
	}
	return rec
}

// WriteHistory atomically writes results as indented JSON to filename.
func WriteHistory(filename string, seed int64, results []*HandResult) error {
	records := make([]HandRecord, len(results))
	for i, r := range results {
		records[i] = r.Record(seed)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode hand history: %w", err)
	}
	if err := fileutil.WriteFileAtomic(filename, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write hand history: %w", err)
	}
	return nil
}
