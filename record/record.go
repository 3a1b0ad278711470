// Package record stores played matches as Parquet files, one row per
// iteration of the turn loop.
package record

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/katalvlaran/copsrobbers/game"
)

// Schema is the value of the "schema" key in every file written here.
const Schema = "copsrobbers_turn_v1"

const (
	metaSchema = "schema"
	metaMatch  = "match_id"
	metaBoard  = "board"
	metaWinner = "winner"
)

// ErrClosed is returned by Record and Close on a closed Recorder.
var ErrClosed = errors.New("record: recorder closed")

// TurnRow is one played iteration. Position lists keep token order.
type TurnRow struct {
	MatchID   string  `parquet:"match_id,dict"`
	Seq       int32   `parquet:"seq"`
	Remaining int32   `parquet:"remaining"`
	Role      string  `parquet:"role,dict"`
	Side      string  `parquet:"side,dict"`
	Placement bool    `parquet:"placement"`
	Cops      []int32 `parquet:"cops"`
	Robbers   []int32 `parquet:"robbers"`
	Captured  []int32 `parquet:"captured"`
}

// Recorder buffers the events of one match and writes them on Close.
// It implements game.Recorder.
type Recorder struct {
	path  string
	id    string
	board string

	mu     sync.Mutex
	rows   []TurnRow
	winner game.Winner
	closed bool
}

// NewRecorder returns a Recorder that will write to path. The match gets a
// fresh random ID; boardName is stored as file metadata.
func NewRecorder(path, boardName string) *Recorder {
	return &Recorder{path: path, id: uuid.NewString(), board: boardName}
}

// MatchID returns the ID stamped on every row.
func (r *Recorder) MatchID() string { return r.id }

// Record appends e as a TurnRow.
func (r *Recorder) Record(e game.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}

	r.rows = append(r.rows, TurnRow{
		MatchID:   r.id,
		Seq:       int32(e.Seq),
		Remaining: int32(e.Remaining),
		Role:      e.Role.String(),
		Side:      e.Side.String(),
		Placement: e.Placement,
		Cops:      toInt32(e.Cops),
		Robbers:   toInt32(e.Robbers),
		Captured:  toInt32(e.Captured),
	})
	return nil
}

// Finish stores the outcome written as file metadata by Close.
func (r *Recorder) Finish(w game.Winner) {
	r.mu.Lock()
	r.winner = w
	r.mu.Unlock()
}

// Close writes the buffered rows to a temporary file next to the target and
// renames it into place, so readers never see a partial file.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.closed = true

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("record: create output dir: %w", err)
	}
	tmpPath := r.path + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, r.rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata(metaSchema, Schema),
		parquet.KeyValueMetadata(metaMatch, r.id),
		parquet.KeyValueMetadata(metaBoard, r.board),
		parquet.KeyValueMetadata(metaWinner, r.winner.String()),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("record: write parquet: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("record: rename parquet: %w", err)
	}

	return nil
}

// Match is a recorded match read back from disk.
type Match struct {
	ID     string
	Board  string
	Winner string
	Rows   []TurnRow
}

// ReadFile loads every row and the match metadata of a file written by Close.
func ReadFile(path string) (*Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("record: open %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("record: stat %s: %w", path, err)
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("record: open parquet %s: %w", path, err)
	}

	m := &Match{}
	m.ID, _ = pf.Lookup(metaMatch)
	m.Board, _ = pf.Lookup(metaBoard)
	m.Winner, _ = pf.Lookup(metaWinner)

	reader := parquet.NewGenericReader[TurnRow](pf)
	defer reader.Close()

	m.Rows = make([]TurnRow, reader.NumRows())
	read := 0
	for read < len(m.Rows) {
		n, err := reader.Read(m.Rows[read:])
		read += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("record: read %s: %w", path, err)
		}
	}
	m.Rows = m.Rows[:read]

	return m, nil
}

func toInt32(s []int) []int32 {
	out := make([]int32, len(s))
	for i, v := range s {
		out[i] = int32(v)
	}
	return out
}
