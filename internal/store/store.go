package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/vibelab/internal/vibe"
)

// Store persists solver runs as one directory per run, holding
// metadata.json and a samples.csv with the time series.
type Store struct {
	root string
}

type RunMeta struct {
	ID      string             `json:"id"`
	Kind    string             `json:"kind"`
	Solver  string             `json:"solver"`
	Created time.Time          `json:"created"`
	Steps   int                `json:"steps"`
	Params  map[string]float64 `json:"params"`
}

func New(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.root, 0755)
}

// Save writes a run directory and returns its id.
func (s *Store) Save(kind, solver string, params map[string]float64, ts *vibe.TimeSeries) (string, error) {
	id := fmt.Sprintf("%s-%d", kind, time.Now().UnixNano())
	runDir := filepath.Join(s.root, id)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMeta{
		ID:      id,
		Kind:    kind,
		Solver:  solver,
		Created: time.Now().UTC(),
		Steps:   ts.Len(),
		Params:  params,
	}
	metaData, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(runDir, "metadata.json"), metaData, 0644); err != nil {
		return "", err
	}

	if err := writeSeriesCSV(filepath.Join(runDir, "samples.csv"), ts); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Load(id string) (*RunMeta, error) {
	data, err := os.ReadFile(filepath.Join(s.root, id, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSeries(id string) (*vibe.TimeSeries, error) {
	f, err := os.Open(filepath.Join(s.root, id, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("samples.csv for run %s is empty", id)
	}

	ts := &vibe.TimeSeries{}
	for _, row := range rows[1:] {
		if len(row) != 3 {
			return nil, fmt.Errorf("run %s: malformed sample row %v", id, row)
		}
		var vals [3]float64
		for i, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: parsing %q: %w", id, cell, err)
			}
			vals[i] = v
		}
		ts.Times = append(ts.Times, vals[0])
		ts.X = append(ts.X, vals[1])
		ts.V = append(ts.V, vals[2])
	}
	return ts, nil
}

func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, err
	}
	runs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			runs = append(runs, e.Name())
		}
	}
	sort.Strings(runs)
	return runs, nil
}

func writeSeriesCSV(path string, ts *vibe.TimeSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"t", "x", "v"}); err != nil {
		return err
	}
	for i := 0; i < ts.Len(); i++ {
		row := []string{
			strconv.FormatFloat(ts.Times[i], 'g', -1, 64),
			strconv.FormatFloat(ts.X[i], 'g', -1, 64),
			strconv.FormatFloat(ts.V[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
