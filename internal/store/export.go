package store

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/vibelab/internal/beam"
	"github.com/san-kum/vibelab/internal/vibe"
)

type ExportData struct {
	Kind   string             `json:"kind"`
	Solver string             `json:"solver"`
	Steps  int                `json:"steps"`
	Params map[string]float64 `json:"params"`
	Times  []float64          `json:"times"`
	X      []float64          `json:"x"`
	V      []float64          `json:"v"`
}

func ExportJSON(path, kind, solver string, params map[string]float64, ts *vibe.TimeSeries) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, kind, solver, params, ts)
}

func ExportJSONStdout(kind, solver string, params map[string]float64, ts *vibe.TimeSeries) error {
	return writeJSON(os.Stdout, kind, solver, params, ts)
}

func writeJSON(w io.Writer, kind, solver string, params map[string]float64, ts *vibe.TimeSeries) error {
	data := ExportData{
		Kind:   kind,
		Solver: solver,
		Steps:  ts.Len(),
		Params: params,
		Times:  ts.Times,
		X:      ts.X,
		V:      ts.V,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportFRFXLSX writes a workbook with the total response and one
// column per modal contribution, magnitudes in dB and phase in
// degrees.
func ExportFRFXLSX(path string, frf *beam.FRF) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "FRF"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{"freq_hz", "sum_db", "phase_deg"}
	for i := range frf.Modes {
		headers = append(headers, fmt.Sprintf("mode_%d_db", i+1))
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, freq := range frf.Freqs {
		row := []interface{}{
			freq,
			20 * math.Log10(cmplx.Abs(frf.Sum[i])),
			cmplx.Phase(frf.Sum[i]) * 180 / math.Pi,
		}
		for _, mode := range frf.Modes {
			row = append(row, 20*math.Log10(cmplx.Abs(mode[i])))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Modes"); err != nil {
		return err
	}
	if err := f.SetSheetRow("Modes", "A1", &[]interface{}{"mode", "freq_hz"}); err != nil {
		return err
	}
	for i, mf := range frf.ModeFreqs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Modes", cell, &[]interface{}{i + 1, mf}); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// ExportModesXLSX writes beam mode shapes, one column per mode.
func ExportModesXLSX(path string, res *beam.ModalResult) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Shapes"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{"x_m"}
	for _, m := range res.Modes {
		headers = append(headers, fmt.Sprintf("mode_%d", m.Index))
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, x := range res.X {
		row := []interface{}{x}
		for _, m := range res.Modes {
			row = append(row, m.Shape[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	freqSheet := "Frequencies"
	if _, err := f.NewSheet(freqSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(freqSheet, "A1", &[]interface{}{"mode", "beta", "omega_rad_s", "freq_hz"}); err != nil {
		return err
	}
	for i, m := range res.Modes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{m.Index, m.Beta, m.Omega, m.Omega / (2 * math.Pi)}
		if err := f.SetSheetRow(freqSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
