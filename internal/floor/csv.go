package floor

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteScheduleCSV(path string, ledger []ScheduleRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"ratio",
		"standardized_sum",
		"output_floor",
		"internal_model_rwa",
		"binding",
		"binding_source",
		"floor_add_on",
		"cum_floor_add_on",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.Ratio),
			fmtFloat(r.StandardizedSum),
			fmtFloat(r.OutputFloor),
			fmtFloat(r.InternalModelRWA),
			fmtFloat(r.Binding),
			string(r.BindingSource),
			fmtFloat(r.FloorAddOn),
			fmtFloat(r.CumFloorAddOn),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
