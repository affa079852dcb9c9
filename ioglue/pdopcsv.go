package ioglue

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/hpop/orbit/pdop"
)

// WritePDOPCSV writes the PDOP grid in the spec §6 CSV format: header
// `time_step,lat,lon,pdop`, one row per (t, lat, lon), `NaN` for
// underdetermined cells.
func WritePDOPCSV(w io.Writer, cells []pdop.Cell) error {
	if _, err := fmt.Fprintln(w, "time_step,lat,lon,pdop"); err != nil {
		return errors.Wrap(err, "writing PDOP CSV header")
	}
	for _, c := range cells {
		val := "NaN"
		if !math.IsNaN(c.PDOP) {
			val = fmt.Sprintf("%.6f", c.PDOP)
		}
		if _, err := fmt.Fprintf(w, "%d,%.4f,%.4f,%s\n", c.TimeStep, c.LatDeg, c.LonDeg, val); err != nil {
			return errors.Wrap(err, "writing PDOP CSV row")
		}
	}
	return nil
}
