package ioglue

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/hpop/orbit/propagator"
)

// WriteECEFEphemeris writes one line per step: `YYYY-MM-DD HH:MM:SS.sss x
// y z vx vy vz`, 6-decimal precision, meters and m/s (spec §6). states is
// already Earth-fixed (ECEF); the caller is responsible for the ECI->ECEF
// rotation per step since that depends on the shared EOP table.
func WriteECEFEphemeris(w io.Writer, epoch time.Time, deltaT float64, states [][6]float64) error {
	for k, s := range states {
		t := epoch.Add(time.Duration(float64(k) * deltaT * float64(time.Second)))
		_, err := fmt.Fprintf(w, "%s %.6f %.6f %.6f %.6f %.6f %.6f\n",
			t.Format("2006-01-02 15:04:05.000"), s[0], s[1], s[2], s[3], s[4], s[5])
		if err != nil {
			return errors.Wrap(err, "writing ECEF ephemeris line")
		}
	}
	return nil
}

// jsonEphemeris is one satellite's JSON value: its epoch string and its
// [t_sec, x, y, z, vx, vy, vz] rows.
type jsonEphemeris struct {
	Epoch     string      `json:"epoch"`
	Cartesian [][7]float64 `json:"cartesian"`
}

// WriteJSONEphemeris writes the per-satellite JSON ephemeris format from
// spec §6: one object keyed by satellite name.
func WriteJSONEphemeris(w io.Writer, epoch time.Time, byName map[string]*propagator.Ephemeris) error {
	out := make(map[string]jsonEphemeris, len(byName))
	for name, eph := range byName {
		rows := make([][7]float64, eph.Len())
		for k := 0; k < eph.Len(); k++ {
			s := eph.At(k)
			rows[k] = [7]float64{float64(k) * eph.DeltaT, s[0], s[1], s[2], s[3], s[4], s[5]}
		}
		out[name] = jsonEphemeris{
			Epoch:     epoch.UTC().Format("2006-01-02T15:04:05") + "Z",
			Cartesian: rows,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(err, "encoding JSON ephemeris")
	}
	return nil
}
