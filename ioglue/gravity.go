// Package ioglue implements the file formats and CLI glue in spec §6:
// the GGM03C-style gravity coefficient file, the initial-state file, the
// ECEF/JSON ephemeris writers, the PDOP CSV writer, and a worker-pool
// interface for per-satellite parallel propagation (spec §5). File and
// parse errors are wrapped with github.com/pkg/errors, promoted here from
// an unused indirect dependency in the teacher's go.mod to an actively
// used one.
package ioglue

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hpop/orbit/forcemodel"
)

// LoadGravityFile reads a GGM03C-style coefficient file: one line per
// (n,m), whitespace-separated fields `n m C̄ S̄ σC σS`, read in triangular
// order n=0..N, m=0..n (spec §6).
func LoadGravityFile(path string, degree int) (*forcemodel.CoeffTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening gravity file %s", path)
	}
	defer f.Close()

	table := forcemodel.NewCoeffTable(degree)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, errors.Errorf("gravity file %s line %d: expected at least 4 fields, got %d", path, lineNo, len(fields))
		}

		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "gravity file %s line %d: bad degree", path, lineNo)
		}
		m, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "gravity file %s line %d: bad order", path, lineNo)
		}
		c, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "gravity file %s line %d: bad C", path, lineNo)
		}
		s, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "gravity file %s line %d: bad S", path, lineNo)
		}

		if n > degree || m > n {
			continue // beyond the truncation degree this table was built for
		}
		table.Set(n, m, c, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading gravity file %s", path)
	}

	return table, nil
}

// formatCoeffLine renders one (n,m,C,S,sigmaC,sigmaS) row in the GGM03C
// style, used by the tests.
func formatCoeffLine(n, m int, c, s float64) string {
	return fmt.Sprintf("%d %d %.15e %.15e 0 0", n, m, c, s)
}
