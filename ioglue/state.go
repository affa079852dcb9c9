package ioglue

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// InitialState is one named satellite's initial state vector, as read
// from an initial-state file (spec §6), already converted to meters and
// meters-per-second.
type InitialState struct {
	Name string
	Pos  [3]float64
	Vel  [3]float64
}

// LoadInitialStateFile reads the epoch line `YYYY/MM/DD-HH:MM:SS.sss` UTC
// followed by, per satellite, a name token and six doubles (x,y,z,vx,vy,vz
// in km/km-s, whitespace- or newline-separated). Values are multiplied by
// 1000 on ingest per spec §6.
func LoadInitialStateFile(path string) (time.Time, []InitialState, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, nil, errors.Wrapf(err, "opening initial-state file %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	tokens := newTokenReader(scanner)

	epochTok, ok := tokens.next()
	if !ok {
		return time.Time{}, nil, errors.Errorf("initial-state file %s: missing epoch line", path)
	}
	epoch, err := parseEpoch(epochTok)
	if err != nil {
		return time.Time{}, nil, errors.Wrapf(err, "initial-state file %s", path)
	}

	var states []InitialState
	for {
		nameTok, ok := tokens.next()
		if !ok {
			break
		}
		if len(nameTok) > 99 {
			return time.Time{}, nil, errors.Errorf("initial-state file %s: name token %q exceeds 99 characters", path, nameTok)
		}

		var vals [6]float64
		for i := 0; i < 6; i++ {
			tok, ok := tokens.next()
			if !ok {
				return time.Time{}, nil, errors.Errorf("initial-state file %s: truncated state for %q", path, nameTok)
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return time.Time{}, nil, errors.Wrapf(err, "initial-state file %s: bad component for %q", path, nameTok)
			}
			vals[i] = v
		}

		states = append(states, InitialState{
			Name: nameTok,
			Pos:  [3]float64{vals[0] * 1000, vals[1] * 1000, vals[2] * 1000},
			Vel:  [3]float64{vals[3] * 1000, vals[4] * 1000, vals[5] * 1000},
		})
	}

	if err := scanner.Err(); err != nil {
		return time.Time{}, nil, errors.Wrapf(err, "reading initial-state file %s", path)
	}
	return epoch, states, nil
}

func parseEpoch(tok string) (time.Time, error) {
	const layout = "2006/01/02-15:04:05.999"
	t, err := time.Parse(layout, tok)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "bad epoch %q", tok)
	}
	return t.UTC(), nil
}

// tokenReader yields whitespace-separated tokens across newline
// boundaries, since the spec allows either "six doubles on separate
// lines or whitespace-separated".
type tokenReader struct {
	scanner *bufio.Scanner
	pending []string
}

func newTokenReader(scanner *bufio.Scanner) *tokenReader {
	scanner.Split(bufio.ScanLines)
	return &tokenReader{scanner: scanner}
}

func (r *tokenReader) next() (string, bool) {
	for len(r.pending) == 0 {
		if !r.scanner.Scan() {
			return "", false
		}
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		r.pending = strings.Fields(line)
	}
	tok := r.pending[0]
	r.pending = r.pending[1:]
	return tok, true
}
