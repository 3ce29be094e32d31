package bcalm2

import (
	"fmt"
	"strconv"
	"strings"

	"dbgraph/core/dbg"
	"dbgraph/core/fasta"
)

// ParseRecord turns a FASTA record into a forward Unitig.
func ParseRecord(r fasta.Record) (Unitig, error) {
	id, err := strconv.Atoi(r.ID)
	if err != nil || id < 0 {
		return Unitig{}, fmt.Errorf("%w: %q", ErrInvalidID, r.ID)
	}
	u := Unitig{ID: id, Seq: r.Seq, Forwards: true}
	if err := parseParams(&u, r.Desc); err != nil {
		return Unitig{}, fmt.Errorf("record %d: %w", id, err)
	}
	if u.Length != nil && *u.Length != len(u.Seq) {
		return Unitig{}, fmt.Errorf("record %d: %w: LN:i:%d, sequence has %d", id, ErrLengthMismatch, *u.Length, len(u.Seq))
	}
	return u, nil
}

func parseParams(u *Unitig, desc string) error {
	for _, p := range strings.Fields(desc) {
		if len(p) < 5 {
			return fmt.Errorf("%w: %q", ErrUnknownParameter, p)
		}
		switch p[:5] {
		case "LN:i:":
			if u.Length != nil {
				return fmt.Errorf("%w: %q", ErrDuplicateParameter, p)
			}
			v, err := parseCount(p)
			if err != nil {
				return err
			}
			u.Length = &v
		case "KC:i:":
			if u.TotalAbundance != nil {
				return fmt.Errorf("%w: %q", ErrDuplicateParameter, p)
			}
			v, err := parseCount(p)
			if err != nil {
				return err
			}
			u.TotalAbundance = &v
		case "KM:f:", "km:f:":
			if u.MeanAbundance != nil {
				return fmt.Errorf("%w: %q", ErrDuplicateParameter, p)
			}
			v, err := strconv.ParseFloat(p[5:], 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrMalformedParameter, p)
			}
			u.MeanAbundance = &v
		default:
			if !strings.HasPrefix(p, "L:") {
				return fmt.Errorf("%w: %q", ErrUnknownParameter, p)
			}
			a, err := parseLink(p)
			if err != nil {
				return err
			}
			u.Adjacency = append(u.Adjacency, a)
		}
	}
	return nil
}

func parseCount(p string) (int, error) {
	v, err := strconv.Atoi(p[5:])
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedParameter, p)
	}
	return v, nil
}

// parseLink parses "L:<+|->:<id>:<+|->".
func parseLink(p string) (dbg.Adjacency, error) {
	parts := strings.Split(p, ":")
	if len(parts) != 4 {
		return dbg.Adjacency{}, fmt.Errorf("%w: %q", ErrMalformedParameter, p)
	}
	from, ok1 := parseSide(parts[1])
	to, err := strconv.Atoi(parts[2])
	toSide, ok2 := parseSide(parts[3])
	if !ok1 || !ok2 || err != nil || to < 0 {
		return dbg.Adjacency{}, fmt.Errorf("%w: %q", ErrMalformedParameter, p)
	}
	return dbg.Adjacency{FromSide: from, To: to, ToSide: toSide}, nil
}

func parseSide(s string) (side, ok bool) {
	switch s {
	case "+":
		return true, true
	case "-":
		return false, true
	}
	return false, false
}
