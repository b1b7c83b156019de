package oddsieve

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Mode selects what Emit writes.
type Mode uint8

const (
	// ModeList writes the bracketed prime list.
	ModeList Mode = 1 << iota
	// ModeCount writes the "There are N primes up to L." line.
	ModeCount
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	var parts []string
	if m&ModeList != 0 {
		parts = append(parts, "list")
	}
	if m&ModeCount != 0 {
		parts = append(parts, "count")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Emit writes the primes of r to w according to mode.
//
// With both modes the list and the count come from a single pass, so the
// count always matches the list. The list is flushed before the count line.
func Emit(w io.Writer, r *Result, mode Mode, optFns ...Option) error {
	o := applyOptions(optFns)

	start := time.Now()
	err := emit(w, r, mode)
	duration := time.Since(start)

	o.logger.LogOutput(mode, duration, err)
	o.metricsCollector.RecordOutput(mode, duration, err)

	return err
}

func emit(w io.Writer, r *Result, mode Mode) error {
	bw := bufio.NewWriter(w)

	var count uint64
	if mode&ModeList != 0 {
		n, err := WriteList(bw, r)
		if err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("write prime list: %w", err)
		}
		count = n
	}

	if mode&ModeCount != 0 {
		if mode&ModeList == 0 {
			count = r.Count()
		}
		if err := WriteCount(bw, count, r.Limit()); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write primes: %w", err)
	}
	return nil
}

// WriteList writes "[ 2, 3, 5, ... ]" followed by a newline and returns the
// number of primes written.
func WriteList(w io.Writer, r *Result) (uint64, error) {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}

	var (
		count uint64
		buf   = make([]byte, 0, 24)
		err   error
	)

	r.ForEach(func(p uint64) bool {
		buf = buf[:0]
		if count == 0 {
			buf = append(buf, "[ "...)
		} else {
			buf = append(buf, ", "...)
		}
		buf = strconv.AppendUint(buf, p, 10)
		if _, err = bw.Write(buf); err != nil {
			return false
		}
		count++
		return true
	})
	if err == nil {
		_, err = bw.WriteString(" ]\n")
	}
	if err == nil && !ok {
		err = bw.Flush()
	}
	if err != nil {
		return count, fmt.Errorf("write prime list: %w", err)
	}

	return count, nil
}

// WriteCount writes "There are <count> primes up to <limit>." and a newline.
func WriteCount(w io.Writer, count, limit uint64) error {
	if _, err := fmt.Fprintf(w, "There are %d primes up to %d.\n", count, limit); err != nil {
		return fmt.Errorf("write prime count: %w", err)
	}
	return nil
}

// WriteTimings writes the compute timing line and, if emitted is set, the
// output timing line. Durations are truncated to whole milliseconds.
func WriteTimings(w io.Writer, compute, output time.Duration, emitted bool) error {
	if _, err := fmt.Fprintf(w, "It took %dms to compute the primes.\n", compute.Milliseconds()); err != nil {
		return fmt.Errorf("write timings: %w", err)
	}
	if emitted {
		if _, err := fmt.Fprintf(w, "It took %dms to process the input and show you the result.\n", output.Milliseconds()); err != nil {
			return fmt.Errorf("write timings: %w", err)
		}
	}
	return nil
}
