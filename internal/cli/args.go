package cli

import (
	"errors"
	"strconv"
)

// MinLimit is the smallest accepted upper limit.
const MinLimit = 2

// Args is the parsed command line.
type Args struct {
	Print bool
	Count bool
	Limit uint64
}

// Parse parses the command-line arguments, excluding the program name.
func Parse(args []string) (Args, error) {
	var (
		a        Args
		hasLimit bool
	)

	for _, arg := range args {
		switch arg {
		case "-p", "-P":
			if a.Print {
				return Args{}, &DuplicateError{Arg: arg}
			}
			a.Print = true
		case "-c", "-C":
			if a.Count {
				return Args{}, &DuplicateError{Arg: arg}
			}
			a.Count = true
		default:
			limit, err := parseLimit(arg)
			if err != nil {
				return Args{}, err
			}
			if hasLimit {
				return Args{}, &DuplicateError{Arg: arg}
			}
			a.Limit = limit
			hasLimit = true
		}
	}

	if !hasLimit {
		return Args{}, ErrMissingLimit
	}

	return a, nil
}

func parseLimit(arg string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, &InvalidError{Arg: arg, Err: err}
	}
	if v < MinLimit {
		return 0, &InvalidError{Arg: arg, Err: ErrBelowMinimum}
	}
	return v, nil
}
