package selection

import "fmt"

// ToggleBounded flips membership of value in current.
//
// A present value is removed and the rest keep their order. An absent value is
// appended while fewer than max values are selected. When the group is full the
// input is returned unchanged together with an error wrapping ErrSelectionLimit.
// The input slice is never modified.
func ToggleBounded(current []string, value string, max int) ([]string, error) {
	if idx := indexOf(current, value); idx >= 0 {
		out := make([]string, 0, len(current)-1)
		out = append(out, current[:idx]...)
		return append(out, current[idx+1:]...), nil
	}

	if len(current) >= max {
		return current, &Error{
			Message: fmt.Sprintf("cannot add %q, only %d options allowed", value, max),
			Cause:   ErrSelectionLimit,
		}
	}

	out := make([]string, 0, len(current)+1)
	out = append(out, current...)
	return append(out, value), nil
}

func indexOf(seq []string, item string) int {
	for i, s := range seq {
		if s == item {
			return i
		}
	}
	return -1
}
