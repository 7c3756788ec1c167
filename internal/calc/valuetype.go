//go:generate go run github.com/dmarkham/enumer -type=ValueType -trimprefix=ValueType -transform=kebab -linecomment
//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab
package calc

import (
	"math"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

// ValueType selects how interval bounds on the command line are read.
type ValueType int

const (
	ValueTypeInt ValueType = iota
	ValueTypeFloat
	ValueTypeText // string
	ValueTypeDuration
)

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Newf("invalid int value %q", s)
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Newf("invalid float value %q", s)
	}
	if math.IsInf(v, 0) {
		return 0, errors.Newf("infinite float value %q, leave the side unbounded instead", s)
	}
	return v, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

func parseDuration(s string) (time.Duration, error) {
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.Newf("invalid duration value %q", s)
	}
	return v, nil
}
