package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FailureLine is written for any query that cannot be answered.
const FailureLine = "0.00000,0,0"

const probabilityDecimals = 5

// Result is an answered query with its arithmetic operation counts.
type Result struct {
	Probability     float64 `json:"probability"`
	Additions       int     `json:"additions"`
	Multiplications int     `json:"multiplications"`
}

// Line renders "<probability>,<additions>,<multiplications>".
func (r Result) Line() string {
	return fmt.Sprintf("%s,%d,%d", FormatProbability(r.Probability), r.Additions, r.Multiplications)
}

// FormatProbability renders p with five decimals, rounding half-up on the
// shortest decimal representation of p (so 0.015625 becomes 0.01563).
func FormatProbability(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return fmt.Sprintf("%.5f", p)
	}

	s := strconv.FormatFloat(p, 'f', -1, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	if len(frac) <= probabilityDecimals {
		return sign + intPart + "." + frac + strings.Repeat("0", probabilityDecimals-len(frac))
	}

	digits := []byte(intPart + frac[:probabilityDecimals])
	if frac[probabilityDecimals] >= '5' {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] == '9' {
				digits[i] = '0'
				continue
			}
			digits[i]++
			break
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}

	cut := len(digits) - probabilityDecimals
	out := sign + string(digits[:cut]) + "." + string(digits[cut:])
	if out == "-0.00000" {
		return "0.00000"
	}
	return out
}
