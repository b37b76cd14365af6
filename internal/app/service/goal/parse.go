package goal

import (
	"errors"
	"strconv"
	"strings"

	"github.com/upmkt/affiliates-api/pkg/types"
)

var (
	ErrInvalidTarget = errors.New("goal target must be a positive value")
	ErrDuplicateGoal = errors.New("a goal of this type already exists for this period")
	ErrNotFound      = errors.New("goal not found")
)

// ParseTarget normalizes the user-typed target. Currency values arrive in
// Brazilian formatting ("5.000,00"): everything but digits and commas is
// stripped and the comma becomes the decimal point; the result is stored in
// cents. Count targets keep digits only. Zero or unparseable input is
// rejected before any database call.
func ParseTarget(goalType types.GoalType, raw string) (int64, error) {
	switch goalType {
	case types.GoalTypeValue:
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == ',' {
				return r
			}
			return -1
		}, raw)
		// The last comma is the decimal separator; any earlier ones are
		// thousands separators.
		if idx := strings.LastIndex(cleaned, ","); idx >= 0 {
			cleaned = strings.ReplaceAll(cleaned[:idx], ",", "") + "." + cleaned[idx+1:]
		}
		if cleaned == "" || cleaned == "." {
			return 0, ErrInvalidTarget
		}
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || v <= 0 {
			return 0, ErrInvalidTarget
		}
		return int64(v*100 + 0.5), nil

	case types.GoalTypeSales, types.GoalTypeReferrals:
		cleaned := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, raw)
		if cleaned == "" {
			return 0, ErrInvalidTarget
		}
		v, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil || v <= 0 {
			return 0, ErrInvalidTarget
		}
		return v, nil
	}
	return 0, ErrInvalidTarget
}
