package transform

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/mlb-stats/internal/upstream"
)

// BoolToInt stores booleans as 0/1 and keeps nil as nil.
func BoolToInt(v *bool) *int64 {
	if v == nil {
		return nil
	}
	out := flag(*v)
	return &out
}

func truthy(v *bool) int64 {
	return flag(v != nil && *v)
}

func flag(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

func firstNonEmpty(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			return v
		}
	}
	return nil
}

func firstInt(values ...*int64) *int64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func int64Ptr(v int64) *int64 {
	return &v
}

// attendanceFromInfo reads the boxscore info entry labelled "Att", e.g. "41,287.".
func attendanceFromInfo(info []upstream.LabelValue) *int64 {
	for _, item := range info {
		if item.Label == nil || *item.Label != "Att" || item.Value == nil {
			continue
		}
		value := strings.TrimRight(strings.ReplaceAll(*item.Value, ",", ""), ".")
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			continue
		}
		return &n
	}
	return nil
}
