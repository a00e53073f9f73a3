package transform

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInningsPitched converts "X.Y" innings notation, where Y counts outs (thirds of
// an inning), to a decimal. A value without a dot is parsed as a plain number.
func ParseInningsPitched(ip *string) *float64 {
	if ip == nil {
		return nil
	}
	s := strings.TrimSpace(*ip)
	whole, part, hasDot := strings.Cut(s, ".")
	if !hasDot {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &v
	}
	w, err := strconv.Atoi(whole)
	if err != nil {
		return nil
	}
	thirds, err := strconv.Atoi(part)
	if err != nil {
		return nil
	}
	v := float64(w) + float64(thirds)/3
	return &v
}

func BattingAverage(hits, atBats *int64) *string {
	if hits == nil || atBats == nil || *atBats == 0 {
		return nil
	}
	return rate3(float64(*hits) / float64(*atBats))
}

// OnBasePercentage is (H + BB + HBP) / (AB + BB + HBP + SF); missing counts are zero.
func OnBasePercentage(hits, baseOnBalls, hitByPitch, atBats, sacFlies *int64) *string {
	h, bb, hbp := deref(hits), deref(baseOnBalls), deref(hitByPitch)
	denominator := deref(atBats) + bb + hbp + deref(sacFlies)
	if denominator == 0 {
		return nil
	}
	return rate3(float64(h+bb+hbp) / float64(denominator))
}

func Slugging(totalBases, atBats *int64) *string {
	if totalBases == nil || atBats == nil || *atBats == 0 {
		return nil
	}
	return rate3(float64(*totalBases) / float64(*atBats))
}

// OPS adds the already formatted OBP and SLG, so it agrees with the stored values.
func OPS(obp, slg *string) *string {
	if obp == nil || slg == nil {
		return nil
	}
	o, err := strconv.ParseFloat(*obp, 64)
	if err != nil {
		return nil
	}
	s, err := strconv.ParseFloat(*slg, 64)
	if err != nil {
		return nil
	}
	return rate3(o + s)
}

func AtBatsPerHomeRun(atBats, homeRuns *int64) *string {
	if homeRuns == nil || *homeRuns <= 0 || atBats == nil || *atBats == 0 {
		return nil
	}
	return rate2(float64(*atBats) / float64(*homeRuns))
}

func ERA(earnedRuns *int64, innings *float64) *string {
	if earnedRuns == nil || innings == nil || *innings == 0 {
		return nil
	}
	return rate2(float64(*earnedRuns) / *innings * 9)
}

func WHIP(hits, baseOnBalls *int64, innings *float64) *string {
	if innings == nil || *innings == 0 {
		return nil
	}
	return rate2(float64(deref(hits)+deref(baseOnBalls)) / *innings)
}

func rate3(v float64) *string {
	s := fmt.Sprintf("%.3f", v)
	return &s
}

func rate2(v float64) *string {
	s := fmt.Sprintf("%.2f", v)
	return &s
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
