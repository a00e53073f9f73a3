package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestSyncPlan_Rejections(t *testing.T) {
	cases := []struct {
		name string
		args []string
		opts syncOptions
		want string
	}{
		{name: "gamePk with dates", args: []string{"745927"}, opts: syncOptions{startDate: "2024-07-01"}, want: "Cannot use gamePk"},
		{name: "gamePk with all", args: []string{"745927"}, opts: syncOptions{all: true}, want: "Cannot use gamePk"},
		{name: "bad gamePk", args: []string{"abc"}, want: "invalid gamePk"},
		{name: "all with season", opts: syncOptions{all: true, season: 2024}, want: "Cannot use --all"},
		{name: "season range with season", opts: syncOptions{startSeason: 2010, season: 2024}, want: "Cannot use --start-season/--end-season"},
		{name: "inverted seasons", opts: syncOptions{startSeason: 2015, endSeason: 2010}, want: "cannot be after"},
		{name: "too early", opts: syncOptions{startSeason: 2005, endSeason: 2010}, want: "only available from 2008"},
		{name: "season with dates", opts: syncOptions{season: 2024, endDate: "2024-07-01"}, want: "Cannot use --season"},
		{name: "season too early", opts: syncOptions{season: 2001}, want: "2008"},
		{name: "nothing", want: "Must provide"},
		{name: "half a range", opts: syncOptions{startDate: "2024-07-01"}, want: "Must provide"},
		{name: "bad date", opts: syncOptions{startDate: "07/01/2024", endDate: "2024-07-02"}, want: "Invalid date format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.opts.plan(tc.args, today)
			require.Error(t, err)
			var usage *usageError
			require.ErrorAs(t, err, &usage)
			assert.Contains(t, usage.msg, tc.want)
		})
	}
}

func TestSyncPlan_SingleGame(t *testing.T) {
	plan, err := syncOptions{forceRefresh: true}.plan([]string{"745927"}, today)
	require.NoError(t, err)
	assert.True(t, plan.single)
	assert.Equal(t, int64(745927), plan.gamePK)
}

func TestSyncPlan_AllCoversEverySeason(t *testing.T) {
	plan, err := syncOptions{all: true}.plan(nil, today)
	require.NoError(t, err)
	assert.True(t, plan.seasons)
	assert.Equal(t, 2008, plan.startSeason)
	assert.Equal(t, 2025, plan.endSeason)
}

func TestSyncPlan_SeasonRangeDefaults(t *testing.T) {
	plan, err := syncOptions{startSeason: 2018}.plan(nil, today)
	require.NoError(t, err)
	assert.Equal(t, 2018, plan.startSeason)
	assert.Equal(t, 2025, plan.endSeason)

	plan, err = syncOptions{endSeason: 2010}.plan(nil, today)
	require.NoError(t, err)
	assert.Equal(t, 2008, plan.startSeason)
	assert.Equal(t, 2010, plan.endSeason)
}

func TestSyncPlan_SeasonUsesSeasonWindow(t *testing.T) {
	plan, err := syncOptions{season: 2024}.plan(nil, today)
	require.NoError(t, err)
	assert.False(t, plan.seasons)
	assert.Equal(t, "2024-02-15", plan.start.Format(time.DateOnly))
	assert.Equal(t, "2024-11-15", plan.end.Format(time.DateOnly))
}

func TestSyncPlan_DateRange(t *testing.T) {
	plan, err := syncOptions{startDate: "2024-07-01", endDate: "2024-07-07"}.plan(nil, today)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), plan.start)
	assert.Equal(t, time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC), plan.end)
}
