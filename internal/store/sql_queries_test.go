// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saarzint/candle-recall/models"
)

var queryNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func Test_buildListReportsQuery_DefaultFilter(t *testing.T) {
	query, args, err := buildListReportsQuery(models.ReportFilter{UserID: 42}, queryNow)
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)
	assert.Contains(t, q, "from reports r")
	assert.Contains(t, q, "r.user_id = $1")
	assert.Contains(t, q, "order by r.created_at desc")
	assert.NotContains(t, q, "report_tags")
	assert.NotContains(t, q, "r.created_at >=")
}

func Test_buildListReportsQuery_TagAndPeriod(t *testing.T) {
	filter := models.ReportFilter{UserID: 7, Tag: "AAPL", Period: models.PeriodWeek}

	query, args, err := buildListReportsQuery(filter, queryNow)
	require.NoError(t, err)

	require.Len(t, args, 3)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, "AAPL", args[1])
	assert.Equal(t, queryNow.AddDate(0, 0, -7), args[2])

	q := strings.ToLower(query)
	assert.Contains(t, q, "exists (select 1 from report_tags t where t.report_id = r.id and t.tag = $2)")
	assert.Contains(t, q, "r.created_at >= $3")
}

func Test_buildListReportsQuery_Sort(t *testing.T) {
	tests := []struct {
		sort models.SortOrder
		want string
	}{
		{models.SortNewest, "order by r.created_at desc, r.id desc"},
		{models.SortOldest, "order by r.created_at asc, r.id asc"},
		{models.SortTitle, "order by lower(r.title) asc, r.id asc"},
		{"", "order by r.created_at desc, r.id desc"},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			query, _, err := buildListReportsQuery(models.ReportFilter{UserID: 1, Sort: tt.sort}, queryNow)
			require.NoError(t, err)
			assert.Contains(t, strings.ToLower(query), tt.want)
		})
	}
}

func Test_buildListReportsQuery_AllPeriodHasNoBound(t *testing.T) {
	_, args, err := buildListReportsQuery(models.ReportFilter{UserID: 1, Period: models.PeriodAll}, queryNow)
	require.NoError(t, err)
	assert.Len(t, args, 1)
}

func Test_buildReportTagsQuery(t *testing.T) {
	query, args, err := buildReportTagsQuery([]int64{3, 5})
	require.NoError(t, err)

	assert.Equal(t, []any{int64(3), int64(5)}, args)
	q := strings.ToLower(query)
	assert.Contains(t, q, "report_id in ($1,$2)")
	assert.Contains(t, q, "order by report_id, position")
}

func Test_buildUpdateReportQuery(t *testing.T) {
	report := models.Report{ID: 9, UserID: 2, Title: "Q3", Content: "body"}

	query, args, err := buildUpdateReportQuery(report, queryNow)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "update reports set title = $1, content = $2, updated_at = $3"))
	assert.Contains(t, q, "returning created_at, updated_at")
	assert.Equal(t, []any{"Q3", "body", queryNow, int64(9), int64(2)}, args)
}
