package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/mock"
	"github.com/saarzint/candle-recall/internal/store"
	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

func newTestReportService(t *testing.T) (*reportService, *mock.MockReportRepository) {
	t.Helper()
	repo := mock.NewMockReportRepository(gomock.NewController(t))
	svc := NewReportService(repo, logger.Nop()).(*reportService)
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func TestReportService_CreateReport(t *testing.T) {
	ctx := context.Background()

	t.Run("sanitizes and normalizes before storing", func(t *testing.T) {
		svc, repo := newTestReportService(t)
		repo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r models.Report) (models.Report, error) {
				assert.Equal(t, int64(9), r.UserID)
				assert.Equal(t, "AAPL earnings", r.Title)
				assert.Equal(t, "Revenue > guidance & margins up", r.Content)
				assert.Equal(t, []string{"AAPL", "TECH"}, r.Tags)
				assert.Equal(t, testNow, r.CreatedAt)
				r.ID = 1
				return r, nil
			})

		report, err := svc.CreateReport(ctx, 9, models.ReportCreateRequest{
			Title:   "<b>AAPL earnings</b>",
			Content: "Revenue > guidance & margins up<script>alert(1)</script>",
			Tags:    []string{" AAPL", "TECH", "AAPL", ""},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), report.ID)
	})

	t.Run("title made only of markup", func(t *testing.T) {
		svc, _ := newTestReportService(t)
		_, err := svc.CreateReport(ctx, 9, models.ReportCreateRequest{Title: "<img src=x>"})
		requireFieldError(t, err, validators.FieldTitle, validators.MsgTitleRequired)
	})

	t.Run("too many tags", func(t *testing.T) {
		svc, _ := newTestReportService(t)
		tags := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}
		_, err := svc.CreateReport(ctx, 9, models.ReportCreateRequest{Title: "t", Tags: tags})
		requireFieldError(t, err, validators.FieldTags, validators.MsgTooManyTags)
	})
}

func TestReportService_GetReport_NotFound(t *testing.T) {
	svc, repo := newTestReportService(t)
	repo.EXPECT().GetReport(gomock.Any(), int64(1), int64(2)).Return(models.Report{}, store.ErrReportNotFound)

	_, err := svc.GetReport(context.Background(), 1, 2)
	require.ErrorIs(t, err, ErrReportNotFound)
}

func TestReportService_ListReports(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults period and sort", func(t *testing.T) {
		svc, repo := newTestReportService(t)
		repo.EXPECT().ListReports(gomock.Any(), models.ReportFilter{UserID: 1, Tag: "AAPL", Period: models.PeriodAll, Sort: models.SortNewest}, testNow).
			Return([]models.Report{{ID: 3, Title: "t", Content: "body", Tags: []string{"AAPL"}}}, nil)

		list, err := svc.ListReports(ctx, models.ReportFilter{UserID: 1, Tag: " AAPL "})
		require.NoError(t, err)
		require.Equal(t, 1, list.Length)
		assert.Equal(t, "body", list.Reports[0].Description)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		svc, repo := newTestReportService(t)
		repo.EXPECT().ListReports(gomock.Any(), gomock.Any(), testNow).Return(nil, nil)

		list, err := svc.ListReports(ctx, models.ReportFilter{UserID: 1})
		require.NoError(t, err)
		assert.NotNil(t, list.Reports)
		assert.Zero(t, list.Length)
	})

	t.Run("unknown sort", func(t *testing.T) {
		svc, _ := newTestReportService(t)
		_, err := svc.ListReports(ctx, models.ReportFilter{UserID: 1, Sort: "random"})
		requireFieldError(t, err, validators.FieldSort, validators.MsgUnknownSort)
	})
}

func TestReportService_UpdateReport(t *testing.T) {
	ctx := context.Background()
	existing := models.Report{ID: 2, UserID: 1, Title: "old", Content: "old body", Tags: []string{"AAPL"}}

	svc, repo := newTestReportService(t)
	repo.EXPECT().GetReport(gomock.Any(), int64(1), int64(2)).Return(existing, nil)
	repo.EXPECT().UpdateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.Report) (models.Report, error) {
			assert.Equal(t, "new", r.Title)
			assert.Equal(t, "old body", r.Content)
			assert.Equal(t, []string{"AAPL"}, r.Tags)
			assert.Equal(t, testNow, r.UpdatedAt)
			return r, nil
		})

	title := "new"
	updated, err := svc.UpdateReport(ctx, 1, 2, models.ReportUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
}

func TestReportService_Tags(t *testing.T) {
	ctx := context.Background()
	existing := models.Report{ID: 2, UserID: 1, Title: "t", Tags: []string{"AAPL", "MSFT"}}

	t.Run("add", func(t *testing.T) {
		svc, repo := newTestReportService(t)
		repo.EXPECT().GetReport(gomock.Any(), int64(1), int64(2)).Return(existing, nil)
		repo.EXPECT().UpdateReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r models.Report) (models.Report, error) { return r, nil })

		report, err := svc.AddTag(ctx, 1, 2, models.TagRequest{Tag: " NVDA "})
		require.NoError(t, err)
		assert.Equal(t, []string{"AAPL", "MSFT", "NVDA"}, report.Tags)
	})

	t.Run("add duplicate", func(t *testing.T) {
		svc, repo := newTestReportService(t)
		repo.EXPECT().GetReport(gomock.Any(), int64(1), int64(2)).Return(existing, nil)

		_, err := svc.AddTag(ctx, 1, 2, models.TagRequest{Tag: "AAPL"})
		requireFieldError(t, err, validators.FieldTag, validators.MsgTagDuplicate)
	})

	t.Run("add beyond limit", func(t *testing.T) {
		svc, repo := newTestReportService(t)
		full := existing
		full.Tags = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
		repo.EXPECT().GetReport(gomock.Any(), int64(1), int64(2)).Return(full, nil)

		_, err := svc.AddTag(ctx, 1, 2, models.TagRequest{Tag: "K"})
		requireFieldError(t, err, validators.FieldTag, validators.MsgTooManyTags)
	})

	t.Run("remove", func(t *testing.T) {
		svc, repo := newTestReportService(t)
		repo.EXPECT().GetReport(gomock.Any(), int64(1), int64(2)).Return(models.Report{ID: 2, Tags: []string{"AAPL", "MSFT"}}, nil)
		repo.EXPECT().UpdateReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r models.Report) (models.Report, error) { return r, nil })

		report, err := svc.RemoveTag(ctx, 1, 2, "AAPL")
		require.NoError(t, err)
		assert.Equal(t, []string{"MSFT"}, report.Tags)
	})

	t.Run("remove missing tag is a no-op", func(t *testing.T) {
		svc, repo := newTestReportService(t)
		repo.EXPECT().GetReport(gomock.Any(), int64(1), int64(2)).Return(models.Report{ID: 2, Tags: []string{"AAPL"}}, nil)

		report, err := svc.RemoveTag(ctx, 1, 2, "TSLA")
		require.NoError(t, err)
		assert.Equal(t, []string{"AAPL"}, report.Tags)
	})
}

func TestReportService_DeleteReport(t *testing.T) {
	svc, repo := newTestReportService(t)
	repo.EXPECT().DeleteReport(gomock.Any(), int64(1), int64(2)).Return(store.ErrReportNotFound)

	require.ErrorIs(t, svc.DeleteReport(context.Background(), 1, 2), ErrReportNotFound)
}
