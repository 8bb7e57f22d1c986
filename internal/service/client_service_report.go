package service

import (
	"context"

	"github.com/saarzint/candle-recall/internal/adapter"
	"github.com/saarzint/candle-recall/models"
)

type clientReportService struct {
	adapter adapter.ServerAdapter
}

// NewClientReportService constructs a ClientReportService.
func NewClientReportService(serverAdapter adapter.ServerAdapter) ClientReportService {
	return &clientReportService{adapter: serverAdapter}
}

func (s *clientReportService) CreateReport(ctx context.Context, req models.ReportCreateRequest) (models.Report, error) {
	report, err := s.adapter.CreateReport(ctx, req)
	return report, mapAdapterError(err)
}

func (s *clientReportService) ListReports(ctx context.Context, filter models.ReportFilter) (models.ReportList, error) {
	list, err := s.adapter.ListReports(ctx, filter)
	return list, mapAdapterError(err)
}

func (s *clientReportService) GetReport(ctx context.Context, reportID int64) (models.Report, error) {
	report, err := s.adapter.GetReport(ctx, reportID)
	return report, mapAdapterError(err)
}

func (s *clientReportService) UpdateReport(ctx context.Context, reportID int64, req models.ReportUpdateRequest) (models.Report, error) {
	report, err := s.adapter.UpdateReport(ctx, reportID, req)
	return report, mapAdapterError(err)
}

func (s *clientReportService) DeleteReport(ctx context.Context, reportID int64) error {
	return mapAdapterError(s.adapter.DeleteReport(ctx, reportID))
}

func (s *clientReportService) AddTag(ctx context.Context, reportID int64, tag string) (models.Report, error) {
	report, err := s.adapter.AddTag(ctx, reportID, models.TagRequest{Tag: tag})
	return report, mapAdapterError(err)
}

func (s *clientReportService) RemoveTag(ctx context.Context, reportID int64, tag string) (models.Report, error) {
	report, err := s.adapter.RemoveTag(ctx, reportID, tag)
	return report, mapAdapterError(err)
}

func (s *clientReportService) ListTags(ctx context.Context) ([]string, error) {
	tags, err := s.adapter.ListTags(ctx)
	return tags, mapAdapterError(err)
}
