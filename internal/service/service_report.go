package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/store"
	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

// reportService implements ReportService on a [store.ReportRepository].
// Titles and content are sanitised and tags normalised before they are
// stored.
type reportService struct {
	repository store.ReportRepository
	validator  validators.Validator
	sanitizer  *sanitizer

	now    func() time.Time
	logger *logger.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(repository store.ReportRepository, logger *logger.Logger) ReportService {
	return &reportService{
		repository: repository,
		validator:  validators.NewRequestValidator(),
		sanitizer:  newSanitizer(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *reportService) CreateReport(ctx context.Context, userID int64, req models.ReportCreateRequest) (models.Report, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Report{}, err
	}

	report := models.Report{
		UserID:    userID,
		Title:     s.sanitizer.Title(req.Title),
		Content:   s.sanitizer.Content(req.Content),
		Tags:      models.NormalizeTags(req.Tags),
		CreatedAt: s.now().UTC(),
	}
	if report.Title == "" {
		return models.Report{}, models.FieldErrors{validators.FieldTitle: validators.MsgTitleRequired}
	}

	created, err := s.repository.CreateReport(ctx, report)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reportService.CreateReport").Msg("error creating report")
		return models.Report{}, err
	}
	return created, nil
}

func (s *reportService) GetReport(ctx context.Context, userID, reportID int64) (models.Report, error) {
	report, err := s.repository.GetReport(ctx, userID, reportID)
	if errors.Is(err, store.ErrReportNotFound) {
		return models.Report{}, ErrReportNotFound
	}
	return report, err
}

// ListReports returns the summaries matching filter. An empty period means
// all time and an empty sort means newest first.
func (s *reportService) ListReports(ctx context.Context, filter models.ReportFilter) (models.ReportList, error) {
	filter.Tag = strings.TrimSpace(filter.Tag)
	if err := s.validator.Validate(ctx, filter); err != nil {
		return models.ReportList{}, err
	}
	if filter.Period == "" {
		filter.Period = models.PeriodAll
	}
	if filter.Sort == "" {
		filter.Sort = models.SortNewest
	}

	reports, err := s.repository.ListReports(ctx, filter, s.now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reportService.ListReports").Msg("error listing reports")
		return models.ReportList{}, err
	}

	list := models.ReportList{Reports: make([]models.ReportSummary, len(reports)), Length: len(reports)}
	for i, report := range reports {
		list.Reports[i] = report.Summary()
	}
	return list, nil
}

// UpdateReport applies the non-nil fields of req.
func (s *reportService) UpdateReport(ctx context.Context, userID, reportID int64, req models.ReportUpdateRequest) (models.Report, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Report{}, err
	}

	report, err := s.GetReport(ctx, userID, reportID)
	if err != nil {
		return models.Report{}, err
	}

	if req.Title != nil {
		report.Title = s.sanitizer.Title(*req.Title)
		if report.Title == "" {
			return models.Report{}, models.FieldErrors{validators.FieldTitle: validators.MsgTitleRequired}
		}
	}
	if req.Content != nil {
		report.Content = s.sanitizer.Content(*req.Content)
	}
	if req.Tags != nil {
		report.Tags = models.NormalizeTags(*req.Tags)
	}

	return s.save(ctx, report)
}

func (s *reportService) DeleteReport(ctx context.Context, userID, reportID int64) error {
	err := s.repository.DeleteReport(ctx, userID, reportID)
	if errors.Is(err, store.ErrReportNotFound) {
		return ErrReportNotFound
	}
	return err
}

func (s *reportService) AddTag(ctx context.Context, userID, reportID int64, req models.TagRequest) (models.Report, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Report{}, err
	}

	report, err := s.GetReport(ctx, userID, reportID)
	if err != nil {
		return models.Report{}, err
	}

	tag := strings.TrimSpace(req.Tag)
	if slices.Contains(report.Tags, tag) {
		return models.Report{}, models.FieldErrors{validators.FieldTag: validators.MsgTagDuplicate}
	}
	if len(report.Tags) >= validators.MaxTags {
		return models.Report{}, models.FieldErrors{validators.FieldTag: validators.MsgTooManyTags}
	}

	report.Tags = append(report.Tags, tag)
	return s.save(ctx, report)
}

// RemoveTag drops tag from the report. Removing a tag the report does not
// have is not an error.
func (s *reportService) RemoveTag(ctx context.Context, userID, reportID int64, tag string) (models.Report, error) {
	report, err := s.GetReport(ctx, userID, reportID)
	if err != nil {
		return models.Report{}, err
	}

	tag = strings.TrimSpace(tag)
	if !slices.Contains(report.Tags, tag) {
		return report, nil
	}

	report.Tags = slices.DeleteFunc(report.Tags, func(t string) bool { return t == tag })
	return s.save(ctx, report)
}

func (s *reportService) ListTags(ctx context.Context, userID int64) ([]string, error) {
	return s.repository.ListTags(ctx, userID)
}

func (s *reportService) save(ctx context.Context, report models.Report) (models.Report, error) {
	report.UpdatedAt = s.now().UTC()

	updated, err := s.repository.UpdateReport(ctx, report)
	switch {
	case errors.Is(err, store.ErrReportNotFound):
		return models.Report{}, ErrReportNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*reportService.save").Msg("error saving report")
		return models.Report{}, err
	}
	return updated, nil
}
