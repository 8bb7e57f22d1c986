package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/models"
)

// reportRepository stores reports in "reports" and their ordered tags in
// "report_tags".
type reportRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReportRepository constructs a [ReportRepository] on db.
func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReport inserts the report and its tags in one transaction.
func (r *reportRepository) CreateReport(ctx context.Context, report models.Report) (models.Report, error) {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, createReport, report.UserID, report.Title, report.Content, report.CreatedAt).
			Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return replaceTags(ctx, tx, report.ID, report.Tags)
	})
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.CreateReport").Msg("error creating report")
		return models.Report{}, err
	}

	return report, nil
}

func (r *reportRepository) GetReport(ctx context.Context, userID, reportID int64) (models.Report, error) {
	log := logger.FromContext(ctx)

	var report models.Report
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, getReport, userID, reportID).Scan(
			&report.ID, &report.UserID, &report.Title, &report.Content, &report.CreatedAt, &report.UpdatedAt,
		)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Report{}, ErrReportNotFound
	case err != nil:
		log.Err(err).Str("func", "*reportRepository.GetReport").Msg("error reading report")
		return models.Report{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	tags, err := r.loadTags(ctx, []int64{report.ID})
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.GetReport").Msg("error reading report tags")
		return models.Report{}, err
	}
	report.Tags = nonNil(tags[report.ID])

	return report, nil
}

// ListReports returns the reports matching filter with their tags.
func (r *reportRepository) ListReports(ctx context.Context, filter models.ReportFilter, now time.Time) ([]models.Report, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListReportsQuery(filter, now)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.ListReports").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var reports []models.Report
	err = r.db.withRetry(ctx, func() error {
		reports = reports[:0]

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var report models.Report
			if err := rows.Scan(&report.ID, &report.UserID, &report.Title, &report.Content, &report.CreatedAt, &report.UpdatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			reports = append(reports, report)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.ListReports").Msg("error listing reports")
		return nil, err
	}

	if len(reports) == 0 {
		return []models.Report{}, nil
	}

	ids := make([]int64, len(reports))
	for i, report := range reports {
		ids[i] = report.ID
	}
	tags, err := r.loadTags(ctx, ids)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.ListReports").Msg("error reading report tags")
		return nil, err
	}
	for i := range reports {
		reports[i].Tags = nonNil(tags[reports[i].ID])
	}

	return reports, nil
}

// UpdateReport stores title, content and tags of report. The tag list is
// replaced as a whole.
func (r *reportRepository) UpdateReport(ctx context.Context, report models.Report) (models.Report, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateReportQuery(report, report.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.UpdateReport").Msg("error building query")
		return models.Report{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query, args...).Scan(&report.CreatedAt, &report.UpdatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReportNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return replaceTags(ctx, tx, report.ID, report.Tags)
	})
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.UpdateReport").Msg("error updating report")
		return models.Report{}, err
	}

	return report, nil
}

func (r *reportRepository) DeleteReport(ctx context.Context, userID, reportID int64) error {
	log := logger.FromContext(ctx)

	var res sql.Result
	err := r.db.withRetry(ctx, func() (err error) {
		res, err = r.db.ExecContext(ctx, deleteReport, userID, reportID)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.DeleteReport").Msg("error deleting report")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrReportNotFound)
}

// ListTags returns every distinct tag the user has used, sorted.
func (r *reportRepository) ListTags(ctx context.Context, userID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	tags := []string{}
	err := r.db.withRetry(ctx, func() error {
		tags = tags[:0]

		rows, err := r.db.QueryContext(ctx, listUserTags, userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var tag string
			if err := rows.Scan(&tag); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			tags = append(tags, tag)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.ListTags").Msg("error listing tags")
		return nil, err
	}

	return tags, nil
}

func (r *reportRepository) loadTags(ctx context.Context, reportIDs []int64) (map[int64][]string, error) {
	query, args, err := buildReportTagsQuery(reportIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tags := make(map[int64][]string, len(reportIDs))
	err = r.db.withRetry(ctx, func() error {
		clear(tags)

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				id  int64
				tag string
			)
			if err := rows.Scan(&id, &tag); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			tags[id] = append(tags[id], tag)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return tags, nil
}

func replaceTags(ctx context.Context, tx *sql.Tx, reportID int64, tags []string) error {
	if _, err := tx.ExecContext(ctx, deleteReportTags, reportID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	for i, tag := range tags {
		if _, err := tx.ExecContext(ctx, insertReportTag, reportID, tag, i); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
