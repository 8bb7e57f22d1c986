package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/saarzint/candle-recall/models"
)

const (
	createUser = `INSERT INTO users (email, username, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, username, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, username, password_hash, created_at
    FROM users
    WHERE lower(email) = lower($1);`

	findUserByID = `SELECT user_id, email, username, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	updateUsername     = `UPDATE users SET username = $2 WHERE user_id = $1;`
	updatePasswordHash = `UPDATE users SET password_hash = $2 WHERE user_id = $1;`
	updateEmail        = `UPDATE users SET email = $2 WHERE user_id = $1;`
	deleteUser         = `DELETE FROM users WHERE user_id = $1;`

	saveResetToken = `INSERT INTO password_reset_tokens (id, user_id, token_hash, expires_at, sent_at)
    VALUES ($1, $2, $3, $4, $5);`

	lastResetTokenSentAt = `SELECT sent_at
    FROM password_reset_tokens
    WHERE user_id = $1
    ORDER BY sent_at DESC
    LIMIT 1;`

	findResetToken = `SELECT id, user_id, token_hash, expires_at, sent_at, used_at
    FROM password_reset_tokens
    WHERE token_hash = $1;`

	consumeResetToken = `UPDATE password_reset_tokens
    SET used_at = $2
    WHERE id = $1 AND used_at IS NULL;`

	deleteExpiredResetTokens = `DELETE FROM password_reset_tokens
    WHERE expires_at <= $1 OR used_at IS NOT NULL;`

	upsertCode = `INSERT INTO verification_codes (user_id, purpose, code_hash, target_email, verified, expires_at, sent_at)
    VALUES ($1, $2, $3, $4, FALSE, $5, $6)
    ON CONFLICT (user_id, purpose) DO UPDATE
    SET code_hash = EXCLUDED.code_hash,
        target_email = EXCLUDED.target_email,
        verified = FALSE,
        expires_at = EXCLUDED.expires_at,
        sent_at = EXCLUDED.sent_at;`

	findCode = `SELECT id, user_id, purpose, code_hash, target_email, verified, expires_at, sent_at
    FROM verification_codes
    WHERE user_id = $1 AND purpose = $2;`

	markCodeVerified = `UPDATE verification_codes SET verified = TRUE WHERE id = $1;`

	deleteCodes = `DELETE FROM verification_codes WHERE user_id = $1 AND purpose = ANY($2);`

	deleteExpiredCodes = `DELETE FROM verification_codes WHERE expires_at <= $1;`

	createReport = `INSERT INTO reports (user_id, title, content, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $4)
    RETURNING id, created_at, updated_at;`

	getReport = `SELECT id, user_id, title, content, created_at, updated_at
    FROM reports
    WHERE user_id = $1 AND id = $2;`

	deleteReport = `DELETE FROM reports WHERE user_id = $1 AND id = $2;`

	deleteReportTags = `DELETE FROM report_tags WHERE report_id = $1;`
	insertReportTag  = `INSERT INTO report_tags (report_id, tag, position) VALUES ($1, $2, $3);`

	listUserTags = `SELECT DISTINCT t.tag
    FROM report_tags t
    JOIN reports r ON r.id = t.report_id
    WHERE r.user_id = $1
    ORDER BY t.tag;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var reportColumns = []string{
	"r.id",
	"r.user_id",
	"r.title",
	"r.content",
	"r.created_at",
	"r.updated_at",
}

// buildListReportsQuery builds the report list query for filter. The period
// is resolved against now.
func buildListReportsQuery(filter models.ReportFilter, now time.Time) (string, []any, error) {
	q := psql.
		Select(reportColumns...).
		From("reports r").
		Where(sq.Eq{"r.user_id": filter.UserID})

	if filter.Tag != "" {
		q = q.Where(sq.Expr(
			"EXISTS (SELECT 1 FROM report_tags t WHERE t.report_id = r.id AND t.tag = ?)",
			filter.Tag,
		))
	}

	if since, ok := filter.Period.Since(now); ok {
		q = q.Where(sq.GtOrEq{"r.created_at": since})
	}

	switch filter.Sort {
	case models.SortOldest:
		q = q.OrderBy("r.created_at ASC", "r.id ASC")
	case models.SortTitle:
		q = q.OrderBy("lower(r.title) ASC", "r.id ASC")
	default:
		q = q.OrderBy("r.created_at DESC", "r.id DESC")
	}

	return q.ToSql()
}

// buildReportTagsQuery selects the ordered tags of the given reports.
func buildReportTagsQuery(reportIDs []int64) (string, []any, error) {
	return psql.
		Select("report_id", "tag").
		From("report_tags").
		Where(sq.Eq{"report_id": reportIDs}).
		OrderBy("report_id", "position").
		ToSql()
}

// buildUpdateReportQuery builds the UPDATE that stores the title and content
// of report and refreshes updated_at.
func buildUpdateReportQuery(report models.Report, updatedAt time.Time) (string, []any, error) {
	return psql.
		Update("reports").
		Set("title", report.Title).
		Set("content", report.Content).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"user_id": report.UserID, "id": report.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}
