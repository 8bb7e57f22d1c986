package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

var testSummaries = []models.ReportSummary{
	{ID: 7, Title: "AAPL breakout", Description: "Closed above the range.", Tags: []string{"AAPL"}, CreatedAt: testNow},
	{ID: 3, Title: "MSFT earnings", Tags: []string{"MSFT"}, CreatedAt: testNow.AddDate(0, 0, -40)},
}

func expectList(mocks tuiMocks, filter models.ReportFilter, reports []models.ReportSummary) {
	mocks.reports.EXPECT().ListReports(gomock.Any(), filter).
		Return(models.ReportList{Reports: reports, Length: len(reports)}, nil)
	mocks.reports.EXPECT().ListTags(gomock.Any()).Return([]string{"AAPL", "MSFT"}, nil)
}

func TestReports_LoadAndRender(t *testing.T) {
	app, mocks := signedInApp(t, screenLogin)
	expectList(mocks, models.ReportFilter{Period: models.PeriodAll, Sort: models.SortNewest}, testSummaries)

	submitAndDeliver(t, app, app.goTo(screenReports))

	view := app.View()
	assert.Contains(t, view, "AAPL breakout")
	assert.Contains(t, view, "Mar 5 2026")
	assert.Contains(t, view, "Jan 24 2026")
	assert.Contains(t, view, "Closed above the range.")
	assert.Contains(t, view, allStocksLabel)
	assert.Contains(t, view, "All time")
	assert.Contains(t, view, "Newest first")
	assert.Contains(t, view, "2 report(s)")
}

func TestReports_Empty(t *testing.T) {
	app, mocks := signedInApp(t, screenLogin)
	expectList(mocks, models.ReportFilter{Period: models.PeriodAll, Sort: models.SortNewest}, nil)

	submitAndDeliver(t, app, app.goTo(screenReports))

	assert.Contains(t, app.View(), "No reports yet")
	assert.Nil(t, press(app, tea.KeyEnter))
}

func TestReports_Filters(t *testing.T) {
	app, mocks := signedInApp(t, screenLogin)
	expectList(mocks, models.ReportFilter{Period: models.PeriodAll, Sort: models.SortNewest}, testSummaries)
	submitAndDeliver(t, app, app.goTo(screenReports))

	expectList(mocks, models.ReportFilter{Tag: "AAPL", Period: models.PeriodAll, Sort: models.SortNewest}, testSummaries[:1])
	submitAndDeliver(t, app, pressRune(app, 't'))
	assert.Contains(t, app.View(), "Stock: AAPL")

	expectList(mocks, models.ReportFilter{Tag: "AAPL", Period: models.PeriodDay, Sort: models.SortNewest}, testSummaries[:1])
	submitAndDeliver(t, app, pressRune(app, 'p'))
	assert.Contains(t, app.View(), "Last 24 hours")

	expectList(mocks, models.ReportFilter{Tag: "AAPL", Period: models.PeriodDay, Sort: models.SortOldest}, testSummaries[:1])
	submitAndDeliver(t, app, pressRune(app, 's'))
	assert.Contains(t, app.View(), "Oldest first")
}

func TestReports_LoadError(t *testing.T) {
	app, mocks := signedInApp(t, screenLogin)
	mocks.reports.EXPECT().ListReports(gomock.Any(), gomock.Any()).
		Return(models.ReportList{}, errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"))

	submitAndDeliver(t, app, app.goTo(screenReports))
	assert.Contains(t, app.View(), msgServerUnavailable)
}

func TestReports_Navigation(t *testing.T) {
	app, _ := signedInApp(t, screenReports)
	update(app, reportsLoadedMsg{list: models.ReportList{Reports: testSummaries, Length: 2}})

	pressRune(app, 'j')
	assert.Equal(t, 1, app.reports.cursor)
	pressRune(app, 'j')
	assert.Equal(t, 1, app.reports.cursor)
	pressRune(app, 'k')
	assert.Equal(t, 0, app.reports.cursor)

	press(app, tea.KeyEnter)
	assert.Equal(t, screenDetail, app.currentScreen)
	assert.Equal(t, int64(7), app.detail.reportID)

	app.currentScreen = screenReports
	pressRune(app, 'n')
	assert.Equal(t, screenEditor, app.currentScreen)
	assert.Nil(t, app.editor.original)
}

func TestNextTag(t *testing.T) {
	tags := []string{"AAPL", "MSFT"}
	assert.Equal(t, "AAPL", nextTag(tags, ""))
	assert.Equal(t, "MSFT", nextTag(tags, "AAPL"))
	assert.Equal(t, "", nextTag(tags, "MSFT"))
	assert.Equal(t, "", nextTag(tags, "GONE"))
	assert.Equal(t, "", nextTag(nil, ""))
}

func TestNextOf(t *testing.T) {
	assert.Equal(t, models.PeriodDay, nextOf(models.Periods, models.PeriodAll))
	assert.Equal(t, models.PeriodAll, nextOf(models.Periods, models.PeriodYear))
	assert.Equal(t, models.SortTitle, nextOf(models.SortOrders, models.SortOldest))
}

func loadedDetail(t *testing.T, report models.Report) (*appModel, tuiMocks) {
	t.Helper()
	app, mocks := signedInApp(t, screenReports)
	mocks.reports.EXPECT().GetReport(gomock.Any(), report.ID).Return(report, nil)
	submitAndDeliver(t, app, app.detail.show(report.ID))
	require.True(t, app.detail.loaded)
	return app, mocks
}

var testReport = models.Report{
	ID:        7,
	Title:     "AAPL breakout",
	Content:   "# Thesis\n\nBuy the retest.",
	Tags:      []string{"AAPL"},
	CreatedAt: testNow,
	UpdatedAt: testNow.Add(48 * time.Hour),
}

func TestDetail_Render(t *testing.T) {
	app, _ := loadedDetail(t, testReport)

	view := app.View()
	assert.Contains(t, view, "AAPL breakout")
	assert.Contains(t, view, "Thesis")
	assert.Contains(t, view, "Created Mar 5 2026, updated Mar 7 2026")
}

func TestDetail_Copy(t *testing.T) {
	app, _ := loadedDetail(t, testReport)

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	submitAndDeliver(t, app, pressRune(app, 'c'))
	assert.Equal(t, testReport.Content, copied)
	assert.Contains(t, app.View(), "Copied to clipboard.")
}

func TestDetail_Delete(t *testing.T) {
	app, mocks := loadedDetail(t, testReport)

	pressRune(app, 'd')
	assert.Contains(t, app.View(), "This cannot be undone")
	pressRune(app, 'n')
	assert.False(t, app.detail.confirmDelete)

	mocks.reports.EXPECT().DeleteReport(gomock.Any(), int64(7)).Return(nil)
	mocks.reports.EXPECT().ListReports(gomock.Any(), gomock.Any()).Return(models.ReportList{}, nil).AnyTimes()
	mocks.reports.EXPECT().ListTags(gomock.Any()).Return(nil, nil).AnyTimes()

	pressRune(app, 'd')
	submitAndDeliver(t, app, pressRune(app, 'y'))

	assert.Equal(t, screenReports, app.currentScreen)
	assert.Equal(t, "Report deleted.", app.reports.status)
}

func TestDetail_Tags(t *testing.T) {
	app, mocks := loadedDetail(t, testReport)

	pressRune(app, '+')
	require.True(t, app.detail.addingTag)
	typeText(app, "AAPL")
	assert.Nil(t, press(app, tea.KeyEnter))
	assert.Equal(t, validators.MsgTagDuplicate, app.detail.tagInput.field.Displayed())

	for range 4 {
		press(app, tea.KeyBackspace)
	}
	typeText(app, "MSFT")

	withTag := testReport
	withTag.Tags = []string{"AAPL", "MSFT"}
	mocks.reports.EXPECT().AddTag(gomock.Any(), int64(7), "MSFT").Return(withTag, nil)
	submitAndDeliver(t, app, press(app, tea.KeyEnter))

	assert.False(t, app.detail.addingTag)
	assert.Equal(t, []string{"AAPL", "MSFT"}, app.detail.report.Tags)

	pressRune(app, 'l')
	assert.Equal(t, 1, app.detail.tagCursor)

	mocks.reports.EXPECT().RemoveTag(gomock.Any(), int64(7), "MSFT").Return(testReport, nil)
	submitAndDeliver(t, app, pressRune(app, 'x'))
	assert.Equal(t, []string{"AAPL"}, app.detail.report.Tags)
	assert.Equal(t, 0, app.detail.tagCursor)
}

func TestDetail_NotFound(t *testing.T) {
	app, mocks := signedInApp(t, screenReports)
	mocks.reports.EXPECT().GetReport(gomock.Any(), int64(99)).
		Return(models.Report{}, fmt.Errorf("%w: not found", service.ErrReportNotFound))

	submitAndDeliver(t, app, app.detail.show(99))
	assert.Contains(t, app.View(), "This report no longer exists.")

	press(app, tea.KeyEsc)
	assert.Equal(t, screenReports, app.currentScreen)
}

func TestEditor_Create(t *testing.T) {
	app, mocks := signedInApp(t, screenReports)
	app.editor.show(nil)

	assert.Nil(t, press(app, tea.KeyCtrlS))
	assert.Equal(t, validators.MsgTitleRequired, app.editor.form.field(validators.FieldTitle).field.Displayed())

	typeText(app, "AAPL breakout")
	press(app, tea.KeyTab)
	typeText(app, "AAPL, MSFT, AAPL")
	press(app, tea.KeyTab)
	require.True(t, app.editor.onBody)
	typeText(app, "Long")

	mocks.reports.EXPECT().
		CreateReport(gomock.Any(), models.ReportCreateRequest{Title: "AAPL breakout", Content: "Long", Tags: []string{"AAPL", "MSFT"}}).
		Return(models.Report{ID: 9}, nil)
	submitAndDeliver(t, app, press(app, tea.KeyCtrlS))

	assert.Equal(t, screenDetail, app.currentScreen)
	assert.Equal(t, int64(9), app.detail.reportID)
}

func TestEditor_Update(t *testing.T) {
	app, mocks := signedInApp(t, screenDetail)
	report := testReport
	app.editor.show(&report)

	assert.Equal(t, "AAPL breakout", app.editor.form.field(validators.FieldTitle).value())
	assert.Equal(t, "AAPL", app.editor.form.field(validators.FieldTags).value())
	assert.Contains(t, app.View(), "EDIT REPORT")

	title, content, tags := "AAPL breakout", testReport.Content, []string{"AAPL"}
	mocks.reports.EXPECT().
		UpdateReport(gomock.Any(), int64(7), models.ReportUpdateRequest{Title: &title, Content: &content, Tags: &tags}).
		Return(testReport, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, models.FieldErrors{
			validators.FieldTitle:   validators.MsgTitleTooLong,
			validators.FieldContent: "Content is not allowed.",
		}))
	submitAndDeliver(t, app, press(app, tea.KeyCtrlS))

	assert.Equal(t, screenEditor, app.currentScreen)
	assert.Equal(t, validators.MsgTitleTooLong, app.editor.form.field(validators.FieldTitle).field.Displayed())
	assert.Equal(t, "Content is not allowed.", app.editor.contentErr)

	press(app, tea.KeyEsc)
	assert.Equal(t, screenDetail, app.currentScreen)
}
