package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promeet/roster-api/internal/codec"
	"github.com/promeet/roster-api/internal/models"
	appErrors "github.com/promeet/roster-api/pkg/errors"
	"github.com/promeet/roster-api/pkg/export"
	"github.com/promeet/roster-api/pkg/storage"
)

type rosterSourceStub struct {
	meeting    models.Meeting
	currentErr error
	appended   []models.AttendeePatch
	appendErr  error
}

func (s *rosterSourceStub) Current(ctx context.Context) (models.Meeting, error) {
	if s.currentErr != nil {
		return models.Meeting{}, s.currentErr
	}
	return s.meeting, nil
}

func (s *rosterSourceStub) AppendAttendees(ctx context.Context, patches []models.AttendeePatch) ([]models.Attendee, error) {
	if s.appendErr != nil {
		return nil, s.appendErr
	}
	s.appended = append(s.appended, patches...)
	return nil, nil
}

func newTransferService(t *testing.T, source *rosterSourceStub) *TransferService {
	t.Helper()

	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("test-secret", time.Hour)

	return NewTransferService(source, files, signer, nil, TransferConfig{APIPrefix: "/api/v1"}, nil)
}

func transferMeetingFixture() models.Meeting {
	return models.Meeting{
		ID:    "m-1",
		Title: "季度复盘会 2024",
		Attendees: []models.Attendee{
			{ID: "a-1", Department: "销售部", Name: "李雷", Status: models.StatusPresent, IsNotified: true},
			{ID: "a-2", Department: "市场部", Name: "韩梅梅", Status: models.StatusLeave, LeaveReason: "出差"},
		},
	}
}

func TestTransferServiceExportCSVRoundTrip(t *testing.T) {
	source := &rosterSourceStub{meeting: transferMeetingFixture()}
	svc := newTransferService(t, source)

	result, err := svc.Export(context.Background(), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "季度复盘会_2024_名单.csv", result.Filename)
	assert.Equal(t, FormatCSV, result.Format)
	assert.True(t, strings.HasPrefix(result.URL, "/api/v1/exports/downloads/"))
	assert.True(t, result.ExpiresAt.After(time.Now()))

	file, name, err := svc.OpenDownload(result.Token)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, result.Filename, name)
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), "部门")
	assert.Contains(t, string(content), "李雷")
	assert.Contains(t, string(content), "出席")
}

func TestTransferServiceExportPDF(t *testing.T) {
	source := &rosterSourceStub{meeting: transferMeetingFixture()}
	svc := newTransferService(t, source)

	result, err := svc.Export(context.Background(), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "季度复盘会_2024_名单.pdf", result.Filename)

	file, _, err := svc.OpenDownload(result.Token)
	require.NoError(t, err)
	defer file.Close()

	header := make([]byte, 4)
	_, err = file.Read(header)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(header))
}

type pdfRendererStub struct {
	title string
}

func (s *pdfRendererStub) Render(data export.Dataset, title string) ([]byte, error) {
	s.title = title
	return []byte("%PDF-stub"), nil
}

func TestTransferServiceExportPDFUsesLatinTitle(t *testing.T) {
	source := &rosterSourceStub{meeting: transferMeetingFixture()}
	svc := newTransferService(t, source)

	pdf := &pdfRendererStub{}
	svc.pdf = pdf

	_, err := svc.Export(context.Background(), FormatPDF)
	require.NoError(t, err)

	// core fonts in the renderer carry no CJK glyphs
	assert.Equal(t, codec.DatasetNameLatin, pdf.title)
	for _, r := range pdf.title {
		assert.Less(t, r, rune(128))
	}
}

func TestTransferServiceExportUnknownFormat(t *testing.T) {
	svc := newTransferService(t, &rosterSourceStub{meeting: transferMeetingFixture()})

	_, err := svc.Export(context.Background(), "xlsx")
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTransferServiceExportRequiresSelection(t *testing.T) {
	svc := newTransferService(t, &rosterSourceStub{currentErr: appErrors.ErrNoCurrentMeeting})

	_, err := svc.Export(context.Background(), FormatCSV)
	assert.Equal(t, appErrors.ErrNoCurrentMeeting.Code, appErrors.FromError(err).Code)
}

func TestTransferServiceImportAppendsDecodedRows(t *testing.T) {
	source := &rosterSourceStub{meeting: transferMeetingFixture()}
	svc := newTransferService(t, source)

	csvData := "部门,参会人姓名,出席状态,已通知\n销售部,张伟,出席,是\n市场部,刘芳,请假,否\n"

	result, err := svc.Import(context.Background(), []byte(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)

	require.Len(t, source.appended, 2)
	assert.Equal(t, "张伟", *source.appended[0].Name)
	assert.Equal(t, models.StatusPresent, *source.appended[0].Status)
	assert.True(t, *source.appended[0].IsNotified)
	assert.Equal(t, models.StatusLeave, *source.appended[1].Status)
}

func TestTransferServiceImportRejectsUndecodableFile(t *testing.T) {
	source := &rosterSourceStub{meeting: transferMeetingFixture()}
	svc := newTransferService(t, source)

	_, err := svc.Import(context.Background(), []byte(""))
	assert.Equal(t, appErrors.ErrImportDecode.Code, appErrors.FromError(err).Code)
	assert.Empty(t, source.appended)
}

func TestTransferServiceImportRequiresSelection(t *testing.T) {
	svc := newTransferService(t, &rosterSourceStub{currentErr: appErrors.ErrNoCurrentMeeting})

	_, err := svc.Import(context.Background(), []byte("部门\n销售部\n"))
	assert.Equal(t, appErrors.ErrNoCurrentMeeting.Code, appErrors.FromError(err).Code)
}

func TestTransferServiceOpenDownloadRejectsTamperedToken(t *testing.T) {
	source := &rosterSourceStub{meeting: transferMeetingFixture()}
	svc := newTransferService(t, source)

	result, err := svc.Export(context.Background(), FormatCSV)
	require.NoError(t, err)

	_, _, err = svc.OpenDownload(result.Token + "x")
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestTransferServiceCleanupRemovesExpiredFiles(t *testing.T) {
	source := &rosterSourceStub{meeting: transferMeetingFixture()}
	svc := newTransferService(t, source)

	_, err := svc.Export(context.Background(), FormatCSV)
	require.NoError(t, err)

	// negative cutoff treats every stored file as expired
	svc.cfg.ResultTTL = -time.Hour
	deleted, err := svc.Cleanup()
	require.NoError(t, err)
	assert.Len(t, deleted, 1)
}
