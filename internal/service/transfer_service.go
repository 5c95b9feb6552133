package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/promeet/roster-api/internal/codec"
	"github.com/promeet/roster-api/internal/models"
	appErrors "github.com/promeet/roster-api/pkg/errors"
	"github.com/promeet/roster-api/pkg/export"
	"github.com/promeet/roster-api/pkg/storage"
)

// Export file formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

type rosterSource interface {
	Current(ctx context.Context) (models.Meeting, error)
	AppendAttendees(ctx context.Context, patches []models.AttendeePatch) ([]models.Attendee, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvCodec interface {
	Render(data export.Dataset) ([]byte, error)
	Parse(data []byte) (export.Dataset, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

type transferMetrics interface {
	RecordExport(format string)
	RecordImport(rows int)
}

// TransferConfig tunes export downloads.
type TransferConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportResult captures generated file metadata.
type ExportResult struct {
	Filename     string    `json:"filename"`
	RelativePath string    `json:"-"`
	Token        string    `json:"token"`
	URL          string    `json:"url"`
	Format       string    `json:"format"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// ImportResult reports an applied import batch.
type ImportResult struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

// TransferService moves the current roster in and out of spreadsheet files:
// exports render through the attendee codec into CSV or PDF and are served
// via signed download tokens; imports decode all-or-nothing and append to
// the current roster.
type TransferService struct {
	source  rosterSource
	storage fileStorage
	csv     csvCodec
	pdf     pdfRenderer
	signer  *storage.SignedURLSigner
	metrics transferMetrics
	logger  *zap.Logger
	cfg     TransferConfig
}

// NewTransferService constructs a TransferService.
func NewTransferService(source rosterSource, files fileStorage, signer *storage.SignedURLSigner, metrics transferMetrics, cfg TransferConfig, logger *zap.Logger) *TransferService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	return &TransferService{
		source:  source,
		storage: files,
		csv:     export.NewCSVCodec(),
		pdf:     export.NewPDFExporter(),
		signer:  signer,
		metrics: metrics,
		logger:  logger,
		cfg:     cfg,
	}
}

// Export renders the current meeting's full roster and stores the file under
// a fresh export id. The CSV variant keeps the native headers so the file
// round-trips through Import; PDF falls back to the Latin headers.
func (s *TransferService) Export(ctx context.Context, format string) (*ExportResult, error) {
	meeting, err := s.source.Current(ctx)
	if err != nil {
		return nil, err
	}

	var payload []byte
	var filename string
	switch format {
	case FormatCSV:
		dataset := codec.Export(meeting.Attendees, codec.LocaleNative)
		payload, err = s.csv.Render(dataset)
		filename = codec.Filename(meeting.Title, "csv")
	case FormatPDF:
		dataset := codec.Export(meeting.Attendees, codec.LocaleLatin)
		payload, err = s.pdf.Render(dataset, codec.DatasetNameLatin)
		filename = codec.Filename(meeting.Title, "pdf")
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCodecUnavailable.Code, appErrors.ErrCodecUnavailable.Status, "failed to render export")
	}

	exportID := uuid.NewString()
	relPath, err := s.storage.Save(exportID+"/"+filename, payload)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store export file")
	}

	token, expiresAt, err := s.signer.Generate(exportID, relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download token")
	}

	if s.metrics != nil {
		s.metrics.RecordExport(format)
	}
	s.logger.Info("roster exported",
		zap.String("meetingId", meeting.ID),
		zap.String("format", format),
		zap.String("filename", filename))

	return &ExportResult{
		Filename:     filename,
		RelativePath: relPath,
		Token:        token,
		URL:          fmt.Sprintf("%s/exports/downloads/%s", strings.TrimRight(s.cfg.APIPrefix, "/"), token),
		Format:       format,
		ExpiresAt:    expiresAt,
	}, nil
}

// Import decodes a spreadsheet file and appends its rows to the current
// roster. The batch is all-or-nothing: a file that cannot be decoded leaves
// the roster untouched.
func (s *TransferService) Import(ctx context.Context, data []byte) (*ImportResult, error) {
	if _, err := s.source.Current(ctx); err != nil {
		return nil, err
	}

	dataset, err := s.csv.Parse(data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrImportDecode.Code, appErrors.ErrImportDecode.Status, "could not decode imported file")
	}

	patches := codec.Import(dataset.Rows)
	if _, err := s.source.AppendAttendees(ctx, patches); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordImport(len(patches))
	}
	s.logger.Info("roster imported", zap.Int("rows", len(patches)))
	return &ImportResult{Imported: len(patches), Total: len(patches)}, nil
}

// OpenDownload validates a download token and returns the file handle.
func (s *TransferService) OpenDownload(token string) (*os.File, string, error) {
	_, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid download token")
	}

	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "export file not found")
	}

	name := relPath
	if idx := strings.LastIndex(relPath, "/"); idx >= 0 {
		name = relPath[idx+1:]
	}
	return file, name, nil
}

// Cleanup removes stored exports older than the configured TTL.
func (s *TransferService) Cleanup() ([]string, error) {
	deleted, err := s.storage.CleanupOlderThan(s.cfg.ResultTTL)
	if err != nil {
		return nil, err
	}
	if len(deleted) > 0 {
		s.logger.Info("expired exports removed", zap.Int("files", len(deleted)))
	}
	return deleted, nil
}

// StartCleanupLoop runs Cleanup on the given interval until the context is
// cancelled.
func (s *TransferService) StartCleanupLoop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.Cleanup(); err != nil {
					s.logger.Warn("export cleanup failed", zap.Error(err))
				}
			}
		}
	}()
}
