package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/manager"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	defaultDirectory = "reports"
	fileTimeLayout   = "20060102-150405"
	fileExtension    = ".xlsx"
)

// Catalog resolves a collection name or menu to its screen.
type Catalog interface {
	Screen(menu string) (manager.Screen, error)
}

type Report interface {
	Export(ctx context.Context, collection string) (dto.File, error)
	Archive(ctx context.Context, collection string) (dto.ArchiveResponse, error)
	Archives(ctx context.Context) (dto.GetArchivesResponse, error)
}

type service struct {
	cfg     *config.Config
	catalog Catalog
	storage s3.S3
	otel    otel.Otel
}

func New(cfg *config.Config, catalog Catalog, storage s3.S3, otel otel.Otel) Report {
	return &service{
		cfg:     cfg,
		catalog: catalog,
		storage: storage,
		otel:    otel,
	}
}

func (s *service) directory() string {
	if dir := strings.Trim(s.cfg.External.S3.ReportDirectory, "/"); dir != "" {
		return dir
	}

	return defaultDirectory
}

// Export renders the whole collection as an xlsx workbook.
func (s *service) Export(ctx context.Context, collection string) (res dto.File, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportReport")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)

	screen, err := s.catalog.Screen(collection)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	table, err := screen.Table(ctx)
	if err != nil {
		log.Error().Err(err).Str("collection", collection).Msg("failed to load report data")

		return res, fmt.Errorf("failed to load report data: %w", err)
	}

	content, err := renderWorkbook(table)
	if err != nil {
		log.Error().Err(err).Str("collection", collection).Msg("failed to render report")

		return res, fmt.Errorf("failed to render report: %w", err)
	}

	return dto.File{
		Collection:  table.Collection,
		Name:        table.Collection + "_" + timezone.Now().Format(fileTimeLayout) + fileExtension,
		ContentType: constant.ContentTypeXLSX,
		Content:     content,
		Rows:        len(table.Rows),
	}, nil
}

// Archive exports the collection and stores the workbook in object storage
// under the report directory.
func (s *service) Archive(ctx context.Context, collection string) (res dto.ArchiveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ArchiveReport")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	file, err := s.Export(ctx, collection)
	if err != nil {
		return res, err
	}

	directory := s.directory()

	url, err := s.storage.UploadFileBytes(ctx, constant.Empty, directory, file.Name, file.ContentType, file.Content)
	if err != nil {
		log.Error().Err(err).Str("file", file.Name).Msg("failed to archive report")

		return res, fmt.Errorf("failed to archive report: %w", err)
	}

	scope.AddEvent("Report archived " + file.Name)

	return dto.ArchiveResponse{
		Collection: file.Collection,
		Key:        path.Join(directory, file.Name),
		URL:        url,
		Rows:       file.Rows,
	}, nil
}

// Archives lists every archived report.
func (s *service) Archives(ctx context.Context) (res dto.GetArchivesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Archives")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objects, err := s.storage.ListFiles(ctx, constant.Empty, s.directory())
	if err != nil {
		log.Error().Err(err).Msg("failed to list archived reports")

		return res, fmt.Errorf("failed to list archived reports: %w", err)
	}

	res.FromObjects(objects)

	return res, nil
}
