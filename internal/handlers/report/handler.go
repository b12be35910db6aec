package report

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/report/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/archives", handler.GetArchives)
		routerGroup.Get("/{collection}", handler.ExportReport)
		routerGroup.Post("/{collection}/archive", handler.ArchiveReport)
	})
}

// ExportReport streams the collection as an xlsx workbook.
// @Summary Export a report
// @Description Download the collection as an xlsx workbook.
// @Tags Report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param collection path string true "Collection name, menu code or menu label"
// @Success 200 {file} file "Workbook"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/{collection} [get]
func (handler *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportReport")
	defer scope.End()

	collection := chi.URLParam(r, constant.RequestParamCollection)

	file, err := handler.service.Export(ctx, collection)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("collection", collection).Msg("failed to export report")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, file.Name, file.ContentType, file.Content)
}

// ArchiveReport stores the export in object storage and returns its location.
// @Summary Archive a report
// @Description Upload the xlsx export to object storage.
// @Tags Report
// @Produce json
// @Param collection path string true "Collection name, menu code or menu label"
// @Success 201 {object} response.Data[dto.ArchiveResponse] "Archived report"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/{collection}/archive [post]
func (handler *Handler) ArchiveReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ArchiveReport")
	defer scope.End()

	collection := chi.URLParam(r, constant.RequestParamCollection)

	archive, err := handler.service.Archive(ctx, collection)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("collection", collection).Msg("failed to archive report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Report archived " + archive.Key)

	response.WithJSON(w, http.StatusCreated, archive)
}

// GetArchives lists the exports stored in object storage.
// @Summary List archived reports
// @Description List the exports stored in object storage.
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[dto.GetArchivesResponse] "Archived reports"
// @Failure 500 {object} response.Error
// @Router /v1/reports/archives [get]
func (handler *Handler) GetArchives(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArchives")
	defer scope.End()

	archives, err := handler.service.Archives(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list archived reports")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, archives)
}
