package dashboard

import (
	"net/http"
	"strconv"

	"hotel/infras/otel"
	"hotel/internal/manager"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ScreenResponse pairs the outcome of an action with the screen it left.
type ScreenResponse struct {
	Status manager.Status `json:"status"`
	View   manager.View   `json:"view"`
}

// FormResponse is the screen after a form was replaced, with the fields
// that would currently fail validation.
type FormResponse struct {
	Violations map[string]string `json:"violations"`
	View       manager.View      `json:"view"`
}

type MoveResponse struct {
	Moved bool         `json:"moved"`
	View  manager.View `json:"view"`
}

type Handler struct {
	shell *manager.Shell
	otel  otel.Otel
}

func New(shell *manager.Shell, otel otel.Otel) Handler {
	return Handler{
		shell: shell,
		otel:  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetShell)
		routerGroup.Post("/menu/{menu}", handler.SelectMenu)

		routerGroup.Route("/{menu}", func(screen chi.Router) {
			screen.Get("/", handler.GetScreen)
			screen.Post("/refresh", handler.Refresh)
			screen.Get("/schema", handler.GetSchema)
			screen.Get("/options", handler.GetOptions)
			screen.Post("/paginate/{direction}", handler.Paginate)
			screen.Post("/pages/{page}", handler.GoTo)
			screen.Post("/selection/{id}", handler.Select)
			screen.Delete("/selection", handler.Deselect)
			screen.Post("/draft", handler.OpenDraft)
			screen.Put("/draft", handler.ReplaceDraft)
			screen.Delete("/draft", handler.CloseDraft)
			screen.Post("/edit/{id}", handler.OpenEdit)
			screen.Put("/edit", handler.ReplaceEdit)
			screen.Delete("/edit", handler.CloseEdit)
			screen.Post("/records", handler.CreateRecord)
			screen.Patch("/records/{id}", handler.UpdateRecord)
			screen.Delete("/records/{id}", handler.DeleteRecord)
		})
	})
}

func (handler *Handler) screen(w http.ResponseWriter, r *http.Request) (manager.Screen, bool) {
	menu := chi.URLParam(r, constant.RequestParamMenu)

	screen, err := handler.shell.Screen(menu)
	if err != nil {
		log.Warn().Err(err).Str("menu", menu).Msg("unknown dashboard menu")

		response.WithError(w, err)

		return nil, false
	}

	return screen, true
}

// withStatus answers with the status code of a failed action, or okCode.
func withStatus(w http.ResponseWriter, okCode int, status manager.Status, view manager.View) {
	code := okCode
	if !status.OK() && status.Code != 0 {
		code = status.Code
	}

	response.WithJSON(w, code, ScreenResponse{Status: status, View: view})
}

// GetShell returns the selected menu and its screen.
// @Summary Get the shell
// @Description Return the selected menu and its screen.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[manager.ShellView] "Shell"
// @Router /v1/dashboard [get]
func (handler *Handler) GetShell(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, handler.shell.View())
}

// SelectMenu switches the shown screen and mounts it.
// @Summary Select a menu
// @Description Switch the shown screen and load its records.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Success 200 {object} response.Data[manager.ShellView] "Shell"
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/dashboard/menu/{menu} [post]
func (handler *Handler) SelectMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectMenu")
	defer scope.End()

	menu := chi.URLParam(r, constant.RequestParamMenu)

	_, status, err := handler.shell.Select(ctx, menu)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("menu", menu).Msg("failed to select menu")

		response.WithError(w, err)

		return
	}

	code := http.StatusOK
	if !status.OK() {
		code = status.Code
	}

	response.WithJSON(w, code, handler.shell.View())
}

// GetScreen returns the current page of a screen.
// @Summary Get a screen
// @Description Return the current page of a screen.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Success 200 {object} response.Data[manager.View] "Screen"
// @Failure 404 {object} response.Error
// @Router /v1/dashboard/{menu} [get]
func (handler *Handler) GetScreen(w http.ResponseWriter, r *http.Request) {
	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	response.WithJSON(w, http.StatusOK, screen.View())
}

// Refresh refetches the whole collection.
// @Summary Refresh a screen
// @Description Refetch the whole collection.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Success 200 {object} response.Data[dashboard.ScreenResponse] "Screen"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/dashboard/{menu}/refresh [post]
func (handler *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Refresh")
	defer scope.End()

	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	status := screen.List(ctx)
	if !status.OK() {
		scope.SetAttribute("status.kind", string(status.Kind))
	}

	withStatus(w, http.StatusOK, status, screen.View())
}

// GetSchema returns the JSON schema of the add and edit forms.
// @Summary Get form schemas
// @Description Return the JSON schema of the add and edit forms.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Success 200 {object} response.Data[object] "Schemas"
// @Failure 404 {object} response.Error
// @Router /v1/dashboard/{menu}/schema [get]
func (handler *Handler) GetSchema(w http.ResponseWriter, r *http.Request) {
	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	response.WithJSON(w, http.StatusOK, screen.Schema())
}

// GetOptions returns the enum options of the forms.
// @Summary Get form options
// @Description Return the enum options of the forms.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Success 200 {object} response.Data[object] "Options"
// @Failure 404 {object} response.Error
// @Router /v1/dashboard/{menu}/options [get]
func (handler *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	response.WithJSON(w, http.StatusOK, screen.Options())
}

// Paginate moves one page. Moving past either end leaves the page as is.
// @Summary Move one page
// @Description Move to the previous or next page. Moving past either end does nothing.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Param direction path string true "prev or next"
// @Success 200 {object} response.Data[dashboard.MoveResponse] "Move"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/dashboard/{menu}/paginate/{direction} [post]
func (handler *Handler) Paginate(w http.ResponseWriter, r *http.Request) {
	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	direction := manager.Direction(chi.URLParam(r, constant.RequestParamDirection))
	if direction != manager.DirectionPrev && direction != manager.DirectionNext {
		response.WithError(w, failure.BadRequestFromString("direction must be prev or next"))

		return
	}

	moved := screen.Paginate(direction)

	response.WithJSON(w, http.StatusOK, MoveResponse{Moved: moved, View: screen.View()})
}

// GoTo jumps to a page within range.
// @Summary Go to a page
// @Description Jump to a page within range.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Param page path int true "Page number"
// @Success 200 {object} response.Data[dashboard.MoveResponse] "Move"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/dashboard/{menu}/pages/{page} [post]
func (handler *Handler) GoTo(w http.ResponseWriter, r *http.Request) {
	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	page, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamPageNumber))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("page must be a number"))

		return
	}

	moved := screen.GoTo(page)

	response.WithJSON(w, http.StatusOK, MoveResponse{Moved: moved, View: screen.View()})
}

// Select marks a loaded record as selected.
// @Summary Select a record
// @Description Mark a loaded record as selected.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Param id path string true "Record ID"
// @Success 200 {object} response.Data[manager.View] "Screen"
// @Failure 404 {object} response.Error
// @Router /v1/dashboard/{menu}/selection/{id} [post]
func (handler *Handler) Select(w http.ResponseWriter, r *http.Request) {
	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if !screen.Select(id) {
		response.WithError(w, failure.NotFound("record "+id+" is not loaded"))

		return
	}

	response.WithJSON(w, http.StatusOK, screen.View())
}

// Deselect clears the selected record.
// @Summary Clear the selection
// @Description Clear the selected record.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Success 200 {object} response.Data[manager.View] "Screen"
// @Failure 404 {object} response.Error
// @Router /v1/dashboard/{menu}/selection [delete]
func (handler *Handler) Deselect(w http.ResponseWriter, r *http.Request) {
	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	screen.Deselect()

	response.WithJSON(w, http.StatusOK, screen.View())
}

// OpenDraft opens an empty add form.
// @Summary Open the add form
// @Description Open an empty add form.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Success 200 {object} response.Data[manager.View] "Screen"
// @Failure 404 {object} response.Error
// @Router /v1/dashboard/{menu}/draft [post]
func (handler *Handler) OpenDraft(w http.ResponseWriter, r *http.Request) {
	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	screen.OpenDraft()

	response.WithJSON(w, http.StatusOK, screen.View())
}

// ReplaceDraft stores the add form as typed so far. Derived fields such as
// the booking rate are filled in on the returned draft.
// @Summary Replace the add form
// @Description Store the add form as typed so far and report failing fields.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Param request body object true "Add form"
// @Success 200 {object} response.Data[dashboard.FormResponse] "Form"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/dashboard/{menu}/draft [put]
func (handler *Handler) ReplaceDraft(w http.ResponseWriter, r *http.Request) {
	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	violations, err := screen.ReplaceDraft(r.Body)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, FormResponse{Violations: violations, View: screen.View()})
}

// CloseDraft discards the add form.
// @Summary Close the add form
// @Description Discard the add form.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Success 200 {object} response.Data[manager.View] "Screen"
// @Failure 404 {object} response.Error
// @Router /v1/dashboard/{menu}/draft [delete]
func (handler *Handler) CloseDraft(w http.ResponseWriter, r *http.Request) {
	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	screen.CloseDraft()

	response.WithJSON(w, http.StatusOK, screen.View())
}

// OpenEdit opens the edit form for a loaded record.
// @Summary Open the edit form
// @Description Open the edit form for a loaded record.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Param id path string true "Record ID"
// @Success 200 {object} response.Data[manager.View] "Screen"
// @Failure 404 {object} response.Error
// @Router /v1/dashboard/{menu}/edit/{id} [post]
func (handler *Handler) OpenEdit(w http.ResponseWriter, r *http.Request) {
	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if !screen.OpenEdit(id) {
		response.WithError(w, failure.NotFound("record "+id+" is not loaded"))

		return
	}

	response.WithJSON(w, http.StatusOK, screen.View())
}

// ReplaceEdit stores the edit form as typed so far and reports failing fields.
// @Summary Replace the edit form
// @Description Store the edit form as typed so far and report failing fields.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Param request body object true "Edit form"
// @Success 200 {object} response.Data[dashboard.FormResponse] "Form"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/dashboard/{menu}/edit [put]
func (handler *Handler) ReplaceEdit(w http.ResponseWriter, r *http.Request) {
	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	violations, err := screen.ReplaceEdit(r.Body)
	if err != nil {
		log.Error().Err(err).Msg("failed to replace edit form")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, FormResponse{Violations: violations, View: screen.View()})
}

// CloseEdit discards the edit form.
// @Summary Close the edit form
// @Description Discard the edit form.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Success 200 {object} response.Data[manager.View] "Screen"
// @Failure 404 {object} response.Error
// @Router /v1/dashboard/{menu}/edit [delete]
func (handler *Handler) CloseEdit(w http.ResponseWriter, r *http.Request) {
	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	screen.CloseEdit()

	response.WithJSON(w, http.StatusOK, screen.View())
}

// CreateRecord creates a record from the body and refreshes the screen.
// @Summary Submit the add form
// @Description Create a record from the body and refresh the screen.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Param request body object true "Record"
// @Success 201 {object} response.Data[dashboard.ScreenResponse] "Screen"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/dashboard/{menu}/records [post]
func (handler *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRecord")
	defer scope.End()

	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	status := screen.SubmitCreate(ctx, r.Body)
	if status.OK() {
		scope.AddEvent("Record created " + status.Key)
	}

	withStatus(w, http.StatusCreated, status, screen.View())
}

// UpdateRecord patches a record from the body and refreshes the screen.
// @Summary Submit the edit form
// @Description Patch a record from the body and refresh the screen.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Param id path string true "Record ID"
// @Param request body object true "Patch"
// @Success 200 {object} response.Data[dashboard.ScreenResponse] "Screen"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/dashboard/{menu}/records/{id} [patch]
func (handler *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRecord")
	defer scope.End()

	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	status := screen.SubmitUpdate(ctx, chi.URLParam(r, constant.RequestParamID), r.Body)
	if status.OK() {
		scope.AddEvent("Record updated " + status.Key)
	}

	withStatus(w, http.StatusOK, status, screen.View())
}

// DeleteRecord deletes a record and refreshes the screen.
// @Summary Delete a record
// @Description Delete a record and refresh the screen.
// @Tags Dashboard
// @Produce json
// @Param menu path string true "Menu code, label or collection"
// @Param id path string true "Record ID"
// @Success 200 {object} response.Data[dashboard.ScreenResponse] "Screen"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/dashboard/{menu}/records/{id} [delete]
func (handler *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRecord")
	defer scope.End()

	screen, ok := handler.screen(w, r)
	if !ok {
		return
	}

	status := screen.Delete(ctx, chi.URLParam(r, constant.RequestParamID))
	if status.OK() {
		scope.AddEvent("Record deleted " + status.Key)
	}

	withStatus(w, http.StatusOK, status, screen.View())
}
