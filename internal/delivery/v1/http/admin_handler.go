package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/stalprokat/catalog-backend/internal/usecase"
	"github.com/stalprokat/catalog-backend/pkg/e"
	"github.com/stalprokat/catalog-backend/pkg/logger"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUC
	logger       logger.Logger
}

func NewAdminHandler(adminUsecase usecase.AdminUC, logger logger.Logger) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase, logger: logger}
}

const (
	maxTotalRequestSize = 20 << 20
	maxMemory           = 8 << 20
)

// createCategory
//
//	@Summary		Создание категории
//	@Description	Создаёт категорию каталога, при необходимости вложенную в родителя
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Название категории"
//	@Param			about		formData	string	false	"Описание"
//	@Param			parent_id	formData	integer	false	"ID родительской категории"
//	@Param			image		formData	file	false	"Изображение"
//	@Success		201	{object}	map[string]interface{}	"Успешное создание"
//	@Failure		400	{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/admin/categories [post]
func (a *AdminHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	parentID, err := optionalInt64(r.FormValue("parent_id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"])
	if err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	category, err := a.adminUsecase.CreateCategory(r.Context(), usecase.NewCreateCategoryReq(
		r.FormValue("name"), optionalString(r.FormValue("about")), parentID, image))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"id":   category.ID,
		"slug": category.Slug,
	})
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Создаёт товар каталога с изображением
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name			formData	string	true	"Название товара"
//	@Param			category_id		formData	integer	true	"ID категории"
//	@Param			description		formData	string	false	"Описание"
//	@Param			external_url	formData	string	false	"Ссылка на товар у поставщика"
//	@Param			image			formData	file	true	"Изображение товара"
//	@Success		201	{object}	map[string]interface{}	"Успешное создание"
//	@Failure		400	{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/admin/products [post]
func (a *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	categoryID, err := optionalInt64(r.FormValue("category_id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	if categoryID == nil {
		WriteError(w, e.ErrCategoryRequired)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"])
	if err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := a.adminUsecase.CreateProduct(r.Context(), usecase.NewCreateProductReq(
		r.FormValue("name"), *categoryID, r.FormValue("description"),
		optionalString(r.FormValue("external_url")), image))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"id":   product.ID,
		"slug": product.Slug,
	})
}

// createService
//
//	@Summary		Создание услуги
//	@Description	Создаёт услугу компании с изображением
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Название услуги"
//	@Param			description	formData	string	false	"Описание"
//	@Param			image		formData	file	true	"Изображение"
//	@Success		201	{object}	map[string]interface{}	"Успешное создание"
//	@Failure		400	{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/admin/services [post]
func (a *AdminHandler) createService(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"])
	if err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	service, err := a.adminUsecase.CreateService(r.Context(), usecase.NewCreateServiceReq(
		r.FormValue("name"), r.FormValue("description"), image))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"id":   service.ID,
		"slug": service.Slug,
	})
}

// moveCategory
//
//	@Summary		Перенос категории
//	@Description	Переносит категорию под нового родителя или в корень
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer	true	"ID категории"
//	@Param			parent_id	query	integer	false	"ID нового родителя (пусто — в корень)"
//	@Success		200	{object}	map[string]interface{}	"Успешный перенос"
//	@Failure		400	{object}	ErrorResponse			"Перенос создал бы цикл"
//	@Failure		404	{object}	ErrorResponse			"Категория не найдена"
//	@Router			/admin/categories/{id}/parent [patch]
func (a *AdminHandler) moveCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	parentID, err := optionalInt64(r.URL.Query().Get("parent_id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := a.adminUsecase.MoveCategory(r.Context(), id, parentID); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"moved": true})
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Description	Удаляет категорию вместе с поддеревом и товарами
//	@Tags			admin
//	@Produce		json
//	@Param			id	path	integer	true	"ID категории"
//	@Success		200	{object}	map[string]interface{}	"Успешное удаление"
//	@Failure		404	{object}	ErrorResponse			"Категория не найдена"
//	@Router			/admin/categories/{id} [delete]
func (a *AdminHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if err := a.adminUsecase.DeleteCategory(r.Context(), id); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": true})
}
