package api_router

import (
	"github.com/haierkeys/content-organizer-service/internal/app"
	"github.com/haierkeys/content-organizer-service/internal/dto"
	pkgapp "github.com/haierkeys/content-organizer-service/pkg/app"
	"github.com/haierkeys/content-organizer-service/pkg/code"
	apperrors "github.com/haierkeys/content-organizer-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// FolderHandler folder API router handler
// FolderHandler 文件夹 API 路由处理器
type FolderHandler struct {
	*Handler
}

// NewFolderHandler 创建 FolderHandler 实例
func NewFolderHandler(a *app.App) *FolderHandler {
	return &FolderHandler{Handler: NewHandler(a)}
}

// Create 新建文件夹
func (h *FolderHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.FolderCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	folderDTO, err := h.App.FolderService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "FolderHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(folderDTO))
}

// Get 获取单个文件夹
func (h *FolderHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := c.Query("id")
	if id == "" {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("id is required"))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	folderDTO, err := h.App.FolderService.Get(ctx, uid, id)
	if err != nil {
		h.logError(ctx, "FolderHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(folderDTO))
}

// List 列出当前用户的全部文件夹
func (h *FolderHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	folders, err := h.App.FolderService.List(ctx, uid)
	if err != nil {
		h.logError(ctx, "FolderHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponseList(code.Success, folders, len(folders))
}

// Update 更新文件夹
func (h *FolderHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.FolderUpdateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	folderDTO, err := h.App.FolderService.Update(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "FolderHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(folderDTO))
}

// Delete 删除文件夹及其内容
func (h *FolderHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := c.Query("id")
	if id == "" {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("id is required"))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	if err := h.App.FolderService.Delete(ctx, uid, id); err != nil {
		h.logError(ctx, "FolderHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}
