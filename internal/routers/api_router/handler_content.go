package api_router

import (
	"github.com/haierkeys/content-organizer-service/internal/app"
	"github.com/haierkeys/content-organizer-service/internal/dto"
	pkgapp "github.com/haierkeys/content-organizer-service/pkg/app"
	"github.com/haierkeys/content-organizer-service/pkg/code"
	apperrors "github.com/haierkeys/content-organizer-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ContentHandler content API router handler
// ContentHandler 内容条目 API 路由处理器
type ContentHandler struct {
	*Handler
}

// NewContentHandler 创建 ContentHandler 实例
func NewContentHandler(a *app.App) *ContentHandler {
	return &ContentHandler{Handler: NewHandler(a)}
}

// Create 新建内容条目
func (h *ContentHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ContentCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	contentDTO, err := h.App.ContentService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "ContentHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(contentDTO))
}

// Get 获取单个内容条目
func (h *ContentHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := c.Query("id")
	if id == "" {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("id is required"))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	contentDTO, err := h.App.ContentService.Get(ctx, uid, id)
	if err != nil {
		h.logError(ctx, "ContentHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(contentDTO))
}

// List 列出文件夹内的全部条目
func (h *ContentHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	folderID := c.Query("folderId")
	if folderID == "" {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("folderId is required"))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	items, err := h.App.ContentService.ListByFolder(ctx, uid, folderID)
	if err != nil {
		h.logError(ctx, "ContentHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponseList(code.Success, items, len(items))
}

// Update 更新内容条目
func (h *ContentHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ContentUpdateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	contentDTO, err := h.App.ContentService.Update(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "ContentHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(contentDTO))
}

// Delete 删除内容条目
func (h *ContentHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := c.Query("id")
	if id == "" {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("id is required"))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	if err := h.App.ContentService.Delete(ctx, uid, id); err != nil {
		h.logError(ctx, "ContentHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}
