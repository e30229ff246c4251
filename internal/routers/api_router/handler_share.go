package api_router

import (
	"github.com/haierkeys/content-organizer-service/internal/app"
	"github.com/haierkeys/content-organizer-service/internal/domain"
	"github.com/haierkeys/content-organizer-service/internal/dto"
	"github.com/haierkeys/content-organizer-service/internal/middleware"
	pkgapp "github.com/haierkeys/content-organizer-service/pkg/app"
	"github.com/haierkeys/content-organizer-service/pkg/code"
	apperrors "github.com/haierkeys/content-organizer-service/pkg/errors"
	"github.com/haierkeys/content-organizer-service/pkg/timex"

	"github.com/gin-gonic/gin"
)

// ShareHandler sharing API router handler
// ShareHandler 分享 API 路由处理器
type ShareHandler struct {
	*Handler
}

// NewShareHandler 创建 ShareHandler 实例
func NewShareHandler(a *app.App) *ShareHandler {
	return &ShareHandler{Handler: NewHandler(a)}
}

// versionToDTO 将市场版本领域模型转换为 DTO
func versionToDTO(v *domain.MarketplaceVersion) *dto.VersionDTO {
	if v == nil {
		return nil
	}
	return &dto.VersionDTO{
		ID:            v.ID,
		FolderID:      v.FolderID,
		Number:        v.Number,
		Fingerprint:   v.Fingerprint,
		Title:         v.Title,
		Description:   v.Description,
		Category:      v.Category,
		Tags:          v.Tags,
		Price:         v.Price,
		Currency:      v.Currency,
		CoverImage:    v.CoverImage,
		IsActive:      v.IsActive,
		ItemCount:     v.Snapshot.ItemCount,
		DownloadCount: v.DownloadCount,
		LikeCount:     v.LikeCount,
		ViewCount:     v.ViewCount,
		PublishedAt:   timex.Time(v.PublishedAt),
	}
}

// folderToDTO 将文件夹领域模型转换为 DTO
func folderToDTO(f *domain.Folder) *dto.FolderDTO {
	if f == nil {
		return nil
	}
	return &dto.FolderDTO{
		ID:                  f.ID,
		Name:                f.Name,
		Description:         f.Description,
		Color:               f.Color,
		Icon:                f.Icon,
		ParentID:            f.ParentID,
		ItemCount:           f.ItemCount,
		SharedStatus:        string(f.SharedStatus),
		SharedVersionID:     f.SharedVersionID,
		LastSharedAt:        timex.Time(f.LastSharedAt),
		DownloadCount:       f.DownloadCount,
		SourceMarketplaceID: f.SourceMarketplaceID,
		CreatedAt:           timex.Time(f.CreatedAt),
		UpdatedAt:           timex.Time(f.UpdatedAt),
	}
}

// Publish publishes the folder's current content to the marketplace
// Publish 将文件夹当前内容发布到市场
func (h *ShareHandler) Publish(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SharePublishRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	result := h.App.SharingService.Publish(ctx, uid, params.FolderID, domain.ShareOptions{
		Title:       params.Title,
		Description: params.Description,
		Category:    params.Category,
		Tags:        params.Tags,
		Price:       params.Price,
		Currency:    params.Currency,
		CoverImage:  params.CoverImage,
	})

	resp := &dto.SharePublishResponse{
		Success: result.Success,
		Message: result.Message,
		Version: versionToDTO(result.Version),
	}
	if !result.Success {
		middleware.CountPublish("failed")
		response.ToResponse(code.ErrorPublishFailed.WithDetails(result.Message).WithData(resp))
		return
	}
	middleware.CountPublish("success")
	response.ToResponse(code.Success.WithData(resp))
}

// Status returns the folder's three-state sharing status
// Status 返回文件夹的三态分享状态
func (h *ShareHandler) Status(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	folderID := c.Query("folderId")
	if folderID == "" {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("folderId is required"))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	status, err := h.App.SharingService.CheckSyncStatus(ctx, uid, folderID)
	if err != nil {
		h.logError(ctx, "ShareHandler.Status", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(&dto.ShareStatusResponse{
		FolderID:     folderID,
		SharedStatus: string(status),
	}))
}

// Preview diffs current content against the active version
// Preview 预览当前内容与激活版本的差异
func (h *ShareHandler) Preview(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	folderID := c.Query("folderId")
	if folderID == "" {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("folderId is required"))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	preview, err := h.App.SharingService.PreviewChanges(ctx, uid, folderID)
	if err != nil {
		h.logError(ctx, "ShareHandler.Preview", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(&dto.SharePreviewResponse{
		HasChanges: preview.HasChanges,
		Summary:    preview.Summary,
		Added:      preview.Details.Added,
		Removed:    preview.Details.Removed,
		Modified:   preview.Details.Modified,
	}))
}

// Import copies a marketplace version into a new folder of the current user
// Import 将市场版本导入为当前用户的新文件夹
func (h *ShareHandler) Import(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ShareImportRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	result := h.App.SharingService.ImportVersion(ctx, params.VersionID, uid)

	resp := &dto.ShareImportResponse{
		Success: result.Success,
		Message: result.Message,
		Folder:  folderToDTO(result.Folder),
	}
	if !result.Success {
		response.ToResponse(code.ErrorImportFailed.WithDetails(result.Message).WithData(resp))
		return
	}
	middleware.CountImport()
	response.ToResponse(code.Success.WithData(resp))
}

// Unshare deactivates the folder's active version
// Unshare 停用文件夹的激活版本
func (h *ShareHandler) Unshare(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ShareStatusRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	if err := h.App.SharingService.Unshare(ctx, uid, params.FolderID); err != nil {
		h.logError(ctx, "ShareHandler.Unshare", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}

// Versions lists the folder's version history
// Versions 列出文件夹的版本历史
func (h *ShareHandler) Versions(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	folderID := c.Query("folderId")
	if folderID == "" {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("folderId is required"))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	versions, err := h.App.SharingService.ListVersions(ctx, uid, folderID)
	if err != nil {
		h.logError(ctx, "ShareHandler.Versions", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	out := make([]*dto.VersionDTO, 0, len(versions))
	for _, v := range versions {
		out = append(out, versionToDTO(v))
	}
	response.ToResponseList(code.Success, out, len(out))
}
