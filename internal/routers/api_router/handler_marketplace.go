package api_router

import (
	"github.com/haierkeys/content-organizer-service/internal/app"
	"github.com/haierkeys/content-organizer-service/internal/dto"
	pkgapp "github.com/haierkeys/content-organizer-service/pkg/app"
	"github.com/haierkeys/content-organizer-service/pkg/code"
	"github.com/haierkeys/content-organizer-service/pkg/convert"
	apperrors "github.com/haierkeys/content-organizer-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// MarketplaceHandler marketplace browsing API router handler
// MarketplaceHandler 市场浏览 API 路由处理器
type MarketplaceHandler struct {
	*Handler
}

// NewMarketplaceHandler 创建 MarketplaceHandler 实例
func NewMarketplaceHandler(a *app.App) *MarketplaceHandler {
	return &MarketplaceHandler{Handler: NewHandler(a)}
}

// List pages through active marketplace versions
// List 分页浏览市场内的激活版本
func (h *MarketplaceHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	category := c.Query("category")
	page := convert.StrTo(c.Query("page")).MustInt()
	pageSize := convert.StrTo(c.Query("pageSize")).MustInt()
	if pageSize <= 0 || pageSize > h.App.Config().App.MaxPageSize {
		pageSize = h.App.Config().App.DefaultPageSize
	}

	versions, err := h.App.SharingService.BrowseMarketplace(ctx, category, page, pageSize)
	if err != nil {
		h.logError(ctx, "MarketplaceHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	out := make([]*dto.VersionDTO, 0, len(versions))
	for _, v := range versions {
		out = append(out, versionToDTO(v))
	}
	response.ToResponseList(code.Success, out, len(out))
}

// Get retrieves one marketplace version
// Get 获取单个市场版本
func (h *MarketplaceHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := c.Query("id")
	if id == "" {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("id is required"))
		return
	}

	ctx := c.Request.Context()

	version, err := h.App.SharingService.GetVersion(ctx, id)
	if err != nil {
		h.logError(ctx, "MarketplaceHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(versionToDTO(version)))
}

// Like 点赞市场版本
func (h *MarketplaceHandler) Like(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.MarketplaceLikeRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	if err := h.App.SharingService.LikeVersion(ctx, params.VersionID); err != nil {
		h.logError(ctx, "MarketplaceHandler.Like", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}
