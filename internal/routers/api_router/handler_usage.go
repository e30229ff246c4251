package api_router

import (
	"github.com/haierkeys/content-organizer-service/internal/app"
	"github.com/haierkeys/content-organizer-service/internal/dto"
	pkgapp "github.com/haierkeys/content-organizer-service/pkg/app"
	"github.com/haierkeys/content-organizer-service/pkg/code"
	apperrors "github.com/haierkeys/content-organizer-service/pkg/errors"
	"github.com/haierkeys/content-organizer-service/pkg/timex"

	"github.com/gin-gonic/gin"
)

// UsageHandler usage API router handler
// UsageHandler 用量 API 路由处理器
type UsageHandler struct {
	*Handler
}

// NewUsageHandler 创建 UsageHandler 实例
func NewUsageHandler(a *app.App) *UsageHandler {
	return &UsageHandler{Handler: NewHandler(a)}
}

// Get computes and returns the current user's usage snapshot.
// The snapshot is valid only for the instant it was computed.
// Get 计算并返回当前用户的用量快照。快照仅在计算瞬间有效。
func (h *UsageHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	usage, err := h.App.QuotaService.GetUsage(ctx, uid)
	if err != nil {
		h.logError(ctx, "UsageHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(&dto.UsageDTO{
		UID:                usage.UID,
		Plan:               string(usage.Plan),
		UsedBytes:          usage.UsedBytes,
		StorageMiB:         usage.StorageMiB,
		FolderCount:        usage.FolderCount,
		SharedCount:        usage.SharedCount,
		StoragePercent:     usage.StoragePercent,
		FolderPercent:      usage.FolderPercent,
		MarketplacePercent: usage.MarketplacePercent,
		IsStorageWarning:   usage.IsStorageWarning,
		IsStorageFull:      usage.IsStorageFull,
		IsFoldersFull:      usage.IsFoldersFull,
		Limits: dto.UsageLimitsDTO{
			StorageBytes:         usage.Limits.StorageBytes,
			MaxFolders:           usage.Limits.MaxFolders,
			MaxItemsPerFolder:    usage.Limits.MaxItemsPerFolder,
			MaxMarketplaceShares: usage.Limits.MaxMarketplaceShares,
			AllowPaidShares:      usage.Limits.AllowPaidShares,
			AdvancedAnalytics:    usage.Limits.AdvancedAnalytics,
			PrioritySupport:      usage.Limits.PrioritySupport,
			CustomCategories:     usage.Limits.CustomCategories,
		},
		CalculatedAt: timex.Time(usage.CalculatedAt),
	}))
}
