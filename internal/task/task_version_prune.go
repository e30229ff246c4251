package task

import (
	"context"
	"time"

	"github.com/haierkeys/content-organizer-service/internal/app"
	"github.com/haierkeys/content-organizer-service/internal/domain"

	"go.uber.org/zap"
)

// VersionPruneTask 清理过期的非激活市场版本。
// 每个文件夹无条件保留最近的 keepVersions 个版本；
// 其余非激活版本在超过 expiry 且处于回滚窗口之外时物理删除。
// 版本号不回收，删除不影响后续发布的编号。
type VersionPruneTask struct {
	app            *app.App
	keepVersions   int
	expiry         time.Duration
	rollbackWindow time.Duration
	interval       time.Duration
}

// NewVersionPruneTask 创建版本清理任务
func NewVersionPruneTask(appContainer *app.App) (Task, error) {
	cfg := appContainer.Config()

	expiry := cfg.GetVersionExpiry()
	if expiry <= 0 {
		return nil, nil
	}

	keep := cfg.Share.KeepVersions
	if keep <= 0 {
		keep = domain.RetainVersionCount
	}

	return &VersionPruneTask{
		app:            appContainer,
		keepVersions:   keep,
		expiry:         expiry,
		rollbackWindow: cfg.GetRollbackWindow(),
		interval:       cfg.GetPruneInterval(),
	}, nil
}

// Name 返回任务名称
func (t *VersionPruneTask) Name() string {
	return "MarketplaceVersionPrune"
}

// LoopInterval 返回执行间隔
func (t *VersionPruneTask) LoopInterval() time.Duration {
	return t.interval
}

// IsStartupRun 是否立即执行一次
func (t *VersionPruneTask) IsStartupRun() bool {
	return true
}

// Run 执行清理任务
func (t *VersionPruneTask) Run(ctx context.Context) error {
	logger := t.app.Logger()

	// 过期与回滚窗口都必须越过，取更早的截止时间
	now := time.Now()
	cutoff := now.Add(-t.expiry)
	if rb := now.Add(-t.rollbackWindow); rb.Before(cutoff) {
		cutoff = rb
	}

	candidates, err := t.app.VersionRepo.ListInactiveBefore(ctx, cutoff)
	if err != nil {
		logger.Error("task log",
			zap.String("task", t.Name()),
			zap.String("msg", "list expired versions failed"),
			zap.Error(err))
		return err
	}

	if len(candidates) == 0 {
		logger.Info("task log",
			zap.String("task", t.Name()),
			zap.String("msg", "no expired versions"))
		return nil
	}

	// 按文件夹分组，保留每个文件夹最近的 keepVersions 个版本
	byFolder := make(map[string][]*domain.MarketplaceVersion)
	for _, v := range candidates {
		byFolder[v.FolderID] = append(byFolder[v.FolderID], v)
	}

	var pruned int
	for folderID, expired := range byFolder {
		// ListByFolder 按版本号降序返回
		all, err := t.app.VersionRepo.ListByFolder(ctx, folderID)
		if err != nil {
			logger.Error("task log",
				zap.String("task", t.Name()),
				zap.String("folder", folderID),
				zap.String("msg", "list folder versions failed"),
				zap.Error(err))
			continue
		}

		protected := make(map[string]struct{}, t.keepVersions)
		for i, v := range all {
			if i >= t.keepVersions {
				break
			}
			protected[v.ID] = struct{}{}
		}

		for _, v := range expired {
			if _, ok := protected[v.ID]; ok {
				continue
			}
			if err := t.app.VersionRepo.Delete(ctx, v.ID); err != nil {
				logger.Error("task log",
					zap.String("task", t.Name()),
					zap.String("version", v.ID),
					zap.String("msg", "delete failed"),
					zap.Error(err))
				continue
			}
			pruned++
		}
	}

	logger.Info("task log",
		zap.String("task", t.Name()),
		zap.Int("candidates", len(candidates)),
		zap.Int("pruned", pruned),
		zap.String("msg", "success"))

	return nil
}
