package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/haierkeys/content-organizer-service/internal/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type memUserRepo struct {
	domain.UserRepository
	users map[int64]*domain.User
}

func (m *memUserRepo) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	if u, ok := m.users[uid]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type memFolderRepo struct {
	domain.FolderRepository
	folders map[string]*domain.Folder
}

func (m *memFolderRepo) Create(ctx context.Context, folder *domain.Folder) error {
	cp := *folder
	m.folders[folder.ID] = &cp
	return nil
}

func (m *memFolderRepo) Get(ctx context.Context, id string, uid int64) (*domain.Folder, error) {
	if f, ok := m.folders[id]; ok && f.UID == uid {
		cp := *f
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memFolderRepo) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var n int64
	for _, f := range m.folders {
		if f.UID == uid {
			n++
		}
	}
	return n, nil
}

func (m *memFolderRepo) UpdateShareState(ctx context.Context, id string, uid int64, status domain.SharedStatus, versionID string, sharedAt time.Time) error {
	f, ok := m.folders[id]
	if !ok || f.UID != uid {
		return gorm.ErrRecordNotFound
	}
	f.SharedStatus = status
	f.SharedVersionID = versionID
	f.LastSharedAt = sharedAt
	return nil
}

type memContentRepo struct {
	domain.ContentRepository
	items map[string]*domain.ContentItem
}

func (m *memContentRepo) ListByFolder(ctx context.Context, folderID string, uid int64) ([]*domain.ContentItem, error) {
	var out []*domain.ContentItem
	for _, item := range m.items {
		if item.FolderID == folderID && item.UID == uid {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memContentRepo) ListByUID(ctx context.Context, uid int64) ([]*domain.ContentItem, error) {
	var out []*domain.ContentItem
	for _, item := range m.items {
		if item.UID == uid {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memContentRepo) CreateBatch(ctx context.Context, items []*domain.ContentItem) error {
	for _, item := range items {
		cp := *item
		m.items[item.ID] = &cp
	}
	return nil
}

type memVersionRepo struct {
	domain.VersionRepository
	versions   map[string]*domain.MarketplaceVersion
	publishErr error
}

func (m *memVersionRepo) PublishNewVersion(ctx context.Context, v *domain.MarketplaceVersion) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	for _, existing := range m.versions {
		if existing.FolderID == v.FolderID && existing.IsActive {
			existing.IsActive = false
		}
	}
	cp := *v
	cp.IsActive = true
	m.versions[v.ID] = &cp
	return nil
}

func (m *memVersionRepo) Get(ctx context.Context, id string) (*domain.MarketplaceVersion, error) {
	if v, ok := m.versions[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memVersionRepo) GetActiveByFolder(ctx context.Context, folderID string) (*domain.MarketplaceVersion, error) {
	for _, v := range m.versions {
		if v.FolderID == folderID && v.IsActive {
			cp := *v
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memVersionRepo) GetLatestNumber(ctx context.Context, folderID string) (int64, error) {
	var max int64
	for _, v := range m.versions {
		if v.FolderID == folderID && v.Number > max {
			max = v.Number
		}
	}
	return max, nil
}

func (m *memVersionRepo) CountActiveByUID(ctx context.Context, uid int64) (int64, error) {
	var n int64
	for _, v := range m.versions {
		if v.UID == uid && v.IsActive {
			n++
		}
	}
	return n, nil
}

func (m *memVersionRepo) IncrementDownloads(ctx context.Context, id string) error {
	v, ok := m.versions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.DownloadCount++
	return nil
}

func (m *memVersionRepo) IncrementLikes(ctx context.Context, id string) error {
	v, ok := m.versions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.LikeCount++
	return nil
}

func (m *memVersionRepo) IncrementViews(ctx context.Context, id string) error {
	v, ok := m.versions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.ViewCount++
	return nil
}

func (m *memVersionRepo) Deactivate(ctx context.Context, id string) error {
	v, ok := m.versions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.IsActive = false
	return nil
}

func (m *memVersionRepo) activeCount(folderID string) int {
	n := 0
	for _, v := range m.versions {
		if v.FolderID == folderID && v.IsActive {
			n++
		}
	}
	return n
}

type sharingFixture struct {
	users    *memUserRepo
	folders  *memFolderRepo
	contents *memContentRepo
	versions *memVersionRepo
	svc      *sharingService
}

func newSharingFixture() *sharingFixture {
	users := &memUserRepo{users: map[int64]*domain.User{
		1: {UID: 1, Plan: domain.PlanFree},
		2: {UID: 2, Plan: domain.PlanFree},
	}}
	folders := &memFolderRepo{folders: map[string]*domain.Folder{}}
	contents := &memContentRepo{items: map[string]*domain.ContentItem{}}
	versions := &memVersionRepo{versions: map[string]*domain.MarketplaceVersion{}}

	quota := &quotaService{
		userRepo:    users,
		folderRepo:  folders,
		contentRepo: contents,
		versionRepo: versions,
		logger:      zap.NewNop(),
	}

	svc := &sharingService{
		folderRepo:  folders,
		contentRepo: contents,
		versionRepo: versions,
		quota:       quota,
		config:      ShareServiceConfig{DefaultCurrency: "USD"},
		logger:      zap.NewNop(),
	}

	return &sharingFixture{users: users, folders: folders, contents: contents, versions: versions, svc: svc}
}

func (f *sharingFixture) addFolder(id string, uid int64) {
	f.folders.folders[id] = &domain.Folder{
		ID:           id,
		Name:         "reading list",
		UID:          uid,
		SharedStatus: domain.SharedStatusPrivate,
		CreatedAt:    time.Now(),
	}
}

func (f *sharingFixture) addItem(id, folderID string, uid int64, title string) {
	f.contents.items[id] = &domain.ContentItem{
		ID:       id,
		Title:    title,
		Type:     domain.ContentTypeNote,
		Content:  "content of " + title,
		FolderID: folderID,
		UID:      uid,
	}
}

func TestPublishFirstVersion(t *testing.T) {
	ctx := context.Background()
	f := newSharingFixture()
	f.addFolder("f1", 1)
	f.addItem("i1", "f1", 1, "one")
	f.addItem("i2", "f1", 1, "two")

	res := f.svc.Publish(ctx, 1, "f1", domain.ShareOptions{Category: "reading"})
	if !res.Success {
		t.Fatalf("publish failed: %s", res.Message)
	}
	if res.Version == nil || res.Version.Number != 1 {
		t.Fatalf("version = %+v, want number 1", res.Version)
	}
	if res.Version.Snapshot.ItemCount != 2 {
		t.Errorf("snapshot item count = %d, want 2", res.Version.Snapshot.ItemCount)
	}

	folder := f.folders.folders["f1"]
	if folder.SharedStatus != domain.SharedStatusSynced {
		t.Errorf("folder status = %s, want shared-synced", folder.SharedStatus)
	}
	if folder.SharedVersionID != res.Version.ID {
		t.Errorf("folder sharedVersionId not pointing at new version")
	}
}

func TestPublishRedundantIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newSharingFixture()
	f.addFolder("f1", 1)
	f.addItem("i1", "f1", 1, "one")

	first := f.svc.Publish(ctx, 1, "f1", domain.ShareOptions{})
	if !first.Success {
		t.Fatalf("first publish failed: %s", first.Message)
	}

	second := f.svc.Publish(ctx, 1, "f1", domain.ShareOptions{})
	if !second.Success {
		t.Fatalf("redundant publish failed: %s", second.Message)
	}
	if second.Message != msgAlreadyUpToDate {
		t.Errorf("message = %q, want %q", second.Message, msgAlreadyUpToDate)
	}
	if second.Version.Number != 1 {
		t.Errorf("redundant publish issued version %d", second.Version.Number)
	}
	if len(f.versions.versions) != 1 {
		t.Errorf("version count = %d, want 1", len(f.versions.versions))
	}
}

func TestContentDriftThenRepublish(t *testing.T) {
	ctx := context.Background()
	f := newSharingFixture()
	f.addFolder("f1", 1)
	f.addItem("i1", "f1", 1, "one")

	if res := f.svc.Publish(ctx, 1, "f1", domain.ShareOptions{}); !res.Success {
		t.Fatalf("publish failed: %s", res.Message)
	}

	status, err := f.svc.CheckSyncStatus(ctx, 1, "f1")
	if err != nil {
		t.Fatal(err)
	}
	if status != domain.SharedStatusSynced {
		t.Errorf("status after publish = %s, want shared-synced", status)
	}

	f.addItem("i2", "f1", 1, "two")

	status, err = f.svc.CheckSyncStatus(ctx, 1, "f1")
	if err != nil {
		t.Fatal(err)
	}
	if status != domain.SharedStatusOutdated {
		t.Errorf("status after drift = %s, want shared-outdated", status)
	}

	preview, err := f.svc.PreviewChanges(ctx, 1, "f1")
	if err != nil {
		t.Fatal(err)
	}
	if !preview.HasChanges || preview.Summary != "1 added" {
		t.Errorf("preview = %+v, want 1 added", preview)
	}

	res := f.svc.Publish(ctx, 1, "f1", domain.ShareOptions{})
	if !res.Success {
		t.Fatalf("republish failed: %s", res.Message)
	}
	if res.Version.Number != 2 {
		t.Errorf("version number = %d, want 2", res.Version.Number)
	}
	if n := f.versions.activeCount("f1"); n != 1 {
		t.Errorf("active versions = %d, want 1", n)
	}

	status, _ = f.svc.CheckSyncStatus(ctx, 1, "f1")
	if status != domain.SharedStatusSynced {
		t.Errorf("status after republish = %s, want shared-synced", status)
	}
}

func TestVersionMonotonicity(t *testing.T) {
	ctx := context.Background()
	f := newSharingFixture()
	f.addFolder("f1", 1)

	for i := 1; i <= 4; i++ {
		f.addItem(fmt.Sprintf("i%d", i), "f1", 1, fmt.Sprintf("item %d", i))

		res := f.svc.Publish(ctx, 1, "f1", domain.ShareOptions{})
		if !res.Success {
			t.Fatalf("publish %d failed: %s", i, res.Message)
		}
		if res.Version.Number != int64(i) {
			t.Errorf("publish %d issued version %d", i, res.Version.Number)
		}
		if n := f.versions.activeCount("f1"); n != 1 {
			t.Errorf("after publish %d: active versions = %d, want 1", i, n)
		}
	}
}

func TestPublishPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	f := newSharingFixture()
	f.addFolder("f1", 1)
	f.addItem("i1", "f1", 1, "one")
	f.versions.publishErr = errors.New("disk full")

	res := f.svc.Publish(ctx, 1, "f1", domain.ShareOptions{})
	if res.Success {
		t.Fatal("publish reported success despite persistence failure")
	}
	if res.Message == "" {
		t.Error("failure result carries no message")
	}
}

func TestPreviewWithoutActiveVersion(t *testing.T) {
	ctx := context.Background()
	f := newSharingFixture()
	f.addFolder("f1", 1)
	f.addItem("i1", "f1", 1, "one")

	preview, err := f.svc.PreviewChanges(ctx, 1, "f1")
	if err != nil {
		t.Fatal(err)
	}
	if preview.HasChanges {
		t.Error("preview reports changes with no active version to compare against")
	}
	if preview.Summary != "no changes" {
		t.Errorf("summary = %q, want neutral no-changes result", preview.Summary)
	}
}

func TestImportIndependence(t *testing.T) {
	ctx := context.Background()
	f := newSharingFixture()
	f.addFolder("f1", 1)
	f.addItem("i1", "f1", 1, "one")
	f.addItem("i2", "f1", 1, "two")
	f.addItem("i3", "f1", 1, "three")

	pub := f.svc.Publish(ctx, 1, "f1", domain.ShareOptions{})
	if !pub.Success {
		t.Fatalf("publish failed: %s", pub.Message)
	}

	res := f.svc.ImportVersion(ctx, pub.Version.ID, 2)
	if !res.Success {
		t.Fatalf("import failed: %s", res.Message)
	}
	if res.Folder == nil || res.Folder.UID != 2 {
		t.Fatalf("imported folder = %+v, want owned by uid 2", res.Folder)
	}
	if res.Folder.SharedStatus != domain.SharedStatusPrivate {
		t.Errorf("imported folder status = %s, want private", res.Folder.SharedStatus)
	}
	if res.Folder.SourceMarketplaceID != pub.Version.ID {
		t.Errorf("imported folder traceability pointer missing")
	}

	imported, err := f.contents.ListByFolder(ctx, res.Folder.ID, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(imported) != 3 {
		t.Fatalf("imported item count = %d, want 3", len(imported))
	}

	// 修改导入副本不得影响已发布快照
	for _, item := range imported {
		stored := f.contents.items[item.ID]
		stored.Title = "mutated"
		stored.Content = "mutated"
	}
	version, err := f.versions.Get(ctx, pub.Version.ID)
	if err != nil {
		t.Fatal(err)
	}
	for _, si := range version.Snapshot.Items {
		if si.Title == "mutated" || si.Content == "mutated" {
			t.Fatal("mutating imported items leaked into the published snapshot")
		}
	}

	if version.DownloadCount != 1 {
		t.Errorf("download count = %d, want 1", version.DownloadCount)
	}
}

func TestSnapshotIsolationFromSource(t *testing.T) {
	ctx := context.Background()
	f := newSharingFixture()
	f.addFolder("f1", 1)
	f.contents.items["i1"] = &domain.ContentItem{
		ID:       "i1",
		Title:    "original",
		Type:     domain.ContentTypeLink,
		URL:      "https://example.com",
		FolderID: "f1",
		UID:      1,
		Metadata: map[string]string{"domain": "example.com"},
	}

	pub := f.svc.Publish(ctx, 1, "f1", domain.ShareOptions{})
	if !pub.Success {
		t.Fatalf("publish failed: %s", pub.Message)
	}

	// 修改源条目及其元数据，不得影响已发布快照
	src := f.contents.items["i1"]
	src.Title = "edited"
	src.Metadata["domain"] = "evil.example"

	version, err := f.versions.Get(ctx, pub.Version.ID)
	if err != nil {
		t.Fatal(err)
	}
	si := version.Snapshot.Items[0]
	if si.Title != "original" {
		t.Errorf("snapshot title = %q, mutated after publish", si.Title)
	}
	if si.Metadata["domain"] != "example.com" {
		t.Errorf("snapshot metadata mutated after publish: %v", si.Metadata)
	}
}

func TestUnshare(t *testing.T) {
	ctx := context.Background()
	f := newSharingFixture()
	f.addFolder("f1", 1)
	f.addItem("i1", "f1", 1, "one")

	pub := f.svc.Publish(ctx, 1, "f1", domain.ShareOptions{})
	if !pub.Success {
		t.Fatalf("publish failed: %s", pub.Message)
	}

	if err := f.svc.Unshare(ctx, 1, "f1"); err != nil {
		t.Fatal(err)
	}

	if n := f.versions.activeCount("f1"); n != 0 {
		t.Errorf("active versions after unshare = %d, want 0", n)
	}
	if got := f.folders.folders["f1"].SharedStatus; got != domain.SharedStatusPrivate {
		t.Errorf("folder status after unshare = %s, want private", got)
	}

	// 下一次发布版本号继续递增，不复用
	f.addItem("i2", "f1", 1, "two")
	res := f.svc.Publish(ctx, 1, "f1", domain.ShareOptions{})
	if !res.Success {
		t.Fatalf("republish failed: %s", res.Message)
	}
	if res.Version.Number != 2 {
		t.Errorf("version number after unshare = %d, want 2", res.Version.Number)
	}
}

func TestVersionCounters(t *testing.T) {
	ctx := context.Background()
	f := newSharingFixture()
	f.addFolder("f1", 1)
	f.addItem("i1", "f1", 1, "one")

	pub := f.svc.Publish(ctx, 1, "f1", domain.ShareOptions{})
	if !pub.Success {
		t.Fatalf("publish failed: %s", pub.Message)
	}
	id := pub.Version.ID

	for i := 0; i < 3; i++ {
		if _, err := f.svc.GetVersion(ctx, id); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.svc.LikeVersion(ctx, id); err != nil {
		t.Fatal(err)
	}

	v := f.versions.versions[id]
	if v.ViewCount != 3 {
		t.Errorf("view count = %d, want 3", v.ViewCount)
	}
	if v.LikeCount != 1 {
		t.Errorf("like count = %d, want 1", v.LikeCount)
	}

	if err := f.svc.LikeVersion(ctx, "missing"); err == nil {
		t.Error("liking a missing version should fail")
	}
}
