package service

import (
	"strings"
	"testing"

	"github.com/haierkeys/content-organizer-service/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
)

func newQuotaForTest() *quotaService {
	return &quotaService{logger: zap.NewNop()}
}

func TestItemSize(t *testing.T) {
	svc := newQuotaForTest()

	tests := []struct {
		name string
		item *domain.ContentItem
		want int64
	}{
		{
			name: "plain link",
			item: &domain.ContentItem{Type: domain.ContentTypeLink, Title: "abcd"},
			// ceil(4*2.5) + 5 KiB overhead
			want: 10 + itemOverheadSize,
		},
		{
			name: "link with thumbnail and metadata",
			item: &domain.ContentItem{
				Type:      domain.ContentTypeLink,
				Title:     "ab",
				Thumbnail: "https://cdn.example.com/t.png",
				Metadata:  map[string]string{"domain": "example.com"},
			},
			want: 5 + linkThumbnailSize + linkMetadataSize + itemOverheadSize,
		},
		{
			name: "short note hits the 1 KiB floor",
			item: &domain.ContentItem{Type: domain.ContentTypeNote, Content: "hi"},
			want: noteMinSize + itemOverheadSize,
		},
		{
			name: "external image is thumbnail-only",
			item: &domain.ContentItem{Type: domain.ContentTypeImage, URL: "https://img.example.com/a.png"},
			want: imageExternalSize + itemOverheadSize,
		},
		{
			name: "uploaded image assumes full binary",
			item: &domain.ContentItem{Type: domain.ContentTypeImage, URL: "uploads/a.png"},
			want: imageUploadedSize + itemOverheadSize,
		},
		{
			name: "external document",
			item: &domain.ContentItem{Type: domain.ContentTypeDocument, URL: "http://docs.example.com/r.pdf"},
			want: documentExternalSize + itemOverheadSize,
		},
		{
			name: "uploaded document",
			item: &domain.ContentItem{Type: domain.ContentTypeDocument, URL: "uploads/r.pdf"},
			want: documentUploadedSize + itemOverheadSize,
		},
		{
			name: "unknown type gets fixed allowance",
			item: &domain.ContentItem{Type: "video"},
			want: unknownTypeSize + itemOverheadSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.ItemSize(tt.item); got != tt.want {
				t.Errorf("ItemSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTextSize(t *testing.T) {
	tests := []struct {
		s    string
		want int64
	}{
		{"", 0},
		{"a", 3},     // ceil(2.5)
		{"ab", 5},    // ceil(5)
		{"abcd", 10}, // ceil(10)
		{"中文混排ok", 15},
	}

	for _, tt := range tests {
		if got := textSize(tt.s); got != tt.want {
			t.Errorf("textSize(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

// 验证用量百分比永远被截断到 100

func TestProperty_UsagePercentClamping(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("current above limit clamps to exactly 100", prop.ForAll(
		func(limit, over int64) bool {
			return clampPercent(limit+over, limit) == 100
		},
		gen.Int64Range(1, 1<<40),
		gen.Int64Range(1, 1<<40),
	))

	properties.Property("current within limit never exceeds 100", prop.ForAll(
		func(limit, current int64) bool {
			p := clampPercent(current%(limit+1), limit)
			return p >= 0 && p <= 100
		},
		gen.Int64Range(1, 1<<40),
		gen.Int64Range(0, 1<<40),
	))

	properties.TestingRun(t)
}

func TestComputeUsage(t *testing.T) {
	svc := newQuotaForTest()

	items := []*domain.ContentItem{
		{Type: domain.ContentTypeImage, URL: "uploads/a.png"}, // 5 MiB + 5 KiB
		{Type: domain.ContentTypeNote, Content: "hello"},      // 1 KiB floor + 5 KiB
	}

	usage := svc.ComputeUsage(1, items, 4, 2, domain.PlanFree)

	wantBytes := imageUploadedSize + noteMinSize + 2*itemOverheadSize
	if usage.UsedBytes != wantBytes {
		t.Errorf("UsedBytes = %d, want %d", usage.UsedBytes, wantBytes)
	}
	// 6 MiB 多一点，向上取整到 7
	if usage.StorageMiB != 7 {
		t.Errorf("StorageMiB = %d, want 7", usage.StorageMiB)
	}
	if usage.Limits != domain.LimitsFor(domain.PlanFree) {
		t.Errorf("Limits not resolved from plan tier")
	}
	if usage.IsStorageWarning || usage.IsStorageFull || usage.IsFoldersFull {
		t.Errorf("unexpected flags set: %+v", usage)
	}
	if usage.CalculatedAt.IsZero() {
		t.Error("CalculatedAt not stamped")
	}
}

func TestComputeUsageFlags(t *testing.T) {
	svc := newQuotaForTest()

	// 10 个文件夹打满免费套餐
	usage := svc.ComputeUsage(1, nil, 10, 0, domain.PlanFree)
	if !usage.IsFoldersFull {
		t.Error("IsFoldersFull = false at folder cap")
	}
	if usage.IsStorageWarning {
		t.Error("IsStorageWarning = true with zero storage")
	}
}

func TestCanCreateFolderBoundary(t *testing.T) {
	svc := newQuotaForTest()
	limits := domain.LimitsFor(domain.PlanFree)

	tests := []struct {
		name        string
		folderCount int64
		wantAllowed bool
	}{
		{"well below cap", 0, true},
		{"one below cap", limits.MaxFolders - 1, true},
		{"exactly at cap", limits.MaxFolders, false},
		{"above cap", limits.MaxFolders + 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage := svc.ComputeUsage(1, nil, tt.folderCount, 0, domain.PlanFree)
			got := svc.CanCreateFolder(usage)
			if got.Allowed != tt.wantAllowed {
				t.Errorf("CanCreateFolder() allowed = %v, want %v (reason %q)", got.Allowed, tt.wantAllowed, got.Reason)
			}
			if !got.Allowed && got.Reason == "" {
				t.Error("denial carries no reason")
			}
		})
	}
}

func TestCanAddItemOverflowDenial(t *testing.T) {
	svc := newQuotaForTest()

	// 免费套餐 1024 MiB，已用 1020 MiB，再加一个 5 MiB 的上传图片必然超限
	usage := &domain.UserUsage{
		UID:       1,
		Plan:      domain.PlanFree,
		Limits:    domain.LimitsFor(domain.PlanFree),
		UsedBytes: 1020 * sizeMiB,
	}
	item := &domain.ContentItem{Type: domain.ContentTypeImage, URL: "uploads/big.png"}

	got := svc.CanAddItem(usage, item)
	if got.Allowed {
		t.Fatal("CanAddItem allowed an item that overflows the storage cap")
	}
	if !strings.Contains(got.Reason, "KiB") {
		t.Errorf("denial reason %q does not mention the required size", got.Reason)
	}
}

func TestCanAddItemAllows(t *testing.T) {
	svc := newQuotaForTest()

	usage := &domain.UserUsage{
		UID:       1,
		Plan:      domain.PlanFree,
		Limits:    domain.LimitsFor(domain.PlanFree),
		UsedBytes: 100 * sizeMiB,
	}
	item := &domain.ContentItem{Type: domain.ContentTypeNote, Content: "short note"}

	got := svc.CanAddItem(usage, item)
	if !got.Allowed {
		t.Fatalf("CanAddItem denied: %s", got.Reason)
	}
	if got.AddedSize <= 0 {
		t.Errorf("AddedSize = %d, want positive estimate", got.AddedSize)
	}
}

func TestCanShareToMarketplace(t *testing.T) {
	svc := newQuotaForTest()

	tests := []struct {
		name        string
		plan        domain.PlanTier
		sharedCount int64
		isPaid      bool
		wantAllowed bool
		wantReason  string
	}{
		{"free plan below cap", domain.PlanFree, 0, false, true, ""},
		{"free plan at cap", domain.PlanFree, 3, false, false, "share limit"},
		{"free plan paid share", domain.PlanFree, 0, true, false, "paid"},
		// 数量检查先于付费检查
		{"count check wins over paid check", domain.PlanFree, 3, true, false, "share limit"},
		{"pro plan paid share", domain.PlanPro, 10, true, true, ""},
		{"pro plan at cap", domain.PlanPro, 50, false, false, "share limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage := svc.ComputeUsage(1, nil, 0, tt.sharedCount, tt.plan)
			got := svc.CanShareToMarketplace(usage, tt.isPaid)
			if got.Allowed != tt.wantAllowed {
				t.Errorf("allowed = %v, want %v (reason %q)", got.Allowed, tt.wantAllowed, got.Reason)
			}
			if tt.wantReason != "" && !strings.Contains(got.Reason, tt.wantReason) {
				t.Errorf("reason %q does not contain %q", got.Reason, tt.wantReason)
			}
		})
	}
}
