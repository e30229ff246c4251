// Package fingerprint computes stable digests and structural diffs of
// content-item collections. The digest covers only the fields that define
// meaningful content (id, title, type, url, content); description, metadata,
// thumbnail and timestamps never influence it.
// Package fingerprint 计算内容条目集合的稳定摘要与结构化差异。
// 摘要仅覆盖定义实际内容的字段（id、title、type、url、content）；
// description、metadata、缩略图和时间戳不参与计算。
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
)

// Item is the projection of a content item that participates in the digest.
// Item 是参与摘要计算的内容条目投影。
type Item struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// DiffResult 差异结果，三个列表均为条目 ID
type DiffResult struct {
	Added      []string `json:"added"`
	Removed    []string `json:"removed"`
	Modified   []string `json:"modified"`
	HasChanges bool     `json:"hasChanges"`
}

// Compute returns the hex-encoded SHA-256 digest of the collection.
// Items are sorted by ID so the digest is independent of input order;
// the empty collection hashes to the digest of its empty serialization.
// Compute 返回集合的十六进制 SHA-256 摘要。
// 条目按 ID 排序，摘要与输入顺序无关；空集合的摘要为空序列化的摘要。
func Compute(items []Item) string {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	data, err := sonic.Marshal(sorted)
	if err != nil {
		// Item is a flat struct of strings; serialization cannot fail on
		// valid input, so this is a programmer error.
		// Item 是纯字符串的扁平结构，合法输入不可能序列化失败，属于程序错误。
		panic(fmt.Sprintf("fingerprint: marshal failed: %v", err))
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Diff compares two collections by item ID. An item counts as modified
// when title, content or url differ between the two versions.
// Diff 按条目 ID 对比两个集合。title、content 或 url 任一不同即视为已修改。
func Diff(oldItems, newItems []Item) DiffResult {
	oldByID := make(map[string]Item, len(oldItems))
	for _, item := range oldItems {
		oldByID[item.ID] = item
	}
	newByID := make(map[string]Item, len(newItems))
	for _, item := range newItems {
		newByID[item.ID] = item
	}

	var result DiffResult

	for _, item := range newItems {
		old, ok := oldByID[item.ID]
		if !ok {
			result.Added = append(result.Added, item.ID)
			continue
		}
		if old.Title != item.Title || old.Content != item.Content || old.URL != item.URL {
			result.Modified = append(result.Modified, item.ID)
		}
	}

	for _, item := range oldItems {
		if _, ok := newByID[item.ID]; !ok {
			result.Removed = append(result.Removed, item.ID)
		}
	}

	result.HasChanges = len(result.Added) > 0 || len(result.Removed) > 0 || len(result.Modified) > 0
	return result
}

// NoChangesSummary 无变更时的固定描述
const NoChangesSummary = "no changes"

// Summarize renders a compact human-readable description of a diff,
// e.g. "3 added, 1 modified". Field order is fixed (added, modified,
// removed) and zero counts are omitted.
// Summarize 生成差异的简短可读描述，如 "3 added, 1 modified"。
// 字段顺序固定（added、modified、removed），计数为零的字段省略。
func Summarize(diff DiffResult) string {
	if !diff.HasChanges {
		return NoChangesSummary
	}

	var parts []string
	if n := len(diff.Added); n > 0 {
		parts = append(parts, fmt.Sprintf("%d added", n))
	}
	if n := len(diff.Modified); n > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", n))
	}
	if n := len(diff.Removed); n > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", n))
	}
	return strings.Join(parts, ", ")
}
