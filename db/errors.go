package db

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// 错误分类见 controllers 的映射：
// InvalidRequest / ItemsNotFound / ItemsNotAvailable → 400
// ErrConcurrentModification → 409，ErrTxAborted → 500。
var (
	// ErrConcurrentModification 表示批量占用在并发写入下失败，调用方可重试。
	ErrConcurrentModification = errors.New("concurrent modification of inventory")
	// ErrTxAborted 表示事务未能提交（超时、连接等基础设施原因），无任何落库效果。
	ErrTxAborted = errors.New("transaction aborted")
)

// InvalidRequestError 指调用方输入不合法，重试前必须先改请求。
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + e.Reason
}

// ItemsNotFoundError 点名所有不存在的库存 ID。
type ItemsNotFoundError struct {
	IDs []int64
}

func (e *ItemsNotFoundError) Error() string {
	return "inventory items not found: " + joinIDs(e.IDs)
}

// ItemsNotAvailableError 点名所有当前不可借（RENTED/RESERVED）的库存 ID。
type ItemsNotAvailableError struct {
	IDs []int64
}

func (e *ItemsNotAvailableError) Error() string {
	return "inventory items not available: " + joinIDs(e.IDs)
}

func joinIDs(ids []int64) string {
	sorted := append([]int64(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
