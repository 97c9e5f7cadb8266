package client

import (
	"time"

	"inpyeon/backend/internal/dto"
)

// LettersPerPage 邮箱每页固定 10 封，由客户端切分
const LettersPerPage = 10

// PageCount 总页数 = ceil(n/10)，空邮箱视为 1 页
func PageCount(n int) int {
	if n <= 0 {
		return 1
	}
	pages := n / LettersPerPage
	if n%LettersPerPage > 0 {
		pages++
	}
	return pages
}

// ClampPage 将页码收敛到 [1, PageCount(n)]，prev/next 无法越界
func ClampPage(page, n int) int {
	if page < 1 {
		return 1
	}
	if max := PageCount(n); page > max {
		return max
	}
	return page
}

// Paginate 返回第 page 页的切片（page 从 1 起）
func Paginate(letters []dto.LetterItem, page int) []dto.LetterItem {
	page = ClampPage(page, len(letters))
	start := (page - 1) * LettersPerPage
	if start >= len(letters) {
		return nil
	}
	end := start + LettersPerPage
	if end > len(letters) {
		end = len(letters)
	}
	return letters[start:end]
}

// FormatDate 将 ISO 8601 时间戳渲染为 yy/mm/dd；解析失败时原样返回
func FormatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("06/01/02")
}
