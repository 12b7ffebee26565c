package repositories

import "fmt"

// Order 排序条件, 列名只允许白名单中的值
type Order struct {
	Column string
	Desc   bool
}

// DefaultOrder 最新的记录排在最前
var DefaultOrder = Order{Column: "created_at", Desc: true}

var sortableColumns = map[string]bool{
	"created_at": true,
	"filename":   true,
	"version":    true,
	"id":         true,
}

// Clause 生成 ORDER BY 子句, 非法列名回退到默认排序
func (o Order) Clause() string {
	col := o.Column
	if !sortableColumns[col] {
		col = DefaultOrder.Column
	}
	dir := "asc"
	if o.Desc {
		dir = "desc"
	}
	return fmt.Sprintf("%s %s", col, dir)
}
