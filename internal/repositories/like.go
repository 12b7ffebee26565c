package repositories

import "strings"

// filenameContains 使用 ! 作为转义符, MySQL, PostgreSQL 和 SQLite 写法一致
const filenameContains = "filename LIKE ? ESCAPE '!'"

var likeReplacer = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern 把用户输入转成包含匹配, % 和 _ 按字面量处理
func containsPattern(keyword string) string {
	return "%" + likeReplacer.Replace(keyword) + "%"
}
