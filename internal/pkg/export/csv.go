package export

import (
	"strings"
)

const bom = "\ufeff"

// CSV 表头不加引号, 每个值都用双引号包裹并把内部的 " 写成 ""
// 行之间用 \n 分隔, 开头带 UTF-8 BOM 以便 Excel 识别编码
func CSV(records []Record) ([]byte, error) {
	table, err := NewTable(records)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(table.Rows)+1)
	lines = append(lines, strings.Join(table.Header, ","))
	for _, row := range table.Rows {
		quoted := make([]string, len(row))
		for i, v := range row {
			quoted[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(quoted, ","))
	}
	return []byte(bom + strings.Join(lines, "\n")), nil
}
