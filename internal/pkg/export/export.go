package export

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoData 没有可导出的记录, 不生成文件
var ErrNoData = errors.New("export: no data")

type Field struct {
	Name  string
	Value string
}

// Record 一行导出数据, 字段保持顺序
type Record []Field

// Table 表头取自第一条记录的字段名
type Table struct {
	Header []string
	Rows   [][]string
}

func NewTable(records []Record) (Table, error) {
	if len(records) == 0 {
		return Table{}, ErrNoData
	}
	header := make([]string, len(records[0]))
	for i, f := range records[0] {
		header[i] = f.Name
	}
	rows := make([][]string, len(records))
	for i, r := range records {
		row := make([]string, len(r))
		for j, f := range r {
			row[j] = f.Value
		}
		rows[i] = row
	}
	return Table{Header: header, Rows: rows}, nil
}

// Filename 生成 <name>_<YYYY-MM-DD>.<ext>
func Filename(name, ext string, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", name, at.Format("2006-01-02"), ext)
}
