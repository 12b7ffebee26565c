package report

import (
	"sort"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
)

// ChartDays 周图表覆盖的自然日数, 包含今天
const ChartDays = 7

type UserSeries struct {
	Email  string `json:"email"`
	Counts []int  `json:"counts"` // 与 WeeklyChart.Dates 一一对应
}

type WeeklyChart struct {
	Timezone string       `json:"timezone"`
	Days     []string     `json:"days"`  // 星期缩写, 例如 Mon
	Dates    []string     `json:"dates"` // YYYY-MM-DD
	Series   []UserSeries `json:"series"`
}

// windowStart 返回 loc 时区下 (今天-6) 的零点
func windowStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return today.AddDate(0, 0, -(ChartDays - 1))
}

// WeeklyUploads 按自然日和用户统计最近七天的 upload 日志
// 窗口内没有上传的用户不出现在结果中; 出现的用户其余日期补 0
func WeeklyUploads(entries []models.FileLog, now time.Time, loc *time.Location) WeeklyChart {
	if loc == nil {
		loc = time.UTC
	}
	start := windowStart(now, loc)

	chart := WeeklyChart{
		Timezone: loc.String(),
		Days:     make([]string, ChartDays),
		Dates:    make([]string, ChartDays),
	}
	for i := 0; i < ChartDays; i++ {
		day := start.AddDate(0, 0, i)
		chart.Days[i] = day.Weekday().String()[:3]
		chart.Dates[i] = day.Format("2006-01-02")
	}

	counts := make(map[string][]int)
	for _, e := range entries {
		if e.Action != models.ActionUpload {
			continue
		}
		idx := dayIndex(start, e.CreatedAt.In(loc))
		if idx < 0 || idx >= ChartDays {
			continue
		}
		if counts[e.UserEmail] == nil {
			counts[e.UserEmail] = make([]int, ChartDays)
		}
		counts[e.UserEmail][idx]++
	}

	chart.Series = make([]UserSeries, 0, len(counts))
	for email, c := range counts {
		chart.Series = append(chart.Series, UserSeries{Email: email, Counts: c})
	}
	sort.Slice(chart.Series, func(i, j int) bool { return chart.Series[i].Email < chart.Series[j].Email })
	return chart
}

// dayIndex 按日历日计算偏移, 不受夏令时影响
func dayIndex(start, t time.Time) int {
	if t.Before(start) {
		return -1
	}
	for i := 0; i < ChartDays; i++ {
		next := start.AddDate(0, 0, i+1)
		if t.Before(next) {
			return i
		}
	}
	return ChartDays
}
