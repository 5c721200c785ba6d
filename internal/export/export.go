// internal/export/export.go
// Package export writes a project to an xlsx workbook with one sheet per
// record kind, the performance rows split by test type category.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/mwiater/gpubench/internal/logging"
	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/testtype"
	"github.com/xuri/excelize/v2"
)

// Sheet names in workbook order.
const (
	SheetProject     = "1. 项目信息"
	SheetEnvironment = "2. 测试环境"
	SheetPK          = "3. PK指标"
	SheetInference   = "4. 推理性能数据"
	SheetTraining    = "5. 训练性能数据"
	SheetAccuracy    = "6. 精度测试数据"
	SheetProblems    = "7. 项目中遇到的问题"
	SheetSummary     = "8. 项目总结"
)

// Sheets lists every sheet in workbook order.
var Sheets = []string{
	SheetProject, SheetEnvironment, SheetPK,
	SheetInference, SheetTraining, SheetAccuracy,
	SheetProblems, SheetSummary,
}

// NoSummaryText fills the summary sheet when no narrative was produced.
const NoSummaryText = "未生成项目总结，请先运行 gpubench report 生成"

const (
	maxColumnWidth = 50
	headerFill     = "E6E6FA"
)

// DefaultFileName is the workbook name for an export made at now.
func DefaultFileName(now time.Time) string {
	return fmt.Sprintf("GPU性能测试-%s.xlsx", now.Format("20060102"))
}

// Write builds the workbook for p and saves it at path. summary is the
// narrative text; blank writes the placeholder.
func Write(path string, p *record.Project, summary string) error {
	f, err := Build(p, summary)
	if err != nil {
		return err
	}
	defer f.Close()

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}
	logging.LogEvent("export: wrote %s", path)
	return nil
}

// Build assembles the workbook in memory. The caller closes the file.
func Build(p *record.Project, summary string) (*excelize.File, error) {
	w, err := newWorkbook()
	if err != nil {
		return nil, err
	}
	steps := []func(*record.Project) error{
		w.writeProject,
		w.writeEnvironment,
		w.writePK,
		w.writePerformance,
		w.writeProblems,
		func(*record.Project) error { return w.writeSummary(summary) },
	}
	for _, step := range steps {
		if err := step(p); err != nil {
			_ = w.f.Close()
			return nil, err
		}
	}
	if err := w.applyWidths(); err != nil {
		_ = w.f.Close()
		return nil, err
	}
	return w.f, nil
}

type workbook struct {
	f           *excelize.File
	headerStyle int
	widths      map[string][]float64
}

func newWorkbook() (*workbook, error) {
	f := excelize.NewFile()
	w := &workbook{f: f, widths: make(map[string][]float64)}

	if err := f.SetSheetName("Sheet1", Sheets[0]); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create sheet %q: %w", Sheets[0], err)
	}
	for _, name := range Sheets[1:] {
		if _, err := f.NewSheet(name); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}
	}
	f.SetActiveSheet(0)

	border := func(side string) excelize.Border {
		return excelize.Border{Type: side, Color: "000000", Style: 1}
	}
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Border:    []excelize.Border{border("left"), border("top"), border("right"), border("bottom")},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}
	w.headerStyle = style
	return w, nil
}

// setRow writes values starting at column 1 of row and tracks column widths.
func (w *workbook) setRow(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%s row %d: %w", sheet, row, err)
	}
	for i, v := range values {
		w.track(sheet, i, fmt.Sprint(v))
	}
	return nil
}

func (w *workbook) setHeader(sheet string, row int, headers []string) error {
	values := make([]any, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := w.setRow(sheet, row, values); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	return w.f.SetCellStyle(sheet, first, last, w.headerStyle)
}

func (w *workbook) track(sheet string, col int, text string) {
	widths := w.widths[sheet]
	for len(widths) <= col {
		widths = append(widths, 0)
	}
	width := float64(runewidth.StringWidth(text) + 2)
	if width > maxColumnWidth {
		width = maxColumnWidth
	}
	if width > widths[col] {
		widths[col] = width
	}
	w.widths[sheet] = widths
}

func (w *workbook) applyWidths() error {
	for sheet, widths := range w.widths {
		for i, width := range widths {
			col, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return err
			}
			if err := w.f.SetColWidth(sheet, col, col, width); err != nil {
				return fmt.Errorf("%s column %s width: %w", sheet, col, err)
			}
		}
	}
	return nil
}

// cellValue writes numeric text as a number so the sheet can compute on it.
func cellValue(v record.Value) any {
	if f, ok := v.Float(); ok {
		return f
	}
	return v.String()
}

func (w *workbook) writeProject(p *record.Project) error {
	rows := []struct {
		row        int
		key, value string
	}{
		{1, "项目名称", p.Name},
		{2, "测试周期", p.TestCycle},
		{3, "参与厂家", p.VendorString},
		{4, "测试模型", strings.Join(p.SelectedModels, "、")},
		{6, "客户名称", p.CustomerName},
		{7, "客户行业", p.CustomerIndustry},
		{8, "中标情况", p.BidStatus},
		{9, "中标份额", p.BidShare},
		{10, "未中标原因", p.BidFailReason},
		{11, "测试负责人", p.TestOwner},
	}
	for _, r := range rows {
		if err := w.setRow(SheetProject, r.row, []any{r.key, r.value}); err != nil {
			return err
		}
		cell, _ := excelize.CoordinatesToCellName(1, r.row)
		if err := w.f.SetCellStyle(SheetProject, cell, cell, w.headerStyle); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbook) writeEnvironment(p *record.Project) error {
	headers := []string{"序号", "模型", "测试类型", "厂家", "GPU配置", "GPU数量", "数据集", "测试工具"}
	if err := w.setHeader(SheetEnvironment, 1, headers); err != nil {
		return err
	}
	for i, e := range p.Environment {
		row := []any{i + 1, e.Model, e.TestType, e.Vendor, e.GPU, cellValue(e.GPUCount), e.Dataset, e.Tool}
		if err := w.setRow(SheetEnvironment, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbook) writePK(p *record.Project) error {
	if err := w.setHeader(SheetPK, 1, []string{"序号", "模型", "测试类型", "PK指标"}); err != nil {
		return err
	}
	for i, pk := range p.PKSelections {
		if err := w.setRow(SheetPK, i+2, []any{i + 1, pk.Model, pk.TestType, pk.SelectedPK}); err != nil {
			return err
		}
	}
	return nil
}

var categorySheets = map[testtype.Category]string{
	testtype.CategoryInference: SheetInference,
	testtype.CategoryTraining:  SheetTraining,
	testtype.CategoryAccuracy:  SheetAccuracy,
}

// writePerformance routes each record to its category's sheet. The first
// record routed to a sheet supplies its header row.
func (w *workbook) writePerformance(p *record.Project) error {
	next := make(map[string]int)
	for _, r := range p.Performance {
		tt, ok := testtype.Parse(r.TestType)
		if !ok {
			logging.Warn("export: skipping record %s with unknown test type %q", r.ID, r.TestType)
			continue
		}
		sheet, ok := categorySheets[tt.Category()]
		if !ok {
			continue
		}

		if next[sheet] == 0 {
			headers := append([]string{"序号", "模型", "厂家", "数据集", "测试类型"}, r.InputFields...)
			headers = append(headers, r.CalcFields...)
			if err := w.setHeader(sheet, 1, headers); err != nil {
				return err
			}
			next[sheet] = 2
		}

		row := []any{next[sheet] - 1, r.Model, r.Vendor, r.Dataset, r.TestType}
		for _, field := range r.InputFields {
			row = append(row, cellValue(r.InputValues[field]))
		}
		for _, field := range r.CalcFields {
			row = append(row, cellValue(r.CalcValues[field]))
		}
		if err := w.setRow(sheet, next[sheet], row); err != nil {
			return err
		}
		next[sheet]++
	}
	return nil
}

func (w *workbook) writeProblems(p *record.Project) error {
	if err := w.setHeader(SheetProblems, 1, []string{"序号", "问题分类", "问题描述", "责任人", "解决方案"}); err != nil {
		return err
	}
	for i, pr := range p.Problems {
		row := []any{i + 1, pr.Category, pr.Description, pr.Person, pr.Solution}
		if err := w.setRow(SheetProblems, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbook) writeSummary(summary string) error {
	if strings.TrimSpace(summary) == "" {
		return w.setRow(SheetSummary, 1, []any{NoSummaryText})
	}
	for i, line := range strings.Split(summary, "\n") {
		if err := w.setRow(SheetSummary, i+1, []any{line}); err != nil {
			return err
		}
	}
	return nil
}
