// internal/narrative/narrative_test.go
package narrative

import (
	"strings"
	"testing"
	"time"

	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/testtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }

func sampleProject(t *testing.T) *record.Project {
	t.Helper()
	p := record.NewProject()
	p.Name = "星河"
	p.TestCycle = "2024Q2"
	p.VendorString = "H3C（A100）、Acme（V100）"
	require.NoError(t, p.SetModel("M1", []string{"文本推理"}))
	p.InitEnvironment()
	p.InitPerformance()

	for _, r := range p.Performance {
		ttft := "100"
		if r.Vendor == "Acme" {
			ttft = "200"
		}
		require.NoError(t, p.SetInputValue(r.ID, testtype.FieldTTFT, record.Value(ttft)))
	}
	require.NoError(t, p.SelectPK("M1", "文本推理", testtype.FieldTTFT))
	return p
}

func TestAssembleSectionsInOrder(t *testing.T) {
	p := sampleProject(t)
	a := &Assembler{Engine: New("").Engine, Now: fixedNow}
	out := a.Assemble(p)

	order := []string{
		"# 星河 项目总结与性能对比报告",
		"**测试周期**：2024Q2",
		"**参与厂家**：H3C（A100）、Acme（V100）",
		"**测试模型**：M1",
		"## 零、客户及中标信息",
		"## 一、项目概述",
		"- 本次测试覆盖 1 个模型，针对 2 家厂商的GPU性能进行验证。",
		"- 测试类型包括 文本推理，核心关注吞吐、延迟等关键指标。",
		"## 二、性能数据横向对比（以 H3C GPU 为基准）",
		"指标 TTFT（ms）：H3C 100.00 vs Acme 200.00（差值 -100.00，倍数 0.50x）",
		"## 三、项目问题与风险",
		"- 项目实施过程中未记录明显问题，整体进展顺利。",
		"## 四、结论与建议",
		"- **性能结论**：",
		"**报告生成时间**：2024-05-06 07:08:09",
	}
	pos := 0
	for _, want := range order {
		idx := strings.Index(out[pos:], want)
		require.GreaterOrEqual(t, idx, 0, "missing or out of order: %q\n%s", want, out)
		pos += idx + len(want)
	}
	assert.Contains(t, out, "针对已发现的问题", "the seed problem row keeps the follow-up line")
	assert.True(t, strings.HasSuffix(out, "**报告生成时间**：2024-05-06 07:08:09"))
}

func TestCustomerBlockConditionalLines(t *testing.T) {
	cases := []struct {
		name    string
		status  string
		want    []string
		notWant []string
	}{
		{
			name:    "won",
			status:  record.BidWon,
			want:    []string{"- **中标情况**：已中标", "- **中标份额**：30%"},
			notWant: []string{"未中标原因"},
		},
		{
			name:    "lost",
			status:  record.BidLost,
			want:    []string{"- **中标情况**：未中标", "- **未中标原因**：价格"},
			notWant: []string{"中标份额"},
		},
		{
			name:    "blank",
			status:  "",
			notWant: []string{"中标情况", "中标份额", "未中标原因"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := record.NewProject()
			p.CustomerName = "某银行"
			p.BidStatus = tc.status
			p.BidShare = "30%"
			p.BidFailReason = "价格"
			out := (&Assembler{Now: fixedNow}).Assemble(p)

			assert.Contains(t, out, "- **客户名称**：某银行")
			assert.NotContains(t, out, "客户行业")
			assert.NotContains(t, out, "测试负责人")
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
			for _, nw := range tc.notWant {
				assert.NotContains(t, out, nw)
			}
		})
	}
}

func TestEmptyProject(t *testing.T) {
	out := (&Assembler{Now: fixedNow}).Assemble(record.NewProject())

	assert.Contains(t, out, "**测试模型**：无")
	assert.Contains(t, out, "- 本次测试覆盖 0 个模型，针对 0 家厂商的GPU性能进行验证。")
	assert.NotContains(t, out, "测试类型包括")
	assert.Contains(t, out, "- 暂无性能数据可用于对比分析。")
	assert.Contains(t, out, "- 测试数据尚未完善，建议补充完整性能测试数据后再进行综合评估。")
}

func TestProblemsSection(t *testing.T) {
	p := sampleProject(t)
	_, err := p.AddProblem(record.ProblemEntry{Category: record.CategoryProject, Description: "交付延期", Person: "王五"})
	require.NoError(t, err)
	_, err = p.AddProblem(record.ProblemEntry{Category: record.CategoryTechnical, Description: "驱动崩溃", Person: "张三", Solution: "升级驱动"})
	require.NoError(t, err)

	out := (&Assembler{Now: fixedNow}).Assemble(p)

	tech := strings.Index(out, "- **技术问题**：共 1 个，主要包括：")
	proj := strings.Index(out, "- **项目问题**：共 1 个，主要包括：")
	require.GreaterOrEqual(t, tech, 0)
	require.Greater(t, proj, tech)
	assert.Contains(t, out, "  - 驱动崩溃（责任人：张三，解决方案：升级驱动）")
	assert.Contains(t, out, "  - 交付延期（责任人：王五，解决方案：待确认）")
	assert.NotContains(t, out, "未记录明显问题")
	assert.Contains(t, out, "针对已发现的问题")
}

func TestCustomBaselineLabel(t *testing.T) {
	p := sampleProject(t)
	out := (&Assembler{Engine: New("acme").Engine, Now: fixedNow}).Assemble(p)
	assert.Contains(t, out, "## 二、性能数据横向对比（以 ACME GPU 为基准）")
	assert.Contains(t, out, "指标 TTFT（ms）：ACME 200.00 vs H3C 100.00")
}

func TestConclusionProblemLineNeedsProblemRows(t *testing.T) {
	p := sampleProject(t)
	p.Problems = nil

	out := (&Assembler{Now: fixedNow}).Assemble(p)
	assert.Contains(t, out, "- **优化建议**：")
	assert.NotContains(t, out, "针对已发现的问题")
}
