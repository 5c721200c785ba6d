// internal/narrative/narrative.go
// Package narrative assembles the project report: metadata, overview,
// the vendor comparison, problems and conclusions, in a fixed order.
package narrative

import (
	"fmt"
	"strings"
	"time"

	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/summary"
)

// TimeLayout formats the generation timestamp.
const TimeLayout = "2006-01-02 15:04:05"

// Assembler builds the narrative for a project.
type Assembler struct {
	Engine *summary.Engine
	// Now supplies the generation timestamp. Nil means time.Now.
	Now func() time.Time
}

// New returns an Assembler comparing against the given baseline token.
func New(baselineToken string) *Assembler {
	return &Assembler{Engine: summary.New(baselineToken)}
}

// Assemble renders the full report text.
func (a *Assembler) Assemble(p *record.Project) string {
	engine := a.Engine
	if engine == nil {
		engine = summary.New("")
	}
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	var b builder
	writeHeader(&b, p)
	writeCustomer(&b, p)
	writeOverview(&b, p)

	b.line(fmt.Sprintf("## 二、性能数据横向对比（以 %s GPU 为基准）", engine.Label()))
	b.line(engine.Compare(p.Performance, p.PKSelections).Render()...)
	b.line("")

	writeProblems(&b, p)
	writeConclusions(&b, p)

	b.line("**报告生成时间**：" + now().Format(TimeLayout))
	return b.String()
}

type builder struct {
	lines []string
}

func (b *builder) line(s ...string) { b.lines = append(b.lines, s...) }

func (b *builder) optional(format, value string) {
	if value != "" {
		b.line(fmt.Sprintf(format, value))
	}
}

func (b *builder) String() string { return strings.Join(b.lines, "\n") }

func writeHeader(b *builder, p *record.Project) {
	models := "无"
	if len(p.SelectedModels) > 0 {
		models = strings.Join(p.SelectedModels, "、")
	}
	b.line(
		fmt.Sprintf("# %s 项目总结与性能对比报告", p.Name),
		"**测试周期**："+p.TestCycle,
		"**参与厂家**："+p.VendorString,
		"**测试模型**："+models,
		"",
	)
}

func writeCustomer(b *builder, p *record.Project) {
	b.line("## 零、客户及中标信息")
	b.optional("- **客户名称**：%s", p.CustomerName)
	b.optional("- **客户行业**：%s", p.CustomerIndustry)
	if p.BidStatus != "" {
		b.line("- **中标情况**：" + p.BidStatus)
		switch p.BidStatus {
		case record.BidWon:
			b.optional("- **中标份额**：%s", p.BidShare)
		case record.BidLost:
			b.optional("- **未中标原因**：%s", p.BidFailReason)
		}
	}
	b.optional("- **测试负责人**：%s", p.TestOwner)
	b.line("")
}

func writeOverview(b *builder, p *record.Project) {
	b.line("## 一、项目概述")
	b.line(fmt.Sprintf("- 本次测试覆盖 %d 个模型，针对 %d 家厂商的GPU性能进行验证。",
		len(p.SelectedModels), len(p.Vendors())))
	if types := p.EnvironmentTestTypes(); len(types) > 0 {
		b.line(fmt.Sprintf("- 测试类型包括 %s，核心关注吞吐、延迟等关键指标。", strings.Join(types, ", ")))
	}
	b.line("")
}

func writeProblems(b *builder, p *record.Project) {
	b.line("## 三、项目问题与风险")
	if !hasProblems(p) {
		b.line("- 项目实施过程中未记录明显问题，整体进展顺利。")
	}
	for _, category := range []string{record.CategoryTechnical, record.CategoryProject} {
		problems := p.ProblemsIn(category)
		if len(problems) == 0 {
			continue
		}
		b.line(fmt.Sprintf("- **%s**：共 %d 个，主要包括：", category, len(problems)))
		for _, pr := range problems {
			solution := pr.Solution
			if solution == "" {
				solution = "待确认"
			}
			b.line(fmt.Sprintf("  - %s（责任人：%s，解决方案：%s）", pr.Description, pr.Person, solution))
		}
	}
	b.line("")
}

func writeConclusions(b *builder, p *record.Project) {
	b.line("## 四、结论与建议")
	if len(p.Performance) == 0 || len(p.PKSelections) == 0 {
		b.line("- 测试数据尚未完善，建议补充完整性能测试数据后再进行综合评估。", "")
		return
	}
	b.line(
		"- **性能结论**：",
		"  综合对比各厂商数据，建议根据性能指标优先选择性能最优的厂商进行后续部署。",
		"- **优化建议**：",
		"  建议进一步排查模型推理框架或硬件配置以提升整体性能。",
	)
	if len(p.Problems) > 0 {
		b.line("  针对已发现的问题，建议尽快推动解决方案落地，避免影响后续测试进度。")
	}
	b.line("")
}

// hasProblems reports whether any problem has been filed under a category.
// The blank row every project keeps does not count.
func hasProblems(p *record.Project) bool {
	return len(p.ProblemsIn(record.CategoryTechnical))+len(p.ProblemsIn(record.CategoryProject)) > 0
}
