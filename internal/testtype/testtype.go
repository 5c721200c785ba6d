// internal/testtype/testtype.go
// Package testtype defines the closed set of benchmark test types and the
// measured/derived field schema each one records.
package testtype

// TestType identifies one of the supported benchmark workloads.
type TestType int

const (
	// Unknown is returned by Parse for names outside the supported set.
	Unknown TestType = iota
	TextInference
	VisionTextInference
	ImageRecognition
	Pretraining
	LoRAFinetune
	FullFinetune
	SpeechInference
	DocumentRanking
	FeatureExtraction
	AccuracyTest
)

// Field names shared across schemas. They double as the keys of a
// performance record's value maps and as the PK metric names.
const (
	FieldClientConcurrency     = "客户端设置并发"
	FieldActualConcurrency     = "实际并发"
	FieldInputLength           = "输入长度（tokens）"
	FieldOutputLength          = "输出长度（tokens）"
	FieldTTFT                  = "TTFT（ms）"
	FieldTPOT                  = "TPOT（ms）"
	FieldTotalThroughput       = "总吞吐（tokens/s）"
	FieldTotalOutputThroughput = "总输出吞吐（tokens/s）"
	FieldSingleCardThroughput  = "单卡输出吞吐（tokens/s）"
	FieldBatchSize             = "batch_size"
	FieldEpochs                = "训练轮数"
	FieldTrainingTime          = "训练时间（min）"
	FieldFPS                   = "FPS"
	FieldInferenceTime         = "推理时间（ms）"
	FieldScore                 = "得分（%）"
)

// Category groups test types for the spreadsheet's performance sheets.
type Category int

const (
	CategoryNone Category = iota
	CategoryInference
	CategoryTraining
	CategoryAccuracy
)

// Schema lists the ordered input and derived fields of a test type.
type Schema struct {
	Inputs []string
	Calcs  []string
}

// Fields returns inputs followed by calcs. These are the PK options.
func (s Schema) Fields() []string {
	out := make([]string, 0, len(s.Inputs)+len(s.Calcs))
	out = append(out, s.Inputs...)
	return append(out, s.Calcs...)
}

var all = []TestType{
	TextInference,
	VisionTextInference,
	ImageRecognition,
	Pretraining,
	LoRAFinetune,
	FullFinetune,
	SpeechInference,
	DocumentRanking,
	FeatureExtraction,
	AccuracyTest,
}

// All returns every supported test type in their default configuration order.
func All() []TestType {
	out := make([]TestType, len(all))
	copy(out, all)
	return out
}

// Names returns the display names of All.
func Names() []string {
	names := make([]string, 0, len(all))
	for _, tt := range all {
		names = append(names, tt.Name())
	}
	return names
}

// Parse resolves a display name to its TestType.
func Parse(name string) (TestType, bool) {
	for _, tt := range all {
		if tt.Name() == name {
			return tt, true
		}
	}
	return Unknown, false
}

// Name returns the display name used in configuration files and reports.
func (t TestType) Name() string {
	switch t {
	case TextInference:
		return "文本推理"
	case VisionTextInference:
		return "图文推理"
	case ImageRecognition:
		return "图像识别"
	case Pretraining:
		return "预训练"
	case LoRAFinetune:
		return "lora微调"
	case FullFinetune:
		return "全参微调"
	case SpeechInference:
		return "语音推理"
	case DocumentRanking:
		return "文档排序"
	case FeatureExtraction:
		return "特征提取"
	case AccuracyTest:
		return "精度测试"
	default:
		return ""
	}
}

func (t TestType) String() string { return t.Name() }

// Schema returns a fresh copy of the field lists for t. Unknown yields an empty schema.
func (t TestType) Schema() Schema {
	switch t {
	case TextInference, VisionTextInference:
		return Schema{
			Inputs: []string{
				FieldClientConcurrency,
				FieldActualConcurrency,
				FieldInputLength,
				FieldOutputLength,
				FieldTTFT,
				FieldTPOT,
				FieldTotalThroughput,
			},
			Calcs: []string{FieldTotalOutputThroughput, FieldSingleCardThroughput},
		}
	case Pretraining, LoRAFinetune, FullFinetune:
		return Schema{Inputs: []string{FieldBatchSize, FieldEpochs, FieldTrainingTime}}
	case ImageRecognition:
		return Schema{Inputs: []string{FieldFPS}}
	case SpeechInference, DocumentRanking, FeatureExtraction:
		return Schema{Inputs: []string{FieldInferenceTime}}
	case AccuracyTest:
		return Schema{Inputs: []string{FieldScore}}
	default:
		return Schema{}
	}
}

// IsTextInference reports whether t produces token-length based records that
// get derived throughput metrics and scenario bucketing.
func (t TestType) IsTextInference() bool {
	return t == TextInference || t == VisionTextInference
}

// Category returns the performance sheet category of t.
func (t TestType) Category() Category {
	switch t {
	case TextInference, VisionTextInference, ImageRecognition, SpeechInference, DocumentRanking, FeatureExtraction:
		return CategoryInference
	case Pretraining, LoRAFinetune, FullFinetune:
		return CategoryTraining
	case AccuracyTest:
		return CategoryAccuracy
	default:
		return CategoryNone
	}
}

// PKOptions lists the metrics a comparison of t may select.
func (t TestType) PKOptions() []string { return t.Schema().Fields() }

// SchemaFor looks up the schema for a display name, falling back to an empty schema.
func SchemaFor(name string) Schema {
	tt, _ := Parse(name)
	return tt.Schema()
}

// IsTextInferenceName is IsTextInference for a display name.
func IsTextInferenceName(name string) bool {
	tt, _ := Parse(name)
	return tt.IsTextInference()
}
