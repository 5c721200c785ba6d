// internal/testtype/testtype_test.go
package testtype

import "testing"

func TestSchemaSizes(t *testing.T) {
	cases := []struct {
		tt     TestType
		inputs int
		calcs  int
		cat    Category
	}{
		{TextInference, 7, 2, CategoryInference},
		{VisionTextInference, 7, 2, CategoryInference},
		{Pretraining, 3, 0, CategoryTraining},
		{LoRAFinetune, 3, 0, CategoryTraining},
		{FullFinetune, 3, 0, CategoryTraining},
		{ImageRecognition, 1, 0, CategoryInference},
		{SpeechInference, 1, 0, CategoryInference},
		{DocumentRanking, 1, 0, CategoryInference},
		{FeatureExtraction, 1, 0, CategoryInference},
		{AccuracyTest, 1, 0, CategoryAccuracy},
	}
	if len(cases) != len(All()) {
		t.Fatalf("expected %d test types, got %d", len(cases), len(All()))
	}
	for _, c := range cases {
		s := c.tt.Schema()
		if len(s.Inputs) != c.inputs || len(s.Calcs) != c.calcs {
			t.Errorf("%s: expected %d/%d fields, got %d/%d", c.tt, c.inputs, c.calcs, len(s.Inputs), len(s.Calcs))
		}
		if c.tt.Category() != c.cat {
			t.Errorf("%s: unexpected category %v", c.tt, c.tt.Category())
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, name := range Names() {
		tt, ok := Parse(name)
		if !ok {
			t.Fatalf("Parse(%q) failed", name)
		}
		if tt.Name() != name {
			t.Fatalf("expected %q, got %q", name, tt.Name())
		}
	}
	if _, ok := Parse("不存在"); ok {
		t.Fatal("expected unknown name to fail")
	}
	if got := SchemaFor("不存在"); len(got.Fields()) != 0 {
		t.Fatalf("expected empty schema, got %v", got)
	}
}

func TestIsTextInference(t *testing.T) {
	if !IsTextInferenceName("文本推理") || !IsTextInferenceName("图文推理") {
		t.Fatal("expected text inference names to match")
	}
	if IsTextInferenceName("图像识别") {
		t.Fatal("image recognition is not text inference")
	}
}

func TestSchemaIsCopied(t *testing.T) {
	s := TextInference.Schema()
	s.Inputs[0] = "mutated"
	if TextInference.Schema().Inputs[0] != FieldClientConcurrency {
		t.Fatal("schema slices must not be shared")
	}
	fields := TextInference.Schema().Fields()
	if fields[len(fields)-1] != FieldSingleCardThroughput {
		t.Fatalf("expected calc fields last, got %v", fields)
	}
}

func TestPKOptions(t *testing.T) {
	got := TextInference.PKOptions()
	if len(got) != 9 || got[0] != FieldClientConcurrency || got[8] != FieldSingleCardThroughput {
		t.Fatalf("unexpected text inference PK options: %v", got)
	}
	if got := ImageRecognition.PKOptions(); len(got) != 1 || got[0] != FieldFPS {
		t.Fatalf("unexpected image recognition PK options: %v", got)
	}
	if got := Unknown.PKOptions(); len(got) != 0 {
		t.Fatalf("unknown test type should have no PK options, got %v", got)
	}
}
