package catalog

import "testing"

func TestCatalogShape(t *testing.T) {
	if len(Lots) != 15 {
		t.Fatalf("len(Lots)=%d, want 15", len(Lots))
	}
	seen := map[int]bool{}
	for _, lot := range Lots {
		if lot.Title == "" || lot.Description == "" {
			t.Fatalf("lot %d has empty text", lot.ID)
		}
		if seen[lot.ID] {
			t.Fatalf("duplicate lot id %d", lot.ID)
		}
		seen[lot.ID] = true
		if _, ok := Pools[Vibe(lot.Vibe)]; !ok {
			t.Fatalf("lot %d has vibe %q without a pool", lot.ID, lot.Vibe)
		}
	}
}

// 卡方检验：1 万次抽签应覆盖全部 15 支签且大致均匀（非严格相等）
// Chi-square sanity check: 10k draws must cover all 15 lots roughly uniformly
func TestDrawUniformity(t *testing.T) {
	engine := NewEngineWithSeed(42)

	const draws = 10000
	counts := make(map[int]int, len(Lots))
	for i := 0; i < draws; i++ {
		counts[engine.Draw().ID]++
	}

	if len(counts) != len(Lots) {
		t.Fatalf("only %d distinct lots drawn, want %d", len(counts), len(Lots))
	}

	expected := float64(draws) / float64(len(Lots))
	chi2 := 0.0
	for _, c := range counts {
		diff := float64(c) - expected
		chi2 += diff * diff / expected
	}
	// 自由度 14，p=0.001 的临界值约为 36.12
	// 14 degrees of freedom; critical value at p=0.001 is ~36.12
	if chi2 > 36.12 {
		t.Fatalf("chi-square %.2f exceeds 36.12, distribution not uniform: %v", chi2, counts)
	}
}

func TestPoolSample(t *testing.T) {
	engine := NewEngineWithSeed(7)

	rec, ok := engine.PoolSample("calm")
	if !ok {
		t.Fatalf("PoolSample(calm) not found")
	}
	if rec.Eat.Title == "" || rec.Action.Title == "" {
		t.Fatalf("pool entry has empty categories: %+v", rec)
	}

	if _, ok := engine.PoolSample("nonexistent"); ok {
		t.Fatalf("PoolSample should report false for unknown vibe")
	}
}

func TestMoodLabel(t *testing.T) {
	if got := MoodLabel("calm"); got != "平静" {
		t.Fatalf("MoodLabel(calm)=%q", got)
	}
	if got := MoodLabel("unknown"); got != "平常" {
		t.Fatalf("MoodLabel(unknown)=%q, want neutral label", got)
	}
	if ValidMood("happy") != true || ValidMood("angry") != false {
		t.Fatalf("ValidMood misclassifies")
	}
}
