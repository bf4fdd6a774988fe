package recommend

import (
	"math"
	"testing"

	"recommender-backend/internal/catalog"
	"recommender-backend/internal/questionnaire"
)

func testQuestions(t *testing.T) *questionnaire.Questionnaire {
	t.Helper()
	qs, err := questionnaire.New([]questionnaire.Question{
		{
			ID:       1,
			Text:     "What role do you prefer?",
			Category: questionnaire.CategoryRole,
			Weight:   0.9,
			Options: []questionnaire.Option{
				{Value: "Tank"},
				{Value: "Mage"},
			},
		},
		{
			ID:       2,
			Text:     "How much complexity do you want?",
			Category: questionnaire.CategoryDifficulty,
			Weight:   0.8,
			Options: []questionnaire.Option{
				{Value: "Easy", Level: 3},
				{Value: "Hard", Level: 9},
			},
		},
	})
	if err != nil {
		t.Fatalf("build questionnaire: %v", err)
	}
	return qs
}

func testChampions() []catalog.Champion {
	return []catalog.Champion{
		{
			Name:       "Alistar",
			Role:       catalog.RoleTank,
			Difficulty: 3,
			Attributes: catalog.Attributes{Damage: 4, Toughness: 9, Control: 8, Mobility: 5, Utility: 8},
			MatchingFactors: map[string]map[string]int{
				"rolePreference": {"Tank": 10},
			},
		},
		{
			Name:       "Braum",
			Role:       catalog.RoleTank,
			Difficulty: 3,
			Attributes: catalog.Attributes{Damage: 3, Toughness: 9, Control: 7, Mobility: 4, Utility: 9},
		},
		{
			Name:       "Syndra",
			Role:       catalog.RoleMage,
			Difficulty: 8,
			Attributes: catalog.Attributes{Damage: 9, Toughness: 2, Control: 6, Mobility: 5, Utility: 4},
		},
	}
}

func testEngine(t *testing.T, champs []catalog.Champion) *Engine {
	t.Helper()
	cat, err := catalog.New(champs)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return New(cat, testQuestions(t), DefaultConfig())
}

func TestScoreEmptyAnswersIsZero(t *testing.T) {
	e := testEngine(t, testChampions())
	for _, champ := range testChampions() {
		score, ok := e.Score(champ.Name, questionnaire.AnswerSet{})
		if !ok {
			t.Fatalf("Score(%q) not found", champ.Name)
		}
		if score != 0 {
			t.Errorf("Score(%q, empty) = %v, want 0", champ.Name, score)
		}
	}
}

func TestFactorScoreWeightedAverage(t *testing.T) {
	e := testEngine(t, testChampions())

	// One answered question with factor 10 and weight 0.9 normalizes to
	// exactly (10*0.9)/0.9/10 = 1.0.
	score, ok := e.Score("Alistar", questionnaire.AnswerSet{1: "Tank"})
	if !ok {
		t.Fatal("Alistar not found")
	}
	if score != 1.0 {
		t.Errorf("Score(Alistar) = %v, want 1.0", score)
	}
}

func TestFactorScoreIgnoresUndeclaredAnswers(t *testing.T) {
	e := testEngine(t, testChampions())

	score, ok := e.Score("Alistar", questionnaire.AnswerSet{1: "Bogus"})
	if !ok {
		t.Fatal("Alistar not found")
	}
	if score != 0 {
		t.Errorf("Score(Alistar, bogus answer) = %v, want 0", score)
	}
}

func TestProfileScoreCombinesRoleDifficultyAndProfile(t *testing.T) {
	e := testEngine(t, testChampions())
	answers := questionnaire.AnswerSet{1: "Tank", 2: "Easy"}

	// Braum has no match data: 25 role bonus, (10-|3-3|)*2 = 20 difficulty
	// closeness, and (3+9+7+4+9)*5/10 = 16 from the profile against the
	// neutral dimension preferences.
	score, ok := e.Score("Braum", answers)
	if !ok {
		t.Fatal("Braum not found")
	}
	if math.Abs(score-61) > 1e-9 {
		t.Errorf("Score(Braum) = %v, want 61", score)
	}

	// Syndra misses the role bonus: (10-|3-8|)*2 = 10 plus profile 13.
	score, ok = e.Score("Syndra", answers)
	if !ok {
		t.Fatal("Syndra not found")
	}
	if math.Abs(score-23) > 1e-9 {
		t.Errorf("Score(Syndra) = %v, want 23", score)
	}
}

func TestScoreUnknownChampion(t *testing.T) {
	e := testEngine(t, testChampions())
	if _, ok := e.Score("Nobody", questionnaire.AnswerSet{1: "Tank"}); ok {
		t.Error("Score(Nobody) found a champion that does not exist")
	}
}

func TestScoreAgreesWithRank(t *testing.T) {
	e := testEngine(t, testChampions())
	answers := questionnaire.AnswerSet{1: "Tank", 2: "Easy"}

	for _, cand := range e.Rank(answers) {
		got, ok := e.Score(cand.Champion.Name, answers)
		if !ok {
			t.Fatalf("Score(%q) not found after Rank returned it", cand.Champion.Name)
		}
		if got != cand.Score {
			t.Errorf("Score(%q) = %v, Rank gave %v", cand.Champion.Name, got, cand.Score)
		}
	}
}

func TestRankIsFullPermutation(t *testing.T) {
	e := testEngine(t, testChampions())
	ranked := e.Rank(questionnaire.AnswerSet{1: "Tank", 2: "Easy"})

	if len(ranked) != len(testChampions()) {
		t.Fatalf("Rank returned %d candidates, want %d", len(ranked), len(testChampions()))
	}
	seen := make(map[string]bool, len(ranked))
	for _, cand := range ranked {
		if seen[cand.Champion.Name] {
			t.Errorf("Rank returned %q twice", cand.Champion.Name)
		}
		seen[cand.Champion.Name] = true
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("Rank not sorted descending at %d: %v after %v", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
}

func TestRankIsDeterministic(t *testing.T) {
	e := testEngine(t, testChampions())
	answers := questionnaire.AnswerSet{1: "Tank", 2: "Easy"}

	first := e.Rank(answers)
	second := e.Rank(answers)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Champion.Name != second[i].Champion.Name || first[i].Score != second[i].Score {
			t.Errorf("position %d differs: %q/%v vs %q/%v",
				i, first[i].Champion.Name, first[i].Score, second[i].Champion.Name, second[i].Score)
		}
	}
}

func TestRankTiesKeepCatalogOrder(t *testing.T) {
	twin := func(name string) catalog.Champion {
		return catalog.Champion{
			Name:       name,
			Role:       catalog.RoleMage,
			Difficulty: 5,
			Attributes: catalog.Attributes{Damage: 7, Toughness: 3, Control: 6, Mobility: 6, Utility: 3},
		}
	}
	e := testEngine(t, []catalog.Champion{twin("First"), twin("Second")})

	ranked := e.Rank(questionnaire.AnswerSet{1: "Tank"})
	if len(ranked) != 2 {
		t.Fatalf("Rank returned %d candidates, want 2", len(ranked))
	}
	if ranked[0].Score != ranked[1].Score {
		t.Fatalf("twins scored differently: %v vs %v", ranked[0].Score, ranked[1].Score)
	}
	if ranked[0].Champion.Name != "First" || ranked[1].Champion.Name != "Second" {
		t.Errorf("tie broke catalog order: got %q, %q", ranked[0].Champion.Name, ranked[1].Champion.Name)
	}
}

func TestRankOmitsExcluded(t *testing.T) {
	e := testEngine(t, testChampions())
	answers := questionnaire.AnswerSet{1: "Tank", 2: "Easy"}

	top, ok := e.Best(answers)
	if !ok {
		t.Fatal("Best returned nothing for a populated catalog")
	}
	for _, cand := range e.Rank(answers, top.Champion.Name) {
		if cand.Champion.Name == top.Champion.Name {
			t.Fatalf("excluded champion %q still in ranking", top.Champion.Name)
		}
	}
}

func TestBestEmptyCatalog(t *testing.T) {
	e := testEngine(t, nil)
	if _, ok := e.Best(questionnaire.AnswerSet{1: "Tank"}); ok {
		t.Error("Best returned a candidate from an empty catalog")
	}
}

func TestBestKeepsNonPositiveScores(t *testing.T) {
	// A single champion with zero factor weight still gets recommended.
	e := testEngine(t, []catalog.Champion{{
		Name:       "Yuumi",
		Role:       catalog.RoleSupport,
		Difficulty: 2,
		MatchingFactors: map[string]map[string]int{
			"rolePreference": {"Tank": 0},
		},
	}})

	best, ok := e.Best(questionnaire.AnswerSet{1: "Tank"})
	if !ok {
		t.Fatal("Best withheld a result for a non-positive score")
	}
	if best.Champion.Name != "Yuumi" || best.Score != 0 {
		t.Errorf("Best = %q/%v, want Yuumi/0", best.Champion.Name, best.Score)
	}
}

func TestAlternativesTruncateAndExclude(t *testing.T) {
	e := testEngine(t, testChampions())
	answers := questionnaire.AnswerSet{1: "Tank", 2: "Easy"}

	tests := []struct {
		name    string
		exclude string
		count   int
		want    int
	}{
		{"fewer remaining than requested", "Braum", 4, 2},
		{"exact fit", "Braum", 2, 2},
		{"truncated", "Braum", 1, 1},
		{"zero count", "Braum", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alts := e.Alternatives(answers, tt.exclude, tt.count)
			if len(alts) != tt.want {
				t.Fatalf("got %d alternatives, want %d", len(alts), tt.want)
			}
			for _, alt := range alts {
				if alt.Champion.Name == tt.exclude {
					t.Errorf("excluded champion %q returned as alternative", tt.exclude)
				}
			}
		})
	}
}

func TestConfidencePathsRespectClamps(t *testing.T) {
	e := testEngine(t, testChampions())
	answers := questionnaire.AnswerSet{1: "Tank", 2: "Easy"}

	for _, cand := range e.Rank(answers) {
		if cand.Confidence < 0 || cand.Confidence > 95 {
			t.Errorf("%q primary confidence %d outside [0,95]", cand.Champion.Name, cand.Confidence)
		}
		if !cand.HasFactors && cand.Confidence < 60 {
			t.Errorf("%q profile confidence %d below 60", cand.Champion.Name, cand.Confidence)
		}
	}
	for _, alt := range e.Alternatives(answers, "Braum", 4) {
		if alt.Confidence < 55 || alt.Confidence > 90 {
			t.Errorf("%q alternative confidence %d outside [55,90]", alt.Champion.Name, alt.Confidence)
		}
	}
}
