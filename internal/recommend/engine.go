package recommend

import (
	"sort"

	"recommender-backend/internal/catalog"
	"recommender-backend/internal/questionnaire"
)

// Candidate is a champion paired with its score for one answer set.
type Candidate struct {
	Champion   catalog.Champion
	Score      float64
	Confidence int
	HasFactors bool
}

// Engine ranks the catalog against answer sets. It holds only immutable data
// and is safe for concurrent use; build one per catalog and share it.
type Engine struct {
	catalog   *catalog.Catalog
	questions *questionnaire.Questionnaire
	cfg       Config
	entries   []entry
	index     map[string]int
}

type entry struct {
	champ      catalog.Champion
	scorer     scorer
	hasFactors bool
}

// New builds an engine, binding each champion to its scoring path up front.
func New(cat *catalog.Catalog, questions *questionnaire.Questionnaire, cfg Config) *Engine {
	e := &Engine{
		catalog:   cat,
		questions: questions,
		cfg:       cfg,
		entries:   make([]entry, 0, cat.Len()),
		index:     make(map[string]int, cat.Len()),
	}
	for _, champ := range cat.All() {
		e.index[champ.Name] = len(e.entries)
		e.entries = append(e.entries, entry{
			champ:      champ,
			scorer:     e.scorerFor(champ),
			hasFactors: champ.HasMatchingFactors(),
		})
	}
	return e
}

func (e *Engine) scorerFor(champ catalog.Champion) scorer {
	if champ.HasMatchingFactors() {
		return factorScorer{champ: champ, questions: e.questions, norm: e.cfg.FactorNorm}
	}
	return profileScorer{
		champ:           champ,
		questions:       e.questions,
		roleBonus:       e.cfg.RoleBonus,
		difficultyScale: e.cfg.DifficultyScale,
	}
}

// Score computes the raw score for one champion by name, using the scorer
// bound at construction.
func (e *Engine) Score(name string, answers questionnaire.AnswerSet) (float64, bool) {
	at, ok := e.index[name]
	if !ok {
		return 0, false
	}
	return e.entries[at].scorer.Score(answers), true
}

// Rank scores every champion not in exclude and returns them sorted by score
// descending. The sort is stable with catalog order as the tiebreak, so
// identical inputs always produce identical output. Low and non-positive
// scores stay in the ranking; the engine never withholds a result.
func (e *Engine) Rank(answers questionnaire.AnswerSet, exclude ...string) []Candidate {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	out := make([]Candidate, 0, len(e.entries))
	for _, ent := range e.entries {
		if _, skip := excluded[ent.champ.Name]; skip {
			continue
		}
		score := ent.scorer.Score(answers)
		out = append(out, Candidate{
			Champion:   ent.champ,
			Score:      score,
			Confidence: e.bestConfidence(score, ent.hasFactors),
			HasFactors: ent.hasFactors,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Best returns the top-ranked champion. The boolean is false only for an
// empty catalog.
func (e *Engine) Best(answers questionnaire.AnswerSet) (Candidate, bool) {
	ranked := e.Rank(answers)
	if len(ranked) == 0 {
		return Candidate{}, false
	}
	return ranked[0], true
}

// Alternatives returns up to count next-best champions, omitting excludeName
// entirely. Confidence on this path uses the alternatives model.
func (e *Engine) Alternatives(answers questionnaire.AnswerSet, excludeName string, count int) []Candidate {
	if count <= 0 {
		return []Candidate{}
	}
	ranked := e.Rank(answers, excludeName)
	if len(ranked) > count {
		ranked = ranked[:count]
	}
	for i := range ranked {
		ranked[i].Confidence = e.cfg.AlternativeConfidence.Apply(ranked[i].Score)
	}
	return ranked
}

func (e *Engine) bestConfidence(score float64, hasFactors bool) int {
	if hasFactors {
		return e.cfg.FactorConfidence.Apply(score)
	}
	return e.cfg.ProfileConfidence.Apply(score)
}
