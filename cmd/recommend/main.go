package main

// Score an answer set against the embedded catalog without running the API:
//   go run ./cmd/recommend -answers "1=Tank,2=Easy,3=Team fights"

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"recommender-backend/internal/catalog"
	"recommender-backend/internal/questionnaire"
	"recommender-backend/internal/recommend"
)

func main() {
	answersFlag := flag.String("answers", "", "comma-separated id=value pairs, e.g. 1=Tank,2=Easy")
	count := flag.Int("n", 4, "number of alternatives")
	asJSON := flag.Bool("json", false, "emit JSON instead of text")
	flag.Parse()

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	questions, err := questionnaire.Load()
	if err != nil {
		log.Fatalf("load questionnaire: %v", err)
	}
	engine := recommend.New(cat, questions, recommend.DefaultConfig())

	answers, err := parseAnswers(*answersFlag)
	if err != nil {
		log.Fatalf("parse answers: %v", err)
	}

	best, ok := engine.Best(answers)
	if !ok {
		log.Fatal("catalog is empty")
	}
	alternatives := engine.Alternatives(answers, best.Champion.Name, *count)

	if *asJSON {
		out := map[string]any{
			"recommendation": candidateJSON(engine, best, answers),
			"alternatives":   make([]map[string]any, 0, len(alternatives)),
		}
		for _, alt := range alternatives {
			out["alternatives"] = append(out["alternatives"].([]map[string]any), candidateJSON(engine, alt, answers))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatalf("encode: %v", err)
		}
		return
	}

	fmt.Printf("Best match: %s (%s), confidence %d%%\n", best.Champion.Name, best.Champion.Role, best.Confidence)
	fmt.Printf("  %s\n", engine.Explain(best.Champion, answers, best.Confidence))
	if len(alternatives) > 0 {
		fmt.Println("Alternatives:")
		for _, alt := range alternatives {
			fmt.Printf("  %-14s %-8s confidence %d%%\n", alt.Champion.Name, alt.Champion.Role, alt.Confidence)
		}
	}
}

func parseAnswers(raw string) (questionnaire.AnswerSet, error) {
	answers := questionnaire.AnswerSet{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return answers, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed pair %q", pair)
		}
		id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("question id %q: %w", parts[0], err)
		}
		answers[id] = strings.TrimSpace(parts[1])
	}
	return answers, nil
}

func candidateJSON(engine *recommend.Engine, cand recommend.Candidate, answers questionnaire.AnswerSet) map[string]any {
	return map[string]any{
		"name":        cand.Champion.Name,
		"role":        cand.Champion.Role,
		"difficulty":  cand.Champion.Difficulty,
		"score":       cand.Score,
		"confidence":  cand.Confidence,
		"explanation": engine.Explain(cand.Champion, answers, cand.Confidence),
	}
}
