package utils

import (
	"encoding/json"
	"strings"
)

// Common food words to scan for when the model reply is not valid JSON.
// Scan order is fixed so results are deterministic.
var commonFoods = []string{
	"apple", "banana", "orange", "rice", "chicken", "beef", "pork", "fish",
	"bread", "pasta", "salad", "vegetables", "fruits", "eggs", "cheese",
	"yogurt", "milk", "potato", "tomato", "carrot", "broccoli", "spinach",
}

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "a": {}, "an": {},
}

// ExtractFoodsJSON pulls the "foods" list out of a model reply. It looks for
// the first '{' and last '}' and parses that slice; when no braces are found
// the whole reply is parsed. ok is false when nothing decodes as JSON.
func ExtractFoodsJSON(text string) ([]string, bool) {
	payload := text
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		payload = text[start : end+1]
	}

	var parsed struct {
		Foods []string `json:"foods"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, false
	}
	if parsed.Foods == nil {
		return []string{}, true
	}
	return parsed.Foods, true
}

// FoodNamesFromText is the fallback when the reply carries no JSON: scan for
// known food words first, then guess from the remaining words. Never returns
// an empty list.
func FoodNamesFromText(text string) []string {
	lower := strings.ToLower(text)

	var detected []string
	for _, food := range commonFoods {
		if strings.Contains(lower, food) {
			detected = append(detected, food)
		}
	}
	if len(detected) > 0 {
		return detected
	}

	// Simple heuristic: keep words that are not too short and not stop words
	for _, word := range strings.Fields(lower) {
		if len(word) <= 3 {
			continue
		}
		if _, skip := stopWords[word]; skip {
			continue
		}
		detected = append(detected, word)
		if len(detected) == 5 {
			break
		}
	}

	if len(detected) == 0 {
		return []string{"food"}
	}
	return detected
}
