package models

import "math"

// NutritionFacts holds the per-food macro and micro nutrient amounts.
// The zero value means "no data found" and is safe to aggregate.
type NutritionFacts struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`
	Cholesterol float64 `json:"cholesterol"`
}

// Add returns the field-wise sum of n and other.
func (n NutritionFacts) Add(other NutritionFacts) NutritionFacts {
	return NutritionFacts{
		Calories:    n.Calories + other.Calories,
		Protein:     n.Protein + other.Protein,
		Carbs:       n.Carbs + other.Carbs,
		Fat:         n.Fat + other.Fat,
		Fiber:       n.Fiber + other.Fiber,
		Sugar:       n.Sugar + other.Sugar,
		Sodium:      n.Sodium + other.Sodium,
		Cholesterol: n.Cholesterol + other.Cholesterol,
	}
}

// Rounded returns a copy with every field rounded to 2 decimal places.
func (n NutritionFacts) Rounded() NutritionFacts {
	return NutritionFacts{
		Calories:    round2(n.Calories),
		Protein:     round2(n.Protein),
		Carbs:       round2(n.Carbs),
		Fat:         round2(n.Fat),
		Fiber:       round2(n.Fiber),
		Sugar:       round2(n.Sugar),
		Sodium:      round2(n.Sodium),
		Cholesterol: round2(n.Cholesterol),
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// FoodItem is one detected food with its nutrition snapshot.
type FoodItem struct {
	Name      string         `json:"name"`
	Nutrition NutritionFacts `json:"nutrition"`
}

// AnalysisResult is the response body for an image analysis.
// FoodsDetected keeps the detection order, duplicates included.
type AnalysisResult struct {
	Success        bool           `json:"success"`
	FoodsDetected  []FoodItem     `json:"foods_detected"`
	TotalNutrition NutritionFacts `json:"total_nutrition"`
}
