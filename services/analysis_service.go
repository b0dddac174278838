package services

import (
	"context"
	"sync"

	"github.com/Guillo-bit/NutrIA/models"
)

// FoodDetector identifies food names in an image.
type FoodDetector interface {
	DetectFoods(ctx context.Context, image []byte, mimeType string) ([]string, error)
}

// NutrientSource resolves a single food name to its nutrition snapshot.
type NutrientSource interface {
	Lookup(ctx context.Context, name string) models.FoodItem
}

// Upper bound on in-flight nutrient lookups per request.
const maxConcurrentLookups = 5

type AnalysisService struct {
	detector  FoodDetector
	nutrients NutrientSource
}

func NewAnalysisService(detector FoodDetector, nutrients NutrientSource) *AnalysisService {
	return &AnalysisService{detector: detector, nutrients: nutrients}
}

// AnalyzeImage runs detection, then one nutrient lookup per detected name,
// then sums the totals. The only error it can return is a detection error;
// lookups degrade per item instead of failing the request.
func (s *AnalysisService) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (*models.AnalysisResult, error) {
	names, err := s.detector.DetectFoods(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return &models.AnalysisResult{
			Success:       true,
			FoodsDetected: []models.FoodItem{},
		}, nil
	}

	// Each lookup writes its own slot so the detection order survives,
	// duplicates included.
	items := make([]models.FoodItem, len(names))
	sem := make(chan struct{}, maxConcurrentLookups)
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			items[i] = s.nutrients.Lookup(ctx, name)
		}(i, name)
	}
	wg.Wait()

	var total models.NutritionFacts
	for _, item := range items {
		total = total.Add(item.Nutrition)
	}

	return &models.AnalysisResult{
		Success:        true,
		FoodsDetected:  items,
		TotalNutrition: total.Rounded(),
	}, nil
}
