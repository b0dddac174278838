package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Guillo-bit/NutrIA/config"
	"github.com/Guillo-bit/NutrIA/models"

	"go.uber.org/zap"
)

type USDAService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewUSDAService initializes the FoodData Central adapter.
func NewUSDAService(cfg *config.Config, log *zap.Logger) *USDAService {
	return &USDAService{
		apiKey:  cfg.USDAAPIKey,
		baseURL: cfg.USDABaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// FoodRecord is one match from the /foods/search endpoint.
type FoodRecord struct {
	FdcID         int            `json:"fdcId"`
	Description   string         `json:"description"`
	DataType      string         `json:"dataType"`
	FoodNutrients []FoodNutrient `json:"foodNutrients"`
}

type FoodNutrient struct {
	NutrientID int     `json:"nutrientId"`
	Value      float64 `json:"value"`
}

type foodSearchResponse struct {
	Foods []FoodRecord `json:"foods"`
}

// SearchFood queries FoodData Central for the best match, restricted to the
// curated Foundation and SR Legacy data types. Returns nil when nothing
// matches.
func (s *USDAService) SearchFood(ctx context.Context, name string) (*FoodRecord, error) {
	params := url.Values{}
	params.Set("api_key", s.apiKey)
	params.Set("query", name)
	params.Set("pageSize", "1")
	params.Add("dataType", "Foundation")
	params.Add("dataType", "SR Legacy")
	params.Set("sortBy", "dataType.keyword")
	params.Set("sortOrder", "desc")

	u := s.baseURL + "/foods/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create USDA request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call USDA search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USDA response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("USDA API error %d: %s", resp.StatusCode, string(body))
	}

	var sr foodSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse USDA JSON: %w", err)
	}

	if len(sr.Foods) == 0 {
		return nil, nil
	}
	return &sr.Foods[0], nil
}

// Lookup resolves one food name to a FoodItem. Failures and misses degrade
// to zero nutrition so a single bad lookup never sinks the whole analysis.
func (s *USDAService) Lookup(ctx context.Context, name string) models.FoodItem {
	rec, err := s.SearchFood(ctx, name)
	if err != nil {
		s.log.Error("error searching USDA database", zap.String("food", name), zap.Error(err))
		return models.FoodItem{Name: name}
	}
	if rec == nil {
		s.log.Warn("food not found in USDA database", zap.String("food", name))
		return models.FoodItem{Name: name}
	}
	return models.FoodItem{Name: name, Nutrition: extractNutrition(rec)}
}

// extractNutrition maps the USDA nutrient IDs onto the response fields:
// 1008 Energy, 1003 Protein, 1005 Carbohydrate, 1004 Total lipid (fat),
// 1079 Fiber, 2000 Sugars, 1093 Sodium, 1253 Cholesterol.
// IDs outside the table are ignored; absent IDs leave the zero default.
func extractNutrition(rec *FoodRecord) models.NutritionFacts {
	var facts models.NutritionFacts
	for _, n := range rec.FoodNutrients {
		switch n.NutrientID {
		case 1008:
			facts.Calories = n.Value
		case 1003:
			facts.Protein = n.Value
		case 1005:
			facts.Carbs = n.Value
		case 1004:
			facts.Fat = n.Value
		case 1079:
			facts.Fiber = n.Value
		case 2000:
			facts.Sugar = n.Value
		case 1093:
			facts.Sodium = n.Value
		case 1253:
			facts.Cholesterol = n.Value
		}
	}
	return facts
}
