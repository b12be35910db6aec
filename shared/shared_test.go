package shared_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"hotel/shared"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid t string",
			input:    "t",
			expected: boolPtr(true),
		},
		{
			name:     "valid f string",
			input:    "f",
			expected: boolPtr(false),
		},
		{
			name:     "valid T string",
			input:    "T",
			expected: boolPtr(true),
		},
		{
			name:     "valid F string",
			input:    "F",
			expected: boolPtr(false),
		},
		{
			name:     "valid TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "valid FALSE string",
			input:    "FALSE",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
		{
			name:     "random string returns nil",
			input:    "random",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single item",
			total:    1,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit equals total",
			total:    10,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
		{
			name:     "large numbers",
			total:    1000000,
			limit:    7,
			expected: 142858,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		RoomNo     string `json:"roomNo"`
		Name       string `json:"name,omitempty"`
		Amount     int    `json:"amount"`
		EmptyField string `json:"emptyField"`
		NoJSONTag  string
		IgnoredTag string `json:"-"`
	}

	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				RoomNo:     "101",
				Name:       "Somchai",
				Amount:     2,
				NoJSONTag:  "ignored",
				IgnoredTag: "ignored",
			},
			expected: map[string]any{
				"roomNo": "101",
				"name":   "Somchai",
				"amount": 2,
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			expected: map[string]any{},
		},
		{
			name: "pointer to struct",
			data: &TestStruct{
				Name: "Suda",
			},
			expected: map[string]any{
				"name": "Suda",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if len(tt.expected) == 0 {
				if len(result) != 0 {
					t.Errorf("expected empty patch, got %v", result)
				}

				return
			}

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modifiedAt to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt {
					continue
				}
				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestTransformFieldsWithPointers(t *testing.T) {
	type TestStructWithPointers struct {
		Name   *string  `json:"name"`
		Salary *float64 `json:"salary"`
		Count  *int     `json:"count"`
		Unset  *string  `json:"unset"`
	}

	salary := 0.0

	data := TestStructWithPointers{
		Name:   stringPtr("John"),
		Salary: &salary,
		Count:  intPtr(0),
	}

	result := shared.TransformFields(data)

	expectedFields := map[string]any{
		"name":   "John",
		"salary": 0.0,
		"count":  0,
	}

	for key, expectedValue := range expectedFields {
		if actualValue, exists := result[key]; !exists {
			t.Errorf("expected field %s to exist", key)
		} else if !reflect.DeepEqual(actualValue, expectedValue) {
			t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
		}
	}

	if _, exists := result["unset"]; exists {
		t.Error("expected nil pointer to be skipped")
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking:get", "abc"); got != "booking:get:abc" {
		t.Errorf("expected booking:get:abc, got %s", got)
	}

	if got := shared.BuildCacheKey("booking:gets"); got != "booking:gets" {
		t.Errorf("expected booking:gets, got %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 8}
	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "type", Value: "income", Operator: dto.FilterOperatorEq},
		},
	}

	first := shared.BuildCacheKeyWithQuery("finance:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("finance:gets", params, filter)

	if first != second {
		t.Errorf("expected stable key, got %s and %s", first, second)
	}

	if !strings.HasPrefix(first, "finance:gets:") {
		t.Errorf("expected prefix finance:gets:, got %s", first)
	}

	other := shared.BuildCacheKeyWithQuery("finance:gets", dto.QueryParams{Page: 2, Limit: 8}, filter)
	if other == first {
		t.Error("expected a different key for a different page")
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "booking:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "booking:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "booking:count*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "booking:count")
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}
