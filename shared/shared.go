package shared

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the set fields of a patch struct into document
// fields keyed by their json names. Nil pointers and zero values are skipped,
// pointers are dereferenced.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	if val.Kind() == reflect.Pointer {
		val = val.Elem()
		typ = typ.Elem()
	}

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName, _, _ := strings.Cut(typ.Field(index).Tag.Get("json"), ",")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	if len(updatedFields) > 0 {
		updatedFields[constant.FieldModifiedAt] = timezone.Now()
	}

	return updatedFields
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// BuildCacheKeyWithQuery derives a stable key for a paged and filtered read.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	raw, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Filter dto.FilterGroup `json:"filter"`
	}{params, filter})
	if err != nil {
		return BuildCacheKey(prefix, fmt.Sprintf("%v:%v", params, filter))
	}

	sum := sha1.Sum(raw) //nolint:gosec

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
