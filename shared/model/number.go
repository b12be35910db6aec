package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Count is a whole number that also accepts its decimal string form, as
// written by form inputs into older documents.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*c = 0

		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid count: %w", err)
	}

	switch v := raw.(type) {
	case float64:
		*c = Count(v)
	case string:
		if strings.TrimSpace(v) == "" {
			*c = 0

			return nil
		}

		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", v, err)
		}

		*c = Count(n)
	default:
		return fmt.Errorf("invalid count %s", string(data))
	}

	return nil
}
