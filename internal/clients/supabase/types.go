package supabase

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/aarondl/null/v8"
	"github.com/storekit/whatsapp-replies-api/internal/products"
)

// productRow mirrors one element of the PostgREST response. Numeric columns may
// arrive as JSON strings depending on how the source table was populated, so
// price and stock coerce both representations.
type productRow struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Model       string      `json:"model"`
	SKU         null.String `json:"sku"`
	Price       flexFloat   `json:"price"`
	Stock       flexInt     `json:"stock"`
	Category    string      `json:"category"`
	Description null.String `json:"description"`
}

func (r productRow) toProduct() products.Product {
	return products.Product{
		ID:          r.ID,
		Name:        r.Name,
		Model:       r.Model,
		SKU:         r.SKU,
		Price:       float64(r.Price),
		Stock:       int(r.Stock),
		Category:    r.Category,
		Description: r.Description,
	}
}

func decodeProductRows(body io.Reader) ([]productRow, error) {
	var rows []productRow
	if err := json.NewDecoder(body).Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// flexFloat accepts a JSON number, a numeric string, or null. Unparseable
// values decode to zero rather than failing the whole response.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	*f = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*f = flexFloat(v)
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// flexInt accepts a JSON number, a numeric string, or null, with the same
// zero-on-unparseable behavior as flexFloat.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	*n = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if v, err := strconv.Atoi(s); err == nil {
			*n = flexInt(v)
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = flexInt(int(v))
	return nil
}
