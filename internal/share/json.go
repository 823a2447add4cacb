package share

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
)

// Export is the JSON document written by EncodeJSON: the report plus
// an export id and the application version.
type Export struct {
	ID         string `json:"id"`
	AppVersion string `json:"appVersion"`
	engine.Report
}

// NewExport wraps r with a fresh random id.
func NewExport(r engine.Report) Export {
	return Export{ID: uuid.NewString(), AppVersion: config.Version, Report: r}
}

// EncodeJSON writes r as indented JSON.
func EncodeJSON(w io.Writer, r engine.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", config.JSONIndent)
	if err := enc.Encode(NewExport(r)); err != nil {
		return fmt.Errorf("%s: %w", config.ErrJSONEncode, err)
	}
	return nil
}
