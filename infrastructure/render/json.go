package render

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (JSONRenderer) Render(doc *domain.ReportDocument) ([]byte, error) {
	return json.Marshal(doc)
}

func (JSONRenderer) Format() string      { return FormatJSON }
func (JSONRenderer) ContentType() string { return "application/json" }
func (JSONRenderer) Extension() string   { return "json" }
