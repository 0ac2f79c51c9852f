// Package serializer provides Echo's JSON serializer.
package serializer

import (
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// JSON encodes responses with goccy/go-json. Request bodies are still decoded
// by Echo's default serializer, whose type errors name the offending field by
// its JSON path ("address.zip") rather than its Go name.
type JSON struct {
	echo.DefaultJSONSerializer
}

func (JSON) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}
