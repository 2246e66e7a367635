// Package source installs the goccy/go-json token driver as the default JSON
// driver when imported for side effects, and hosts the drivers for other
// input formats in its subpackages.
package source

import (
	"github.com/reoring/gojmap"
	drvgojson "github.com/reoring/gojmap/source/gojson"
)

func init() { gojmap.SetJSONDriver(drvgojson.Driver()) }
