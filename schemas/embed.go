// Package schemas embeds the JSON Schema documents describing career-matcher artifacts.
package schemas

import "embed"

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Schema file names.
const (
	Catalog         = "catalog.schema.json"
	Profile         = "profile.schema.json"
	Recommendations = "recommendations.schema.json"
)
