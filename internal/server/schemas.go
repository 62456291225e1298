package server

import (
	_ "embed"

	"github.com/jonathan/careercraft/internal/schemas"
)

// Request schemas are embedded so the server never depends on its working
// directory to validate payloads.
var (
	//go:embed schemas/ats_score_request.schema.json
	atsScoreRequestSchema string

	//go:embed schemas/job_match_request.schema.json
	jobMatchRequestSchema string
)

// validateRequestSchema checks a raw request body against an embedded JSON
// schema before decoding.
func validateRequestSchema(schema string, body []byte) error {
	return schemas.ValidateJSONString(schema, string(body))
}
