package api

import _ "embed"

//go:embed openapi.yaml
var contract []byte

// Contract returns the OpenAPI document describing this server.
func Contract() []byte {
	return contract
}
