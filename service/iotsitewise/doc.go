// Package iotsitewise holds the request, result and shared structure types of
// the AWS IoT SiteWise API, together with a catalog of its operations.
//
// Types in types.go, enums.go and operations.go are generated from
// api-models/iotsitewise.json by cmd/codegen.
package iotsitewise

//go:generate go run ../../cmd/codegen -model ../../api-models/iotsitewise.json -output .
