package graph

import (
	_ "embed"
	"fmt"

	"github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaString string

const maxQueryDepth = 8

func NewSchema(r *Resolver) (*graphql.Schema, error) {
	if r == nil {
		return nil, fmt.Errorf("resolver is nil")
	}

	schema, err := graphql.ParseSchema(schemaString, r, graphql.MaxDepth(maxQueryDepth))
	if err != nil {
		return nil, fmt.Errorf("graphql.ParseSchema: %w", err)
	}

	return schema, nil
}
