package ingest

import "github.com/okra-platform/rustgen/internal/schema"

// LoadGraphQL parses the GraphQL IDL dialect (.rgen.gql).
func LoadGraphQL(data []byte) (*schema.Schema, error) {
	return schema.ParseSchema(string(data))
}
