package test_seeder

import (
	"context"
	"fmt"

	"healthgraph/src/infra/graphdb"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type TestSeeder struct {
	client *graphdb.GraphClient
}

func New(client *graphdb.GraphClient) TestSeeder {
	return TestSeeder{client: client}
}

// WipeGraph detach-deletes every node of the test database.
func (ts TestSeeder) WipeGraph(ctx context.Context) {
	ts.write(ctx, "MATCH (n) DETACH DELETE n", nil)
}

func (ts TestSeeder) write(ctx context.Context, query string, params map[string]any) []*neo4j.Record {
	session := ts.client.WriteSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		panic(fmt.Sprintf("Seeder query failed: %v\n%s", err, query))
	}

	records, err := result.Collect(ctx)
	if err != nil {
		panic(fmt.Sprintf("Seeder query failed: %v\n%s", err, query))
	}

	return records
}

func (ts TestSeeder) read(ctx context.Context, query string, params map[string]any) []*neo4j.Record {
	session := ts.client.ReadSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		panic(fmt.Sprintf("Seeder query failed: %v\n%s", err, query))
	}

	records, err := result.Collect(ctx)
	if err != nil {
		panic(fmt.Sprintf("Seeder query failed: %v\n%s", err, query))
	}

	return records
}
