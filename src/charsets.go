package main

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// charsetLayer is a named charset definition stored for a scope.
type charsetLayer struct {
	Name       string
	Definition string
}

// layerSource loads the charset layers of a scope, oldest first.
type layerSource interface {
	Layers(ctx context.Context, scope string) ([]charsetLayer, error)
}

// bigQueryLayers reads the layers from a table with the columns scope, layer,
// name and definition.
type bigQueryLayers struct {
	project string
	table   string
}

func (b *bigQueryLayers) Layers(ctx context.Context, scope string) ([]charsetLayer, error) {
	client, err := bigquery.NewClient(ctx, b.project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query(fmt.Sprintf("SELECT name, definition FROM `%s.%s` WHERE scope = @scope ORDER BY layer", b.project, b.table))
	q.Location = "US"
	q.Parameters = []bigquery.QueryParameter{{Name: "scope", Value: scope}}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var layers []charsetLayer
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		name, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		definition, ok := row[1].(string)
		if !ok {
			return nil, fmt.Errorf("row[1] is not a string: %v", row[1])
		}
		layers = append(layers, charsetLayer{Name: name, Definition: definition})
	}
	return layers, nil
}
