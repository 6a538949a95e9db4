/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/accessorhooks/datastore"
	storeerrors "github.com/suparena/accessorhooks/errors"
)

// Query returns the items of the partition params.Partition, following
// pagination until the table is exhausted or params.Limit items were read.
func (d *DynamodbDataStore[T]) Query(ctx context.Context, params *datastore.QueryParams) ([]T, error) {
	input, err := d.queryInput(params)
	if err != nil {
		return nil, err
	}

	results := make([]T, 0)
	for {
		out, err := d.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}

		var page []T
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal query page: %w", err)
		}
		results = append(results, page...)

		if params.Limit > 0 && int32(len(results)) >= params.Limit {
			return results[:params.Limit], nil
		}
		if len(out.LastEvaluatedKey) == 0 {
			return results, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (d *DynamodbDataStore[T]) queryInput(params *datastore.QueryParams) (*sdk.QueryInput, error) {
	if params == nil || params.Partition == "" {
		return nil, storeerrors.NewValidationError("Partition", "partition key value is required")
	}

	partitionKey := "PK"
	var indexName *string
	if params.IndexName != "" {
		cfg, ok := GetGSIConfig(params.IndexName)
		if !ok {
			return nil, storeerrors.NewValidationError("IndexName", fmt.Sprintf("unknown index %q", params.IndexName))
		}
		partitionKey = cfg.PartitionKeyName
		indexName = aws.String(cfg.IndexName)
	}

	input := &sdk.QueryInput{
		TableName:              &d.tableName,
		IndexName:              indexName,
		KeyConditionExpression: aws.String("#pk = :pk"),
		ExpressionAttributeNames: map[string]string{
			"#pk": partitionKey,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: params.Partition},
		},
		ScanIndexForward: aws.Bool(!params.Descending),
	}
	if params.Limit > 0 {
		input.Limit = aws.Int32(params.Limit)
	}
	return input, nil
}
