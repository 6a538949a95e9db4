/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	storeerrors "github.com/suparena/accessorhooks/errors"
	"github.com/suparena/accessorhooks/registry"
)

// EntityTypeAttribute is added to every stored item with the Go type name of T.
// The leading underscore keeps it apart from entity fields such as
// journal.Record.EntityType.
const EntityTypeAttribute = "_entityType"

// DynamodbDataStore implements datastore.DataStore[T] by using AWS DynamoDB as the underlying data store.
type DynamodbDataStore[T any] struct {
	client    Client
	tableName string
}

// NewDynamodbDataStore constructs a new DynamodbDataStore for type T.
func NewDynamodbDataStore[T any](client Client, tableName string) (*DynamodbDataStore[T], error) {
	if client == nil {
		return nil, storeerrors.NewValidationError("client", "DynamoDB client is nil")
	}
	if tableName == "" {
		return nil, storeerrors.NewValidationError("tableName", "table name is empty")
	}
	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
	}, nil
}

// Connect creates a DynamoDB client from opts and a DynamodbDataStore on top of it.
func Connect[T any](ctx context.Context, opts ClientOptions, tableName string) (*DynamodbDataStore[T], error) {
	client, err := NewDynamoDBClient(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewDynamodbDataStore[T](client, tableName)
}

// TableName returns the table the store reads and writes.
func (d *DynamodbDataStore[T]) TableName() string {
	return d.tableName
}

func (d *DynamodbDataStore[T]) indexMap() (map[string]string, error) {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return nil, fmt.Errorf("%w: %s", storeerrors.ErrNoIndexMap, entityType[T]())
	}
	return indexMap, nil
}

// GetOne retrieves a single item using a string key. Every macro of the PK and
// SK templates is replaced with key.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	indexMap, err := d.indexMap()
	if err != nil {
		return nil, err
	}

	keyMap, err := buildKeyFromExpanded(registry.ExpandKey(indexMap, key))
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, storeerrors.NewNotFoundError(entityType[T](), key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores entity, adding the key attributes expanded from its index map.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	indexMap, err := d.indexMap()
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	expanded := registry.ExpandMacros(indexMap, av)
	if expanded["PK"] == "" {
		return storeerrors.NewValidationError("PK", "expanded partition key is empty")
	}

	for k, v := range expanded {
		if v == "" {
			continue
		}
		av[attributeName(k)] = &types.AttributeValueMemberS{Value: v}
	}
	av[EntityTypeAttribute] = &types.AttributeValueMemberS{Value: entityType[T]()}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes an item using a string key. Deleting a missing item returns
// a NotFoundError.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	indexMap, err := d.indexMap()
	if err != nil {
		return err
	}

	keyMap, err := buildKeyFromExpanded(registry.ExpandKey(indexMap, key))
	if err != nil {
		return fmt.Errorf("failed to build key for Delete: %w", err)
	}

	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:           &d.tableName,
		Key:                 keyMap,
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return storeerrors.NewNotFoundError(entityType[T](), key)
		}
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded index map.
// It assumes that the expanded map has valid non-empty values for "PK" and "SK".
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, fmt.Errorf("expanded index map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}

func entityType[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
