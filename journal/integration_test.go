//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package journal_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/accessorhooks/datastore/ddb"
	"github.com/suparena/accessorhooks/journal"
)

func TestIntegrationTrackAndReplay(t *testing.T) {
	if err := godotenv.Load("../.env"); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}
	tableName := os.Getenv("AWS_DDB_TABLE")
	if tableName == "" {
		t.Skip("AWS_DDB_TABLE not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := ddb.Connect[journal.Record](ctx, ddb.ClientOptions{
		Region:    os.Getenv("AWS_REGION"),
		AccessKey: os.Getenv("AWS_ACCESS_KEY"),
		SecretKey: os.Getenv("AWS_SECRET_KEY"),
		Endpoint:  os.Getenv("AWS_DDB_ENDPOINT"),
	}, tableName)
	require.NoError(t, err)

	j := journal.New(store)
	schema := journal.Track(baseBuilder(), j, "IntegrationUser", userID, "name", "age").MustBuild()

	id := fmt.Sprintf("it-%d", time.Now().UnixNano())
	t.Cleanup(func() {
		_, _ = j.Forget(context.Background(), "IntegrationUser", id)
	})

	u := &user{ID: id}
	require.NoError(t, schema.Set(u, "name", "Ivan"))
	require.NoError(t, schema.Set(u, "age", 30))

	// GSI reads are eventually consistent
	require.Eventually(t, func() bool {
		history, err := j.History(ctx, "IntegrationUser", id)
		return err == nil && len(history) == 2
	}, 10*time.Second, 500*time.Millisecond)

	target := &user{ID: id}
	n, err := journal.Replay(ctx, j, baseBuilder().MustBuild(), "IntegrationUser", id, target)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "Ivan", target.Name)
	assert.Equal(t, 30, target.Age)
}
