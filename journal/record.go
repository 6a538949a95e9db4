/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package journal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/accessorhooks/registry"
)

// IndexName is the secondary index holding the history of an entity.
const IndexName = "GSI1"

// Record is one journaled write.
type Record struct {
	ID         string `json:"id"`
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
	Attribute  string `json:"attribute"`
	// Value is the JSON encoding of the written value.
	Value    string `json:"value"`
	Sequence int64  `json:"sequence"`
	// ChangedAt is an RFC 3339 timestamp with millisecond precision.
	ChangedAt string `json:"changedAt"`
}

func init() {
	registry.MustRegisterIndexMap[Record](map[string]string{
		"PK":     "CHANGE#{ID}",
		"SK":     "CHANGE#{ID}",
		"GSI1PK": "ENTITY#{EntityType}#{EntityID}",
		"GSI1SK": "SEQ#{Sequence}",
	})
}

// PartitionKey returns the GSI1 partition shared by the records of one entity.
func PartitionKey(entityType, entityID string) string {
	return fmt.Sprintf("ENTITY#%s#%s", entityType, entityID)
}

// Time parses ChangedAt.
func (r Record) Time() (time.Time, error) {
	dt, err := strfmt.ParseDateTime(r.ChangedAt)
	if err != nil {
		return time.Time{}, err
	}
	return time.Time(dt), nil
}

// Decode unmarshals the recorded value into v.
func (r Record) Decode(v any) error {
	return json.Unmarshal([]byte(r.Value), v)
}

func formatTime(t time.Time) string {
	return strfmt.DateTime(t.UTC()).String()
}
