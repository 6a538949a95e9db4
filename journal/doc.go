/*
Package journal records hooked attribute writes in a DataStore and replays them.

Track binds an after-change hook per attribute that appends a Record holding the
JSON encoded value:

	j := journal.New(store)
	schema := journal.Track(
	    accessorhooks.Define[*User]().Accessor("name", "email"),
	    j, "User", func(u *User) string { return u.ID },
	    "name", "email",
	).MustBuild()

Records of one entity share the GSI1 partition returned by PartitionKey and are
ordered by Sequence. Replay applies the history of an entity to a fresh owner
through a schema's setters, so before hooks validate the values again.

NewMemoryStore returns an in-memory store for tests and the CLI memory backend;
ddb.NewDynamodbDataStore[Record] serves the same index map from DynamoDB.
*/
package journal
