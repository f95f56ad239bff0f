package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Malcan-Technologies/shoraka-sub003/dbtypes"
	"github.com/cccteam/ccc"
	"github.com/go-playground/errors/v5"
)

// InsertAccessLog appends an access-log entry and returns its id.
func (d *PostgresDriver) InsertAccessLog(ctx context.Context, entry *dbtypes.AccessLog) (ccc.UUID, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	id, err := ccc.NewUUID()
	if err != nil {
		return ccc.NilUUID, errors.Wrap(err, "failed to generate UUID for access log")
	}

	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return ccc.NilUUID, errors.Wrap(err, "json.Marshal()")
	}

	query := `
		INSERT INTO "AccessLogs"
			("Id", "UserId", "Event", "Portal", "Ip", "UserAgent", "Device", "Success", "Metadata", "CreatedAt")
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	if _, err := d.conn.Exec(ctx, query, id, entry.UserID, entry.Event, entry.Portal, entry.IP, entry.UserAgent, entry.Device, entry.Success, metadata, time.Now()); err != nil {
		return ccc.NilUUID, errors.Wrap(err, "failed to insert into table AccessLogs")
	}

	return id, nil
}
