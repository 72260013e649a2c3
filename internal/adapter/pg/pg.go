package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AwesomeTrading/ordercore/internal/codec"
	"github.com/AwesomeTrading/ordercore/internal/domain"
	"github.com/AwesomeTrading/ordercore/internal/port"
)

var _ port.EventStore = (*PgEventStore)(nil)

// PgEventStore keeps the order event log in an order_events table with the
// event payload stored as JSONB.
//
//	CREATE TABLE order_events (
//	    event_id        UUID PRIMARY KEY,
//	    client_order_id TEXT   NOT NULL,
//	    event_type      TEXT   NOT NULL,
//	    ts_event        BIGINT NOT NULL,
//	    ts_init         BIGINT NOT NULL,
//	    payload         JSONB  NOT NULL
//	);
//	CREATE INDEX order_events_by_order ON order_events (client_order_id, ts_event, ts_init);
type PgEventStore struct {
	pool *pgxpool.Pool
}

// call Close when finish to work with database.
func NewPgEventStore(ctx context.Context, dsn string) (*PgEventStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pg: create pool: %w", err)
	}
	return &PgEventStore{pool: pool}, nil
}

func (p *PgEventStore) Close(ctx context.Context) {
	if p.pool != nil {
		p.pool.Close()
	}
}

func (p *PgEventStore) Append(ctx context.Context, ev domain.OrderEvent) error {
	if ev == nil {
		return errors.New("nil event")
	}
	payload, err := codec.EncodeJSON(ev)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `
INSERT INTO order_events(event_id, client_order_id, event_type, ts_event, ts_init, payload)
VALUES($1,$2,$3,$4,$5,$6)
ON CONFLICT (event_id) DO NOTHING
`, string(ev.GetEventID()), string(ev.GetClientOrderID()), ev.EventType(),
		int64(ev.GetTsEvent()), int64(ev.GetTsInit()), payload)
	return err
}

// Stream returns events for an order ordered by ts_event, with ts_init
// breaking ties for events stamped at the same venue time.
func (p *PgEventStore) Stream(ctx context.Context, clientOrderID domain.ClientOrderID) ([]domain.OrderEvent, error) {
	rows, err := p.pool.Query(ctx, `
SELECT payload
FROM order_events
WHERE client_order_id = $1
ORDER BY ts_event ASC, ts_init ASC
`, string(clientOrderID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.OrderEvent
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		ev, err := codec.DecodeJSON(payload)
		if err != nil {
			return nil, err
		}
		res = append(res, ev)
	}
	return res, rows.Err()
}
