package postgres

import (
	"context"
	"fmt"

	"github.com/ONSdigital/dp-applications-api/models"
)

const commissionEventColumns = `e.id, e.application_id, e.actor_id, e.action, e.old_status,
	e.new_status, e.comment, e.ip, e.user_agent, e.meta, e.created_at,
	COALESCE(u.email, '') AS actor_email`

const commissionEventsFrom = ` FROM commission_events e LEFT JOIN users u ON u.id = e.actor_id WHERE `

// CreateCommissionEvent appends a commission audit event
func (p *Postgres) CreateCommissionEvent(ctx context.Context, event *models.CommissionEvent) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	_, err := p.db.NamedExecContext(ctx, `
		INSERT INTO commission_events (id, application_id, actor_id, action, old_status, new_status,
			comment, ip, user_agent, meta, created_at)
		VALUES (:id, :application_id, :actor_id, :action, :old_status, :new_status,
			:comment, :ip, :user_agent, :meta, :created_at)`, event)
	return err
}

// GetCommissionEvents lists filtered commission audit events, newest first,
// with the actor email joined on. It returns the page and the total count.
func (p *Postgres) GetCommissionEvents(ctx context.Context, filter models.CommissionEventsFilter, offset, limit int) ([]models.CommissionEvent, int, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	where, args := buildCommissionEventsWhere(filter)

	var totalCount int
	if err := p.db.GetContext(ctx, &totalCount, `SELECT count(*)`+commissionEventsFrom+where, args...); err != nil {
		return nil, 0, err
	}

	events := []models.CommissionEvent{}
	if totalCount < 1 || limit == 0 {
		return events, totalCount, nil
	}

	query := fmt.Sprintf(`SELECT `+commissionEventColumns+commissionEventsFrom+where+`
		 ORDER BY e.created_at DESC, e.id
		 LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	if err := p.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, 0, err
	}
	return events, totalCount, nil
}

// CountCommissionEventsByAction returns how many filtered events exist per action
func (p *Postgres) CountCommissionEventsByAction(ctx context.Context, filter models.CommissionEventsFilter) (map[string]int, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	where, args := buildCommissionEventsWhere(filter)

	rows, err := p.db.QueryxContext(ctx, `
		SELECT e.action, count(*)`+commissionEventsFrom+where+` GROUP BY e.action`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var action string
		var count int
		if err := rows.Scan(&action, &count); err != nil {
			return nil, err
		}
		counts[action] = count
	}
	return counts, rows.Err()
}

// StreamCommissionEvents walks every filtered event, newest first, calling
// fn per row. Exports use this to avoid holding the whole result in memory.
func (p *Postgres) StreamCommissionEvents(ctx context.Context, filter models.CommissionEventsFilter, fn func(*models.CommissionEvent) error) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	where, args := buildCommissionEventsWhere(filter)

	rows, err := p.db.QueryxContext(ctx, `
		SELECT `+commissionEventColumns+commissionEventsFrom+where+`
		 ORDER BY e.created_at DESC, e.id`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var event models.CommissionEvent
		if err := rows.StructScan(&event); err != nil {
			return err
		}
		if err := fn(&event); err != nil {
			return err
		}
	}
	return rows.Err()
}

// CreateProvisioningEvent appends a provisioning audit event
func (p *Postgres) CreateProvisioningEvent(ctx context.Context, event *models.ProvisioningEvent) error {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	_, err := p.db.NamedExecContext(ctx, `
		INSERT INTO provisioning_events (id, actor_id, target_id, action, meta, ip, created_at)
		VALUES (:id, :actor_id, :target_id, :action, :meta, :ip, :created_at)`, event)
	return err
}

// GetProvisioningEvents lists the most recent provisioning audit events
func (p *Postgres) GetProvisioningEvents(ctx context.Context, limit int) ([]models.ProvisioningEvent, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	events := []models.ProvisioningEvent{}
	err := p.db.SelectContext(ctx, &events, `
		SELECT id, actor_id, target_id, action, meta, ip, created_at
		  FROM provisioning_events
		 ORDER BY created_at DESC, id
		 LIMIT $1`, limit)
	return events, err
}
