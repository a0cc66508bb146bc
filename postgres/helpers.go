package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

// isUniqueViolation reports whether the error is a postgres unique
// violation on one of the given constraints. Legacy deployments carry
// older constraint names, so callers list every name in play.
func isUniqueViolation(err error, constraints ...string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return false
	}
	for _, constraint := range constraints {
		if pqErr.Constraint == constraint {
			return true
		}
	}
	return false
}

// buildCommissionEventsWhere renders the filter as a WHERE clause over the
// audit listing join (events e, actor u). The free-text query matches the
// application id, the comment, the actor, the user agent and the IP.
func buildCommissionEventsWhere(filter models.CommissionEventsFilter) (string, []interface{}) {
	where := []string{"1=1"}
	args := []interface{}{}

	next := func() string { return fmt.Sprintf("$%d", len(args)) }

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := next()
		where = append(where, "(e.application_id ILIKE "+n+
			" OR e.comment ILIKE "+n+
			" OR COALESCE(u.email, '') ILIKE "+n+
			" OR COALESCE(u.full_name, '') ILIKE "+n+
			" OR e.user_agent ILIKE "+n+
			" OR e.ip ILIKE "+n+")")
	}
	if filter.Action != "" {
		args = append(args, filter.Action)
		where = append(where, "e.action = "+next())
	}
	if filter.NewStatus != "" {
		args = append(args, models.NormaliseStatus(filter.NewStatus))
		where = append(where, "e.new_status = "+next())
	}
	if filter.ActorID != "" {
		args = append(args, filter.ActorID)
		where = append(where, "e.actor_id = "+next())
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where = append(where, "e.created_at >= "+next())
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where = append(where, "e.created_at <= "+next())
	}

	return strings.Join(where, " AND "), args
}
