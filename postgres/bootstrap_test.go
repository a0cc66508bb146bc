package postgres

import (
	"context"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBootstrap(t *testing.T) {
	t.Parallel()
	Convey("Bootstrap runs every statement under the migration lock", t, func() {
		p, mock := newMockStore(t)

		mock.ExpectExec("SET lock_timeout").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("SET statement_timeout").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("pg_advisory_lock").WithArgs(migrationLockID).WillReturnResult(sqlmock.NewResult(0, 0))
		for _, group := range statementGroups {
			for range group {
				mock.ExpectExec(".+").WillReturnResult(sqlmock.NewResult(0, 0))
			}
		}
		mock.ExpectExec("pg_advisory_unlock").WithArgs(migrationLockID).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("RESET lock_timeout").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("RESET statement_timeout").WillReturnResult(sqlmock.NewResult(0, 0))

		So(p.Bootstrap(context.Background()), ShouldBeNil)
		So(mock.ExpectationsWereMet(), ShouldBeNil)
	})

	Convey("A failing statement aborts the run and still releases the lock", t, func() {
		p, mock := newMockStore(t)

		mock.ExpectExec("SET lock_timeout").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("SET statement_timeout").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("pg_advisory_lock").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(".+").WillReturnError(errors.New("permission denied"))
		mock.ExpectExec("pg_advisory_unlock").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("RESET lock_timeout").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("RESET statement_timeout").WillReturnResult(sqlmock.NewResult(0, 0))

		err := p.Bootstrap(context.Background())
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "bootstrap: statement failed")
		So(mock.ExpectationsWereMet(), ShouldBeNil)
	})
}

func TestStatementsAreGuarded(t *testing.T) {
	t.Parallel()
	Convey("Every table rename is guarded on the legacy table existing", t, func() {
		for _, stmt := range renameStatements {
			So(stmt, ShouldContainSubstring, "to_regclass")
		}
	})

	Convey("Every create tolerates the object already existing", t, func() {
		for _, stmt := range createStatements {
			So(stmt, ShouldContainSubstring, "IF NOT EXISTS")
		}
	})

	Convey("Every added column or index tolerates already existing", t, func() {
		for _, stmt := range addColumnStatements {
			So(stmt, ShouldContainSubstring, "IF NOT EXISTS")
		}
	})

	Convey("Every column rename is guarded on the legacy column existing", t, func() {
		for _, stmt := range columnRenameStatements {
			So(stmt, ShouldContainSubstring, "information_schema.columns")
		}
	})
}

func TestTriggerAgreesWithModelNormaliser(t *testing.T) {
	t.Parallel()
	source := strings.Join(triggerStatements, "\n")

	Convey("Every label prefix the model normaliser maps appears in the trigger", t, func() {
		for _, prefix := range []string{"одобр", "принят", "approve", "accept", "отклон", "отказ", "reject", "declin"} {
			So(source, ShouldContainSubstring, prefix)
		}
	})

	Convey("The trigger emits the same canonical labels as the model", t, func() {
		So(source, ShouldContainSubstring, "'"+models.StatusApproved+"'")
		So(source, ShouldContainSubstring, "'"+models.StatusRejected+"'")
	})

	Convey("The trigger is recreated rather than duplicated", t, func() {
		So(source, ShouldContainSubstring, "CREATE OR REPLACE FUNCTION")
		So(source, ShouldContainSubstring, "DROP TRIGGER IF EXISTS")
	})
}
