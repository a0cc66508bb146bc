package postgres

import (
	"context"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
)

// migrationLockID serialises schema evolution between instances that start
// in parallel. The value is fixed for the lifetime of the project.
const migrationLockID = 764392

// Table renames applied before anything else, so legacy deployments keep
// their data under the current names. Each is guarded so a fresh database
// or an already-renamed one is untouched.
var renameStatements = []string{
	`DO $$
	BEGIN
		IF to_regclass('tests') IS NOT NULL AND to_regclass('assessments') IS NULL THEN
			ALTER TABLE tests RENAME TO assessments;
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF to_regclass('test_attempts') IS NOT NULL AND to_regclass('assessment_attempts') IS NULL THEN
			ALTER TABLE test_attempts RENAME TO assessment_attempts;
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF to_regclass('commission_logs') IS NOT NULL AND to_regclass('commission_events') IS NULL THEN
			ALTER TABLE commission_logs RENAME TO commission_events;
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF to_regclass('internal_user_logs') IS NOT NULL AND to_regclass('provisioning_events') IS NULL THEN
			ALTER TABLE internal_user_logs RENAME TO provisioning_events;
		END IF;
	END $$`,
}

// Column renames cover the names the legacy schema used before the tables
// were renamed. They run before ADD COLUMN so data is carried over rather
// than stranded next to a fresh empty column.
var columnRenameStatements = []string{
	`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'applications' AND column_name = 'test_link')
			AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'applications' AND column_name = 'assessment_link') THEN
			ALTER TABLE applications RENAME COLUMN test_link TO assessment_link;
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'applications' AND column_name = 'commission_status')
			AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'applications' AND column_name = 'status') THEN
			ALTER TABLE applications RENAME COLUMN commission_status TO status;
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'applications' AND column_name = 'commission_comment')
			AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'applications' AND column_name = 'status_comment') THEN
			ALTER TABLE applications RENAME COLUMN commission_comment TO status_comment;
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF to_regclass('commission_events') IS NOT NULL THEN
			IF EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'commission_events' AND column_name = 'app_id')
				AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'commission_events' AND column_name = 'application_id') THEN
				ALTER TABLE commission_events RENAME COLUMN app_id TO application_id;
			END IF;
			IF EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'commission_events' AND column_name = 'admin_id')
				AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'commission_events' AND column_name = 'actor_id') THEN
				ALTER TABLE commission_events RENAME COLUMN admin_id TO actor_id;
			END IF;
			IF EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'commission_events' AND column_name = 'ip_addr')
				AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'commission_events' AND column_name = 'ip') THEN
				ALTER TABLE commission_events RENAME COLUMN ip_addr TO ip;
			END IF;
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF to_regclass('provisioning_events') IS NOT NULL THEN
			IF EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'provisioning_events' AND column_name = 'actor_user_id')
				AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'provisioning_events' AND column_name = 'actor_id') THEN
				ALTER TABLE provisioning_events RENAME COLUMN actor_user_id TO actor_id;
			END IF;
			IF EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'provisioning_events' AND column_name = 'target_user_id')
				AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'provisioning_events' AND column_name = 'target_id') THEN
				ALTER TABLE provisioning_events RENAME COLUMN target_user_id TO target_id;
			END IF;
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'assessment_attempts' AND column_name = 'test_id')
			AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'assessment_attempts' AND column_name = 'assessment_id') THEN
			ALTER TABLE assessment_attempts RENAME COLUMN test_id TO assessment_id;
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'password_resets' AND column_name = 'token')
			AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'password_resets' AND column_name = 'token_hash') THEN
			ALTER TABLE password_resets RENAME COLUMN token TO token_hash;
		END IF;
		IF EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'password_resets' AND column_name = 'used') THEN
			ALTER TABLE password_resets ADD COLUMN IF NOT EXISTS used_at timestamptz;
			UPDATE password_resets SET used_at = now() WHERE used AND used_at IS NULL;
			ALTER TABLE password_resets DROP COLUMN used;
		END IF;
	END $$`,
}

var createStatements = []string{
	`CREATE SEQUENCE IF NOT EXISTS applications_public_no_seq`,

	`CREATE TABLE IF NOT EXISTS users (
		id text PRIMARY KEY,
		email text NOT NULL UNIQUE,
		full_name text NOT NULL DEFAULT '',
		password_hash text NOT NULL DEFAULT '',
		role text NOT NULL DEFAULT 'user',
		is_active boolean NOT NULL DEFAULT true,
		must_change_password boolean NOT NULL DEFAULT false,
		access_expires_at timestamptz,
		inn text NOT NULL DEFAULT '',
		phone text NOT NULL DEFAULT '',
		position text NOT NULL DEFAULT '',
		priority integer NOT NULL DEFAULT 0,
		created_at timestamptz NOT NULL DEFAULT now(),
		last_login_at timestamptz
	)`,

	`CREATE TABLE IF NOT EXISTS applications (
		id text PRIMARY KEY,
		public_no bigint NOT NULL DEFAULT nextval('applications_public_no_seq'),
		user_id text NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		form_data jsonb NOT NULL DEFAULT '{}'::jsonb,
		status text NOT NULL DEFAULT '',
		status_comment text NOT NULL DEFAULT '',
		decided_by text NOT NULL DEFAULT '',
		decided_at timestamptz,
		assessment_link text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		CONSTRAINT applications_user_id_key UNIQUE (user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS assessments (
		id text PRIMARY KEY,
		title text NOT NULL,
		description text NOT NULL DEFAULT '',
		duration_minutes integer NOT NULL DEFAULT 60,
		state text NOT NULL DEFAULT 'created',
		questions jsonb NOT NULL DEFAULT '[]'::jsonb,
		created_by text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS assessment_attempts (
		id text PRIMARY KEY,
		assessment_id text NOT NULL REFERENCES assessments (id) ON DELETE CASCADE,
		user_id text NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		state text NOT NULL DEFAULT 'started',
		started_at timestamptz NOT NULL DEFAULT now(),
		deadline_at timestamptz,
		finished_at timestamptz,
		answers jsonb NOT NULL DEFAULT '[]'::jsonb,
		score integer NOT NULL DEFAULT 0,
		total integer NOT NULL DEFAULT 0,
		CONSTRAINT assessment_attempts_user_assessment_key UNIQUE (user_id, assessment_id)
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id text PRIMARY KEY,
		user_id text NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		token_hash text NOT NULL UNIQUE,
		created_at timestamptz NOT NULL DEFAULT now(),
		expires_at timestamptz NOT NULL,
		last_seen_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS password_resets (
		id text PRIMARY KEY,
		user_id text NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		token_hash text NOT NULL UNIQUE,
		created_at timestamptz NOT NULL DEFAULT now(),
		expires_at timestamptz NOT NULL,
		used_at timestamptz
	)`,

	`CREATE TABLE IF NOT EXISTS commission_events (
		id text PRIMARY KEY,
		application_id text NOT NULL,
		actor_id text NOT NULL,
		action text NOT NULL,
		old_status text NOT NULL DEFAULT '',
		new_status text NOT NULL DEFAULT '',
		comment text NOT NULL DEFAULT '',
		ip text NOT NULL DEFAULT '',
		user_agent text NOT NULL DEFAULT '',
		meta jsonb NOT NULL DEFAULT '{}'::jsonb,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS provisioning_events (
		id text PRIMARY KEY,
		actor_id text NOT NULL,
		target_id text NOT NULL DEFAULT '',
		action text NOT NULL,
		meta jsonb NOT NULL DEFAULT '{}'::jsonb,
		ip text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
}

// Columns added over the lifetime of the schema. ADD COLUMN IF NOT EXISTS
// keeps legacy deployments in step with the CREATE TABLE definitions above.
var addColumnStatements = []string{
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS is_active boolean NOT NULL DEFAULT true`,
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS must_change_password boolean NOT NULL DEFAULT false`,
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS access_expires_at timestamptz`,
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS inn text NOT NULL DEFAULT ''`,
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS phone text NOT NULL DEFAULT ''`,
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS position text NOT NULL DEFAULT ''`,
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS priority integer NOT NULL DEFAULT 0`,
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS last_login_at timestamptz`,

	`ALTER TABLE applications ADD COLUMN IF NOT EXISTS public_no bigint`,
	`ALTER TABLE applications ADD COLUMN IF NOT EXISTS status text NOT NULL DEFAULT ''`,
	`ALTER TABLE applications ADD COLUMN IF NOT EXISTS status_comment text NOT NULL DEFAULT ''`,
	`ALTER TABLE applications ADD COLUMN IF NOT EXISTS decided_by text NOT NULL DEFAULT ''`,
	`ALTER TABLE applications ADD COLUMN IF NOT EXISTS decided_at timestamptz`,
	`ALTER TABLE applications ADD COLUMN IF NOT EXISTS assessment_link text NOT NULL DEFAULT ''`,
	`ALTER TABLE applications ADD COLUMN IF NOT EXISTS updated_at timestamptz NOT NULL DEFAULT now()`,

	`ALTER TABLE assessments ADD COLUMN IF NOT EXISTS state text NOT NULL DEFAULT 'created'`,
	`ALTER TABLE assessments ADD COLUMN IF NOT EXISTS created_by text NOT NULL DEFAULT ''`,
	`ALTER TABLE assessments ADD COLUMN IF NOT EXISTS updated_at timestamptz NOT NULL DEFAULT now()`,

	`ALTER TABLE assessment_attempts ADD COLUMN IF NOT EXISTS state text NOT NULL DEFAULT 'started'`,
	`ALTER TABLE assessment_attempts ADD COLUMN IF NOT EXISTS deadline_at timestamptz`,
	`ALTER TABLE assessment_attempts ADD COLUMN IF NOT EXISTS total integer NOT NULL DEFAULT 0`,

	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'assessment_attempts_user_assessment_key') THEN
			ALTER TABLE assessment_attempts ADD CONSTRAINT assessment_attempts_user_assessment_key UNIQUE (user_id, assessment_id);
		END IF;
	END $$`,

	`ALTER TABLE password_resets ADD COLUMN IF NOT EXISTS used_at timestamptz`,
	`ALTER TABLE provisioning_events ADD COLUMN IF NOT EXISTS created_at timestamptz NOT NULL DEFAULT now()`,

	`ALTER TABLE commission_events ADD COLUMN IF NOT EXISTS old_status text NOT NULL DEFAULT ''`,
	`ALTER TABLE commission_events ADD COLUMN IF NOT EXISTS new_status text NOT NULL DEFAULT ''`,
	`ALTER TABLE commission_events ADD COLUMN IF NOT EXISTS user_agent text NOT NULL DEFAULT ''`,
	`ALTER TABLE commission_events ADD COLUMN IF NOT EXISTS meta jsonb NOT NULL DEFAULT '{}'::jsonb`,

	`CREATE INDEX IF NOT EXISTS idx_users_email ON users (email)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_created ON applications (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_attempts_user ON assessment_attempts (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions (expires_at)`,
	`CREATE INDEX IF NOT EXISTS idx_password_resets_expires ON password_resets (expires_at)`,
	`CREATE INDEX IF NOT EXISTS idx_commission_events_created ON commission_events (created_at)`,
}

// The trigger keeps every stored application status canonical. The legacy
// portal wrote free-text labels, including Russian ones, so normalisation
// has to happen below every writer, not just this API.
var triggerStatements = []string{
	`CREATE OR REPLACE FUNCTION applications_normalise_status() RETURNS trigger AS $$
	DECLARE
		s text;
	BEGIN
		s := lower(btrim(coalesce(NEW.status, '')));
		IF s IN ('approved', 'rejected') THEN
			NEW.status := s;
		ELSIF s LIKE 'одобр%' OR s LIKE 'принят%' OR s LIKE 'approve%' OR s LIKE 'accept%' THEN
			NEW.status := 'approved';
		ELSIF s LIKE 'отклон%' OR s LIKE 'отказ%' OR s LIKE 'reject%' OR s LIKE 'declin%' THEN
			NEW.status := 'rejected';
		ELSE
			NEW.status := '';
		END IF;
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`,

	`DROP TRIGGER IF EXISTS applications_normalise_status ON applications`,

	`CREATE TRIGGER applications_normalise_status
		BEFORE INSERT OR UPDATE OF status ON applications
		FOR EACH ROW EXECUTE FUNCTION applications_normalise_status()`,
}

// repairStatements route every stored row through the trigger once, fix up
// public numbers for rows that predate the sequence, and move the sequence
// past the highest number in use.
var repairStatements = []string{
	`UPDATE applications SET status = status WHERE status IS NULL OR status NOT IN ('', 'approved', 'rejected')`,

	`UPDATE assessment_attempts SET state = 'completed' WHERE finished_at IS NOT NULL AND state <> 'completed'`,

	`UPDATE assessment_attempts SET total = jsonb_array_length(answers)
		WHERE total = 0 AND answers IS NOT NULL AND jsonb_typeof(answers) = 'array' AND jsonb_array_length(answers) > 0`,

	`UPDATE applications SET public_no = nextval('applications_public_no_seq') WHERE public_no IS NULL`,

	`ALTER TABLE applications ALTER COLUMN public_no SET NOT NULL`,

	`ALTER TABLE applications ALTER COLUMN public_no SET DEFAULT nextval('applications_public_no_seq')`,

	`SELECT setval('applications_public_no_seq', coalesce(max(public_no), 0) + 1, false) FROM applications`,
}

// statementGroups is every schema statement in execution order
var statementGroups = [][]string{
	renameStatements,
	createStatements,
	columnRenameStatements,
	addColumnStatements,
	triggerStatements,
	repairStatements,
}

// Bootstrap evolves the database schema to what this service expects. It is
// idempotent and safe to run from every instance at startup: a fixed
// advisory lock serialises instances that start in parallel.
func (p *Postgres) Bootstrap(ctx context.Context) error {
	conn, err := p.db.Connx(ctx)
	if err != nil {
		return errors.Wrap(err, "bootstrap: failed to obtain a connection")
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Error(ctx, "bootstrap: failed to close connection", cerr)
		}
	}()

	if _, err := conn.ExecContext(ctx, `SET lock_timeout TO '5s'`); err != nil {
		return errors.Wrap(err, "bootstrap: failed to set lock timeout")
	}
	if _, err := conn.ExecContext(ctx, `SET statement_timeout TO '600s'`); err != nil {
		return errors.Wrap(err, "bootstrap: failed to set statement timeout")
	}

	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, migrationLockID); err != nil {
		return errors.Wrap(err, "bootstrap: failed to acquire the migration lock")
	}
	defer func() {
		if _, uerr := conn.ExecContext(ctx, `SELECT pg_advisory_unlock($1)`, migrationLockID); uerr != nil {
			log.Error(ctx, "bootstrap: failed to release the migration lock", uerr)
		}
		for _, reset := range []string{`RESET lock_timeout`, `RESET statement_timeout`} {
			if _, rerr := conn.ExecContext(ctx, reset); rerr != nil {
				log.Error(ctx, "bootstrap: failed to reset a session timeout", rerr)
			}
		}
	}()

	for _, group := range statementGroups {
		for _, stmt := range group {
			if _, err := conn.ExecContext(ctx, stmt); err != nil {
				return errors.Wrapf(err, "bootstrap: statement failed: %.80s", stmt)
			}
		}
	}

	log.Info(ctx, "bootstrap: schema is up to date")
	return nil
}
