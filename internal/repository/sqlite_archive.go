package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwidmann/gatetrack/internal/db"
	"github.com/mwidmann/gatetrack/internal/domain"
)

// SQLiteArchiveRepo implements ArchiveRepo over the three-table schema:
// projects(id, name, type); modules(id, project_id, name, parent_module_id)
// where a non-null parent encodes a sub-module; gateways as a generic
// attribute table shared by projects and modules.
type SQLiteArchiveRepo struct {
	db db.DBTX
}

// NewSQLiteArchiveRepo creates an archive repo over the given connection or
// transaction. Exports should run inside a UnitOfWork.
func NewSQLiteArchiveRepo(conn db.DBTX) *SQLiteArchiveRepo {
	return &SQLiteArchiveRepo{db: conn}
}

const (
	entityProject = "project"
	entityModule  = "module"
)

// Export replaces the archive with the given hierarchy.
func (r *SQLiteArchiveRepo) Export(ctx context.Context, h *domain.Hierarchy) error {
	for _, table := range []string{"gateways", "modules", "projects"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, p := range h.Projects {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO projects (id, name, type) VALUES (?, ?, ?)`,
			p.ID, p.Name, string(p.Type)); err != nil {
			return fmt.Errorf("inserting project %q: %w", p.Name, err)
		}
		if err := r.insertGateways(ctx, entityProject, p.ID, p.Gateways); err != nil {
			return err
		}

		for _, m := range p.Modules {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO modules (id, project_id, name, parent_module_id) VALUES (?, ?, ?, NULL)`,
				m.ID, p.ID, m.Name); err != nil {
				return fmt.Errorf("inserting module %q: %w", m.Name, err)
			}
			if err := r.insertGateways(ctx, entityModule, m.ID, m.Gateways); err != nil {
				return err
			}

			for _, s := range m.SubModules {
				if _, err := r.db.ExecContext(ctx,
					`INSERT INTO modules (id, project_id, name, parent_module_id) VALUES (?, ?, ?, ?)`,
					s.ID, p.ID, s.Name, m.ID); err != nil {
					return fmt.Errorf("inserting sub-module %q: %w", s.Name, err)
				}
				if err := r.insertGateways(ctx, entityModule, s.ID, s.Gateways); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (r *SQLiteArchiveRepo) insertGateways(ctx context.Context, entityType string, entityID int, g domain.Gateways) error {
	for _, gw := range domain.GatewayOrder {
		rec := g[gw]
		if rec.Plan.IsZero() && rec.Actual.IsZero() && rec.ChangeRef == "" {
			continue
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO gateways (entity_type, entity_id, gateway, plan_date, actual_date, ecn)
			  VALUES (?, ?, ?, ?, ?, ?)`,
			entityType, entityID, string(gw),
			rec.Plan.String(), rec.Actual.String(), rec.ChangeRef); err != nil {
			return fmt.Errorf("inserting gateway %s for %s %d: %w", gw, entityType, entityID, err)
		}
	}
	return nil
}

// Load rebuilds the hierarchy from the archive. Modules with a NULL parent
// become modules, the rest sub-modules of their parent. Gateway sets are
// completed with empty records; identity is validated.
func (r *SQLiteArchiveRepo) Load(ctx context.Context) (*domain.Hierarchy, error) {
	h := &domain.Hierarchy{}
	projectsByID := make(map[int]*domain.Project)

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, type FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int
		var name, typ string
		if err := rows.Scan(&id, &name, &typ); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		p := domain.NewProject(id, name, domain.ProjectType(typ))
		h.Projects = append(h.Projects, p)
		projectsByID[id] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	if err := r.loadModules(ctx, projectsByID); err != nil {
		return nil, err
	}
	if err := r.loadGateways(ctx, h); err != nil {
		return nil, err
	}
	if err := h.ValidateIdentity(); err != nil {
		return nil, err
	}
	return h, nil
}

func (r *SQLiteArchiveRepo) loadModules(ctx context.Context, projectsByID map[int]*domain.Project) error {
	// Parents first so sub-module rows always find their module.
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, name, parent_module_id FROM modules
		  ORDER BY parent_module_id IS NOT NULL, id`)
	if err != nil {
		return fmt.Errorf("listing modules: %w", err)
	}
	defer rows.Close()

	modulesByID := make(map[int]*domain.Module)
	for rows.Next() {
		var id, projectID int
		var name string
		var parentID sql.NullInt64
		if err := rows.Scan(&id, &projectID, &name, &parentID); err != nil {
			return fmt.Errorf("scanning module: %w", err)
		}

		if !parentID.Valid {
			m := domain.NewModule(id, name)
			p := projectsByID[projectID]
			if p == nil {
				return fmt.Errorf("module %d references missing project %d", id, projectID)
			}
			p.Modules = append(p.Modules, m)
			modulesByID[id] = m
			continue
		}

		parent := modulesByID[int(parentID.Int64)]
		if parent == nil {
			return fmt.Errorf("sub-module %d references missing module %d", id, parentID.Int64)
		}
		parent.SubModules = append(parent.SubModules, domain.NewSubModule(id, name))
	}
	return rows.Err()
}

func (r *SQLiteArchiveRepo) loadGateways(ctx context.Context, h *domain.Hierarchy) error {
	gatewaySets := make(map[string]domain.Gateways)
	for _, p := range h.Projects {
		gatewaySets[entityKey(entityProject, p.ID)] = p.Gateways
		for _, m := range p.Modules {
			gatewaySets[entityKey(entityModule, m.ID)] = m.Gateways
			for _, s := range m.SubModules {
				gatewaySets[entityKey(entityModule, s.ID)] = s.Gateways
			}
		}
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT entity_type, entity_id, gateway, plan_date, actual_date, ecn FROM gateways`)
	if err != nil {
		return fmt.Errorf("listing gateways: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entityType, gateway, planStr, actualStr, ecn string
		var entityID int
		if err := rows.Scan(&entityType, &entityID, &gateway, &planStr, &actualStr, &ecn); err != nil {
			return fmt.Errorf("scanning gateway: %w", err)
		}

		set := gatewaySets[entityKey(entityType, entityID)]
		if set == nil {
			return fmt.Errorf("gateway fact references missing %s %d", entityType, entityID)
		}
		gw, err := domain.ParseGatewayID(gateway)
		if err != nil {
			return err
		}
		plan, err := domain.ParseDate(planStr)
		if err != nil {
			return fmt.Errorf("%s %d gateway %s plan: %w", entityType, entityID, gw, err)
		}
		actual, err := domain.ParseDate(actualStr)
		if err != nil {
			return fmt.Errorf("%s %d gateway %s actual: %w", entityType, entityID, gw, err)
		}
		rec := set[gw]
		rec.Plan = plan
		rec.Actual = actual
		rec.ChangeRef = ecn
	}
	return rows.Err()
}

func entityKey(entityType string, id int) string {
	return fmt.Sprintf("%s/%d", entityType, id)
}
