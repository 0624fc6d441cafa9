package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/leapstack-labs/registrar/internal/schema"
)

// InsertProject inserts a research project and returns its assigned id.
func (t *Tx) InsertProject(ctx context.Context, p *schema.ResearchProject) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO research_projects (title, principal_investigator_id, funding_sources, outcomes)
		 VALUES (?, ?, ?, ?)`,
		p.Title, p.PrincipalInvestigatorID, p.FundingSources, p.Outcomes,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert research project: %w", mapConstraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read research project id: %w", err)
	}
	p.ID = id
	return id, nil
}

// InsertTeamMember assigns a lecturer to a research project. The
// (project, lecturer) pair is the composite key.
func (t *Tx) InsertTeamMember(ctx context.Context, m *schema.ResearchTeamMember) error {
	if err := m.Validate(); err != nil {
		return err
	}

	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO research_team_members (project_id, lecturer_id) VALUES (?, ?)`,
		m.ProjectID, m.LecturerID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert team member: %w", mapConstraintErr(err))
	}
	return nil
}

// InsertPublication inserts a publication and returns its assigned id.
// A zero ProjectID stores NULL (publication not tied to a project).
func (t *Tx) InsertPublication(ctx context.Context, p *schema.Publication) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	var projectID sql.NullInt64
	if p.ProjectID > 0 {
		projectID = sql.NullInt64{Int64: p.ProjectID, Valid: true}
	}

	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO publications (title, year, type, lecturer_id, project_id)
		 VALUES (?, ?, ?, ?, ?)`,
		p.Title, p.Year, p.Type, p.LecturerID, projectID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert publication: %w", mapConstraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read publication id: %w", err)
	}
	p.ID = id
	return id, nil
}
