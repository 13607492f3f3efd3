package localstore

import (
	"context"
	"fmt"
	"time"
)

// Seed fills the store with the demo data set: four fields, four demo
// projects with a standard section breakdown, and a handful of
// documents carrying the legacy placeholder content. Calling Seed on a
// populated store is a no-op.
func (db *DB) Seed(ctx context.Context) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM fields`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	fields := []struct{ id, name, info string }{
		{"1", "Индустриальный проект", "Проекты промышленного сектора"},
		{"2", "Исследовательский проект", "Научно-исследовательские проекты"},
		{"3", "Образовательный проект", "Образовательные проекты"},
		{"4", "Инфраструктурный проект", "Инфраструктурные проекты"},
	}
	for _, f := range fields {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO fields (id, name, info) VALUES (?, ?, ?)`,
			f.id, f.name, f.info); err != nil {
			return fmt.Errorf("failed to seed field %s: %w", f.id, err)
		}
	}

	now := time.Now().UTC()
	day := 24 * time.Hour
	projects := []struct {
		id, name, fieldID string
		progress          int
		age               time.Duration
	}{
		{"1", "Демо-проект 1", "1", 35, 0},
		{"2", "Демо-проект 2", "2", 75, day},
		{"3", "Демо-проект 3", "3", 10, 2 * day},
		{"4", "Демо-проект 4", "4", 0, 5 * day},
	}
	for _, p := range projects {
		created := now.Add(-p.age)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, name, field_id, progress, created_at, edited_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			p.id, p.name, p.fieldID, p.progress, created, created); err != nil {
			return fmt.Errorf("failed to seed project %s: %w", p.id, err)
		}

		sectionID := "s" + p.id
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sections (id, project_id, name, progress, position)
			 VALUES (?, ?, ?, 0, 0)`,
			sectionID, p.id, "Основная информация"); err != nil {
			return fmt.Errorf("failed to seed section for project %s: %w", p.id, err)
		}

		actions := []struct {
			suffix, name, info, typ string
		}{
			{"a1", "Описание проекта", "Здесь должно быть описание проекта", "content"},
			{"a2", "Документация", "Здесь можно вводить документацию проекта", "document"},
		}
		for i, a := range actions {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO actions (id, section_id, name, info, type, done, position)
				 VALUES (?, ?, ?, ?, ?, 0, ?)`,
				sectionID+a.suffix, sectionID, a.name, a.info, a.typ, i); err != nil {
				return fmt.Errorf("failed to seed action for project %s: %w", p.id, err)
			}
		}
	}

	documents := []struct {
		id, name, projectID string
		createdAge          time.Duration
		updatedAge          time.Duration
	}{
		{"d1", "Техническое задание.docx", "1", 5 * day, 2 * day},
		{"d2", "План работ.doc", "1", 4 * day, 1 * day},
		{"d3", "Презентация проекта.docx", "2", 3 * day, 1 * day},
	}
	for _, d := range documents {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO documents (id, project_id, name, content_kind, size, created_at, updated_at)
			 VALUES (?, ?, ?, 'none', 0, ?, ?)`,
			d.id, d.projectID, d.name, now.Add(-d.createdAge), now.Add(-d.updatedAge)); err != nil {
			return fmt.Errorf("failed to seed document %s: %w", d.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}
