package cms

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/daniilsolovey/clinic-cms/internal/db"
)

var byName = []db.SortField{db.NewSortField("name", false)}

// ExpertiseAreas returns all areas with their treatment categories, ordered by name.
func (m *Manager) ExpertiseAreas(ctx context.Context) ([]db.ExpertiseArea, error) {
	areas, err := m.db.ExpertiseAreas.FindMany(ctx, nil, db.FindManyArgs{OrderBy: byName},
		db.WithRelations(db.Columns.ExpertiseArea.TreatmentCategories))
	if err != nil {
		return nil, fmt.Errorf("db get expertise areas: %w", err)
	}

	for i := range areas {
		tcs := areas[i].TreatmentCategories
		sort.Slice(tcs, func(a, b int) bool { return tcs[a].Name < tcs[b].Name })
	}

	return areas, nil
}

// ExpertiseAreaBySlug returns the area with its categories and their published procedures, or nil.
func (m *Manager) ExpertiseAreaBySlug(ctx context.Context, slug string) (*ExpertiseArea, error) {
	area, err := m.db.ExpertiseAreas.FindUnique(ctx, db.BySlug(slug))
	if err != nil {
		return nil, fmt.Errorf("db get expertise area: %w", err)
	} else if area == nil {
		return nil, nil
	}

	tcs, err := m.db.TreatmentCategories.FindMany(ctx,
		&db.TreatmentCategorySearch{ExpertiseAreaID: &area.ID}, db.FindManyArgs{OrderBy: byName})
	if err != nil {
		return nil, fmt.Errorf("db get treatment categories: %w", err)
	}

	ids := make([]string, 0, len(tcs))
	for _, tc := range tcs {
		ids = append(ids, tc.ID)
	}
	procedures, err := m.publishedProcedures(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := &ExpertiseArea{ExpertiseArea: *area, Categories: make([]TreatmentCategory, 0, len(tcs))}
	for _, tc := range tcs {
		result.Categories = append(result.Categories, TreatmentCategory{
			TreatmentCategory: tc,
			Procedures:        procedures[tc.ID],
		})
	}

	return result, nil
}

// TreatmentCategoryBySlug returns the category with its area and published procedures, or nil.
func (m *Manager) TreatmentCategoryBySlug(ctx context.Context, slug string) (*TreatmentCategory, error) {
	tc, err := m.db.TreatmentCategories.FindUnique(ctx, db.BySlug(slug),
		db.WithRelations(db.Columns.TreatmentCategory.ExpertiseArea))
	if err != nil {
		return nil, fmt.Errorf("db get treatment category: %w", err)
	} else if tc == nil {
		return nil, nil
	}

	procedures, err := m.publishedProcedures(ctx, []string{tc.ID})
	if err != nil {
		return nil, err
	}

	return &TreatmentCategory{TreatmentCategory: *tc, Procedures: procedures[tc.ID]}, nil
}

// publishedProcedures groups published procedures by treatment category.
func (m *Manager) publishedProcedures(ctx context.Context, categoryIDs []string) (map[string][]db.Procedure, error) {
	result := make(map[string][]db.Procedure, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return result, nil
	}

	status := db.StatusPublished
	list, err := m.db.Procedures.FindMany(ctx,
		&db.ProcedureSearch{Status: &status, TreatmentCategoryIDs: categoryIDs},
		db.FindManyArgs{OrderBy: byName})
	if err != nil {
		return nil, fmt.Errorf("db get procedures: %w", err)
	}

	for _, p := range list {
		result[p.TreatmentCategoryID] = append(result[p.TreatmentCategoryID], p)
	}

	return result, nil
}

// ProcedureBySlug returns a published procedure with methods, FAQs, category, area and SEO, or nil.
func (m *Manager) ProcedureBySlug(ctx context.Context, slug string) (*Procedure, error) {
	status := db.StatusPublished
	p, err := m.db.Procedures.FindFirst(ctx,
		&db.ProcedureSearch{Slug: &slug, Status: &status},
		db.WithRelations(
			db.Columns.Procedure.Methods,
			db.Columns.Procedure.Faqs,
			db.Columns.Procedure.SeoSetting,
			db.Columns.Procedure.TreatmentCategory+"."+db.Columns.TreatmentCategory.ExpertiseArea,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("db get procedure: %w", err)
	} else if p == nil {
		return nil, nil
	}

	sort.Slice(p.Methods, func(a, b int) bool { return p.Methods[a].Name < p.Methods[b].Name })
	sort.Slice(p.Faqs, func(a, b int) bool { return p.Faqs[a].CreatedAt.Before(p.Faqs[b].CreatedAt) })

	rendered, err := m.Render(p.Description)
	if err != nil {
		return nil, err
	}

	return &Procedure{Procedure: *p, HTML: rendered}, nil
}

// Faqs returns FAQs ordered by creation time.
func (m *Manager) Faqs(ctx context.Context, filter FaqFilter) ([]db.Faq, error) {
	list, err := m.db.Faqs.FindMany(ctx,
		&db.FaqSearch{IsGlobal: filter.IsGlobal, ProcedureID: filter.ProcedureID},
		db.FindManyArgs{OrderBy: []db.SortField{db.NewSortField(db.Columns.Faq.CreatedAt, false)}})
	if err != nil {
		return nil, fmt.Errorf("db get faqs: %w", err)
	}

	return list, nil
}

// expertise areas

func (m *Manager) ExpertiseAreaByID(ctx context.Context, id string) (*db.ExpertiseArea, error) {
	return findByID(ctx, m.db.ExpertiseAreas, "expertise area", id)
}

func (m *Manager) CreateExpertiseArea(ctx context.Context, area db.ExpertiseArea) (*db.ExpertiseArea, error) {
	slug, err := slugFor(area.Slug, area.Name)
	if err != nil {
		return nil, err
	}
	if area.Slug, err = freeSlug(ctx, m.db.ExpertiseAreas, slug); err != nil {
		return nil, err
	}

	area.ID = ""
	created, err := m.db.ExpertiseAreas.Create(ctx, &area)
	if err != nil {
		return nil, fmt.Errorf("db create expertise area: %w", translate(err))
	}

	return created, nil
}

func (m *Manager) UpdateExpertiseArea(ctx context.Context, area db.ExpertiseArea) (*db.ExpertiseArea, error) {
	current, err := m.ExpertiseAreaByID(ctx, area.ID)
	if err != nil {
		return nil, err
	}
	if area.Slug != "" {
		if current.Slug, err = slugFor(area.Slug, ""); err != nil {
			return nil, err
		}
	}
	current.Name = area.Name
	current.Description = area.Description
	current.Image = area.Image

	updated, err := m.db.ExpertiseAreas.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("db update expertise area: %w", translate(err))
	}

	return updated, nil
}

// DeleteExpertiseArea fails with ErrInUse while the area has treatment categories.
func (m *Manager) DeleteExpertiseArea(ctx context.Context, id string) error {
	_, err := deleteByID(ctx, m.db.ExpertiseAreas, "expertise area", id)
	return err
}

// treatment categories

func (m *Manager) TreatmentCategories(ctx context.Context, expertiseAreaID *string) ([]db.TreatmentCategory, error) {
	list, err := m.db.TreatmentCategories.FindMany(ctx,
		&db.TreatmentCategorySearch{ExpertiseAreaID: expertiseAreaID}, db.FindManyArgs{OrderBy: byName})
	if err != nil {
		return nil, fmt.Errorf("db get treatment categories: %w", err)
	}

	return list, nil
}

func (m *Manager) TreatmentCategoryByID(ctx context.Context, id string) (*db.TreatmentCategory, error) {
	return findByID(ctx, m.db.TreatmentCategories, "treatment category", id)
}

func (m *Manager) CreateTreatmentCategory(ctx context.Context, tc db.TreatmentCategory) (*db.TreatmentCategory, error) {
	if _, err := m.ExpertiseAreaByID(ctx, tc.ExpertiseAreaID); err != nil {
		return nil, err
	}

	slug, err := slugFor(tc.Slug, tc.Name)
	if err != nil {
		return nil, err
	}
	if tc.Slug, err = freeSlug(ctx, m.db.TreatmentCategories, slug); err != nil {
		return nil, err
	}

	tc.ID = ""
	created, err := m.db.TreatmentCategories.Create(ctx, &tc)
	if err != nil {
		return nil, fmt.Errorf("db create treatment category: %w", translate(err))
	}

	return created, nil
}

func (m *Manager) UpdateTreatmentCategory(ctx context.Context, tc db.TreatmentCategory) (*db.TreatmentCategory, error) {
	current, err := m.TreatmentCategoryByID(ctx, tc.ID)
	if err != nil {
		return nil, err
	}
	if tc.ExpertiseAreaID != "" && tc.ExpertiseAreaID != current.ExpertiseAreaID {
		if _, err := m.ExpertiseAreaByID(ctx, tc.ExpertiseAreaID); err != nil {
			return nil, err
		}
		current.ExpertiseAreaID = tc.ExpertiseAreaID
	}
	if tc.Slug != "" {
		if current.Slug, err = slugFor(tc.Slug, ""); err != nil {
			return nil, err
		}
	}
	current.Name = tc.Name
	current.Description = tc.Description

	updated, err := m.db.TreatmentCategories.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("db update treatment category: %w", translate(err))
	}

	return updated, nil
}

// DeleteTreatmentCategory fails with ErrInUse while the category has procedures.
func (m *Manager) DeleteTreatmentCategory(ctx context.Context, id string) error {
	_, err := deleteByID(ctx, m.db.TreatmentCategories, "treatment category", id)
	return err
}

// procedures

func (m *Manager) Procedures(ctx context.Context, filter ProcedureFilter, pager db.Pager) ([]db.Procedure, int, error) {
	search := &db.ProcedureSearch{
		Status:              filter.Status,
		TreatmentCategoryID: filter.TreatmentCategoryID,
		ExpertiseAreaID:     filter.ExpertiseAreaID,
		NameILike:           filter.NameILike,
	}
	return list(ctx, m.db.Procedures, search, pager.Args(byName...))
}

func (m *Manager) ProcedureByID(ctx context.Context, id string) (*db.Procedure, error) {
	return findByID(ctx, m.db.Procedures, "procedure", id,
		db.WithRelations(db.Columns.Procedure.Methods, db.Columns.Procedure.Faqs, db.Columns.Procedure.SeoSetting))
}

func (m *Manager) CreateProcedure(ctx context.Context, p db.Procedure) (*db.Procedure, error) {
	slug, err := slugFor(p.Slug, p.Name)
	if err != nil {
		return nil, err
	}
	if err := initialStatus(&p.Status, new(*time.Time), m.now()); err != nil {
		return nil, err
	}

	var created *db.Procedure
	err = m.tx(ctx, func(m *Manager) error {
		if _, err := m.TreatmentCategoryByID(ctx, p.TreatmentCategoryID); err != nil {
			return err
		}
		if p.Slug, err = freeSlug(ctx, m.db.Procedures, slug); err != nil {
			return err
		}
		if p.SeoSettingsID != nil {
			if err := m.checkSeoFree(ctx, *p.SeoSettingsID, SeoOwnerProcedure, ""); err != nil {
				return err
			}
		}

		p.ID = ""
		if created, err = m.db.Procedures.Create(ctx, &p); err != nil {
			return fmt.Errorf("db create procedure: %w", translate(err))
		}
		return nil
	})

	return created, err
}

// UpdateProcedure saves slug, name, description and treatment category.
func (m *Manager) UpdateProcedure(ctx context.Context, p db.Procedure) (*db.Procedure, error) {
	current, err := findByID(ctx, m.db.Procedures, "procedure", p.ID)
	if err != nil {
		return nil, err
	}
	if p.TreatmentCategoryID != "" && p.TreatmentCategoryID != current.TreatmentCategoryID {
		if _, err := m.TreatmentCategoryByID(ctx, p.TreatmentCategoryID); err != nil {
			return nil, err
		}
		current.TreatmentCategoryID = p.TreatmentCategoryID
	}
	if p.Slug != "" {
		if current.Slug, err = slugFor(p.Slug, ""); err != nil {
			return nil, err
		}
	}
	current.Name = p.Name
	current.Description = p.Description

	updated, err := m.db.Procedures.Update(ctx, current,
		db.Columns.Procedure.Slug, db.Columns.Procedure.Name, db.Columns.Procedure.Description, db.Columns.Procedure.TreatmentCategoryID)
	if err != nil {
		return nil, fmt.Errorf("db update procedure: %w", translate(err))
	}

	return updated, nil
}

// SetProcedureStatus moves the procedure through the publish workflow. Procedures keep no publish date.
func (m *Manager) SetProcedureStatus(ctx context.Context, id string, status db.PublishStatus) (*db.Procedure, error) {
	p, err := findByID(ctx, m.db.Procedures, "procedure", id)
	if err != nil {
		return nil, err
	}
	if err := applyStatus(&p.Status, new(*time.Time), status, m.now()); err != nil {
		return nil, err
	}

	updated, err := m.db.Procedures.Update(ctx, p, db.Columns.Procedure.Status)
	if err != nil {
		return nil, fmt.Errorf("db update procedure status: %w", translate(err))
	}

	return updated, nil
}

// DeleteProcedure removes the procedure with its methods, FAQs and SEO settings.
func (m *Manager) DeleteProcedure(ctx context.Context, id string) error {
	return m.tx(ctx, func(m *Manager) error {
		if _, err := m.db.ProcedureMethods.DeleteMany(ctx, &db.ProcedureMethodSearch{ProcedureID: &id}); err != nil {
			return fmt.Errorf("db delete procedure methods: %w", err)
		}
		if _, err := m.db.Faqs.DeleteMany(ctx, &db.FaqSearch{ProcedureID: &id}); err != nil {
			return fmt.Errorf("db delete procedure faqs: %w", err)
		}

		p, err := deleteByID(ctx, m.db.Procedures, "procedure", id)
		if err != nil {
			return err
		}

		return m.deleteSeo(ctx, p.SeoSettingsID)
	})
}

// procedure methods

func (m *Manager) ProcedureMethods(ctx context.Context, procedureID string) ([]db.ProcedureMethod, error) {
	list, err := m.db.ProcedureMethods.FindMany(ctx,
		&db.ProcedureMethodSearch{ProcedureID: &procedureID}, db.FindManyArgs{OrderBy: byName})
	if err != nil {
		return nil, fmt.Errorf("db get procedure methods: %w", err)
	}

	return list, nil
}

func (m *Manager) CreateProcedureMethod(ctx context.Context, pm db.ProcedureMethod) (*db.ProcedureMethod, error) {
	if _, err := findByID(ctx, m.db.Procedures, "procedure", pm.ProcedureID); err != nil {
		return nil, err
	}

	slug, err := slugFor(pm.Slug, pm.Name)
	if err != nil {
		return nil, err
	}
	if pm.Slug, err = freeSlug(ctx, m.db.ProcedureMethods, slug); err != nil {
		return nil, err
	}

	pm.ID = ""
	created, err := m.db.ProcedureMethods.Create(ctx, &pm)
	if err != nil {
		return nil, fmt.Errorf("db create procedure method: %w", translate(err))
	}

	return created, nil
}

func (m *Manager) UpdateProcedureMethod(ctx context.Context, pm db.ProcedureMethod) (*db.ProcedureMethod, error) {
	current, err := findByID(ctx, m.db.ProcedureMethods, "procedure method", pm.ID)
	if err != nil {
		return nil, err
	}
	if pm.Slug != "" {
		if current.Slug, err = slugFor(pm.Slug, ""); err != nil {
			return nil, err
		}
	}
	current.Name = pm.Name
	current.Description = pm.Description

	updated, err := m.db.ProcedureMethods.Update(ctx, current,
		db.Columns.ProcedureMethod.Slug, db.Columns.ProcedureMethod.Name, db.Columns.ProcedureMethod.Description)
	if err != nil {
		return nil, fmt.Errorf("db update procedure method: %w", translate(err))
	}

	return updated, nil
}

func (m *Manager) DeleteProcedureMethod(ctx context.Context, id string) error {
	_, err := deleteByID(ctx, m.db.ProcedureMethods, "procedure method", id)
	return err
}

// faqs

// checkFaq enforces that a FAQ is either global or attached to an existing procedure.
func (m *Manager) checkFaq(ctx context.Context, faq db.Faq) error {
	if faq.IsGlobal == (faq.ProcedureID != nil) {
		return ErrInvalidFaq
	}
	if faq.ProcedureID != nil {
		if _, err := findByID(ctx, m.db.Procedures, "procedure", *faq.ProcedureID); err != nil {
			return err
		}
	}

	return nil
}

func (m *Manager) CreateFaq(ctx context.Context, faq db.Faq) (*db.Faq, error) {
	if err := m.checkFaq(ctx, faq); err != nil {
		return nil, err
	}

	faq.ID = ""
	created, err := m.db.Faqs.Create(ctx, &faq)
	if err != nil {
		return nil, fmt.Errorf("db create faq: %w", translate(err))
	}

	return created, nil
}

func (m *Manager) UpdateFaq(ctx context.Context, faq db.Faq) (*db.Faq, error) {
	current, err := findByID(ctx, m.db.Faqs, "faq", faq.ID)
	if err != nil {
		return nil, err
	}
	if err := m.checkFaq(ctx, faq); err != nil {
		return nil, err
	}

	current.Question = faq.Question
	current.Answer = faq.Answer
	current.IsGlobal = faq.IsGlobal
	current.ProcedureID = faq.ProcedureID

	updated, err := m.db.Faqs.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("db update faq: %w", translate(err))
	}

	return updated, nil
}

func (m *Manager) DeleteFaq(ctx context.Context, id string) error {
	_, err := deleteByID(ctx, m.db.Faqs, "faq", id)
	return err
}
