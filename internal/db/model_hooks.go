package db

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

var (
	_ pg.BeforeInsertHook = (*User)(nil)
	_ pg.BeforeInsertHook = (*SeoSetting)(nil)
	_ pg.BeforeInsertHook = (*Page)(nil)
	_ pg.BeforeInsertHook = (*MenuItem)(nil)
	_ pg.BeforeInsertHook = (*ExpertiseArea)(nil)
	_ pg.BeforeInsertHook = (*TreatmentCategory)(nil)
	_ pg.BeforeInsertHook = (*Procedure)(nil)
	_ pg.BeforeInsertHook = (*ProcedureMethod)(nil)
	_ pg.BeforeInsertHook = (*Faq)(nil)
	_ pg.BeforeInsertHook = (*BlogPost)(nil)
	_ pg.BeforeInsertHook = (*Category)(nil)
	_ pg.BeforeInsertHook = (*Media)(nil)

	_ pg.BeforeUpdateHook = (*User)(nil)
	_ pg.BeforeUpdateHook = (*SeoSetting)(nil)
	_ pg.BeforeUpdateHook = (*Page)(nil)
	_ pg.BeforeUpdateHook = (*MenuItem)(nil)
	_ pg.BeforeUpdateHook = (*ExpertiseArea)(nil)
	_ pg.BeforeUpdateHook = (*TreatmentCategory)(nil)
	_ pg.BeforeUpdateHook = (*Procedure)(nil)
	_ pg.BeforeUpdateHook = (*ProcedureMethod)(nil)
	_ pg.BeforeUpdateHook = (*Faq)(nil)
	_ pg.BeforeUpdateHook = (*BlogPost)(nil)
	_ pg.BeforeUpdateHook = (*Category)(nil)
	_ pg.BeforeUpdateHook = (*Media)(nil)
)

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

// stampInsert fills id and both timestamps for a new row.
func stampInsert(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	ts := now()
	if createdAt.IsZero() {
		*createdAt = ts
	}
	*updatedAt = ts
}

func (u *User) BeforeInsert(ctx context.Context) (context.Context, error) {
	if u == nil {
		return ctx, nil
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	stampInsert(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	return ctx, nil
}

func (u *User) BeforeUpdate(ctx context.Context) (context.Context, error) {
	if u != nil {
		u.UpdatedAt = now()
	}
	return ctx, nil
}

func (s *SeoSetting) BeforeInsert(ctx context.Context) (context.Context, error) {
	if s != nil {
		stampInsert(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	}
	return ctx, nil
}

func (s *SeoSetting) BeforeUpdate(ctx context.Context) (context.Context, error) {
	if s != nil {
		s.UpdatedAt = now()
	}
	return ctx, nil
}

func (p *Page) BeforeInsert(ctx context.Context) (context.Context, error) {
	if p == nil {
		return ctx, nil
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	stampInsert(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return ctx, nil
}

func (p *Page) BeforeUpdate(ctx context.Context) (context.Context, error) {
	if p != nil {
		p.UpdatedAt = now()
	}
	return ctx, nil
}

func (m *MenuItem) BeforeInsert(ctx context.Context) (context.Context, error) {
	if m != nil {
		stampInsert(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	}
	return ctx, nil
}

func (m *MenuItem) BeforeUpdate(ctx context.Context) (context.Context, error) {
	if m != nil {
		m.UpdatedAt = now()
	}
	return ctx, nil
}

func (e *ExpertiseArea) BeforeInsert(ctx context.Context) (context.Context, error) {
	if e != nil {
		stampInsert(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	}
	return ctx, nil
}

func (e *ExpertiseArea) BeforeUpdate(ctx context.Context) (context.Context, error) {
	if e != nil {
		e.UpdatedAt = now()
	}
	return ctx, nil
}

func (tc *TreatmentCategory) BeforeInsert(ctx context.Context) (context.Context, error) {
	if tc != nil {
		stampInsert(&tc.ID, &tc.CreatedAt, &tc.UpdatedAt)
	}
	return ctx, nil
}

func (tc *TreatmentCategory) BeforeUpdate(ctx context.Context) (context.Context, error) {
	if tc != nil {
		tc.UpdatedAt = now()
	}
	return ctx, nil
}

func (p *Procedure) BeforeInsert(ctx context.Context) (context.Context, error) {
	if p == nil {
		return ctx, nil
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	stampInsert(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return ctx, nil
}

func (p *Procedure) BeforeUpdate(ctx context.Context) (context.Context, error) {
	if p != nil {
		p.UpdatedAt = now()
	}
	return ctx, nil
}

func (pm *ProcedureMethod) BeforeInsert(ctx context.Context) (context.Context, error) {
	if pm != nil {
		stampInsert(&pm.ID, &pm.CreatedAt, &pm.UpdatedAt)
	}
	return ctx, nil
}

func (pm *ProcedureMethod) BeforeUpdate(ctx context.Context) (context.Context, error) {
	if pm != nil {
		pm.UpdatedAt = now()
	}
	return ctx, nil
}

func (f *Faq) BeforeInsert(ctx context.Context) (context.Context, error) {
	if f != nil {
		stampInsert(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	}
	return ctx, nil
}

func (f *Faq) BeforeUpdate(ctx context.Context) (context.Context, error) {
	if f != nil {
		f.UpdatedAt = now()
	}
	return ctx, nil
}

func (bp *BlogPost) BeforeInsert(ctx context.Context) (context.Context, error) {
	if bp == nil {
		return ctx, nil
	}
	if bp.Status == "" {
		bp.Status = StatusDraft
	}
	stampInsert(&bp.ID, &bp.CreatedAt, &bp.UpdatedAt)
	return ctx, nil
}

func (bp *BlogPost) BeforeUpdate(ctx context.Context) (context.Context, error) {
	if bp != nil {
		bp.UpdatedAt = now()
	}
	return ctx, nil
}

func (c *Category) BeforeInsert(ctx context.Context) (context.Context, error) {
	if c != nil {
		stampInsert(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	}
	return ctx, nil
}

func (c *Category) BeforeUpdate(ctx context.Context) (context.Context, error) {
	if c != nil {
		c.UpdatedAt = now()
	}
	return ctx, nil
}

func (m *Media) BeforeInsert(ctx context.Context) (context.Context, error) {
	if m != nil {
		stampInsert(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	}
	return ctx, nil
}

func (m *Media) BeforeUpdate(ctx context.Context) (context.Context, error) {
	if m != nil {
		m.UpdatedAt = now()
	}
	return ctx, nil
}
