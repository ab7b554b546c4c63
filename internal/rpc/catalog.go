package rpc

import (
	"context"

	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/vmkteam/zenrpc/v2"
)

// CatalogService manages expertise areas, treatment categories, procedures, their methods and FAQs.
type CatalogService struct {
	zenrpc.Service
	cms *cms.Manager
}

func NewCatalogService(manager *cms.Manager) *CatalogService {
	return &CatalogService{cms: manager}
}

// ListAreas returns expertise areas ordered by name.
func (s *CatalogService) ListAreas(ctx context.Context) ([]ExpertiseArea, error) {
	areas, err := s.cms.ExpertiseAreas(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return Map(areas, NewExpertiseArea), nil
}

//zenrpc:id expertise area id
//zenrpc:404 expertise area not found
func (s *CatalogService) GetArea(ctx context.Context, id string) (*ExpertiseArea, error) {
	area, err := s.cms.ExpertiseAreaByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(area, NewExpertiseArea), nil
}

//zenrpc:area expertise area fields
func (s *CatalogService) CreateArea(ctx context.Context, area AreaInput) (*ExpertiseArea, error) {
	if err := validateInput(area); err != nil {
		return nil, err
	}

	created, err := s.cms.CreateExpertiseArea(ctx, area.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return ptr(created, NewExpertiseArea), nil
}

//zenrpc:id expertise area id
//zenrpc:area expertise area fields
func (s *CatalogService) UpdateArea(ctx context.Context, id string, area AreaInput) (*ExpertiseArea, error) {
	if err := validateInput(area); err != nil {
		return nil, err
	}

	in := area.ToModel()
	in.ID = id
	updated, err := s.cms.UpdateExpertiseArea(ctx, in)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(updated, NewExpertiseArea), nil
}

// DeleteArea removes an expertise area without treatment categories.
//
//zenrpc:id expertise area id
//zenrpc:409 area has treatment categories
func (s *CatalogService) DeleteArea(ctx context.Context, id string) (bool, error) {
	if err := s.cms.DeleteExpertiseArea(ctx, id); err != nil {
		return false, newError(err)
	}

	return true, nil
}

//zenrpc:expertiseAreaId optional expertise area filter
func (s *CatalogService) ListTreatmentCategories(ctx context.Context, expertiseAreaId *string) ([]TreatmentCategory, error) {
	categories, err := s.cms.TreatmentCategories(ctx, expertiseAreaId)
	if err != nil {
		return nil, newError(err)
	}

	return Map(categories, NewTreatmentCategory), nil
}

//zenrpc:id treatment category id
func (s *CatalogService) GetTreatmentCategory(ctx context.Context, id string) (*TreatmentCategory, error) {
	tc, err := s.cms.TreatmentCategoryByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(tc, NewTreatmentCategory), nil
}

//zenrpc:category treatment category fields
//zenrpc:404 expertise area not found
func (s *CatalogService) CreateTreatmentCategory(ctx context.Context, category TreatmentCategoryInput) (*TreatmentCategory, error) {
	if err := validateInput(category); err != nil {
		return nil, err
	}

	tc, err := s.cms.CreateTreatmentCategory(ctx, category.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return ptr(tc, NewTreatmentCategory), nil
}

//zenrpc:id treatment category id
//zenrpc:category treatment category fields
func (s *CatalogService) UpdateTreatmentCategory(ctx context.Context, id string, category TreatmentCategoryInput) (*TreatmentCategory, error) {
	if err := validateInput(category); err != nil {
		return nil, err
	}

	in := category.ToModel()
	in.ID = id
	tc, err := s.cms.UpdateTreatmentCategory(ctx, in)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(tc, NewTreatmentCategory), nil
}

//zenrpc:id treatment category id
//zenrpc:409 category has procedures
func (s *CatalogService) DeleteTreatmentCategory(ctx context.Context, id string) (bool, error) {
	if err := s.cms.DeleteTreatmentCategory(ctx, id); err != nil {
		return false, newError(err)
	}

	return true, nil
}

// ListProcedures returns procedures of any status ordered by name.
//
//zenrpc:filter optional filters
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=20 items per page
func (s *CatalogService) ListProcedures(ctx context.Context, filter *ProcedureFilter, page, pageSize *int) (*ProcedureList, error) {
	if filter != nil {
		if err := validateInput(filter); err != nil {
			return nil, err
		}
	}

	procedures, count, err := s.cms.Procedures(ctx, filter.ToModel(), db.NewPager(page, pageSize))
	if err != nil {
		return nil, newError(err)
	}

	return &ProcedureList{Items: Map(procedures, NewProcedure), Count: count}, nil
}

// GetProcedure returns a procedure with methods, FAQs and SEO settings.
//
//zenrpc:id procedure id
func (s *CatalogService) GetProcedure(ctx context.Context, id string) (*Procedure, error) {
	p, err := s.cms.ProcedureByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(p, NewProcedure), nil
}

//zenrpc:procedure procedure fields
//zenrpc:404 treatment category not found
//zenrpc:409 seo settings already used
func (s *CatalogService) CreateProcedure(ctx context.Context, procedure ProcedureInput) (*Procedure, error) {
	if err := validateInput(procedure); err != nil {
		return nil, err
	}

	p, err := s.cms.CreateProcedure(ctx, procedure.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return ptr(p, NewProcedure), nil
}

//zenrpc:id procedure id
//zenrpc:procedure procedure fields, status and seo are ignored
func (s *CatalogService) UpdateProcedure(ctx context.Context, id string, procedure ProcedureInput) (*Procedure, error) {
	if err := validateInput(procedure); err != nil {
		return nil, err
	}

	in := procedure.ToModel()
	in.ID = id
	p, err := s.cms.UpdateProcedure(ctx, in)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(p, NewProcedure), nil
}

//zenrpc:id procedure id
//zenrpc:status DRAFT, PUBLISHED or ARCHIVED
func (s *CatalogService) SetProcedureStatus(ctx context.Context, id, status string) (*Procedure, error) {
	p, err := s.cms.SetProcedureStatus(ctx, id, db.PublishStatus(status))
	if err != nil {
		return nil, newError(err)
	}

	return ptr(p, NewProcedure), nil
}

// DeleteProcedure removes the procedure with its methods, FAQs and SEO settings.
//
//zenrpc:id procedure id
func (s *CatalogService) DeleteProcedure(ctx context.Context, id string) (bool, error) {
	if err := s.cms.DeleteProcedure(ctx, id); err != nil {
		return false, newError(err)
	}

	return true, nil
}

//zenrpc:procedureId procedure id
func (s *CatalogService) ListMethods(ctx context.Context, procedureId string) ([]ProcedureMethod, error) {
	methods, err := s.cms.ProcedureMethods(ctx, procedureId)
	if err != nil {
		return nil, newError(err)
	}

	return Map(methods, NewProcedureMethod), nil
}

//zenrpc:method procedure method fields
func (s *CatalogService) CreateMethod(ctx context.Context, method MethodInput) (*ProcedureMethod, error) {
	if err := validateInput(method); err != nil {
		return nil, err
	}

	pm, err := s.cms.CreateProcedureMethod(ctx, method.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return ptr(pm, NewProcedureMethod), nil
}

//zenrpc:id procedure method id
//zenrpc:method procedure method fields
func (s *CatalogService) UpdateMethod(ctx context.Context, id string, method MethodInput) (*ProcedureMethod, error) {
	if err := validateInput(method); err != nil {
		return nil, err
	}

	in := method.ToModel()
	in.ID = id
	pm, err := s.cms.UpdateProcedureMethod(ctx, in)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(pm, NewProcedureMethod), nil
}

//zenrpc:id procedure method id
func (s *CatalogService) DeleteMethod(ctx context.Context, id string) (bool, error) {
	if err := s.cms.DeleteProcedureMethod(ctx, id); err != nil {
		return false, newError(err)
	}

	return true, nil
}

//zenrpc:filter optional filters
func (s *CatalogService) ListFaqs(ctx context.Context, filter *FaqFilter) ([]Faq, error) {
	faqs, err := s.cms.Faqs(ctx, filter.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return Map(faqs, NewFaq), nil
}

// CreateFaq adds a FAQ that is either global or attached to a procedure.
//
//zenrpc:faq faq fields
//zenrpc:400 faq must be global or reference a procedure
func (s *CatalogService) CreateFaq(ctx context.Context, faq FaqInput) (*Faq, error) {
	if err := validateInput(faq); err != nil {
		return nil, err
	}

	f, err := s.cms.CreateFaq(ctx, faq.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return ptr(f, NewFaq), nil
}

//zenrpc:id faq id
//zenrpc:faq faq fields
func (s *CatalogService) UpdateFaq(ctx context.Context, id string, faq FaqInput) (*Faq, error) {
	if err := validateInput(faq); err != nil {
		return nil, err
	}

	in := faq.ToModel()
	in.ID = id
	f, err := s.cms.UpdateFaq(ctx, in)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(f, NewFaq), nil
}

//zenrpc:id faq id
func (s *CatalogService) DeleteFaq(ctx context.Context, id string) (bool, error) {
	if err := s.cms.DeleteFaq(ctx, id); err != nil {
		return false, newError(err)
	}

	return true, nil
}
