package rpc

import (
	"context"

	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/vmkteam/zenrpc/v2"
)

// MenuService manages the site menu tree.
type MenuService struct {
	zenrpc.Service
	cms *cms.Manager
}

func NewMenuService(manager *cms.Manager) *MenuService {
	return &MenuService{cms: manager}
}

// Tree returns root items with nested children ordered by order.
func (s *MenuService) Tree(ctx context.Context) ([]MenuItem, error) {
	tree, err := s.cms.MenuTree(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return Map(tree, NewMenuNode), nil
}

//zenrpc:id menu item id
func (s *MenuService) Get(ctx context.Context, id string) (*MenuItem, error) {
	item, err := s.cms.MenuItemByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(item, NewMenuItem), nil
}

//zenrpc:item menu item fields
//zenrpc:404 parent not found
func (s *MenuService) Create(ctx context.Context, item MenuItemInput) (*MenuItem, error) {
	if err := validateInput(item); err != nil {
		return nil, err
	}

	created, err := s.cms.CreateMenuItem(ctx, item.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return ptr(created, NewMenuItem), nil
}

// Update saves the item, moving it under a new parent if given.
//
//zenrpc:id menu item id
//zenrpc:item menu item fields
//zenrpc:400 parent is the item itself or one of its descendants
func (s *MenuService) Update(ctx context.Context, id string, item MenuItemInput) (*MenuItem, error) {
	if err := validateInput(item); err != nil {
		return nil, err
	}

	in := item.ToModel()
	in.ID = id
	updated, err := s.cms.UpdateMenuItem(ctx, in)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(updated, NewMenuItem), nil
}

// Delete removes the item, its children move to the item's parent.
//
//zenrpc:id menu item id
func (s *MenuService) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.cms.DeleteMenuItem(ctx, id); err != nil {
		return false, newError(err)
	}

	return true, nil
}

// Reorder sets the order of the parent's children to their position in ids.
//
//zenrpc:parentId parent item id, empty for root items
//zenrpc:ids all children ids in the new order
//zenrpc:400 ids do not match the children
func (s *MenuService) Reorder(ctx context.Context, parentId *string, ids []string) (bool, error) {
	if err := s.cms.ReorderMenu(ctx, parentId, ids); err != nil {
		return false, newError(err)
	}

	return true, nil
}
