package cms

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/clinic-cms/internal/db"
)

// maxMenuDepth bounds ancestor walks on corrupted trees.
const maxMenuDepth = 64

// lockMenuItems blocks other writers of the menu while allowing reads.
const lockMenuItems = `LOCK TABLE "menuItems" IN SHARE ROW EXCLUSIVE MODE`

var menuOrder = []db.SortField{
	db.NewSortField(db.Columns.MenuItem.Order, false),
	db.NewSortField(db.Columns.MenuItem.Label, false),
}

// MenuTree returns the whole menu as nested nodes ordered by order and label.
func (m *Manager) MenuTree(ctx context.Context) ([]MenuNode, error) {
	items, err := m.db.MenuItems.FindMany(ctx, nil, db.FindManyArgs{OrderBy: menuOrder})
	if err != nil {
		return nil, fmt.Errorf("db get menu items: %w", err)
	}

	return buildMenuTree(items), nil
}

func buildMenuTree(items []db.MenuItem) []MenuNode {
	parentOf := make(map[string]string, len(items))
	for _, it := range items {
		parentOf[it.ID] = ""
	}
	for _, it := range items {
		if it.ParentID != nil {
			if _, ok := parentOf[*it.ParentID]; ok {
				parentOf[it.ID] = *it.ParentID
			}
		}
	}

	// items on or below a parent loop never reach the top level and are listed there
	rooted := make(map[string]bool, len(items))
	reachesRoot := func(id string) bool {
		seen := make(map[string]struct{})
		for cur := id; ; cur = parentOf[cur] {
			if ok, done := rooted[cur]; done {
				return ok
			}
			if parentOf[cur] == "" {
				return true
			}
			if _, loop := seen[cur]; loop {
				return false
			}
			seen[cur] = struct{}{}
		}
	}

	children := make(map[string][]db.MenuItem)
	for _, it := range items {
		ok := reachesRoot(it.ID)
		rooted[it.ID] = ok

		parent := parentOf[it.ID]
		if !ok {
			parent = ""
		}
		children[parent] = append(children[parent], it)
	}

	var build func(parent string, depth int) []MenuNode
	build = func(parent string, depth int) []MenuNode {
		if depth > maxMenuDepth {
			return nil
		}
		nodes := make([]MenuNode, 0, len(children[parent]))
		for _, it := range children[parent] {
			nodes = append(nodes, MenuNode{
				ID:       it.ID,
				Label:    it.Label,
				Path:     it.Path,
				Order:    it.Order,
				ParentID: it.ParentID,
				Children: build(it.ID, depth+1),
			})
		}
		return nodes
	}

	return build("", 0)
}

func (m *Manager) MenuItemByID(ctx context.Context, id string) (*db.MenuItem, error) {
	return findByID(ctx, m.db.MenuItems, "menu item", id)
}

func (m *Manager) CreateMenuItem(ctx context.Context, item db.MenuItem) (*db.MenuItem, error) {
	if item.ParentID != nil {
		if _, err := findByID(ctx, m.db.MenuItems, "parent menu item", *item.ParentID); err != nil {
			return nil, err
		}
	}

	item.ID = ""
	created, err := m.db.MenuItems.Create(ctx, &item)
	if err != nil {
		return nil, fmt.Errorf("db create menu item: %w", translate(err))
	}

	return created, nil
}

// UpdateMenuItem saves the item. Moving it under itself or one of its descendants fails with ErrMenuCycle.
func (m *Manager) UpdateMenuItem(ctx context.Context, item db.MenuItem) (*db.MenuItem, error) {
	var updated *db.MenuItem
	err := m.tx(ctx, func(m *Manager) error {
		// reparents walk the tree, so they must not interleave
		if item.ParentID != nil {
			if _, err := m.db.ExecuteRaw(ctx, lockMenuItems); err != nil {
				return fmt.Errorf("db lock menu items: %w", err)
			}
		}

		current, err := findByID(ctx, m.db.MenuItems, "menu item", item.ID, db.WithForUpdate())
		if err != nil {
			return err
		}
		if item.ParentID != nil {
			if err := m.checkMenuParent(ctx, item.ID, *item.ParentID); err != nil {
				return err
			}
		}

		current.Label = item.Label
		current.Path = item.Path
		current.Order = item.Order
		current.ParentID = item.ParentID

		updated, err = m.db.MenuItems.Update(ctx, current,
			db.Columns.MenuItem.Label, db.Columns.MenuItem.Path, db.Columns.MenuItem.Order, db.Columns.MenuItem.ParentID)
		if err != nil {
			return fmt.Errorf("db update menu item: %w", translate(err))
		}
		return nil
	})

	return updated, err
}

// checkMenuParent walks up from parentID and fails if it reaches id.
func (m *Manager) checkMenuParent(ctx context.Context, id, parentID string) error {
	cur := &parentID
	for depth := 0; cur != nil; depth++ {
		if *cur == id || depth > maxMenuDepth {
			return fmt.Errorf("%w: %s", ErrMenuCycle, id)
		}

		parent, err := findByID(ctx, m.db.MenuItems, "parent menu item", *cur,
			db.WithColumns(db.Columns.MenuItem.ID, db.Columns.MenuItem.ParentID))
		if err != nil {
			return err
		}
		cur = parent.ParentID
	}

	return nil
}

// DeleteMenuItem removes the item and moves its children to the item's parent.
func (m *Manager) DeleteMenuItem(ctx context.Context, id string) error {
	return m.tx(ctx, func(m *Manager) error {
		item, err := findByID(ctx, m.db.MenuItems, "menu item", id)
		if err != nil {
			return err
		}

		_, err = m.db.MenuItems.UpdateMany(ctx, &db.MenuItemSearch{ParentID: &id},
			map[string]interface{}{db.Columns.MenuItem.ParentID: item.ParentID})
		if err != nil {
			return fmt.Errorf("db move menu children: %w", err)
		}

		_, err = deleteByID(ctx, m.db.MenuItems, "menu item", id)
		return err
	})
}

// ReorderMenu sets the order of the parent's children to the position of their ids.
// ids must list exactly the current children. A nil parent reorders root items.
func (m *Manager) ReorderMenu(ctx context.Context, parentID *string, ids []string) error {
	return m.tx(ctx, func(m *Manager) error {
		search := &db.MenuItemSearch{ParentID: parentID}
		if parentID == nil {
			root := true
			search.IsRoot = &root
		}

		siblings, err := m.db.MenuItems.FindMany(ctx, search, db.FindManyArgs{}, db.WithForUpdate())
		if err != nil {
			return fmt.Errorf("db get menu items: %w", err)
		}
		if len(siblings) != len(ids) {
			return invalid("expected %d menu items, got %d", len(siblings), len(ids))
		}

		current := make(map[string]struct{}, len(siblings))
		for _, s := range siblings {
			current[s.ID] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := current[id]; !ok {
				return invalid("menu item %q is not a child of the parent or repeated", id)
			}
			delete(current, id)
		}

		for i, id := range ids {
			id := id
			_, err := m.db.MenuItems.UpdateMany(ctx, &db.MenuItemSearch{ID: &id},
				map[string]interface{}{db.Columns.MenuItem.Order: i})
			if err != nil {
				return fmt.Errorf("db reorder menu: %w", err)
			}
		}
		return nil
	})
}
