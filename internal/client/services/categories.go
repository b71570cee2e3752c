package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/expensetracker/internal/client/state"
)

const categoriesKey = "categories"

type CategorySync struct {
	*core
}

// Load replaces the cached categories with the server list. Failures keep
// the cache and are only logged. A response is dropped when a newer load
// was started meanwhile or the session ended.
func (c *CategorySync) Load(ctx context.Context) error {
	if c.user() == nil {
		return ErrNotLoggedIn
	}

	return c.once(categoriesKey, func() error {
		seq := c.categoryLoads.Add(1)
		list, err := c.api.ListCategories(ctx)
		if err != nil {
			c.log.Warn(ctx, "loading categories", "error", err)
			return err
		}
		c.store.Update(func(s *state.Snapshot) {
			if s.User == nil || c.categoryLoads.Load() != seq {
				return
			}
			s.Categories = list
			s.CategoriesGen++
		})
		return nil
	})
}

// reload re-fetches after a write. It never joins a load that was started
// before the write completed.
func (c *CategorySync) reload(ctx context.Context) {
	c.forget(categoriesKey)
	_ = c.Load(ctx)
}

func (c *CategorySync) Add(ctx context.Context, name string) error {
	if _, err := c.requireUser(); err != nil {
		return err
	}

	return c.once("category-add\x00"+name, func() error {
		if err := c.api.CreateCategory(ctx, name); err != nil {
			c.log.Warn(ctx, "adding category", "error", err)
			c.fail(failure(err, MsgCategoryAddFailed))
			return err
		}

		c.success(MsgCategoryAdded)
		c.store.Update(func(s *state.Snapshot) { s.Drafts.Category = "" })
		c.reload(ctx)
		return nil
	})
}

// Rename changes a category's name. Like Delete it is limited to
// administrators and sends nothing for anyone else.
func (c *CategorySync) Rename(ctx context.Context, id int64, name string) error {
	u, err := c.requireUser()
	if err != nil {
		return err
	}
	if !u.Admin {
		c.fail(MsgCategoryRenameAdmin)
		return ErrNotAdmin
	}

	return c.once("category-rename\x00"+strconv.FormatInt(id, 10)+"\x00"+name, func() error {
		if err := c.api.RenameCategory(ctx, id, name); err != nil {
			c.log.Warn(ctx, "renaming category", "id", id, "error", err)
			c.fail(failure(err, MsgCategoryRenameFailed))
			return err
		}

		c.success(MsgCategoryRenamed)
		c.reload(ctx)
		return nil
	})
}

// Delete removes a category. Only administrators may delete; for anyone
// else no request is sent. The server may still refuse with deleted=false,
// in which case ErrNotDeleted is returned and the list is re-fetched anyway.
func (c *CategorySync) Delete(ctx context.Context, id int64) error {
	u, err := c.requireUser()
	if err != nil {
		return err
	}
	if !u.Admin {
		c.fail(MsgCategoryAdminOnly)
		return ErrNotAdmin
	}
	if !c.confirmed(ctx, ConfirmDeleteCategory) {
		return ErrCanceled
	}

	return c.once("category-delete\x00"+strconv.FormatInt(id, 10), func() error {
		res, err := c.api.DeleteCategory(ctx, id, u.Email)
		if err != nil {
			c.log.Warn(ctx, "deleting category", "id", id, "error", err)
			c.fail(failure(err, MsgCategoryDeleteFailed))
			return err
		}

		var result error
		if res.Deleted {
			c.success(orDefault(res.Message, MsgCategoryDeleted))
		} else {
			msg := orDefault(res.Message, MsgCategoryDeleteFailed)
			c.fail(msg)
			result = fmt.Errorf("%w: %s", ErrNotDeleted, msg)
		}

		c.reload(ctx)
		return result
	})
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
