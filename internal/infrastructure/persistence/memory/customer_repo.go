package memory

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/customer"
)

type customerRepository struct {
	s *Store
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.byUserID[c.UserID]; ok {
		return customer.ErrUserIDDuplicate
	}
	r.s.nextID++
	c.ID = r.s.nextID
	r.s.customers[c.ID] = clone(c)
	r.s.byUserID[c.UserID] = c.ID
	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.customers[id]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	out := clone(&c)
	return &out, nil
}

func (r *customerRepository) FindByUserID(ctx context.Context, userID string) (*customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	id, ok := r.s.byUserID[userID]
	r.s.mu.RUnlock()
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return r.FindByID(ctx, id)
}

// clone 复制Address2指针指向的值，避免调用方修改存储内容
func clone(c *customer.Customer) customer.Customer {
	out := *c
	if c.Address2 != nil {
		a := *c.Address2
		out.Address2 = &a
	}
	return out
}
