package memory

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
)

type bookRepository struct {
	s *Store
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.books[b.ISBN]; ok {
		return book.ErrISBNDuplicate
	}
	r.s.books[b.ISBN] = *b
	return nil
}

func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.books[isbn]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return &b, nil
}

// LockByISBN 内存实现中行锁由Store.Transaction的串行化代替
func (r *bookRepository) LockByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	return r.FindByISBN(ctx, isbn)
}

func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.books[b.ISBN]
	if !ok {
		return book.ErrBookNotFound
	}
	current.ApplyUpdate(b)
	r.s.books[b.ISBN] = current
	return nil
}
