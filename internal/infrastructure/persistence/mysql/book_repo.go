package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如ISBN重复),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		// 并发插入同一ISBN时由主键兜底
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.WithCode(apperrors.ErrCodeDatabaseError, err, "创建图书失败")
	}
	return nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := dbFromContext(ctx, r.db).Where("isbn = ?", isbn).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.WithCode(apperrors.ErrCodeDatabaseError, err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// LockByISBN 悲观锁查询图书
// 必须在TxManager.Transaction内调用,否则锁在语句结束时即释放
func (r *bookRepository) LockByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := dbFromContext(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("isbn = ?", isbn).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.WithCode(apperrors.ErrCodeDatabaseError, err, "锁定图书失败")
	}
	return toBookEntity(&model), nil
}

// Update 覆盖除ISBN外的全部字段
// 使用map更新,quantity为0时也会写入
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	result := dbFromContext(ctx, r.db).
		Model(&BookModel{}).
		Where("isbn = ?", b.ISBN).
		Updates(map[string]interface{}{
			"title":       b.Title,
			"author":      b.Author,
			"description": b.Description,
			"genre":       b.Genre,
			"price":       b.Price.String(),
			"quantity":    b.Quantity,
		})
	if result.Error != nil {
		return apperrors.WithCode(apperrors.ErrCodeDatabaseError, result.Error, "更新图书失败")
	}
	return nil
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Genre:       b.Genre,
		Price:       b.Price.String(),
		Quantity:    b.Quantity,
	}
}

func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ISBN:        model.ISBN,
		Title:       model.Title,
		Author:      model.Author,
		Description: model.Description,
		Genre:       model.Genre,
		Price:       book.Price(model.Price),
		Quantity:    model.Quantity,
	}
}
