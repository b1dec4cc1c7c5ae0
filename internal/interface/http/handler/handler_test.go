package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	appcustomer "github.com/xiebiao/bookstore-api/internal/application/customer"
	"github.com/xiebiao/bookstore-api/internal/application/event"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/customer"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/logger"
)

func newRouter(bookRepo book.Repository, tx book.Transactor, customerRepo customer.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	bookService := book.NewService(bookRepo, tx)
	customerService := customer.NewService(customerRepo)
	events := event.NopPublisher{}

	bookHandler := NewBookHandler(
		appbook.NewAddBookUseCase(bookService, events),
		appbook.NewGetBookUseCase(bookService, appbook.NopCache{}),
		appbook.NewUpdateBookUseCase(bookService, appbook.NopCache{}, events),
	)
	customerHandler := NewCustomerHandler(
		appcustomer.NewAddCustomerUseCase(customerService, events),
		appcustomer.NewGetCustomerUseCase(customerService, appcustomer.NopCache{}),
		appcustomer.NewFindCustomerUseCase(customerService),
	)

	r := gin.New()
	RegisterRoutes(r, bookHandler, customerHandler)
	return r
}

func newMemoryRouter() *gin.Engine {
	store := memory.NewStore()
	return newRouter(store.Books(), store, store.Customers())
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		_ = json.NewEncoder(&buf).Encode(v)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func bookBody(isbn string) map[string]interface{} {
	return map[string]interface{}{
		"ISBN":        isbn,
		"title":       "The Go Programming Language",
		"Author":      "Alan Donovan",
		"description": "Go from first principles",
		"genre":       "non-fiction",
		"price":       "39.99",
		"quantity":    5,
	}
}

func customerBody(userID string) map[string]interface{} {
	return map[string]interface{}{
		"userId":  userID,
		"name":    "Ann Smith",
		"phone":   "+14155550100",
		"address": "1 Market St",
		"city":    "San Francisco",
		"state":   "CA",
		"zipcode": "94105",
	}
}

// failingRepo 模拟存储故障
type failingRepo struct{}

var errStoreDown = apperrors.WithCode(apperrors.ErrCodeDatabaseError, errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"), "查询失败")

func (failingRepo) Create(context.Context, *book.Book) error                  { return errStoreDown }
func (failingRepo) FindByISBN(context.Context, string) (*book.Book, error)    { return nil, errStoreDown }
func (failingRepo) LockByISBN(context.Context, string) (*book.Book, error)    { return nil, errStoreDown }
func (failingRepo) Update(context.Context, *book.Book) error                  { return errStoreDown }
func (failingRepo) Transaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type failingCustomerRepo struct{}

func (failingCustomerRepo) Create(context.Context, *customer.Customer) error { return errStoreDown }
func (failingCustomerRepo) FindByID(context.Context, uint) (*customer.Customer, error) {
	return nil, errStoreDown
}
func (failingCustomerRepo) FindByUserID(context.Context, string) (*customer.Customer, error) {
	return nil, errStoreDown
}

func TestAddBook(t *testing.T) {
	r := newMemoryRouter()

	t.Run("创建成功", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/books", bookBody("978-0134190440"))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/books/978-0134190440", w.Header().Get("Location"))
		assert.JSONEq(t, `{"ISBN":"978-0134190440","title":"The Go Programming Language","Author":"Alan Donovan",
			"description":"Go from first principles","genre":"non-fiction","price":"39.99","quantity":5}`, w.Body.String())
	})

	t.Run("数字价格", func(t *testing.T) {
		body := bookBody("978-2")
		body["price"] = 12.5
		w := doJSON(r, http.MethodPost, "/books", body)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"price":"12.5"`)
	})

	t.Run("指数形式数字价格", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/books", `{"ISBN":"978-4","title":"t","Author":"a","description":"d","genre":"g","price":1e3,"quantity":1}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"price":"1000"`)
	})

	t.Run("quantity为0", func(t *testing.T) {
		body := bookBody("978-3")
		body["quantity"] = 0
		w := doJSON(r, http.MethodPost, "/books", body)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("逐个缺失必填字段", func(t *testing.T) {
		for _, field := range []string{"ISBN", "title", "Author", "description", "genre", "price", "quantity"} {
			body := bookBody("978-9")
			delete(body, field)
			w := doJSON(r, http.MethodPost, "/books", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, field)
			assert.Equal(t, "Invalid or missing fields.", message(t, w), field)
		}
	})

	t.Run("价格格式错误", func(t *testing.T) {
		for _, price := range []string{"12.555", "-1.00", "abc", "123456789"} {
			body := bookBody("978-9")
			body["price"] = price
			w := doJSON(r, http.MethodPost, "/books", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, price)
			assert.Equal(t, "Invalid price format.", message(t, w), price)
		}
	})

	t.Run("超出列宽", func(t *testing.T) {
		body := bookBody("978-9")
		body["title"] = strings.Repeat("t", 256)
		w := doJSON(r, http.MethodPost, "/books", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid or missing fields.", message(t, w))
	})

	t.Run("非法JSON", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/books", `{"ISBN":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid or missing fields.", message(t, w))
	})

	t.Run("ISBN重复", func(t *testing.T) {
		body := bookBody("978-0134190440")
		body["title"] = "Other"
		w := doJSON(r, http.MethodPost, "/books", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "This ISBN already exists in the system.", message(t, w))

		w = doJSON(r, http.MethodGet, "/books/978-0134190440", nil)
		assert.Contains(t, w.Body.String(), `"title":"The Go Programming Language"`)
	})
}

func TestGetBook(t *testing.T) {
	r := newMemoryRouter()
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/books", bookBody("978-1")).Code)

	for _, path := range []string{"/books/978-1", "/books/isbn/978-1"} {
		w := doJSON(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"ISBN":"978-1","title":"The Go Programming Language","Author":"Alan Donovan",
			"description":"Go from first principles","genre":"non-fiction","price":"39.99","quantity":5}`, w.Body.String(), path)
	}

	w := doJSON(r, http.MethodGet, "/books/978-404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book not found.", message(t, w))

	w = doJSON(r, http.MethodGet, "/books/isbn/978-404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateBook(t *testing.T) {
	r := newMemoryRouter()
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/books", bookBody("978-1")).Code)

	t.Run("覆盖成功并返回提交的记录", func(t *testing.T) {
		body := bookBody("978-1")
		body["title"] = "Second Edition"
		body["price"] = "45"
		body["quantity"] = 0
		w := doJSON(r, http.MethodPut, "/books/978-1", body)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Second Edition"`)
		assert.Contains(t, w.Body.String(), `"price":"45"`)

		w = doJSON(r, http.MethodGet, "/books/978-1", nil)
		assert.Contains(t, w.Body.String(), `"title":"Second Edition"`)
		assert.Contains(t, w.Body.String(), `"quantity":0`)
	})

	t.Run("ISBN不一致", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/books/978-2", bookBody("978-1"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ISBN in URL and body do not match.", message(t, w))
	})

	t.Run("缺失字段先于ISBN比对", func(t *testing.T) {
		body := bookBody("978-1")
		delete(body, "genre")
		w := doJSON(r, http.MethodPut, "/books/978-2", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid or missing fields.", message(t, w))
	})

	t.Run("价格格式错误", func(t *testing.T) {
		body := bookBody("978-1")
		body["price"] = "1.234"
		w := doJSON(r, http.MethodPut, "/books/978-1", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid price format.", message(t, w))
	})

	t.Run("不存在", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/books/978-404", bookBody("978-404"))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found.", message(t, w))
	})
}

func TestBookStoreFailure(t *testing.T) {
	var logs bytes.Buffer
	logger.Set(zerolog.New(&logs))
	r := newRouter(failingRepo{}, failingRepo{}, memory.NewStore().Customers())

	w := doJSON(r, http.MethodPost, "/books", bookBody("978-1"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", message(t, w))
	assert.Contains(t, logs.String(), "connection refused")

	w = doJSON(r, http.MethodGet, "/books/978-1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = doJSON(r, http.MethodPut, "/books/978-1", bookBody("978-1"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// 校验失败不访问存储，也不记录故障
	logs.Reset()
	w = doJSON(r, http.MethodPut, "/books/978-2", bookBody("978-1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, logs.String())
}

func TestAddCustomer(t *testing.T) {
	r := newMemoryRouter()

	t.Run("创建成功", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/customers", customerBody("ann@example.com"))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/customers/1", w.Header().Get("Location"))
		assert.JSONEq(t, `{"id":1,"userId":"ann@example.com","name":"Ann Smith","phone":"+14155550100",
			"address":"1 Market St","address2":null,"city":"San Francisco","state":"CA","zipcode":"94105"}`, w.Body.String())
	})

	t.Run("address2", func(t *testing.T) {
		body := customerBody("bob@example.com")
		body["address2"] = "Suite 200"
		w := doJSON(r, http.MethodPost, "/customers", body)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/customers/2", w.Header().Get("Location"))
		assert.Contains(t, w.Body.String(), `"address2":"Suite 200"`)
	})

	t.Run("空address2按null保存", func(t *testing.T) {
		body := customerBody("erin@example.com")
		body["address2"] = ""
		w := doJSON(r, http.MethodPost, "/customers", body)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"address2":null`)

		w = doJSON(r, http.MethodGet, w.Header().Get("Location"), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"address2":null`)
	})

	t.Run("逐个缺失必填字段", func(t *testing.T) {
		for _, field := range []string{"userId", "name", "phone", "address", "city", "state", "zipcode"} {
			body := customerBody("carol@example.com")
			delete(body, field)
			w := doJSON(r, http.MethodPost, "/customers", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, field)
			assert.Equal(t, "Missing required field: "+field, message(t, w))
		}
	})

	t.Run("报告第一个缺失字段", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/customers", map[string]interface{}{"userId": "x@y.co", "city": "Austin"})
		assert.Equal(t, "Missing required field: name", message(t, w))
	})

	t.Run("邮箱格式", func(t *testing.T) {
		for _, id := range []string{"foo", "foo@bar"} {
			w := doJSON(r, http.MethodPost, "/customers", customerBody(id))
			assert.Equal(t, http.StatusBadRequest, w.Code, id)
			assert.Equal(t, "Invalid email format.", message(t, w))
		}
	})

	t.Run("州代码格式", func(t *testing.T) {
		for _, state := range []string{"ca", "CAL", "C1"} {
			body := customerBody("dave@example.com")
			body["state"] = state
			w := doJSON(r, http.MethodPost, "/customers", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, state)
			assert.Equal(t, "Invalid state format.", message(t, w))
		}
	})

	t.Run("userId重复", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/customers", customerBody("ann@example.com"))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "This user ID already exists in the system.", message(t, w))
	})

	t.Run("非法JSON", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/customers", `[1,2]`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body.", message(t, w))
	})
}

func TestGetCustomer(t *testing.T) {
	r := newMemoryRouter()
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/customers", customerBody("a@b.co")).Code)

	w := doJSON(r, http.MethodGet, "/customers/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"a@b.co"`)

	w = doJSON(r, http.MethodGet, "/customers/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or missing ID.", message(t, w))

	w = doJSON(r, http.MethodGet, "/customers/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Customer not found.", message(t, w))
}

func TestFindCustomer(t *testing.T) {
	r := newMemoryRouter()
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/customers", customerBody("a@b.co")).Code)

	w := doJSON(r, http.MethodGet, "/customers?userId=a@b.co", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)

	w = doJSON(r, http.MethodGet, "/customers", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing userId query parameter.", message(t, w))

	w = doJSON(r, http.MethodGet, "/customers?userId=foo", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email format.", message(t, w))

	w = doJSON(r, http.MethodGet, "/customers?userId=nobody@b.co", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Customer not found.", message(t, w))
}

func TestCustomerStoreFailure(t *testing.T) {
	logger.Set(zerolog.Nop())
	store := memory.NewStore()
	r := newRouter(store.Books(), store, failingCustomerRepo{})

	w := doJSON(r, http.MethodPost, "/customers", customerBody("a@b.co"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", message(t, w))

	w = doJSON(r, http.MethodGet, "/customers/1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = doJSON(r, http.MethodGet, "/customers?userId=a@b.co", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
