package validator

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	UserID string `json:"userId" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Note   string `json:"note,omitempty"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var p payload
	return c.ShouldBindJSON(&p)
}

func TestMissingField(t *testing.T) {
	Setup()

	err := bind(t, `{}`)
	require.Error(t, err)
	field, ok := MissingField(err)
	assert.True(t, ok)
	assert.Equal(t, "userId", field)

	field, ok = MissingField(bind(t, `{"userId":"a@b.co"}`))
	assert.True(t, ok)
	assert.Equal(t, "name", field)

	_, ok = MissingField(bind(t, `{"userId":`))
	assert.False(t, ok)

	_, ok = MissingField(errors.New("boom"))
	assert.False(t, ok)
}

func TestJSONTagName(t *testing.T) {
	f, _ := reflect.TypeOf(payload{}).FieldByName("Note")
	assert.Equal(t, "note", jsonTagName(f))
}
