package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/petstore-api/internal/shared/failure"
)

func TestFailureMapper(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{failure.MissingField("name"), http.StatusBadRequest},
		{failure.New(failure.KindDuplicatePet, "dup"), http.StatusBadRequest},
		{failure.New(failure.KindNotFound, "Pet not found"), http.StatusNotFound},
		{failure.New(failure.KindKeyNotFound, "Pet not found in inventory"), http.StatusNotFound},
		{failure.New(failure.KindInvalidCredentials, "nope"), http.StatusUnauthorized},
		{failure.New(failure.KindIdempotencyConflict, "again"), http.StatusConflict},
		{failure.New(failure.Kind("unheard_of"), "odd"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("op: %w", tc.err)
			problem, ok := FailureMapper(wrapped)
			require.True(t, ok)
			assert.Equal(t, tc.status, problem.Status)
			assert.Equal(t, tc.err.Error(), problem.Detail)
			kind, _ := failure.KindOf(tc.err)
			assert.Equal(t, string(kind), problem.Extensions[CodeExtension])
		})
	}
}

func TestFailureMapper_IgnoresUnclassified(t *testing.T) {
	_, ok := FailureMapper(stderrors.New("boom"))
	assert.False(t, ok)
}

func TestChainedResponder_WritesProblemJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	responder := NewChainedResponder("", FailureMapper)

	router := gin.New()
	router.GET("/pet/:id", func(c *gin.Context) {
		responder.RespondError(c, failure.New(failure.KindNotFound, "Pet not found"))
	})
	router.GET("/crash", func(c *gin.Context) {
		responder.RespondError(c, stderrors.New("connection reset by peer"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pet/7", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ContentTypeProblemJSON, rec.Header().Get("Content-Type"))

	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "Pet not found", problem.Detail)
	assert.Equal(t, "/pet/7", problem.Instance)
	assert.Equal(t, TypeNotFound, problem.Type)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/crash", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var internal ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &internal))
	assert.Equal(t, "Internal Server Error", internal.Detail)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestResponder_BaseURIAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	responder := NewChainedResponder("https://petstore.example")
	responder.RequestIDKey = "rid"
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		c.Set("rid", "abc-123")
		responder.BadRequest(c, "Bad Request")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "https://petstore.example"+TypeBadRequest, problem.Type)
	assert.Equal(t, "abc-123", problem.Extensions[RequestIDExtension])
}

func TestResponder_PassesThroughProblemDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	responder := NewChainedResponder("")
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		responder.RespondError(c, fmt.Errorf("wrapped: %w", ErrConflict.WithDetail("again")))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWithExtension_DoesNotMutateTemplate(t *testing.T) {
	_ = ErrNotFound.WithExtension("code", "not_found")
	assert.Nil(t, ErrNotFound.Extensions)
}
