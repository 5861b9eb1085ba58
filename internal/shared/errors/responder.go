package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type for Problem Details responses.
const ContentTypeProblemJSON = "application/problem+json"

// RequestIDExtension names the extension member echoing the request correlation id.
const RequestIDExtension = "requestId"

// ErrorMapper maps an application error to a problem. ok is false when the mapper
// does not recognise err.
type ErrorMapper func(err error) (problem ProblemDetail, ok bool)

// Responder writes Problem Details responses, consulting its mappers in order.
type Responder struct {
	// BaseURI is prepended to relative problem type URIs.
	BaseURI string
	// RequestIDKey is the gin context key holding the correlation id, if any.
	RequestIDKey string

	mappers []ErrorMapper
}

// NewChainedResponder creates a responder with custom error mappers.
func NewChainedResponder(baseURI string, mappers ...ErrorMapper) *Responder {
	return &Responder{BaseURI: baseURI, mappers: mappers}
}

// Respond sends problem with the problem+json content type.
func (r *Responder) Respond(c *gin.Context, problem ProblemDetail) {
	if r.BaseURI != "" && len(problem.Type) > 0 && problem.Type[0] == '/' {
		problem.Type = r.BaseURI + problem.Type
	}
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	if r.RequestIDKey != "" {
		if id := c.GetString(r.RequestIDKey); id != "" {
			problem = problem.WithExtension(RequestIDExtension, id)
		}
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// RespondError answers err with the first mapper that recognises it. A ProblemDetail
// in err's chain is sent as is; anything else becomes a 500 without leaking err's text.
func (r *Responder) RespondError(c *gin.Context, err error) {
	for _, mapper := range r.mappers {
		if problem, ok := mapper(err); ok {
			r.Respond(c, problem)
			return
		}
	}
	var problem ProblemDetail
	if errors.As(err, &problem) {
		r.Respond(c, problem)
		return
	}
	r.Respond(c, ErrInternal.WithDetail(http.StatusText(http.StatusInternalServerError)))
}

// BadRequest sends a 400 problem response.
func (r *Responder) BadRequest(c *gin.Context, detail string) {
	r.Respond(c, ErrBadRequest.WithDetail(detail))
}
