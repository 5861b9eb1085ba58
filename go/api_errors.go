package petstoreserver

import (
	"github.com/gin-gonic/gin"

	apierrors "github.com/Apurer/petstore-api/internal/shared/errors"
	"github.com/Apurer/petstore-api/internal/shared/failure"
)

// URLNotFoundMessage answers unknown routes and path ids that are not non-negative integers.
const URLNotFoundMessage = "The requested URL was not found on the server. If you entered the URL manually please check your spelling and try again."

const malformedBodyMessage = "Bad Request. The request body is not valid JSON for this endpoint"

var responder = func() *apierrors.Responder {
	r := apierrors.NewChainedResponder("", apierrors.FailureMapper)
	r.RequestIDKey = requestIDKey
	return r
}()

// respondError maps classified failures by kind and everything else to 500.
func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	responder.RespondError(c, err)
}

func respondMalformedBody(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	responder.BadRequest(c, malformedBodyMessage)
}

func respondURLNotFound(c *gin.Context) {
	responder.Respond(c, apierrors.ErrNotFound.
		WithDetail(URLNotFoundMessage).
		WithExtension(apierrors.CodeExtension, string(failure.KindNotFound)))
}
