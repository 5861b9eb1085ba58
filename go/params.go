package petstoreserver

import (
	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// idParam binds a simple-style integer path parameter. Values that do not bind or are
// negative are answered as an unknown URL, and ok is false.
func idParam(c *gin.Context, name string) (int64, bool) {
	var id int64
	if err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, c.Param(name), &id); err != nil || id < 0 {
		respondURLNotFound(c)
		return 0, false
	}
	return id, true
}

// stringParam binds a simple-style string path parameter.
func stringParam(c *gin.Context, name string) (string, bool) {
	var value string
	if err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, c.Param(name), &value); err != nil {
		respondURLNotFound(c)
		return "", false
	}
	return value, true
}
