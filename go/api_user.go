package petstoreserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userhttpmapper "github.com/Apurer/petstore-api/internal/domains/users/adapters/http/mapper"
	usertypes "github.com/Apurer/petstore-api/internal/domains/users/application/types"
	userports "github.com/Apurer/petstore-api/internal/domains/users/ports"
)

// UserAPI wires HTTP transport with the users bounded context service.
type UserAPI struct {
	service userports.Service
}

// NewUserAPI creates a UserAPI backed by the provided service.
func NewUserAPI(service userports.Service) UserAPI {
	return UserAPI{service: service}
}

// Post /user
// Create user
func (api *UserAPI) CreateUser(c *gin.Context) {
	var payload userhttpmapper.CreateUser
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMalformedBody(c, err)
		return
	}
	user, err := api.service.CreateUser(c.Request.Context(), userhttpmapper.ToCreateUserInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userhttpmapper.FromDomainUser(user))
}

// Delete /user/:username
// Delete user
func (api *UserAPI) DeleteUser(c *gin.Context) {
	username, ok := stringParam(c, "username")
	if !ok {
		return
	}
	ack, err := api.service.Delete(c.Request.Context(), usertypes.UserIdentifier{Username: username})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Message{Message: ack.Message})
}

// Get /user/:username
// Get user by user name
func (api *UserAPI) GetUserByName(c *gin.Context) {
	username, ok := stringParam(c, "username")
	if !ok {
		return
	}
	user, err := api.service.GetByUsername(c.Request.Context(), usertypes.UserIdentifier{Username: username})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userhttpmapper.FromDomainUser(user))
}

// Get /user/login
// Logs user into the system
func (api *UserAPI) LoginUser(c *gin.Context) {
	input := usertypes.LoginInput{
		Username: c.Query("username"),
		Password: c.Query("password"),
	}
	ack, err := api.service.Login(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Message{Message: ack.Message})
}

// Put /user/:username
// Update user
func (api *UserAPI) UpdateUser(c *gin.Context) {
	username, ok := stringParam(c, "username")
	if !ok {
		return
	}
	var payload userhttpmapper.UpdateUser
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMalformedBody(c, err)
		return
	}
	user, err := api.service.Update(c.Request.Context(), userhttpmapper.ToUpdateUserInput(username, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userhttpmapper.FromDomainUser(user))
}
