package harness

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Apurer/petstore-api/internal/clients/http/petstore"
)

func userScenarios() []Scenario {
	const suite = "api_user"
	return []Scenario{
		{suite, "create_user", func(ctx context.Context, env *Env) error {
			username := RandomUsername()
			resp, err := env.Client.CreateUser(ctx, petstore.Fields{"username": username, "email": username + "@example.com", "password": "secret"})
			if err == nil && resp.Status == http.StatusCreated {
				env.TrackUser(username)
			}
			return check(resp, err, http.StatusCreated, expect(username, username+"@example.com"))
		}},
		{suite, "create_user_duplicate", func(ctx context.Context, env *Env) error {
			username, err := env.CreateUser(ctx, "secret")
			if err != nil {
				return err
			}
			resp, err := env.Client.CreateUser(ctx, petstore.Fields{"username": username, "email": "other@example.com", "password": "x"})
			return check(resp, err, http.StatusBadRequest, expect("Username already exists"))
		}},
		{suite, "create_user_email_missing", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.CreateUser(ctx, petstore.Fields{"username": RandomUsername(), "password": "x"})
			return check(resp, err, http.StatusBadRequest, expect("Bad or missing data. Missing email field"))
		}},
		{suite, "login_user", func(ctx context.Context, env *Env) error {
			username, err := env.CreateUser(ctx, "secret")
			if err != nil {
				return err
			}
			resp, err := env.Client.Login(ctx, username, "secret")
			return check(resp, err, http.StatusOK, expect("Login successful"))
		}},
		{suite, "login_user_wrong_password", func(ctx context.Context, env *Env) error {
			username, err := env.CreateUser(ctx, "secret")
			if err != nil {
				return err
			}
			resp, err := env.Client.Login(ctx, username, "wrong")
			return check(resp, err, http.StatusUnauthorized, expect("Invalid username or password"))
		}},
		{suite, "login_user_password_missing", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.Login(ctx, RandomUsername(), "")
			return check(resp, err, http.StatusBadRequest, expect("Bad or missing data. Missing password field"))
		}},
		{suite, "get_user", func(ctx context.Context, env *Env) error {
			username, err := env.CreateUser(ctx, "secret")
			if err != nil {
				return err
			}
			resp, err := env.Client.GetUser(ctx, username)
			return check(resp, err, http.StatusOK, expect(fmt.Sprintf(`"username":"%s"`, username)))
		}},
		{suite, "get_user_not_found", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.GetUser(ctx, RandomUsername())
			return check(resp, err, http.StatusNotFound, expect("User not found"))
		}},
		{suite, "update_user", func(ctx context.Context, env *Env) error {
			username, err := env.CreateUser(ctx, "secret")
			if err != nil {
				return err
			}
			resp, err := env.Client.UpdateUser(ctx, username, petstore.Fields{"email": "changed@example.com", "password": "changed"})
			return check(resp, err, http.StatusOK, expect("changed@example.com"), username+"@example.com")
		}},
		{suite, "update_user_not_found", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.UpdateUser(ctx, RandomUsername(), petstore.Fields{"email": "x@example.com", "password": "x"})
			return check(resp, err, http.StatusNotFound, expect("User not found"))
		}},
		{suite, "delete_user", func(ctx context.Context, env *Env) error {
			username, err := env.CreateUser(ctx, "secret")
			if err != nil {
				return err
			}
			resp, err := env.Client.DeleteUser(ctx, username)
			return check(resp, err, http.StatusOK, expect(fmt.Sprintf("User %s deleted", username)))
		}},
	}
}

func serviceScenarios() []Scenario {
	const suite = "api_service"
	return []Scenario{
		{suite, "healthz", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.Healthz(ctx)
			return check(resp, err, http.StatusOK, expect(`"status":"ok"`))
		}},
		{suite, "unknown_url", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.Do(ctx, http.MethodGet, "/nowhere", nil, nil)
			return check(resp, err, http.StatusNotFound, expect(URLNotFound))
		}},
	}
}
