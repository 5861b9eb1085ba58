package harness

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Apurer/petstore-api/internal/clients/http/petstore"
)

func petScenarios() []Scenario {
	const suite = "api_pet"
	missing := func(field string) Scenario {
		return Scenario{suite, "add_pet_" + field + "_missing", func(ctx context.Context, env *Env) error {
			fields := RandomPet().Fields()
			delete(fields, field)
			resp, err := env.Client.AddPet(ctx, fields, "")
			return check(resp, err, http.StatusBadRequest, expect(fmt.Sprintf("Bad or missing data. Missing %s field", field)))
		}}
	}
	lookup := func(name, id string, detail string) Scenario {
		return Scenario{suite, name, func(ctx context.Context, env *Env) error {
			resp, err := env.Client.GetPet(ctx, id)
			return check(resp, err, http.StatusNotFound, expect(detail))
		}}
	}
	upload := func(name string, pet bool, field, filename string, status int, detail string) Scenario {
		return Scenario{suite, name, func(ctx context.Context, env *Env) error {
			id := "999999999"
			if pet {
				created, err := env.CreatePet(ctx, RandomPet())
				if err != nil {
					return err
				}
				id = itoa(created.ID)
			}
			resp, err := env.Client.UploadImage(ctx, id, field, filename, []byte("\x89PNG\r\n"))
			return check(resp, err, status, expect(detail))
		}}
	}

	return []Scenario{
		{suite, "add_pet", func(ctx context.Context, env *Env) error {
			data := RandomPet()
			resp, err := env.Client.AddPet(ctx, data.Fields(), "")
			if err == nil && resp.Status == http.StatusCreated {
				var pet Pet
				if decodeErr := resp.Decode(&pet); decodeErr == nil {
					env.TrackPet(pet.ID)
				}
			}
			return check(resp, err, http.StatusCreated, expect(`"id":`, data.Name, data.Category, data.Status))
		}},
		missing("name"),
		missing("category"),
		missing("status"),
		{suite, "add_pet_name_too_long", func(ctx context.Context, env *Env) error {
			fields := RandomPet().Fields()
			fields["name"] = strings.Repeat("n", 101)
			resp, err := env.Client.AddPet(ctx, fields, "")
			return check(resp, err, http.StatusBadRequest, expect("Bad or missing data. Name too long"))
		}},
		{suite, "add_pet_duplicate", func(ctx context.Context, env *Env) error {
			data := RandomPet()
			if _, err := env.CreatePet(ctx, data); err != nil {
				return err
			}
			resp, err := env.Client.AddPet(ctx, data.Fields(), "")
			return check(resp, err, http.StatusBadRequest, expect("Pet with the same name and category already exists"))
		}},
		{suite, "add_pet_idempotent_retry", func(ctx context.Context, env *Env) error {
			data := RandomPet()
			key := "harness-" + RandomUsername()
			first, err := env.Client.AddPet(ctx, data.Fields(), key)
			if err != nil {
				return err
			}
			var pet Pet
			if err := first.Decode(&pet); err == nil && pet.ID != 0 {
				env.TrackPet(pet.ID)
			}
			if err := check(first, nil, http.StatusCreated, expect(data.Name)); err != nil {
				return err
			}
			resp, err := env.Client.AddPet(ctx, data.Fields(), key)
			if err := check(resp, err, http.StatusCreated, expect(fmt.Sprintf(`"id":%d`, pet.ID))); err != nil {
				return err
			}
			other := RandomPet()
			resp, err = env.Client.AddPet(ctx, other.Fields(), key)
			return check(resp, err, http.StatusConflict, expect("Idempotency key reused with a different request"))
		}},
		{suite, "get_pet", func(ctx context.Context, env *Env) error {
			data := RandomPet()
			pet, err := env.CreatePet(ctx, data)
			if err != nil {
				return err
			}
			resp, err := env.Client.GetPet(ctx, itoa(pet.ID))
			return check(resp, err, http.StatusOK, expect(fmt.Sprintf(`"id":%d`, pet.ID), data.Name, data.Category, data.Status))
		}},
		lookup("get_pet_id_0", "0", "Pet not found"),
		lookup("get_pet_id_negative_1", "-1", URLNotFound),
		lookup("get_pet_id_999999999", "999999999", "Pet not found"),
		lookup("get_pet_id_invalid", "invalid", URLNotFound),
		{suite, "update_pet", func(ctx context.Context, env *Env) error {
			data := RandomPet()
			pet, err := env.CreatePet(ctx, data)
			if err != nil {
				return err
			}
			name := RandomPet().Name
			resp, err := env.Client.UpdatePet(ctx, itoa(pet.ID), petstore.Fields{"name": name})
			return check(resp, err, http.StatusOK, expect(name, data.Category, data.Status), data.Name)
		}},
		{suite, "update_pet_not_found", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.UpdatePet(ctx, "999999999", petstore.Fields{"status": "sold"})
			return check(resp, err, http.StatusNotFound, expect("Pet not found"))
		}},
		{suite, "update_pet_duplicate", func(ctx context.Context, env *Env) error {
			first, err := env.CreatePet(ctx, RandomPet())
			if err != nil {
				return err
			}
			second, err := env.CreatePet(ctx, RandomPet())
			if err != nil {
				return err
			}
			resp, err := env.Client.UpdatePet(ctx, itoa(second.ID), petstore.Fields{"name": first.Name, "category": first.Category})
			return check(resp, err, http.StatusBadRequest, expect("Pet with the same name and category already exists"))
		}},
		{suite, "update_pet_category_too_long", func(ctx context.Context, env *Env) error {
			pet, err := env.CreatePet(ctx, RandomPet())
			if err != nil {
				return err
			}
			resp, err := env.Client.UpdatePet(ctx, itoa(pet.ID), petstore.Fields{"category": strings.Repeat("c", 101)})
			return check(resp, err, http.StatusBadRequest, expect("Bad or missing data. Category too long"))
		}},
		{suite, "delete_pet", func(ctx context.Context, env *Env) error {
			pet, err := env.CreatePet(ctx, RandomPet())
			if err != nil {
				return err
			}
			resp, err := env.Client.DeletePet(ctx, itoa(pet.ID))
			if err := check(resp, err, http.StatusNoContent, nil); err != nil {
				return err
			}
			resp, err = env.Client.GetPet(ctx, itoa(pet.ID))
			return check(resp, err, http.StatusNotFound, expect("Pet not found"))
		}},
		{suite, "delete_pet_not_found", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.DeletePet(ctx, "999999999")
			return check(resp, err, http.StatusNotFound, expect("Pet not found"))
		}},
		{suite, "find_pets_by_status", func(ctx context.Context, env *Env) error {
			data := RandomPet()
			if _, err := env.CreatePet(ctx, data); err != nil {
				return err
			}
			resp, err := env.Client.FindPetsByStatus(ctx, data.Status)
			return check(resp, err, http.StatusOK, expect(data.Name))
		}},
		{suite, "find_pets_by_status_invalid", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.FindPetsByStatus(ctx, "unknown")
			return check(resp, err, http.StatusBadRequest, expect("Status parameter is invalid; should be available, pending, or sold"))
		}},
		{suite, "find_pets_by_status_missing", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.FindPetsByStatus(ctx, "")
			return check(resp, err, http.StatusBadRequest, expect("Status parameter is missing"))
		}},
		upload("upload_image", true, "file", "pet.png", http.StatusCreated, "File uploaded successfully"),
		upload("upload_image_no_file_part", true, "image", "pet.png", http.StatusBadRequest, "No file part"),
		upload("upload_image_empty_filename", true, "file", "", http.StatusBadRequest, "No selected file"),
		upload("upload_image_pet_not_found", false, "file", "pet.png", http.StatusNotFound, "Pet not found"),
	}
}
