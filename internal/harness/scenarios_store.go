package harness

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Apurer/petstore-api/internal/clients/http/petstore"
)

func inventoryScenarios() []Scenario {
	const suite = "api_inventory"
	return []Scenario{
		{suite, "get_inventory", func(ctx context.Context, env *Env) error {
			pet, err := env.StockedPet(ctx, 4)
			if err != nil {
				return err
			}
			resp, err := env.Client.Inventory(ctx)
			return check(resp, err, http.StatusOK, expect(fmt.Sprintf(`"%d":4`, pet.ID)))
		}},
		{suite, "stock_inventory", func(ctx context.Context, env *Env) error {
			pet, err := env.CreatePet(ctx, RandomPet())
			if err != nil {
				return err
			}
			resp, err := env.Client.StockInventory(ctx, pet.ID, petstore.Fields{"quantity": 5})
			return check(resp, err, http.StatusOK, expect(fmt.Sprintf("Inventory for pet %d set to 5", pet.ID)))
		}},
		{suite, "stock_inventory_unknown_pet", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.StockInventory(ctx, 999999999, petstore.Fields{"quantity": 5})
			return check(resp, err, http.StatusNotFound, expect("Pet not found"))
		}},
		{suite, "add_to_inventory", func(ctx context.Context, env *Env) error {
			pet, err := env.StockedPet(ctx, 1)
			if err != nil {
				return err
			}
			resp, err := env.Client.AddInventory(ctx, petstore.Fields{"petId": pet.ID, "quantity": 2})
			if err := check(resp, err, http.StatusOK, expect("Added 2")); err != nil {
				return err
			}
			resp, err = env.Client.Inventory(ctx)
			return check(resp, err, http.StatusOK, expect(fmt.Sprintf(`"%d":3`, pet.ID)))
		}},
		{suite, "add_to_inventory_not_stocked", func(ctx context.Context, env *Env) error {
			pet, err := env.CreatePet(ctx, RandomPet())
			if err != nil {
				return err
			}
			resp, err := env.Client.AddInventory(ctx, petstore.Fields{"petId": pet.ID, "quantity": 2})
			return check(resp, err, http.StatusNotFound, expect("Pet not found in inventory"))
		}},
		{suite, "add_to_inventory_quantity_missing", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.AddInventory(ctx, petstore.Fields{"petId": 1})
			return check(resp, err, http.StatusBadRequest, expect("Bad or missing data. Missing quantity field"))
		}},
		{suite, "add_to_inventory_quantity_zero", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.AddInventory(ctx, petstore.Fields{"petId": 1, "quantity": 0})
			return check(resp, err, http.StatusBadRequest, expect("Bad or missing data. Quantity must be a positive integer"))
		}},
		{suite, "remove_from_inventory", func(ctx context.Context, env *Env) error {
			pet, err := env.StockedPet(ctx, 5)
			if err != nil {
				return err
			}
			resp, err := env.Client.RemoveInventory(ctx, petstore.Fields{"petId": pet.ID, "quantity": 2})
			if err := check(resp, err, http.StatusOK, expect("Removed 2")); err != nil {
				return err
			}
			resp, err = env.Client.Inventory(ctx)
			return check(resp, err, http.StatusOK, expect(fmt.Sprintf(`"%d":3`, pet.ID)))
		}},
		{suite, "remove_from_inventory_insufficient", func(ctx context.Context, env *Env) error {
			pet, err := env.StockedPet(ctx, 1)
			if err != nil {
				return err
			}
			resp, err := env.Client.RemoveInventory(ctx, petstore.Fields{"petId": pet.ID, "quantity": 2})
			return check(resp, err, http.StatusBadRequest, expect("Not enough quantity in inventory"))
		}},
		{suite, "remove_from_inventory_pet_id_missing", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.RemoveInventory(ctx, petstore.Fields{"quantity": 2})
			return check(resp, err, http.StatusBadRequest, expect("Bad or missing data. Missing petId field"))
		}},
	}
}

func orderScenarios() []Scenario {
	const suite = "api_store"
	place := func(ctx context.Context, env *Env, stock, quantity int64) (Pet, Order, error) {
		pet, err := env.StockedPet(ctx, stock)
		if err != nil {
			return Pet{}, Order{}, err
		}
		resp, err := env.Client.PlaceOrder(ctx, petstore.Fields{"petId": pet.ID, "quantity": quantity})
		if err := check(resp, err, http.StatusCreated, expect(`"status":"placed"`)); err != nil {
			return Pet{}, Order{}, err
		}
		var order Order
		if err := resp.Decode(&order); err != nil {
			return Pet{}, Order{}, err
		}
		return pet, order, nil
	}
	return []Scenario{
		{suite, "place_order", func(ctx context.Context, env *Env) error {
			pet, order, err := place(ctx, env, 3, 2)
			if err != nil {
				return err
			}
			if order.PetID != pet.ID || order.Quantity != 2 {
				return fmt.Errorf("unexpected order %+v", order)
			}
			resp, err := env.Client.Inventory(ctx)
			return check(resp, err, http.StatusOK, expect(fmt.Sprintf(`"%d":1`, pet.ID)))
		}},
		{suite, "place_order_insufficient_inventory", func(ctx context.Context, env *Env) error {
			pet, err := env.StockedPet(ctx, 1)
			if err != nil {
				return err
			}
			resp, err := env.Client.PlaceOrder(ctx, petstore.Fields{"petId": pet.ID, "quantity": 2})
			return check(resp, err, http.StatusBadRequest, expect("Not enough inventory for the specified pet"))
		}},
		{suite, "place_order_pet_id_missing", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.PlaceOrder(ctx, petstore.Fields{"quantity": 1})
			return check(resp, err, http.StatusBadRequest, expect("Bad or missing data. Missing petId field"))
		}},
		{suite, "get_order", func(ctx context.Context, env *Env) error {
			pet, order, err := place(ctx, env, 2, 1)
			if err != nil {
				return err
			}
			resp, err := env.Client.GetOrder(ctx, itoa(order.OrderID))
			return check(resp, err, http.StatusOK, expect(fmt.Sprintf(`"orderId":%d`, order.OrderID), fmt.Sprintf(`"petId":%d`, pet.ID)))
		}},
		{suite, "get_order_not_found", func(ctx context.Context, env *Env) error {
			resp, err := env.Client.GetOrder(ctx, "999999999")
			return check(resp, err, http.StatusNotFound, expect("Order not found"))
		}},
		{suite, "list_orders", func(ctx context.Context, env *Env) error {
			_, order, err := place(ctx, env, 2, 1)
			if err != nil {
				return err
			}
			resp, err := env.Client.ListOrders(ctx)
			return check(resp, err, http.StatusOK, expect(fmt.Sprintf(`"orderId":%d`, order.OrderID)))
		}},
		{suite, "delete_order", func(ctx context.Context, env *Env) error {
			_, order, err := place(ctx, env, 2, 1)
			if err != nil {
				return err
			}
			resp, err := env.Client.DeleteOrder(ctx, itoa(order.OrderID))
			if err := check(resp, err, http.StatusOK, expect(fmt.Sprintf("Order %d deleted", order.OrderID), "deleted_order")); err != nil {
				return err
			}
			resp, err = env.Client.GetOrder(ctx, itoa(order.OrderID))
			return check(resp, err, http.StatusNotFound, expect("Order not found"))
		}},
	}
}
