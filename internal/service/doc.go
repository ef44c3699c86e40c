// Package service contains the application-specific use cases of the
// food-sharing API. It sits between the HTTP handlers in internal/api and the
// store interfaces in internal/store.
//
// Key components:
//
// 1. FoodService:
//   - Public listings sorted by date or quantity, or filtered by owner email
//   - Create, update and delete scoped to the caller's own foods
//
// 2. RequestedFoodService:
//   - Claims a caller makes on foods, readable and writable only by that caller
//
// 3. Ownership:
//   - Every mutation takes the verified auth.Identity of the caller as an
//     explicit parameter
//   - A payload naming another user fails with ErrForbidden before the store
//     is touched
//
// The service layer depends on domain types and store interfaces, never on a
// specific backend.
package service
