// Package order provides domain entities and business logic for order management
// in the restaurant backend. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - LineItem: An immutable snapshot of a product taken at order time
//   - Customer: A value object describing who placed the order
//
// Key business rules:
//   - Orders must have a valid unique identifier, a customer, and at least one line item
//   - The total amount always equals the sum of the line item totals
//   - Order status follows a defined workflow: New -> Confirmed -> Preparing -> Ready -> Completed
//   - Cancellation is allowed from any non-terminal status
//   - Line items copy the product name and price, so later product edits never
//     change historical orders
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
