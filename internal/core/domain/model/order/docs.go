// Package order provides the order aggregate and its lifecycle state
// machine for the store panel.
//
// The package includes:
//   - Order: the aggregate root owning identity, payment facts, the
//     verification code and the lifecycle status
//   - Status: a state machine enforcing the legal transitions
//   - PaymentType and InstallmentDetails: payment value objects
//   - Receipt: the completion projection for finished orders
//
// Key business rules:
//   - Orders start Pending and end in Picked Up, Delivered or Cancelled
//   - A successful 6-digit code verification completes any pre-terminal
//     order as Picked Up and stamps the pickup time
//   - Delivered is only reachable through the courier handover path
//   - Terminal orders reject every further transition
package order
