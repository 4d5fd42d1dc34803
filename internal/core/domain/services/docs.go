// Package services provides domain services that operate across multiple
// domain entities in the hog trading system. It implements business logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - DeliverySummarizer: A domain service computing reporting statistics for a delivery batch
package services
