// Package delivery contains the Delivery aggregate: a batch intake event from
// one supplier. A delivery creates its hogs at intake so every hog
// back-references the delivery that introduced it; the collection is immutable
// afterwards. Hogs outlive their delivery: the aggregate owns the intake
// event, not the hogs' later lifecycle.
package delivery
