// Package transaction contains the Transaction aggregate: a sale of one or
// more previously available hogs to a customer. The hog set is fixed at
// creation and never mutated.
package transaction
