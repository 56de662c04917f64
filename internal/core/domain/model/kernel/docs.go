// Package kernel contains the shared value objects of the domain model:
// UUID identities and exact decimal Money. Both are immutable, compared by
// value, and must be created through their constructor functions — the zero
// value of either fails Validate.
package kernel
