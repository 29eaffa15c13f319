// Package models defines the core domain models for billsplitter.
//
// # Models
//
//   - Bill: an expense split between an owner and one or more participants
//   - BillParticipant: one person's share of a bill, with a denormalized
//     snapshot of who they were when the bill was created
//   - SplitValue: the raw split input, either a percentage or an amount
//   - Contact: a person the user splits bills with
//   - User: a registered account
//
// Derived values (ContactStats, BillRelationship) are never stored. They are
// recomputed from a BillSnapshot by the calculator package.
//
// # Conventions
//
// 1. Timestamps are Unix seconds; zero means "not set".
// 2. Relationships use ID strings, never pointers between models.
// 3. Amounts are float64 currency values; comparisons use a 0.01 tolerance.
package models
