// Package goals is the Composition Root for the goal list application.
//
// It assembles the GoalListController (pkg/core) from functional options and
// re-exports the pieces a caller needs to drive it.
//
// A goal list is a flat, ordered sequence of short text goals that can be
// added through an entry form, marked complete and removed. State is held in
// memory only.
//
// Features:
//
//   - **Separate containers**: domain goals and the transient add form are
//     independent and tested on their own.
//   - **Soft validation**: blank commits and unknown ids are silent no-ops.
//   - **Two-step removal**: RequestRemoval, then ConfirmRemoval or DeclineRemoval.
//   - **Unique ids**: UUID or monotonic counter, never reused.
//   - **Change events**: non-blocking subscriptions for renderers.
//
// Usage:
//
//	ctrl, err := goals.New(
//		goals.WithIDStrategy("counter"),
//		goals.WithLogger(logger),
//	)
//
//	ctrl.OpenAddForm()
//	ctrl.UpdateEnteredText("Learn Go")
//	goal, ok := ctrl.CommitGoal()
package goals
