// Package errors provides the structured error handling used across the
// builds API: errors carry a code, a message, optional metadata, and an
// optional wrapped cause.
//
// Creating errors:
//
//	err := errors.NotFound("build not found")
//	err := errors.InvalidArgumentf("invalid rune id: %d", id)
//
// Adding metadata:
//
//	err := errors.NotFound("build not found").
//	    WithMeta("build_id", buildID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get build")
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) {
//	    // handle the missing build
//	}
//
// Layer conventions: the repository layer returns NotFound/AlreadyExists
// with ids in metadata and wraps storage failures; the orchestrator layer
// validates inputs with the ValidationBuilder and returns InvalidArgument;
// the codec returns InvalidArgument for malformed template codes and
// NotFound when a code resolves against nothing in the catalogs.
package errors
