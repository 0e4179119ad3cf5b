// Package errors provides structured error handling for the announcer.
//
// Errors carry a code, a message, an optional wrapped cause, and metadata.
// The codes map onto the failure taxonomy of the generation pipeline:
//
//   - CodeNotFound: no Pokémon matched a name or id, in the cache or the API
//   - CodeUnavailable: the PoGo API could not be reached
//   - CodeInvalidArgument: bad input to a calculation or an invalid config
//   - CodeFailedPrecondition: a template placeholder had no supplied value
//
// Creating errors:
//
//	err := errors.NotFoundf("pokemon %q not found", name)
//
// Wrapping errors:
//
//	if err := repo.Put(ctx, in); err != nil {
//	    return errors.Wrap(err, "failed to store pokemon")
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) {
//	    // re-prompt the user
//	}
package errors
