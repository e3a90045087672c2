// Package errors provides the structured error type shared by every layer of the battle service.
//
// Errors carry a Code, a user-facing message, optional metadata and the wrapped cause.
// Codes map onto gRPC codes (ToGRPCError / FromGRPCError) and HTTP status codes
// (Code.HTTPStatus), so handlers never need to inspect messages.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("pokemon not found")
//	err := errors.InvalidArgumentf("limit must be between 1 and %d", maxLimit)
//
// Adding metadata:
//
//	err := errors.NotFound("battle not found").
//	    WithMeta("battle_id", battleID)
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save battle")
//	}
//
// Wrap keeps the code of a wrapped *Error; a plain error becomes Internal.
// Use WrapWithCode to change the meaning:
//
//	resp, err := c.httpClient.Do(req)
//	if err != nil {
//	    return errors.WrapWithCode(err, errors.CodeUnavailable, "pokeapi request failed")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // 404 from the provider or an unknown battle id
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("pokemon1", input.Pokemon1, vb)
//	errors.ValidateRange("limit", input.Limit, 1, 100, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Client layer:
//   - 404 responses become NotFound
//   - transport failures and other non-200 responses become Unavailable
//   - undecodable bodies become Internal
//
// Repository layer:
//   - Return NotFound for unknown or expired ids
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap client and repository errors with business context
//
// Handler layer:
//   - gRPC handlers return errors.ToGRPCError(err)
//   - REST handlers respond with GetCode(err).HTTPStatus()
package errors
