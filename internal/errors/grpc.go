package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	// Check if it's our custom error
	var customErr *Error
	if As(err, &customErr) {
		// The outermost code wins; the innermost message is the one meant for callers
		st := status.New(customErr.Code.GRPCCode(), GetRootMessage(err))

		// Metadata travels as a Struct detail; values that cannot be encoded are dropped
		if details := metaToStruct(customErr.Meta); details != nil {
			if withDetails, err := st.WithDetails(details); err == nil {
				st = withDetails
			}
		}

		return st.Err()
	}

	// Default to internal error
	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError converts a gRPC error back into an *Error, restoring metadata sent by ToGRPCError.
// Errors that carry no gRPC status are returned unchanged.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	// Map gRPC code to our code
	code := grpcCodeToCode(st.Code())

	// Create base error
	customErr := &Error{
		Code:    code,
		Message: st.Message(),
	}

	// Extract details if present
	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = meta.AsMap()
			break
		}
	}

	return customErr
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}

// grpcCodeToCode converts a gRPC code to our error code
func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}

// metaToStruct converts error metadata into a protobuf Struct.
// Metadata is round-tripped through JSON so typed values (e.g. map[string][]string) are accepted.
func metaToStruct(meta map[string]interface{}) *structpb.Struct {
	if len(meta) == 0 {
		return nil
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return nil
	}

	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil
	}

	details, err := structpb.NewStruct(generic)
	if err != nil {
		return nil
	}
	return details
}
