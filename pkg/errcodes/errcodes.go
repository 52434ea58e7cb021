package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Feature engineering
	InvalidOceanProximity failure.ErrorCode = "InvalidOceanProximity" // label outside the fixed category set
	OutOfDomain           failure.ErrorCode = "OutOfDomain"           // numeric input outside its documented range
	DegenerateRatio       failure.ErrorCode = "DegenerateRatio"       // ratio feature with a zero denominator

	// Model
	ModelSchemaMismatch failure.ErrorCode = "ModelSchemaMismatch"
	ModelUnavailable    failure.ErrorCode = "ModelUnavailable"
)
