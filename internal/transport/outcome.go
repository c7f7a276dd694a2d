package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"baleconnect/internal/core/application/usecases/queries"
	"baleconnect/internal/pkg/errs"
)

// Outcome is the tagged result of a marketplace operation. Exactly one of
// Data and Error is meaningful: Data on success, Error otherwise. Status
// carries the HTTP status code the boundary should respond with.
type Outcome struct {
	Success bool            `json:"success"`
	Status  int             `json:"-"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// User-facing failure messages. Bilingual Thai/English labels are a product
// decision: the marketplace serves Thai farmers alongside English-speaking
// operators.
const (
	msgNotFound        = "ไม่พบข้อมูลที่ต้องการ / Requested record not found"
	msgBadRequest      = "ข้อมูลไม่ถูกต้อง / Invalid request data"
	msgUnauthorized    = "อีเมลหรือรหัสผ่านไม่ถูกต้อง / Invalid email or password"
	msgConflict        = "ไม่สามารถเปลี่ยนสถานะได้ / Status change not allowed"
	msgStaleVersion    = "ข้อมูลถูกแก้ไขโดยผู้อื่น กรุณาลองใหม่ / Record was modified by someone else, please retry"
	msgStorageFailure  = "ระบบจัดเก็บข้อมูลขัดข้อง / Storage unavailable"
	msgInternalFailure = "เกิดข้อผิดพลาดภายในระบบ / Internal server error"
)

// successOutcome serializes payload into a success outcome. A payload that
// cannot be marshalled degrades to an internal failure outcome.
func successOutcome(status int, payload any) Outcome {
	data, err := json.Marshal(payload)
	if err != nil {
		return failureOutcome(errs.NewInternalError(err))
	}
	return Outcome{Success: true, Status: status, Data: data}
}

// failureOutcome classifies err into a user-facing outcome. The mapping is
// by sentinel category, so wrapped domain errors end up with the right HTTP
// status without the boundary inspecting concrete types.
func failureOutcome(err error) Outcome {
	switch {
	case errors.Is(err, queries.ErrInvalidCredentials):
		return Outcome{Status: http.StatusUnauthorized, Error: msgUnauthorized}
	case errors.Is(err, errs.ErrObjectNotFound):
		return Outcome{Status: http.StatusNotFound, Error: msgNotFound}
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return Outcome{Status: http.StatusConflict, Error: msgStaleVersion}
	case errors.Is(err, errs.ErrInvalidTransition):
		return Outcome{Status: http.StatusConflict, Error: msgConflict + ": " + err.Error()}
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return Outcome{Status: http.StatusBadRequest, Error: msgBadRequest + ": " + err.Error()}
	case errors.Is(err, errs.ErrStorageUnavailable):
		return Outcome{Status: http.StatusInternalServerError, Error: msgStorageFailure}
	default:
		return Outcome{Status: http.StatusInternalServerError, Error: msgInternalFailure}
	}
}
