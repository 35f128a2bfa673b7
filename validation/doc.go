// Package validation provides struct tag validation for speechkit
// request types, built on the validator library and mapped onto the
// errors package AppError type.
//
//	type TranscribeRequest struct {
//	    AudioPath string `json:"audio_path" validate:"required"`
//	}
//	err := validation.Validate(req)
package validation
