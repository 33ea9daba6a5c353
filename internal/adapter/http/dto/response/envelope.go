package response

import (
	"buildbid/internal/domain/quoting"
	"buildbid/pkg"
)

// Envelope is the body of every quote API response.
type Envelope struct {
	Success          bool                      `json:"success"`
	Data             any                       `json:"data,omitempty"`
	Error            *pkg.HTTPErrorBody        `json:"error,omitempty"`
	ValidationErrors []quoting.ValidationError `json:"validation_errors,omitempty"`
	Warnings         []string                  `json:"warnings,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKWithWarnings(data any, warnings []string) Envelope {
	return Envelope{Success: true, Data: data, Warnings: warnings}
}

func Failure(appErr *pkg.AppError) Envelope {
	body := appErr.ToHTTPError().Error
	return Envelope{Success: false, Error: &body}
}

// ValidationFailure lists every defect found, not just the first.
func ValidationFailure(errs []quoting.ValidationError) Envelope {
	return Envelope{
		Success:          false,
		Error:            &pkg.HTTPErrorBody{Code: "VALIDATION_FAILED", Message: "Quote validation failed"},
		ValidationErrors: errs,
	}
}
