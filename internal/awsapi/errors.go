package awsapi

import (
	"errors"

	"github.com/aws/smithy-go"

	"rdsq/internal/domain"
)

// statementError maps a Data API failure into the domain taxonomy. AWS API errors
// keep their code and message; anything else is reported as a transport failure.
func statementError(err error) *domain.StatementError {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &domain.StatementError{
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
			Err:     err,
		}
	}
	return domain.ErrStatement(err, "%v", err)
}
