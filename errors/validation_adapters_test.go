package errors

import (
	"testing"

	play "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

type payoutRequest struct {
	Account string `validate:"required"`
	Amount  int    `validate:"min=1"`
}

func TestFromPlayground(t *testing.T) {
	t.Parallel()

	err := play.New().Struct(payoutRequest{})
	var ve play.ValidationErrors
	require.ErrorAs(t, err, &ve)

	got := FromPlayground(ve, map[string]string{"required": "required"})
	assert.Equal(t, codes.InvalidArgument, got.Code)
	assert.Equal(t, Reason("validation_failed"), got.Reason)
	require.Len(t, got.Violations, 2)
	assert.Equal(t, FieldViolation{Field: "Account", Reason: "required", Description: "Account validation failed (required)"}, got.Violations[0])
	assert.Equal(t, "Amount", got.Violations[1].Field)
	assert.Equal(t, "invalid", got.Violations[1].Reason)
}
