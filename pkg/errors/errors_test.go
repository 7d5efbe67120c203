package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_HTTPStatusFromError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrCounterpartNotFound, http.StatusNotFound},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrTokenExpired, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrEmptyMessage, http.StatusBadRequest},
		{ErrSelfConversation, http.StatusBadRequest},
		{ErrUserAlreadyExists, http.StatusBadRequest},
		{ErrStorage, http.StatusServiceUnavailable},
		{fmt.Errorf("anything else"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, HTTPStatusFromError(tc.err), "error: %v", tc.err)
	}
}

func Test_HTTPStatusFromError_Wrapped(t *testing.T) {
	req := require.New(t)

	wrapped := fmt.Errorf("%w: insert failed: connection refused", ErrStorage)
	req.Equal(http.StatusServiceUnavailable, HTTPStatusFromError(wrapped))
}

func Test_IsValidation(t *testing.T) {
	req := require.New(t)

	req.True(IsValidation(ErrEmptyMessage))
	req.True(IsValidation(ErrSelfConversation))
	req.True(IsValidation(ErrBadRequest))
	req.False(IsValidation(ErrStorage))
	req.False(IsValidation(ErrCounterpartNotFound))
}
