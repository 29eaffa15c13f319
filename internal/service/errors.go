package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"connectrpc.com/connect"

	"github.com/abdoachhoubi/billsplitter/internal/middleware"
	"github.com/abdoachhoubi/billsplitter/internal/storage"
)

var (
	errAuthRequired = errors.New("authentication required")
	errNotOwner     = errors.New("only the bill owner or creator can change this bill")
	errNoAccess     = errors.New("you are not on this bill")

	errNotYourContact = errors.New("contact belongs to another user")
)

// storageError maps a storage error to a Connect error.
func storageError(err error) *connect.Error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// validationError reports every validation message at once.
func validationError(problems []string) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%s", strings.Join(problems, "; ")))
}

func requiredError(field string) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%s is required", field))
}

// currentUserID returns the authenticated user or an Unauthenticated error.
func currentUserID(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errAuthRequired)
	}
	return userID, nil
}
