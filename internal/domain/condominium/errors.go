package condominium

import "errors"

var (
	ErrCondominiumNotFound = errors.New("condominium not found")
	ErrAdminNotFound       = errors.New("condominium admin user not found")
)
