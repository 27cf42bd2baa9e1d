package service

import (
	"net/mail"
	"strings"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/pkg/xerrors"
)

type requiredField struct {
	name  string
	value string
}

// requireFields rejects the request when any of the named fields is empty
// after trimming, listing every missing field in the error message.
func requireFields(fields ...requiredField) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return xerrors.NewValidation("please provide: %s", strings.Join(missing, ", "))
	}
	return nil
}

const minPasswordLength = 6

// validateNewUser covers both self-registration and admin-created accounts.
func validateNewUser(req domain.CreateUserRequest) error {
	if err := requireFields(
		requiredField{"name", req.Name},
		requiredField{"email", req.Email},
		requiredField{"password", req.Password},
	); err != nil {
		return err
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return xerrors.NewValidation("invalid email format")
	}
	if len(req.Password) < minPasswordLength {
		return xerrors.NewValidation("password must be at least %d characters", minPasswordLength)
	}
	if req.Role != "" && !req.Role.Valid() {
		return xerrors.NewValidation("role must be %q or %q", domain.RoleAgent, domain.RoleAdmin)
	}
	return nil
}
