package domain

import (
	"fmt"
	"wordmole/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Invite is created by a host for a set of invitees. It is immutable once built.
type Invite struct {
	host     Identity
	invitees []Identity
}

type inviteRequest struct {
	Host     Identity
	Invitees []Identity `validate:"required,min=1,dive"`
}

// NewInvite validates the host and invitees. Invitees must be unique and must
// not contain the host.
func NewInvite(host Identity, invitees ...Identity) (Invite, error) {
	if err := validate.Struct(inviteRequest{Host: host, Invitees: invitees}); err != nil {
		return Invite{}, fmt.Errorf("%w: %v", errors.ErrInvalidInvite, err)
	}
	names := lo.Map(invitees, func(i Identity, _ int) string { return i.Name })
	if len(lo.Uniq(names)) != len(names) {
		return Invite{}, fmt.Errorf("%w: duplicated invitee", errors.ErrInvalidInvite)
	}
	if lo.Contains(names, host.Name) {
		return Invite{}, fmt.Errorf("%w: host %s invited itself", errors.ErrInvalidInvite, host.Name)
	}
	return Invite{host: host, invitees: append([]Identity(nil), invitees...)}, nil
}

func (i Invite) Host() Identity { return i.host }

func (i Invite) Invitees() []Identity {
	return append([]Identity(nil), i.invitees...)
}

func (i Invite) NumInvitees() int { return len(i.invitees) }
