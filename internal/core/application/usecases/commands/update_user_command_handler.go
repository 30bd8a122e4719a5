package commands

import (
	"context"

	"shop/internal/pkg/errs"
)

// UpdateUserCommandHandler applies both field updates in one transaction,
// so a taken username leaves the email unchanged as well.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with ErrForbidden when the actor edits another account and
// with errs.ErrObjectNotFound when the account does not exist.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.ActorID() != cmd.UserID() {
		return ErrForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	existing, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if existing == nil {
		return errs.NewObjectNotFoundError("user", cmd.UserID())
	}

	if username := cmd.Username(); username != nil {
		if err = userRepo.UpdateUsername(ctx, cmd.UserID(), *username); err != nil {
			return err
		}
	}

	if email := cmd.Email(); email != nil {
		if err = userRepo.UpdateEmail(ctx, cmd.UserID(), *email); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
