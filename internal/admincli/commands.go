package admincli

import (
	"context"
	"fmt"

	"github.com/reelvault/reelvault/internal/server/auth"
)

func (app *App) createUser(ctx context.Context) error {
	email, err := GetSimpleText(app.reader, "Email", app.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(app.out)
	if err != nil {
		return err
	}

	identity, err := app.accounts.Register(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.out, "user %s created with id %s\n", identity.Email, identity.ID)
	return nil
}

func (app *App) resetPassword(ctx context.Context) error {
	email, err := GetSimpleText(app.reader, "Email", app.out)
	if err != nil {
		return err
	}

	db, err := app.stores.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring store handle: %w", err)
	}

	user, err := app.repos.Users(db).GetByEmail(ctx, auth.NormalizeEmail(email))
	if err != nil {
		return fmt.Errorf("looking up %s: %w", email, err)
	}

	password, err := GetPassword(app.out)
	if err != nil {
		return err
	}

	if _, err := app.accounts.ChangeSecret(ctx, user.ID, password); err != nil {
		return err
	}

	fmt.Fprintf(app.out, "password updated for %s\n", user.Email)
	return nil
}
