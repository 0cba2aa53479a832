package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountbutler/internal/client/categorizer"
	"github.com/dmitrijs2005/accountbutler/internal/client/models"
	"github.com/dmitrijs2005/accountbutler/internal/client/services"
	"github.com/dmitrijs2005/accountbutler/internal/common"
)

// Add collects a new account form and submits it. The submission blocks on
// the categorization round trip; on any failure nothing is saved and the
// user is told to resubmit.
func (a *App) Add(ctx context.Context) error {
	if !a.requireLogin() {
		return common.ErrNotLoggedIn
	}

	form, err := a.collectForm(models.FormInput{}, false)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	return a.submit(ctx, form, "")
}

// Edit re-collects the form for an existing record, keeping current values
// on empty input, and submits it as an update.
func (a *App) Edit(ctx context.Context) error {
	if !a.requireLogin() {
		return common.ErrNotLoggedIn
	}

	id, err := GetSimpleText(a.reader, "Enter record id to edit", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	account, err := a.accountService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "No such record")
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}

	current := models.FormInput{
		Name:        account.Name,
		Description: account.Description,
		Email:       account.Email,
		PhoneNumber: account.PhoneNumber,
		Password:    account.Password,
	}
	form, err := a.collectForm(current, true)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	return a.submit(ctx, form, account.ID)
}

func (a *App) collectForm(current models.FormInput, editing bool) (models.FormInput, error) {
	var form models.FormInput
	var err error

	if form.Name, err = GetTextWithDefault(a.reader, "Account name", current.Name, a.out); err != nil {
		return form, err
	}
	if form.Description, err = GetTextWithDefault(a.reader, "Description (used for categorization)", current.Description, a.out); err != nil {
		return form, err
	}
	if form.Email, err = GetTextWithDefault(a.reader, "Email", current.Email, a.out); err != nil {
		return form, err
	}
	if form.PhoneNumber, err = GetTextWithDefault(a.reader, "Phone number", current.PhoneNumber, a.out); err != nil {
		return form, err
	}

	if editing {
		form.Password, err = GetPasswordWithDefault(a.out, current.Password)
	} else {
		form.Password, err = GetPassword(a.out)
	}
	return form, err
}

func (a *App) submit(ctx context.Context, form models.FormInput, editingID string) error {
	fmt.Fprintln(a.out, "Categorizing...")

	account, _, err := a.accountService.Submit(ctx, form, editingID)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			for _, field := range verr.Fields {
				fmt.Fprintf(a.out, "Invalid value for %q\n", field)
			}
		case errors.Is(err, categorizer.ErrCategorization):
			fmt.Fprintln(a.out, "Could not categorize the account; nothing was saved. Please try again.")
		default:
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}

	if editingID == "" {
		fmt.Fprintf(a.out, "Saved %q as %s (confidence %.2f), id %s\n",
			account.Name, account.Category, account.CategoryConfidence, account.ID)
	} else {
		fmt.Fprintf(a.out, "Updated %q, now %s (confidence %.2f)\n",
			account.Name, account.Category, account.CategoryConfidence)
	}
	return nil
}
