package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountbutler/internal/client/models"
	"github.com/dmitrijs2005/accountbutler/internal/common"
)

func (a *App) List(ctx context.Context) error {
	if !a.requireLogin() {
		return common.ErrNotLoggedIn
	}

	items, err := a.accountService.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	a.printAccounts(items)
	return nil
}

func (a *App) Search(ctx context.Context) error {
	if !a.requireLogin() {
		return common.ErrNotLoggedIn
	}

	term, err := GetSimpleText(a.reader, "Search term (name, email or category)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	items, err := a.accountService.Search(ctx, term)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	a.printAccounts(items)
	return nil
}

func (a *App) printAccounts(items []models.Account) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No accounts")
		return
	}
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = "-"
		}
		fmt.Fprintf(a.out, "%s  %-20s  %-15s  %s\n", item.ID, item.Name, category, item.MaskedPassword())
	}
}

// Show prints a full record with the password masked.
func (a *App) Show(ctx context.Context) error {
	if !a.requireLogin() {
		return common.ErrNotLoggedIn
	}

	account, err := a.lookup(ctx, "Enter record id to show")
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Name: %s\n", account.Name)
	if account.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", account.Description)
	}
	if account.Email != "" {
		fmt.Fprintf(a.out, "Email: %s\n", account.Email)
	}
	if account.PhoneNumber != "" {
		fmt.Fprintf(a.out, "Phone: %s\n", account.PhoneNumber)
	}
	fmt.Fprintf(a.out, "Password: %s\n", account.MaskedPassword())
	if account.Categorized() {
		fmt.Fprintf(a.out, "Category: %s (confidence %.2f)\n", account.Category, account.CategoryConfidence)
	}
	fmt.Fprintf(a.out, "Created: %s\n", account.CreatedAt)
	return nil
}

// Reveal prints a record's password in clear text.
func (a *App) Reveal(ctx context.Context) error {
	if !a.requireLogin() {
		return common.ErrNotLoggedIn
	}

	account, err := a.lookup(ctx, "Enter record id to reveal")
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Password for %q: %s\n", account.Name, account.Password)
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	if !a.requireLogin() {
		return common.ErrNotLoggedIn
	}

	id, err := GetSimpleText(a.reader, "Enter record id to delete", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if _, err := a.accountService.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) lookup(ctx context.Context, prompt string) (*models.Account, error) {
	id, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return nil, err
	}

	account, err := a.accountService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "No such record")
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return nil, err
	}
	return account, nil
}
