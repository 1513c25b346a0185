package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
)

func (a *App) listExpenses(ctx context.Context) error {
	list, err := a.api.ListExpenses(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(list) == 0 {
		fmt.Println("No expenses yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAMOUNT\tCATEGORY\tSPENT AT")
	for _, e := range list {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\n", e.ID, e.Title, e.Amount, e.Category, e.SpentAt.Format("2006-01-02"))
	}
	return w.Flush()
}

func (a *App) addExpense(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	amountStr, err := getSimpleText(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		fmt.Println("Amount must be a number")
		return err
	}

	category, err := getSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		return err
	}

	e, err := a.api.AddExpense(ctx, title, amount, category)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Added expense %s\n", e.ID)
	return nil
}

func (a *App) deleteExpense(ctx context.Context, id string) error {
	if err := a.api.DeleteExpense(ctx, id); err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println("Deleted")
	return nil
}

func (a *App) listInvestments(ctx context.Context) error {
	list, err := a.api.ListInvestments(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(list) == 0 {
		fmt.Println("No investments yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAMOUNT\tCATEGORY\tINVESTED AT")
	for _, inv := range list {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\n", inv.ID, inv.Name, inv.Amount, inv.Category, inv.InvestedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

func (a *App) addInvestment(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	amountStr, err := getSimpleText(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		fmt.Println("Amount must be a number")
		return err
	}

	category, err := getSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		return err
	}

	inv, err := a.api.AddInvestment(ctx, name, category, amount)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Added investment %s\n", inv.ID)
	return nil
}

func (a *App) deleteInvestment(ctx context.Context, id string) error {
	if err := a.api.DeleteInvestment(ctx, id); err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println("Deleted")
	return nil
}
