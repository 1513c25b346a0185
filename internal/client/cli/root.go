package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/finledger/finledger/internal/client/session"
)

func (a *App) getStatus() string {
	switch a.session.State() {
	case session.StateAuthenticated:
		if u := a.session.User(); u != nil {
			return fmt.Sprintf("(%s)", u.Username)
		}
		return "(authenticated)"
	case session.StateResolving:
		return "(resolving)"
	default:
		return "(anonymous)"
	}
}

func (a *App) printHelp() {
	switch a.session.State() {
	case session.StateAuthenticated:
		fmt.Println("Available commands: expenses, addexpense, delexpense <id>, investments, addinvestment, delinvestment <id>, whoami, logout, exit")
	case session.StateResolving:
		fmt.Println("Checking a stored session... available commands: help, exit")
	default:
		fmt.Println("Available commands: register, login, exit")
	}
}

// requireAuth reports whether the session allows authenticated commands,
// printing the reason when it does not.
func (a *App) requireAuth() bool {
	switch a.session.State() {
	case session.StateAuthenticated:
		return true
	case session.StateResolving:
		fmt.Println("Still checking a stored session, try again in a moment")
		return false
	default:
		fmt.Println("You need to log in first")
		return false
	}
}

// requireAnonymous is the inverse gate: login/register make no sense while
// a session is established or still resolving.
func (a *App) requireAnonymous() bool {
	switch a.session.State() {
	case session.StateAnonymous:
		return true
	case session.StateResolving:
		fmt.Println("Still checking a stored session, try again in a moment")
		return false
	default:
		fmt.Println("Already logged in; log out first")
		return false
	}
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to FinLedger CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("fl %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "register":
			if a.requireAnonymous() {
				_ = a.Register(ctx)
			}
		case "login":
			if a.requireAnonymous() {
				_ = a.Login(ctx)
			}
		case "whoami":
			if a.requireAuth() {
				u := a.session.User()
				fmt.Printf("%s <%s> (%s)\n", u.Username, u.Email, u.Role)
			}
		case "expenses", "e":
			if a.requireAuth() {
				_ = a.listExpenses(ctx)
			}
		case "addexpense":
			if a.requireAuth() {
				_ = a.addExpense(ctx)
			}
		case "delexpense":
			if a.requireAuth() {
				if len(args) == 0 {
					fmt.Println("Usage: delexpense <id>")
					continue
				}
				_ = a.deleteExpense(ctx, args[0])
			}
		case "investments", "i":
			if a.requireAuth() {
				_ = a.listInvestments(ctx)
			}
		case "addinvestment":
			if a.requireAuth() {
				_ = a.addInvestment(ctx)
			}
		case "delinvestment":
			if a.requireAuth() {
				if len(args) == 0 {
					fmt.Println("Usage: delinvestment <id>")
					continue
				}
				_ = a.deleteInvestment(ctx, args[0])
			}
		case "logout":
			if a.requireAuth() {
				_ = a.Logout(ctx)
			}
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
