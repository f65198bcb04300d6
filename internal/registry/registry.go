// Package registry persists named financial accounts and credit cards
// independently of the transaction ledger.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/somma-dev/somma/internal/model"
	"github.com/somma-dev/somma/internal/money"
)

const (
	accountsFile = "accounts.json"
	cardsFile    = "cards.json"
)

// Registry is a small CRUD store over two JSON lists, loaded and saved
// wholesale. IDs are assigned as max existing + 1.
type Registry struct {
	dir      string
	accounts []model.Account
	cards    []model.CreditCard
}

// Open loads the registry from dir. Missing files mean empty lists.
func Open(dir string) (*Registry, error) {
	r := &Registry{dir: dir}
	if err := loadJSON(filepath.Join(dir, accountsFile), &r.accounts); err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	if err := loadJSON(filepath.Join(dir, cardsFile), &r.cards); err != nil {
		return nil, fmt.Errorf("loading cards: %w", err)
	}
	return r, nil
}

// Accounts returns all registered accounts.
func (r *Registry) Accounts() []model.Account {
	return r.accounts
}

// AccountsByGroup returns the accounts belonging to one group.
func (r *Registry) AccountsByGroup(group model.AccountGroup) []model.Account {
	var out []model.Account
	for _, a := range r.accounts {
		if a.Group == group {
			out = append(out, a)
		}
	}
	return out
}

// Cards returns all registered credit cards.
func (r *Registry) Cards() []model.CreditCard {
	return r.cards
}

// GroupFor resolves a free-text account name to its group: legacy
// literals first, then the registry, defaulting to Available for
// unknown or orphaned names.
func (r *Registry) GroupFor(name string) model.AccountGroup {
	if g, ok := money.LegacyGroup(name); ok {
		return g
	}
	for _, a := range r.accounts {
		if strings.EqualFold(a.Name, name) {
			return a.Group
		}
	}
	return model.GroupAvailable
}

// InitialBalance sums the registered initial balances of a group.
func (r *Registry) InitialBalance(group model.AccountGroup) decimal.Decimal {
	total := decimal.Zero
	for _, a := range r.accounts {
		if a.Group == group {
			total = total.Add(a.InitialBalance)
		}
	}
	return total
}

// AccountParams holds the user-editable fields of an account.
type AccountParams struct {
	Name           string
	BankID         string
	InitialBalance decimal.Decimal
	Group          model.AccountGroup
}

// CreateAccount validates and persists a new account.
func (r *Registry) CreateAccount(p AccountParams) (model.Account, error) {
	if err := r.validateAccount(p, 0); err != nil {
		return model.Account{}, err
	}

	acct := model.Account{
		ID:             nextAccountID(r.accounts),
		Name:           strings.TrimSpace(p.Name),
		BankID:         p.BankID,
		InitialBalance: p.InitialBalance,
		Group:          p.Group,
		CreatedAt:      time.Now(),
	}
	r.accounts = append(r.accounts, acct)
	if err := r.saveAccounts(); err != nil {
		r.accounts = r.accounts[:len(r.accounts)-1]
		return model.Account{}, err
	}
	return acct, nil
}

// UpdateAccount rewrites an account in place by ID.
func (r *Registry) UpdateAccount(id int, p AccountParams) error {
	if err := r.validateAccount(p, id); err != nil {
		return err
	}
	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts[i].Name = strings.TrimSpace(p.Name)
			r.accounts[i].BankID = p.BankID
			r.accounts[i].InitialBalance = p.InitialBalance
			r.accounts[i].Group = p.Group
			return r.saveAccounts()
		}
	}
	return fmt.Errorf("account %d not found", id)
}

// DeleteAccount removes an account by ID. Transactions referencing it
// keep their free-text label and fall back to the Available group.
func (r *Registry) DeleteAccount(id int) error {
	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return r.saveAccounts()
		}
	}
	return fmt.Errorf("account %d not found", id)
}

// CardParams holds the user-editable fields of a credit card.
type CardParams struct {
	Name       string
	BankID     string
	Limit      decimal.Decimal
	ClosingDay int
	DueDay     int
}

// CreateCard validates and persists a new credit card.
func (r *Registry) CreateCard(p CardParams) (model.CreditCard, error) {
	if err := r.validateCard(p, 0); err != nil {
		return model.CreditCard{}, err
	}

	card := model.CreditCard{
		ID:         nextCardID(r.cards),
		Name:       strings.TrimSpace(p.Name),
		BankID:     p.BankID,
		Limit:      p.Limit,
		ClosingDay: p.ClosingDay,
		DueDay:     p.DueDay,
		CreatedAt:  time.Now(),
	}
	r.cards = append(r.cards, card)
	if err := r.saveCards(); err != nil {
		r.cards = r.cards[:len(r.cards)-1]
		return model.CreditCard{}, err
	}
	return card, nil
}

// UpdateCard rewrites a card in place by ID.
func (r *Registry) UpdateCard(id int, p CardParams) error {
	if err := r.validateCard(p, id); err != nil {
		return err
	}
	for i, c := range r.cards {
		if c.ID == id {
			r.cards[i].Name = strings.TrimSpace(p.Name)
			r.cards[i].BankID = p.BankID
			r.cards[i].Limit = p.Limit
			r.cards[i].ClosingDay = p.ClosingDay
			r.cards[i].DueDay = p.DueDay
			return r.saveCards()
		}
	}
	return fmt.Errorf("card %d not found", id)
}

// DeleteCard removes a card by ID.
func (r *Registry) DeleteCard(id int) error {
	for i, c := range r.cards {
		if c.ID == id {
			r.cards = append(r.cards[:i], r.cards[i+1:]...)
			return r.saveCards()
		}
	}
	return fmt.Errorf("card %d not found", id)
}

func (r *Registry) validateAccount(p AccountParams, selfID int) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return errors.New("account name is required")
	}
	if p.Group != model.GroupAvailable && p.Group != model.GroupBenefit {
		return fmt.Errorf("unknown account group %q", p.Group)
	}
	for _, a := range r.accounts {
		if a.ID != selfID && strings.EqualFold(a.Name, name) {
			return fmt.Errorf("an account named %q already exists", a.Name)
		}
	}
	return nil
}

func (r *Registry) validateCard(p CardParams, selfID int) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return errors.New("card name is required")
	}
	if !p.Limit.IsPositive() {
		return errors.New("card limit must be greater than zero")
	}
	if p.ClosingDay < 1 || p.ClosingDay > 31 {
		return errors.New("closing day must be between 1 and 31")
	}
	if p.DueDay < 1 || p.DueDay > 31 {
		return errors.New("due day must be between 1 and 31")
	}
	for _, c := range r.cards {
		if c.ID != selfID && strings.EqualFold(c.Name, name) {
			return fmt.Errorf("a card named %q already exists", c.Name)
		}
	}
	return nil
}

func (r *Registry) saveAccounts() error {
	return saveJSON(r.dir, accountsFile, r.accounts)
}

func (r *Registry) saveCards() error {
	return saveJSON(r.dir, cardsFile, r.cards)
}

func nextAccountID(accounts []model.Account) int {
	max := 0
	for _, a := range accounts {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}

func nextCardID(cards []model.CreditCard) int {
	max := 0
	for _, c := range cards {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func saveJSON(dir, name string, v interface{}) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating registry dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
