package ledger

import (
	"errors"
	"reflect"
	"testing"
)

func TestAccounts_Registry(t *testing.T) {
	r := NewAccounts()
	if err := r.Add(NewAccount("Cash", "EUR")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	// name equality only: same name, other currency is still a duplicate
	if err := r.Add(NewAccount("Cash", "USD")); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Add(duplicate) = %v, want ErrDuplicate", err)
	}

	if err := r.ApplyDelta("Cash", dec("10")); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	if err := r.ApplyDelta("Cash", dec("-2.5")); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	a, ok := r.Find("Cash")
	if !ok {
		t.Fatal("Find(Cash) missing")
	}
	if !a.Balance().Amount().Equal(dec("7.5")) {
		t.Errorf("balance = %s, want 7.5", a.Balance().Amount())
	}

	if err := r.ApplyDelta("Wallet", dec("1")); !errors.Is(err, ErrNotFound) {
		t.Errorf("ApplyDelta(absent) = %v, want ErrNotFound", err)
	}

	r.Remove("Cash")
	if _, ok := r.Find("Cash"); ok {
		t.Error("Remove left the account behind")
	}
}

func TestAccounts_AllSorted(t *testing.T) {
	r := NewAccounts()
	for _, name := range []string{"Savings", "Cash", "Bank"} {
		r.Add(NewAccount(name, "EUR"))
	}
	var got []string
	for a := range r.All() {
		got = append(got, a.Name)
	}
	if want := []string{"Bank", "Cash", "Savings"}; !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestAccount_Identity(t *testing.T) {
	a := NewAccount("Cash", "EUR")
	b := NewAccount("Cash", "EUR")
	if a.Same(b) {
		t.Error("two accounts created separately must have distinct identities")
	}
	if !a.Same(a) {
		t.Error("an account must be the same as itself")
	}
	if a.Same(nil) {
		t.Error("Same(nil) must be false")
	}
}

func TestCategories_Registry(t *testing.T) {
	r := DefaultCategories()
	if r.Len() != 8 {
		t.Fatalf("default set has %d categories, want 8", r.Len())
	}
	if _, ok := r.Find("Groceries"); !ok {
		t.Error("default set misses Groceries")
	}

	if err := r.Add(Category{Name: "Travel"}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Add(duplicate) = %v, want ErrDuplicate", err)
	}
	if err := r.Add(Category{Name: "Pets"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	r.Remove("Pets")
	if _, ok := r.Find("Pets"); ok {
		t.Error("Remove left the category behind")
	}
}
