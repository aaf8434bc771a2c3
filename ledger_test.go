package ledger

import (
	"reflect"
	"testing"
)

func ref(name, currency string) AccountRef {
	return AccountRef{Name: name, Currency: currency}
}

// browseLedger returns a ledger of four transactions in a deliberately
// unsorted insertion order.
func browseLedger() *Ledger {
	l := NewLedger()
	l.Push(NewTransaction(MustParseDate("03/01/2024"), dec("25"), Expense, "Groceries", ref("Cash", "EUR")))
	l.Push(NewTransaction(MustParseDate("01/01/2024"), dec("35"), Income, "Other", ref("Bank", "USD")))
	l.Push(NewTransfer(MustParseDate("04/01/2024"), dec("5"), "Travel", ref("Cash", "EUR"), ref("Bank", "USD")))
	l.Push(NewTransaction(MustParseDate("02/01/2024"), dec("15"), Expense, "", ref("Cash", "EUR")))
	return l
}

func amounts(l *Ledger) []string {
	var out []string
	for _, tx := range l.Transactions() {
		out = append(out, tx.Amount.String())
	}
	return out
}

func TestLedger_Sort(t *testing.T) {
	testCases := []struct {
		name string
		keys []SortKey
		want []string // amounts in resulting order
	}{
		{
			name: "by date",
			keys: []SortKey{ByDate},
			want: []string{"35", "15", "25", "5"},
		},
		{
			name: "by amount",
			keys: []SortKey{ByAmount},
			want: []string{"5", "15", "25", "35"},
		},
		{
			name: "same key twice reverses",
			keys: []SortKey{ByAmount, ByAmount},
			want: []string{"35", "25", "15", "5"},
		},
		{
			name: "three times toggles back",
			keys: []SortKey{ByAmount, ByAmount, ByAmount},
			want: []string{"5", "15", "25", "35"},
		},
		{
			name: "no category sorts as empty string",
			keys: []SortKey{ByCategory},
			want: []string{"15", "25", "35", "5"}, // "", Groceries, Other, Travel
		},
		{
			name: "summary then account are independent sorts",
			// Expense(25,Cash), Expense(15,Cash), Income(35,Bank), Transfer(5,Cash)
			// then stable by account name: Bank first, Cash keep relative order
			keys: []SortKey{BySummary, ByAccount},
			want: []string{"35", "25", "15", "5"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := browseLedger()
			for _, key := range tc.keys {
				l.Sort(key)
			}
			if got := amounts(l); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("after %v got %v, want %v", tc.keys, got, tc.want)
			}
		})
	}
}

func TestLedger_Sort_Stable(t *testing.T) {
	l := NewLedger()
	// three same-amount transactions distinguishable by category
	l.Push(NewTransaction(MustParseDate("01/01/2024"), dec("10"), Expense, "a", ref("Cash", "EUR")))
	l.Push(NewTransaction(MustParseDate("02/01/2024"), dec("10"), Expense, "b", ref("Cash", "EUR")))
	l.Push(NewTransaction(MustParseDate("03/01/2024"), dec("10"), Expense, "c", ref("Cash", "EUR")))

	l.Sort(ByAmount)
	var got []string
	for _, tx := range l.Transactions() {
		got = append(got, tx.Category)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ties must keep insertion order, got %v want %v", got, want)
	}
}

func TestLedger_Filter(t *testing.T) {
	from, to := MustParseDate("02/01/2024"), MustParseDate("03/01/2024")
	aFrom, aTo := dec("10"), dec("30")

	testCases := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "no criteria passes all",
			criteria: Criteria{},
			want:     []string{"25", "35", "5", "15"},
		},
		{
			name:     "amount bounds are inclusive",
			criteria: Criteria{AmountFrom: &aFrom, AmountTo: &aTo},
			want:     []string{"25", "15"},
		},
		{
			name:     "date bounds are inclusive",
			criteria: Criteria{DateFrom: &from, DateTo: &to},
			want:     []string{"25", "15"},
		},
		{
			name:     "by summary",
			criteria: Criteria{Summaries: []Summary{Income, Transfer}},
			want:     []string{"35", "5"},
		},
		{
			name:     "by category",
			criteria: Criteria{Categories: []string{"Groceries", "Travel"}},
			want:     []string{"25", "5"},
		},
		{
			name:     "account matches either leg of a transfer",
			criteria: Criteria{Accounts: []string{"Bank"}},
			want:     []string{"35", "5"},
		},
		{
			name:     "criteria are ANDed",
			criteria: Criteria{Accounts: []string{"Cash"}, Summaries: []Summary{Expense}},
			want:     []string{"25", "15"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := browseLedger()
			before := l.All()

			view := l.Filter(tc.criteria)
			if got := amounts(view); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Filter() = %v, want %v", got, tc.want)
			}

			// the source must be untouched
			after := l.All()
			if len(after) != len(before) {
				t.Fatalf("Filter() mutated the source: %d -> %d transactions", len(before), len(after))
			}
			for i := range before {
				if !before[i].Equal(after[i]) {
					t.Errorf("Filter() reordered the source at %d", i)
				}
			}
		})
	}
}

func TestLedger_Filter_AmountScenario(t *testing.T) {
	l := NewLedger()
	for _, amount := range []string{"5", "15", "25", "35"} {
		l.Push(NewTransaction(MustParseDate("01/01/2024"), dec(amount), Expense, "", ref("Cash", "EUR")))
	}
	aFrom, aTo := dec("10"), dec("30")
	got := amounts(l.Filter(Criteria{AmountFrom: &aFrom, AmountTo: &aTo}))
	if want := []string{"15", "25"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

func TestLedger_DeleteAt(t *testing.T) {
	l := browseLedger()

	if _, err := l.DeleteAt(4); err == nil {
		t.Error("DeleteAt(4) on a 4-element list must fail")
	}
	if _, err := l.DeleteAt(-1); err == nil {
		t.Error("DeleteAt(-1) must fail")
	}

	tx, err := l.DeleteAt(1)
	if err != nil {
		t.Fatalf("DeleteAt(1): %v", err)
	}
	if !tx.Amount.Equal(dec("35")) {
		t.Errorf("DeleteAt(1) removed amount %s, want 35", tx.Amount)
	}
	if got := amounts(l); !reflect.DeepEqual(got, []string{"25", "5", "15"}) {
		t.Errorf("remaining = %v", got)
	}
}

func TestLedger_DeleteMatching(t *testing.T) {
	l := browseLedger()
	removed := l.DeleteMatching(func(tx Transaction) bool {
		return tx.Account.Name == "Bank" || (tx.Account2 != nil && tx.Account2.Name == "Bank")
	})
	if removed != 2 {
		t.Errorf("removed %d, want 2", removed)
	}
	if got := amounts(l); !reflect.DeepEqual(got, []string{"25", "15"}) {
		t.Errorf("remaining = %v", got)
	}
}
