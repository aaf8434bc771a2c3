// Package ledger provides the engine of a personal-finance ledger: accounts
// holding a balance in a currency, categories, and the ordered list of
// income, expense and transfer transactions between them.
//
// The core functionalities include:
//   - Registries: passive stores for accounts and categories, keyed by name,
//     where the only balance-mutating primitive lives.
//   - Book: the single owner of the registries and the transaction list,
//     applying balance effects on creation and reversing them exactly on
//     deletion, including cross-currency transfers priced by a rate service.
//   - Browsing: stable sorts by any column with cheap ascending/descending
//     toggling, and non-mutating filtered views.
//   - Rates: a provider-backed conversion service with a process-wide
//     current snapshot and lazy historical lookups.
//   - Data Persistence: encoding and decoding the book to and from
//     human-readable JSONL streams.
//
// This package serves as the foundational logic for the `hl` command-line
// tool; any interface layer is expected to go through the validation entry
// points before mutating the book.
package ledger
