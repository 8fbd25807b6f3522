// Package models defines the core domain models for FamLedger.
//
// # Entities
//
//   - Account: a node in the household chart of accounts
//   - Customer: a family member or other party that pays into the household
//   - Vendor: a party the household pays
//   - Transaction: a double-entry posting between two accounts
//   - User: a local login account (stored encrypted, outside the ledger DB)
//
// # Design Principles
//
// 1. **Plain structs**: no behavior beyond small derived-value helpers
// 2. **Exact money**: all currency amounts are decimal.Decimal, never float
// 3. **ID references**: relationships use IDs, not pointers, to avoid cycles
// 4. **Storage-agnostic**: models carry no SQL tags for the ledger database;
//    the storage layer owns column mapping
package models
