// Package fbar computes the maximum USD value each foreign account reached
// during a calendar year, the number an annual foreign-asset disclosure
// (FBAR) asks for.
//
// The core is two subsystems. Reconcile merges the accounts discovered at
// the remote provider into a local, user-editable YAML ledger where each
// account is assigned a currency (or skipped). Once every account is
// classified, MaximizeAll fetches each account's daily balance history and
// converts it to USD through a gap-filled table of daily EUR-pivot exchange
// rates (Rates) to find the peak day.
package fbar
